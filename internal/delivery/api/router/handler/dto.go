package handler

import (
	"time"

	"prestadores/internal/domain/entity"
	"prestadores/internal/usecase"

	"github.com/google/uuid"
)

// --- Requests ---

type registerRequest struct {
	Nome                 string `json:"nome" validate:"required,max=255"`
	Email                string `json:"email" validate:"required,email,max=255"`
	Senha                string `json:"senha" validate:"required,min=6"`
	Telefone             string `json:"telefone" validate:"omitempty,max=32"`
	CPF                  string `json:"cpf" validate:"omitempty,max=14"`
	Categoria            string `json:"categoria" validate:"omitempty,max=100"`
	Endereco             string `json:"endereco"`
	Descricao            string `json:"descricao"`
	HorarioFuncionamento string `json:"horarioFuncionamento" validate:"omitempty,max=255"`
	PrecoBase            string `json:"precoBase" validate:"omitempty,max=64"`
	Experiencia          string `json:"experiencia"`
	Certificacoes        string `json:"certificacoes"`
	Atendimento24h       bool   `json:"atendimento24h"`
}

func (r *registerRequest) toInput() *usecase.RegisterInput {
	return &usecase.RegisterInput{
		Name:           r.Nome,
		Email:          r.Email,
		Password:       r.Senha,
		Phone:          r.Telefone,
		CPF:            r.CPF,
		Category:       r.Categoria,
		Address:        r.Endereco,
		Description:    r.Descricao,
		BusinessHours:  r.HorarioFuncionamento,
		BasePrice:      r.PrecoBase,
		Experience:     r.Experiencia,
		Certifications: r.Certificacoes,
		Emergency24h:   r.Atendimento24h,
	}
}

type loginRequest struct {
	Email string `json:"email" validate:"required"`
	Senha string `json:"senha" validate:"required"`
}

// --- Responses ---

type userResponse struct {
	ID        uuid.UUID `json:"id"`
	Nome      string    `json:"nome"`
	Email     string    `json:"email"`
	Telefone  *string   `json:"telefone"`
	CPF       *string   `json:"cpf"`
	CriadoEm  time.Time `json:"criadoEm"`
	Prestador *bool     `json:"prestador,omitempty"`
}

func newUserResponse(user *entity.User) userResponse {
	return userResponse{
		ID:       user.ID,
		Nome:     user.Name,
		Email:    user.Email,
		Telefone: user.Phone,
		CPF:      user.CPF,
		CriadoEm: user.CreatedAt,
	}
}

type registerResponse struct {
	Message string       `json:"message"`
	User    userResponse `json:"user"`
}

type loginUserResponse struct {
	ID       uuid.UUID `json:"id"`
	Nome     string    `json:"nome"`
	Email    string    `json:"email"`
	CriadoEm time.Time `json:"criadoEm"`
}

type loginResponse struct {
	Message     string            `json:"message"`
	AccessToken string            `json:"access_token"`
	ExpiresAt   time.Time         `json:"expires_at"`
	User        loginUserResponse `json:"user"`
}

type meResponse struct {
	Message string       `json:"message"`
	User    userResponse `json:"user"`
}

type providerOwnerResponse struct {
	ID       uuid.UUID `json:"id"`
	Nome     string    `json:"nome"`
	Email    string    `json:"email"`
	Telefone *string   `json:"telefone"`
	CriadoEm time.Time `json:"criadoEm"`
}

type categoryResponse struct {
	ID   uuid.UUID `json:"id"`
	Nome string    `json:"nome"`
}

type serviceResponse struct {
	ID        uuid.UUID         `json:"id"`
	Nome      string            `json:"nome"`
	Descricao *string           `json:"descricao"`
	Preco     *string           `json:"preco"`
	Categoria *categoryResponse `json:"categoria"`
}

type providerResponse struct {
	ID             uuid.UUID              `json:"id"`
	FotoURL        *string                `json:"fotoUrl"`
	Descricao      string                 `json:"descricao"`
	Disponivel     bool                   `json:"disponivel"`
	Atendimento24h bool                   `json:"atendimento24h"`
	User           *providerOwnerResponse `json:"user"`
	Servicos       []serviceResponse      `json:"servicos"`
}

type listProvidersResponse struct {
	Message string             `json:"message"`
	Data    []providerResponse `json:"data"`
	Total   int                `json:"total"`
}

func newProviderResponse(p *entity.Provider) providerResponse {
	resp := providerResponse{
		ID:             p.ID,
		FotoURL:        p.PhotoURL,
		Descricao:      p.Description,
		Disponivel:     p.Available,
		Atendimento24h: p.Emergency24h,
		Servicos:       make([]serviceResponse, 0, len(p.Services)),
	}

	if p.Owner != nil {
		resp.User = &providerOwnerResponse{
			ID:       p.Owner.ID,
			Nome:     p.Owner.Name,
			Email:    p.Owner.Email,
			Telefone: p.Owner.Phone,
			CriadoEm: p.Owner.CreatedAt,
		}
	}

	for _, s := range p.Services {
		svc := serviceResponse{
			ID:        s.ID,
			Nome:      s.Name,
			Descricao: s.Description,
			Preco:     s.Price,
		}
		if s.Category != nil {
			svc.Categoria = &categoryResponse{ID: s.Category.ID, Nome: s.Category.Name}
		}
		resp.Servicos = append(resp.Servicos, svc)
	}

	return resp
}
