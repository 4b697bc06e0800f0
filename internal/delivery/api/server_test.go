package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"prestadores/config"
	apimiddleware "prestadores/internal/delivery/api/middleware"
	"prestadores/internal/delivery/api/router"
	"prestadores/internal/delivery/api/router/handler"
	deliverycontext "prestadores/internal/delivery/context"
	"prestadores/internal/domain/entity"
	domainerrors "prestadores/internal/domain/errors"
	mockUC "prestadores/internal/mocks/usecase"
	"prestadores/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type serverFixtures struct {
	echo       *echo.Echo
	authUC     *mockUC.MockAuthUsecase
	providerUC *mockUC.MockProviderUsecase
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1KB"
	cfg.HTTP.RequestTimeout = 5 * time.Second
	cfg.HTTP.CORS.AllowedOrigins = []string{"*"}

	return cfg
}

func createTestServer(t *testing.T) serverFixtures {
	authUC := mockUC.NewMockAuthUsecase(t)
	providerUC := mockUC.NewMockProviderUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	r := router.NewRouter(router.RouterParams{
		AuthHandler:     handler.NewAuthHandler(authUC),
		ProviderHandler: handler.NewProviderHandler(providerUC),
		AuthMiddleware:  apimiddleware.NewAuthMiddleware(authUC, logger),
	})

	return serverFixtures{
		echo:       NewEcho(newTestConfig(), logger, r),
		authUC:     authUC,
		providerUC: providerUC,
	}
}

func (f serverFixtures) do(method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())

	return body
}

func bearer(token string) map[string]string {
	return map[string]string{echo.HeaderAuthorization: "Bearer " + token}
}

func TestRegister_Created(t *testing.T) {
	f := createTestServer(t)
	userID := uuid.New()
	createdAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	f.authUC.EXPECT().
		Register(mock.Anything, mock.MatchedBy(func(in *usecase.RegisterInput) bool {
			return in.Name == "Ana" && in.Email == "ana@x.com" && in.Password == "secret1" && in.Category == "Encanador"
		})).
		Return(&usecase.RegisterOutput{User: &entity.User{
			ID:           userID,
			Name:         "Ana",
			Email:        "ana@x.com",
			PasswordHash: "digest",
			CreatedAt:    createdAt,
		}}, nil)

	rec := f.do(http.MethodPost, "/auth/register", `{"nome":"Ana","email":"ana@x.com","senha":"secret1","categoria":"Encanador"}`, nil)

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "Usuário criado com sucesso", body["message"])

	user := body["user"].(map[string]any)
	assert.Equal(t, userID.String(), user["id"])
	assert.Equal(t, "Ana", user["nome"])
	assert.Equal(t, "ana@x.com", user["email"])
	assert.Nil(t, user["telefone"])
	assert.Nil(t, user["cpf"])
	assert.Equal(t, "2025-03-01T12:00:00Z", user["criadoEm"])
	assert.NotContains(t, rec.Body.String(), "digest")
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestRegister_LongPasswordsAccepted(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{name: "ascii over 72 characters", password: strings.Repeat("a", 100)},
		{name: "multibyte over 72 bytes", password: strings.Repeat("é", 40)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestServer(t)

			f.authUC.EXPECT().
				Register(mock.Anything, mock.MatchedBy(func(in *usecase.RegisterInput) bool {
					return in.Password == tt.password
				})).
				Return(&usecase.RegisterOutput{User: &entity.User{ID: uuid.New(), Name: "Ana", Email: "ana@x.com"}}, nil)

			payload, err := json.Marshal(map[string]string{"nome": "Ana", "email": "ana@x.com", "senha": tt.password})
			require.NoError(t, err)

			rec := f.do(http.MethodPost, "/auth/register", string(payload), nil)

			assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		})
	}
}

func TestRegister_ValidationMessages(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		message string
		code    string
	}{
		{name: "missing nome", body: `{"email":"ana@x.com","senha":"secret1"}`, message: "Todos os campos são obrigatórios", code: "REQUIRED_FIELDS"},
		{name: "missing everything", body: `{}`, message: "Todos os campos são obrigatórios", code: "REQUIRED_FIELDS"},
		{name: "short senha", body: `{"nome":"Ana","email":"ana@x.com","senha":"12345"}`, message: "A senha deve ter no mínimo 6 caracteres", code: "PASSWORD_TOO_SHORT"},
		{name: "malformed json", body: `{"nome":`, message: "Dados de entrada inválidos", code: "VALIDATION_FAILED"},
		{name: "wrong type", body: `{"nome":"Ana","email":"ana@x.com","senha":"secret1","atendimento24h":"sim"}`, message: "Dados de entrada inválidos", code: "VALIDATION_FAILED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestServer(t)

			rec := f.do(http.MethodPost, "/auth/register", tt.body, nil)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			body := decode(t, rec)
			assert.Equal(t, tt.message, body["message"])
			assert.Equal(t, tt.code, body["code"])
			assert.Equal(t, rec.Header().Get(deliverycontext.HeaderXRequestID), body["request_id"])
		})
	}
}

func TestRegister_Conflict(t *testing.T) {
	f := createTestServer(t)

	f.authUC.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrUserAlreadyExists)

	rec := f.do(http.MethodPost, "/auth/register", `{"nome":"Ana","email":"ana@x.com","senha":"secret1"}`, nil)

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Este e-mail já está em uso", decode(t, rec)["message"])
}

func TestRegister_InternalErrorIsGeneric(t *testing.T) {
	f := createTestServer(t)

	f.authUC.EXPECT().Register(mock.Anything, mock.Anything).
		Return(nil, domainerrors.NewDatabaseExecuteError(errors.New("pq: relation users does not exist"), "failed to create user"))

	rec := f.do(http.MethodPost, "/auth/register", `{"nome":"Ana","email":"ana@x.com","senha":"secret1"}`, nil)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Erro interno do servidor", decode(t, rec)["message"])
	assert.NotContains(t, rec.Body.String(), "relation")
}

func TestRegister_PayloadTooLarge(t *testing.T) {
	f := createTestServer(t)
	big := `{"nome":"` + strings.Repeat("a", 2048) + `","email":"ana@x.com","senha":"secret1"}`

	rec := f.do(http.MethodPost, "/auth/register", big, nil)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestLogin_OK(t *testing.T) {
	f := createTestServer(t)
	user := &entity.User{ID: uuid.New(), Name: "Ana", Email: "ana@x.com"}

	f.authUC.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Email: "ana@x.com", Password: "secret1"}).
		Return(&usecase.LoginOutput{AccessToken: "signed.jwt.token", User: user}, nil)

	rec := f.do(http.MethodPost, "/auth/login", `{"email":"ana@x.com","senha":"secret1"}`, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "Login realizado com sucesso", body["message"])
	assert.Equal(t, "signed.jwt.token", body["access_token"])
	assert.Equal(t, user.ID.String(), body["user"].(map[string]any)["id"])
}

func TestLogin_MissingFields(t *testing.T) {
	f := createTestServer(t)

	rec := f.do(http.MethodPost, "/auth/login", `{"email":"ana@x.com"}`, nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Email e senha são obrigatórios", decode(t, rec)["message"])
}

func TestLogin_UniformUnauthorized(t *testing.T) {
	f := createTestServer(t)

	f.authUC.EXPECT().Login(mock.Anything, &usecase.LoginInput{Email: "ana@x.com", Password: "wrong-pass"}).
		Return(nil, domainerrors.ErrInvalidCredentials)
	f.authUC.EXPECT().Login(mock.Anything, &usecase.LoginInput{Email: "ghost@x.com", Password: "wrong-pass"}).
		Return(nil, domainerrors.ErrInvalidCredentials)

	wrongPassword := f.do(http.MethodPost, "/auth/login", `{"email":"ana@x.com","senha":"wrong-pass"}`, nil)
	unknownEmail := f.do(http.MethodPost, "/auth/login", `{"email":"ghost@x.com","senha":"wrong-pass"}`, nil)

	require.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	require.Equal(t, http.StatusUnauthorized, unknownEmail.Code)

	a, b := decode(t, wrongPassword), decode(t, unknownEmail)
	assert.Equal(t, "Credenciais inválidas", a["message"])
	assert.Equal(t, a["message"], b["message"])
	assert.Equal(t, a["code"], b["code"])
}

func TestListProviders_Unauthorized(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		setup   func(f serverFixtures)
		message string
	}{
		{name: "no header", message: "Token de autorização necessário"},
		{name: "wrong scheme", headers: map[string]string{echo.HeaderAuthorization: "Basic abc"}, message: "Token de autorização necessário"},
		{name: "empty bearer", headers: map[string]string{echo.HeaderAuthorization: "Bearer "}, message: "Token de autorização necessário"},
		{
			name:    "invalid token",
			headers: bearer("expired"),
			setup: func(f serverFixtures) {
				f.authUC.EXPECT().Authenticate(mock.Anything, "expired").Return(nil, domainerrors.ErrTokenInvalid)
			},
			message: "Token inválido",
		},
		{
			name:    "subject deleted",
			headers: bearer("orphan"),
			setup: func(f serverFixtures) {
				f.authUC.EXPECT().Authenticate(mock.Anything, "orphan").Return(nil, domainerrors.ErrTokenSubjectNotFound)
			},
			message: "Usuário não encontrado",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestServer(t)
			if tt.setup != nil {
				tt.setup(f)
			}

			rec := f.do(http.MethodGet, "/prestadores", "", tt.headers)

			require.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, tt.message, decode(t, rec)["message"])
		})
	}
}

func TestListProviders_OK(t *testing.T) {
	f := createTestServer(t)
	phone := "11999999999"
	provider := &entity.Provider{
		ID:           uuid.New(),
		Description:  "Encanador residencial",
		Available:    true,
		Emergency24h: true,
		Owner:        &entity.ProviderOwner{ID: uuid.New(), Name: "Ana", Email: "ana@x.com", Phone: &phone},
		Services: []*entity.Service{{
			ID:       uuid.New(),
			Name:     "Troca de sifão",
			Category: &entity.Category{ID: uuid.New(), Name: "Encanador"},
		}},
	}

	f.authUC.EXPECT().Authenticate(mock.Anything, "good").Return(&entity.User{ID: uuid.New()}, nil)
	f.providerUC.EXPECT().
		ListProviders(mock.Anything, entity.ProviderFilter{Category: "plumb", Emergency: true}).
		Return(&usecase.ListProvidersOutput{Providers: []*entity.Provider{provider}, Total: 1}, nil)

	rec := f.do(http.MethodGet, "/prestadores?categoria=plumb&emergencia=true", "", bearer("good"))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "Prestadores listados com sucesso", body["message"])
	assert.EqualValues(t, 1, body["total"])

	items := body["data"].([]any)
	require.Len(t, items, 1)
	item := items[0].(map[string]any)
	assert.Equal(t, true, item["disponivel"])
	assert.Equal(t, true, item["atendimento24h"])
	assert.Nil(t, item["fotoUrl"])
	assert.Equal(t, "Ana", item["user"].(map[string]any)["nome"])
	assert.Equal(t, phone, item["user"].(map[string]any)["telefone"])

	services := item["servicos"].([]any)
	require.Len(t, services, 1)
	assert.Equal(t, "Encanador", services[0].(map[string]any)["categoria"].(map[string]any)["nome"])
}

func TestListProviders_EmergencyNeedsExactTrue(t *testing.T) {
	f := createTestServer(t)

	f.authUC.EXPECT().Authenticate(mock.Anything, "good").Return(&entity.User{ID: uuid.New()}, nil)
	f.providerUC.EXPECT().
		ListProviders(mock.Anything, entity.ProviderFilter{Emergency: false}).
		Return(&usecase.ListProvidersOutput{Providers: []*entity.Provider{}}, nil)

	rec := f.do(http.MethodGet, "/prestadores?emergencia=1", "", bearer("good"))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, []any{}, body["data"])
	assert.EqualValues(t, 0, body["total"])
}

func TestListProviders_Timeout(t *testing.T) {
	f := createTestServer(t)

	f.authUC.EXPECT().Authenticate(mock.Anything, "good").Return(&entity.User{ID: uuid.New()}, nil)
	f.providerUC.EXPECT().ListProviders(mock.Anything, mock.Anything).
		Return(nil, domainerrors.NewDatabaseExecuteError(errors.Wrap(context.DeadlineExceeded, "query"), "failed to list providers"))

	rec := f.do(http.MethodGet, "/prestadores", "", bearer("good"))

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "Serviço temporariamente indisponível", decode(t, rec)["message"])
}

func TestMe_ReturnsAuthenticatedUser(t *testing.T) {
	f := createTestServer(t)
	user := &entity.User{ID: uuid.New(), Name: "Ana", Email: "ana@x.com", Provider: &entity.Provider{}}

	f.authUC.EXPECT().Authenticate(mock.Anything, "good").Return(user, nil)

	rec := f.do(http.MethodGet, "/auth/me", "", bearer("good"))

	require.Equal(t, http.StatusOK, rec.Code)
	got := decode(t, rec)["user"].(map[string]any)
	assert.Equal(t, user.ID.String(), got["id"])
	assert.Equal(t, true, got["prestador"])
}

func TestOptions_PreflightOnEveryEndpoint(t *testing.T) {
	f := createTestServer(t)

	for _, path := range []string{"/auth/register", "/auth/login", "/prestadores", "/auth/me", "/health"} {
		t.Run(path, func(t *testing.T) {
			rec := f.do(http.MethodOptions, path, "", map[string]string{
				"Origin":                         "http://localhost:3000",
				"Access-Control-Request-Method":  http.MethodPost,
				"Access-Control-Request-Headers": "Content-Type, Authorization",
			})

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
			assert.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Headers"))
		})
	}
}

func TestOptions_WithoutOriginStillPermissive(t *testing.T) {
	f := createTestServer(t)

	for _, path := range []string{"/auth/register", "/auth/login", "/prestadores", "/auth/me", "/health"} {
		t.Run(path, func(t *testing.T) {
			rec := f.do(http.MethodOptions, path, "", nil)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, "GET, POST, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
			assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Authorization")
			assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Content-Type")
		})
	}
}

func TestCORS_ActualRequest(t *testing.T) {
	f := createTestServer(t)

	rec := f.do(http.MethodGet, "/health", "", map[string]string{"Origin": "http://localhost:3000"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestMethodNotAllowed(t *testing.T) {
	f := createTestServer(t)

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/auth/register"},
		{http.MethodGet, "/auth/login"},
		{http.MethodPost, "/prestadores"},
		{http.MethodDelete, "/prestadores"},
	} {
		rec := f.do(tc.method, tc.path, "", nil)

		require.Equal(t, http.StatusMethodNotAllowed, rec.Code, "%s %s", tc.method, tc.path)
		assert.Equal(t, "Método não permitido", decode(t, rec)["message"])
	}
}

func TestNotFound(t *testing.T) {
	f := createTestServer(t)

	rec := f.do(http.MethodGet, "/nope", "", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", decode(t, rec)["code"])
}

func TestRequestID_Propagated(t *testing.T) {
	f := createTestServer(t)

	rec := f.do(http.MethodGet, "/health", "", map[string]string{deliverycontext.HeaderXRequestID: "client-req-1"})

	assert.Equal(t, "client-req-1", rec.Header().Get(deliverycontext.HeaderXRequestID))
}
