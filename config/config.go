package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultRequestTimeout     = 10 * time.Second
	defaultTokenTTL           = 7 * 24 * time.Hour
	defaultBcryptCost         = 12
	minSecretLength           = 16
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP HTTPConfig `json:"http" yaml:"http"`

	Database DatabaseConfig `json:"database" yaml:"database"`

	JWT JWTConfig `json:"jwt" yaml:"jwt"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`
}

// HTTPConfig defines the API server settings.
type HTTPConfig struct {
	Port               int           `json:"port" yaml:"port" validate:"gte=0,lte=65535"`
	MaxRequestBodySize string        `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
	RequestTimeout     time.Duration `json:"requestTimeout" yaml:"requestTimeout"`
	Timeouts           struct {
		ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
		ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
		WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
		IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
	} `json:"timeouts" yaml:"timeouts"`
	CORS CORSConfig `json:"cors" yaml:"cors"`
}

// CORSConfig lists the origins allowed to call the API from a browser.
type CORSConfig struct {
	AllowedOrigins []string `json:"allowedOrigins" yaml:"allowedOrigins"`
}

// DatabaseConfig defines the PostgreSQL connection. URL is a libpq/pgx connection string.
type DatabaseConfig struct {
	URL             string        `json:"url" yaml:"url" validate:"required"`
	MaxOpenConns    int           `json:"maxOpenConns" yaml:"maxOpenConns" validate:"gte=0"`
	MaxIdleConns    int           `json:"maxIdleConns" yaml:"maxIdleConns" validate:"gte=0"`
	ConnMaxLifetime time.Duration `json:"connMaxLifetime" yaml:"connMaxLifetime"`
	AutoMigrate     bool          `json:"autoMigrate" yaml:"autoMigrate"`
}

// JWTConfig defines token signing. Secret has no default: startup fails without it.
type JWTConfig struct {
	Secret string        `json:"secret" yaml:"secret" validate:"required"`
	TTL    time.Duration `json:"ttl" yaml:"ttl"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost int `json:"bcryptCost" yaml:"bcryptCost"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Environment variables override YAML values, e.g. DATABASE_URL -> database.url
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

// LoadDotEnv loads variables from the given .env files (default ".env") without
// overriding ones already set. A missing file is not an error.
func LoadDotEnv(filenames ...string) error {
	if err := godotenv.Load(filenames...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return errors.Wrap(err, "load .env failed")
	}

	return nil
}

func New() (*Config, error) {
	if err := LoadDotEnv(); err != nil {
		return nil, err
	}

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) applyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.HTTP.RequestTimeout <= 0 {
		cfg.HTTP.RequestTimeout = defaultRequestTimeout
	}
	if len(cfg.HTTP.CORS.AllowedOrigins) == 0 {
		cfg.HTTP.CORS.AllowedOrigins = []string{"*"}
	}
	if cfg.JWT.TTL <= 0 {
		cfg.JWT.TTL = defaultTokenTTL
	}
	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.BcryptCost == 0 {
		cfg.Auth.BcryptCost = defaultBcryptCost
	}
}

// Validate checks the settings the service cannot start without.
func (cfg *Config) Validate() error {
	if err := validator.New().Struct(cfg); err != nil {
		return errors.Wrap(err, "invalid config")
	}

	if len(cfg.JWT.Secret) < minSecretLength {
		return errors.Errorf("invalid config: jwt.secret must be at least %d bytes", minSecretLength)
	}

	return nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
