package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"mdr/internal/domain/constants"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultDotEnvFile         = ".env"
)

// Default token validities applied when the config file leaves them empty.
const (
	DefaultSetupTokenValidity    = 24 * time.Hour
	DefaultReverifyTokenValidity = 48 * time.Hour
	DefaultResetTokenValidity    = time.Hour
	DefaultDeleteTokenValidity   = 24 * time.Hour
	DefaultAccessTokenTTL        = 15 * time.Minute
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	PasswordStrength *PasswordStrengthConfig `json:"passwordStrength" yaml:"passwordStrength"`

	// Tokens holds validity windows for account lifecycle tokens.
	Tokens *TokensConfig `json:"tokens" yaml:"tokens"`

	// Links configures the URLs embedded in notification mails.
	Links *LinksConfig `json:"links" yaml:"links"`

	// Notification selects how account links are delivered.
	Notification *NotificationConfig `json:"notification" yaml:"notification"`

	// SMTP is the outbound mail server used by the smtp provider and the mail worker.
	SMTP *SMTPConfig `json:"smtp" yaml:"smtp"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost int `json:"bcryptCost" yaml:"bcryptCost"`
	// TemporaryPasswordLength is the length of passwords generated for provisioned accounts.
	TemporaryPasswordLength int `json:"temporaryPasswordLength" yaml:"temporaryPasswordLength"`
}

// PasswordStrengthConfig defines password strength requirements
type PasswordStrengthConfig struct {
	MinLength        int  `json:"minLength" yaml:"minLength"`
	RequireUppercase bool `json:"requireUppercase" yaml:"requireUppercase"`
	RequireLowercase bool `json:"requireLowercase" yaml:"requireLowercase"`
	RequireNumbers   bool `json:"requireNumbers" yaml:"requireNumbers"`
	RequireSpecial   bool `json:"requireSpecial" yaml:"requireSpecial"`
	MaxLength        int  `json:"maxLength" yaml:"maxLength"`
}

// TokensConfig defines how long each kind of lifecycle token stays valid.
type TokensConfig struct {
	SetupValidity    time.Duration `json:"setupValidity" yaml:"setupValidity"`
	ReverifyValidity time.Duration `json:"reverifyValidity" yaml:"reverifyValidity"`
	ResetValidity    time.Duration `json:"resetValidity" yaml:"resetValidity"`
	DeleteValidity   time.Duration `json:"deleteValidity" yaml:"deleteValidity"`
	AccessTokenTTL   time.Duration `json:"accessTokenTtl" yaml:"accessTokenTtl"`
}

// LinksConfig defines the base URLs used to build mailed links.
type LinksConfig struct {
	// APIBaseURL is the public URL of this service, e.g. https://mdr.example.org/api/account
	APIBaseURL string `json:"apiBaseUrl" yaml:"apiBaseUrl"`
	// FrontendURL is where redirect endpoints forward the browser.
	FrontendURL string `json:"frontendUrl" yaml:"frontendUrl"`
}

// NotificationConfig defines the link delivery transport.
type NotificationConfig struct {
	// Provider type: log, smtp, local, google or rabbitmq
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// RabbitMQ settings (for rabbitmq provider and the mail worker consumer)
	RabbitMQ *RabbitMQConfig `json:"rabbitmq" yaml:"rabbitmq"`

	// Push configures the mail worker Pub/Sub push endpoint.
	Push *PushConfig `json:"push" yaml:"push"`
}

// RabbitMQConfig defines the broker connection and queue.
type RabbitMQConfig struct {
	URL      string `json:"url" yaml:"url"`
	Queue    string `json:"queue" yaml:"queue"`
	Prefetch int    `json:"prefetch" yaml:"prefetch"`
}

// PushConfig defines Pub/Sub push subscription verification.
type PushConfig struct {
	// Audience expected in the push OIDC token. Empty disables verification.
	Audience string `json:"audience" yaml:"audience"`
	// ServiceAccountEmail expected as the token email claim.
	ServiceAccountEmail string `json:"serviceAccountEmail" yaml:"serviceAccountEmail"`
}

// SMTPConfig defines the outbound mail server. Timeout bounds the dial and
// every command exchanged with the server; RequireTLS refuses servers without STARTTLS.
type SMTPConfig struct {
	Host       string        `json:"host" yaml:"host"`
	Port       int           `json:"port" yaml:"port"`
	Username   string        `json:"username" yaml:"username"`
	Password   string        `json:"password" yaml:"password"`
	From       string        `json:"from" yaml:"from"`
	RequireTLS bool          `json:"requireTLS" yaml:"requireTLS"`
	Timeout    time.Duration `json:"timeout" yaml:"timeout"`
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

	configFile, found := findFile(searchPaths, currEnv+".yaml")
	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Example: NOTIFICATION_RABBITMQ_URL -> notification.rabbitmq.url
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

func New() (*Config, error) {
	// A missing .env file is normal outside local development.
	if err := loadDotEnv(defaultDotEnvFile); err != nil {
		return nil, err
	}

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func loadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		return errors.Wrapf(err, "load %s failed", path)
	}

	return nil
}

func findFile(searchPaths []string, name string) (string, bool) {
	for _, path := range searchPaths {
		candidate := filepath.Join(path, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}

	return "", false
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}

	if cfg.Tokens == nil {
		cfg.Tokens = &TokensConfig{}
	}
	cfg.Tokens.SetupValidity = durationOrDefault(cfg.Tokens.SetupValidity, DefaultSetupTokenValidity)
	cfg.Tokens.ReverifyValidity = durationOrDefault(cfg.Tokens.ReverifyValidity, DefaultReverifyTokenValidity)
	cfg.Tokens.ResetValidity = durationOrDefault(cfg.Tokens.ResetValidity, DefaultResetTokenValidity)
	cfg.Tokens.DeleteValidity = durationOrDefault(cfg.Tokens.DeleteValidity, DefaultDeleteTokenValidity)
	cfg.Tokens.AccessTokenTTL = durationOrDefault(cfg.Tokens.AccessTokenTTL, DefaultAccessTokenTTL)

	if cfg.Links == nil {
		cfg.Links = &LinksConfig{}
	}

	if cfg.Notification == nil {
		cfg.Notification = &NotificationConfig{}
	}
	if strings.TrimSpace(cfg.Notification.Provider) == "" {
		cfg.Notification.Provider = constants.NotificationProviderLog
	}
}

func durationOrDefault(value, fallback time.Duration) time.Duration {
	if value <= 0 {
		return fallback
	}

	return value
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

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
