package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig
	HTTPServer  HTTPServerConfig
	Logger      LoggerConfig

	// ESS chatbot specifics
	Intent    IntentConfig
	Directory DirectoryConfig
	Chat      ChatConfig
	Voyage    VoyageConfig
	Gemini    GeminiConfig
	Gmail     GmailConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// IntentConfig configures the embedding-based intent detector.
type IntentConfig struct {
	CatalogPath string
	Threshold   float64
	CacheSize   int
	CacheTTL    time.Duration
}

// DirectoryConfig configures the employee directory.
type DirectoryConfig struct {
	EmployeesPath string
}

// ChatConfig configures the chat endpoint.
type ChatConfig struct {
	RateLimitPerMin int
	MailSubject     string
}

type VoyageConfig struct {
	APIKey string
	Model  string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

// GmailConfig configures the outbound mail delivery collaborator.
type GmailConfig struct {
	CredentialsPath string
	FromAddress     string // fallback sender when the admin has no directory address
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Intent detection
	cfg.Intent.CatalogPath = viper.GetString("intent.catalog_path")
	cfg.Intent.Threshold = viper.GetFloat64("intent.threshold")
	cfg.Intent.CacheSize = viper.GetInt("intent.cache_size")
	cfg.Intent.CacheTTL = viper.GetDuration("intent.cache_ttl")

	// Employee directory
	cfg.Directory.EmployeesPath = viper.GetString("directory.employees_path")

	// Chat
	cfg.Chat.RateLimitPerMin = viper.GetInt("chat.rate_limit_per_min")
	cfg.Chat.MailSubject = viper.GetString("chat.mail_subject")

	// Voyage AI
	cfg.Voyage.APIKey = viper.GetString("voyage.api_key")
	cfg.Voyage.Model = viper.GetString("voyage.model")
	if voyageKey := viper.GetString("voyage_api_key"); voyageKey != "" {
		cfg.Voyage.APIKey = voyageKey
	}

	// Gemini
	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	cfg.Gemini.Model = viper.GetString("gemini.model")
	if geminiKey := viper.GetString("gemini_api_key"); geminiKey != "" {
		cfg.Gemini.APIKey = geminiKey
	}

	// Gmail delivery
	cfg.Gmail.CredentialsPath = viper.GetString("gmail.credentials_path")
	cfg.Gmail.FromAddress = viper.GetString("gmail.from_address")
	if gmailCreds := viper.GetString("gmail_credentials"); gmailCreds != "" {
		cfg.Gmail.CredentialsPath = gmailCreds
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate enforces the fail-fast startup contract: a misconfigured catalog or
// missing delivery credentials must stop the process rather than run degraded.
func (c *Config) validate() error {
	if c.Voyage.APIKey == "" {
		return fmt.Errorf("voyage.api_key is required (set VOYAGE_API_KEY)")
	}
	if c.Intent.CatalogPath == "" {
		return fmt.Errorf("intent.catalog_path is required")
	}
	if c.Directory.EmployeesPath == "" {
		return fmt.Errorf("directory.employees_path is required")
	}
	if c.Gmail.CredentialsPath == "" {
		return fmt.Errorf("gmail.credentials_path is required (set GMAIL_CREDENTIALS)")
	}
	if c.Intent.Threshold < -1 || c.Intent.Threshold > 1 {
		return fmt.Errorf("intent.threshold must be within [-1, 1], got %v", c.Intent.Threshold)
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("intent.catalog_path", "data/intents.json")
	viper.SetDefault("intent.threshold", 0.5)
	viper.SetDefault("intent.cache_size", 256)
	viper.SetDefault("intent.cache_ttl", "10m")

	viper.SetDefault("directory.employees_path", "data/employees.json")

	viper.SetDefault("chat.rate_limit_per_min", 60)
	viper.SetDefault("chat.mail_subject", "Official Communication – TechCorp")

	viper.SetDefault("voyage.model", "voyage-3")
	viper.SetDefault("gemini.model", "gemini-2.5-flash-lite")
}
