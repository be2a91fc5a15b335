package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const VERSION = "2.0"

type Config struct {
	Server             ServerConfig
	Database           DatabaseConfig
	Supabase           SupabaseConfig
	Chat               ChatConfig
	Tracing            TracingConfig
	SMTP               SMTPConfig
	Storage            StorageConfig
	ContactNotifyEmail string
	CORSAllowOrigins   []string
	TrustedProxies     []string
	AdminPresenceTTL   time.Duration
	Environment        string
	APIEndpoint        string
	LogLevel           string
	Version            string
}

type ServerConfig struct {
	Port int
	Host string
	SSL  SSLConfig
}

// DatabaseConfig points at the Postgres instance behind the hosted project.
// URL takes precedence over the discrete fields when set.
type DatabaseConfig struct {
	URL      string
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type SupabaseConfig struct {
	URL           string
	AnonKey       string
	JWTSecret     string
	WebhookSecret string
}

// ChatConfig drives both the /api/chat proxy and the live chat auto reply
type ChatConfig struct {
	Provider        string // "gemini" or "anthropic"
	GeminiAPIKey    string
	AnthropicAPIKey string
	Model           string
	MaxTokens       int
	Owner           OwnerProfile
	FallbackReply   string
	RateLimit       int
	RateWindow      time.Duration
}

// OwnerProfile feeds the assistant prompt
type OwnerProfile struct {
	Name     string
	Role     string
	Skills   string
	Projects string
	Contact  string
	GitHub   string
	Location string
}

type SSLConfig struct {
	Enabled  bool
	CertFile string
	KeyFile  string
}

type TracingConfig struct {
	Enabled             bool
	ServiceName         string
	SamplingProbability float64

	// Trace exporter configuration
	TraceExporter string // "jaeger", "stackdriver", "zipkin", "datadog", "xray", "none"

	JaegerEndpoint       string
	ZipkinEndpoint       string
	StackdriverProjectID string
	DatadogAgentAddress  string
	DatadogAPIKey        string
	XRayRegion           string
	AgentEndpoint        string

	// Metrics exporter configuration
	MetricsExporter string // "prometheus", "stackdriver", "datadog", "none" or comma-separated list
	PrometheusPort  int
}

type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

// StorageConfig targets any S3-compatible bucket (Supabase Storage, R2, MinIO, S3)
type StorageConfig struct {
	Endpoint       string
	Region         string
	Bucket         string
	AccessKey      string
	SecretKey      string
	PublicURL      string
	ForcePathStyle bool
}

// IsConfigured reports whether media uploads can be served
func (s StorageConfig) IsConfigured() bool {
	return s.Bucket != "" && s.AccessKey != "" && s.SecretKey != ""
}

// LoadOptions contains options for loading configuration
type LoadOptions struct {
	EnvFile string // Optional environment file to load (e.g., ".env", ".env.test")
}

// Load loads the configuration with default options
func Load() (*Config, error) {
	return LoadWithOptions(LoadOptions{EnvFile: ".env"})
}

// LoadWithOptions loads the configuration with the specified options
func LoadWithOptions(opts LoadOptions) (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "postgres")
	v.SetDefault("DB_SSLMODE", "require")
	v.SetDefault("ENVIRONMENT", "production")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("VERSION", VERSION)
	v.SetDefault("ADMIN_PRESENCE_TTL", "2m")
	v.SetDefault("CORS_ALLOW_ORIGINS", "*")

	// Chat defaults
	v.SetDefault("CHAT_PROVIDER", "gemini")
	v.SetDefault("CHAT_MAX_TOKENS", 512)
	v.SetDefault("CHAT_RATE_LIMIT", 10)
	v.SetDefault("CHAT_RATE_WINDOW", "1m")
	v.SetDefault("OWNER_NAME", "Ron Hezykiel Arbois")
	v.SetDefault("OWNER_ROLE", "Full-Stack Developer and UI/UX Designer")
	v.SetDefault("OWNER_LOCATION", "Philippines")
	v.SetDefault("OWNER_GITHUB", "https://github.com/rllL1")
	v.SetDefault("OWNER_SKILLS", "Frontend: React, Next.js, TypeScript, JavaScript; Backend: Node.js, PHP, Laravel; Design: Figma, Adobe Illustrator, Photoshop; Database: MySQL, MSSQL, Supabase")
	v.SetDefault("OWNER_PROJECTS", "Online Enrollment System (PHP, MySQL); Library Management System (PHP, MySQL); Automated Docs Report (Next.js, Supabase)")
	v.SetDefault("CHAT_FALLBACK_REPLY", "Thanks for reaching out! I'm currently offline, but I'll get back to you as soon as possible.")

	// SMTP defaults
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SMTP_FROM_NAME", "Portfolio")

	// Storage defaults
	v.SetDefault("STORAGE_REGION", "us-east-1")
	v.SetDefault("STORAGE_FORCE_PATH_STYLE", true)

	// Tracing defaults
	v.SetDefault("TRACING_ENABLED", false)
	v.SetDefault("TRACING_SERVICE_NAME", "portfolio-api")
	v.SetDefault("TRACING_SAMPLING_PROBABILITY", 0.1)
	v.SetDefault("TRACING_TRACE_EXPORTER", "none")
	v.SetDefault("TRACING_JAEGER_ENDPOINT", "http://localhost:14268/api/traces")
	v.SetDefault("TRACING_ZIPKIN_ENDPOINT", "http://localhost:9411/api/v2/spans")
	v.SetDefault("TRACING_STACKDRIVER_PROJECT_ID", "")
	v.SetDefault("TRACING_DATADOG_AGENT_ADDRESS", "localhost:8126")
	v.SetDefault("TRACING_DATADOG_API_KEY", "")
	v.SetDefault("TRACING_XRAY_REGION", "us-west-2")
	v.SetDefault("TRACING_AGENT_ENDPOINT", "localhost:8126")
	v.SetDefault("TRACING_METRICS_EXPORTER", "none")
	v.SetDefault("TRACING_PROMETHEUS_PORT", 9464)

	if opts.EnvFile != "" {
		v.SetConfigName(opts.EnvFile)
		v.SetConfigType("env")

		currentPath, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("error getting current directory: %w", err)
		}

		v.AddConfigPath(currentPath)

		if err := v.ReadInConfig(); err != nil {
			// It's okay if config file doesn't exist
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	for _, key := range []string{"SUPABASE_URL", "SUPABASE_ANON_KEY", "SUPABASE_JWT_SECRET"} {
		if v.GetString(key) == "" {
			return nil, fmt.Errorf("%s is required", key)
		}
	}

	config := &Config{
		Server: ServerConfig{
			Port: v.GetInt("SERVER_PORT"),
			Host: v.GetString("SERVER_HOST"),
			SSL: SSLConfig{
				Enabled:  v.GetBool("SSL_ENABLED"),
				CertFile: v.GetString("SSL_CERT_FILE"),
				KeyFile:  v.GetString("SSL_KEY_FILE"),
			},
		},
		Database: DatabaseConfig{
			URL:      v.GetString("DATABASE_URL"),
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetInt("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			DBName:   v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
		Supabase: SupabaseConfig{
			URL:           strings.TrimRight(v.GetString("SUPABASE_URL"), "/"),
			AnonKey:       v.GetString("SUPABASE_ANON_KEY"),
			JWTSecret:     v.GetString("SUPABASE_JWT_SECRET"),
			WebhookSecret: v.GetString("SUPABASE_WEBHOOK_SECRET"),
		},
		Chat: ChatConfig{
			Provider:        strings.ToLower(v.GetString("CHAT_PROVIDER")),
			GeminiAPIKey:    v.GetString("GEMINI_API_KEY"),
			AnthropicAPIKey: v.GetString("ANTHROPIC_API_KEY"),
			Model:           v.GetString("CHAT_MODEL"),
			MaxTokens:       v.GetInt("CHAT_MAX_TOKENS"),
			FallbackReply:   v.GetString("CHAT_FALLBACK_REPLY"),
			RateLimit:       v.GetInt("CHAT_RATE_LIMIT"),
			RateWindow:      v.GetDuration("CHAT_RATE_WINDOW"),
			Owner: OwnerProfile{
				Name:     v.GetString("OWNER_NAME"),
				Role:     v.GetString("OWNER_ROLE"),
				Skills:   v.GetString("OWNER_SKILLS"),
				Projects: v.GetString("OWNER_PROJECTS"),
				Contact:  v.GetString("OWNER_CONTACT"),
				GitHub:   v.GetString("OWNER_GITHUB"),
				Location: v.GetString("OWNER_LOCATION"),
			},
		},
		SMTP: SMTPConfig{
			Host:      v.GetString("SMTP_HOST"),
			Port:      v.GetInt("SMTP_PORT"),
			Username:  v.GetString("SMTP_USERNAME"),
			Password:  v.GetString("SMTP_PASSWORD"),
			FromEmail: v.GetString("SMTP_FROM_EMAIL"),
			FromName:  v.GetString("SMTP_FROM_NAME"),
		},
		Storage: StorageConfig{
			Endpoint:       v.GetString("STORAGE_ENDPOINT"),
			Region:         v.GetString("STORAGE_REGION"),
			Bucket:         v.GetString("STORAGE_BUCKET"),
			AccessKey:      v.GetString("STORAGE_ACCESS_KEY"),
			SecretKey:      v.GetString("STORAGE_SECRET_KEY"),
			PublicURL:      strings.TrimRight(v.GetString("STORAGE_PUBLIC_URL"), "/"),
			ForcePathStyle: v.GetBool("STORAGE_FORCE_PATH_STYLE"),
		},
		Tracing: TracingConfig{
			Enabled:              v.GetBool("TRACING_ENABLED"),
			ServiceName:          v.GetString("TRACING_SERVICE_NAME"),
			SamplingProbability:  v.GetFloat64("TRACING_SAMPLING_PROBABILITY"),
			TraceExporter:        v.GetString("TRACING_TRACE_EXPORTER"),
			JaegerEndpoint:       v.GetString("TRACING_JAEGER_ENDPOINT"),
			ZipkinEndpoint:       v.GetString("TRACING_ZIPKIN_ENDPOINT"),
			StackdriverProjectID: v.GetString("TRACING_STACKDRIVER_PROJECT_ID"),
			DatadogAgentAddress:  v.GetString("TRACING_DATADOG_AGENT_ADDRESS"),
			DatadogAPIKey:        v.GetString("TRACING_DATADOG_API_KEY"),
			XRayRegion:           v.GetString("TRACING_XRAY_REGION"),
			AgentEndpoint:        v.GetString("TRACING_AGENT_ENDPOINT"),
			MetricsExporter:      v.GetString("TRACING_METRICS_EXPORTER"),
			PrometheusPort:       v.GetInt("TRACING_PROMETHEUS_PORT"),
		},
		ContactNotifyEmail: v.GetString("CONTACT_NOTIFY_EMAIL"),
		CORSAllowOrigins:   splitList(v.GetString("CORS_ALLOW_ORIGINS")),
		TrustedProxies:     splitList(v.GetString("TRUSTED_PROXIES")),
		AdminPresenceTTL:   v.GetDuration("ADMIN_PRESENCE_TTL"),
		Environment:        v.GetString("ENVIRONMENT"),
		APIEndpoint:        v.GetString("API_ENDPOINT"),
		LogLevel:           v.GetString("LOG_LEVEL"),
		Version:            v.GetString("VERSION"),
	}

	if config.Chat.Provider != "gemini" && config.Chat.Provider != "anthropic" {
		return nil, fmt.Errorf("CHAT_PROVIDER must be gemini or anthropic, got %q", config.Chat.Provider)
	}

	if config.Chat.Model == "" {
		config.Chat.Model = DefaultChatModel(config.Chat.Provider)
	}

	if config.Chat.Owner.Contact == "" {
		config.Chat.Owner.Contact = config.ContactNotifyEmail
	}

	if config.AdminPresenceTTL <= 0 {
		config.AdminPresenceTTL = 2 * time.Minute
	}

	return config, nil
}

// DefaultChatModel returns the model used when CHAT_MODEL is unset
func DefaultChatModel(provider string) string {
	if provider == "anthropic" {
		return "claude-haiku-4-5-20251001"
	}
	return "gemini-1.5-flash-latest"
}

// ChatAPIKey returns the credential of the selected provider, empty when unset
func (c ChatConfig) ChatAPIKey() string {
	if c.Provider == "anthropic" {
		return c.AnthropicAPIKey
	}
	return c.GeminiAPIKey
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// IsDevelopment returns true if the environment is set to development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
