package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"
)

// Config holds all configuration values
type Config struct {
	// Server configuration
	Port        int    `json:"port"`
	Environment string `json:"environment"`

	// MongoDB configuration
	MongoURI              string `json:"mongo_uri"`
	MongoDatabase         string `json:"mongo_database"`
	ApplicationCollection string `json:"mongo_application_collection"`

	// Redis configuration
	RedisURI      string `json:"redis_uri"`
	RedisPassword string `json:"redis_password"`
	RedisDB       int    `json:"redis_db"`

	// Postal-code lookup
	ViaCEPBaseURL string        `json:"viacep_base_url"`
	CEPCacheTTL   time.Duration `json:"cep_cache_ttl"`
	CEPTimeout    time.Duration `json:"cep_timeout"`
	CEPRateLimit  int           `json:"cep_rate_limit"`

	// Wizard sessions
	WizardSessionTTL        time.Duration `json:"wizard_session_ttl"`
	WizardIncludeDependents bool          `json:"wizard_include_dependents"`

	// Notifications
	ResendAPIKey        string        `json:"-"`
	EmailFrom           string        `json:"email_from"`
	StaffEmails         []string      `json:"staff_emails"`
	NotificationTimeout time.Duration `json:"notification_timeout"`

	// Receipt
	ClubName string         `json:"club_name"`
	Timezone string         `json:"timezone"`
	Location *time.Location `json:"-"`

	// Validation
	StrictCPFCheck bool `json:"strict_cpf_check"`

	// Per-client submissions per minute, 0 disables throttling
	SubmissionRateLimit int `json:"submission_rate_limit"`

	// Admin authorization
	JWTSecret string `json:"-"`
	AdminRole string `json:"admin_role"`

	// Tracing
	TracingEnabled     bool    `json:"tracing_enabled"`
	TracingEndpoint    string  `json:"tracing_endpoint"`
	TracingSampleRatio float64 `json:"tracing_sample_ratio"`
}

var (
	AppConfig *Config
)

// LoadConfig loads configuration from environment variables
func LoadConfig() error {
	cfg, err := loadFromEnv()
	if err != nil {
		return err
	}
	AppConfig = cfg
	return nil
}

func loadFromEnv() (*Config, error) {
	port, err := strconv.Atoi(getEnvOrDefault("PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %w", err)
	}

	redisDB, err := strconv.Atoi(getEnvOrDefault("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	cepCacheTTL, err := time.ParseDuration(getEnvOrDefault("CEP_CACHE_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid CEP_CACHE_TTL: %w", err)
	}

	cepTimeout, err := time.ParseDuration(getEnvOrDefault("CEP_TIMEOUT", "5s"))
	if err != nil {
		return nil, fmt.Errorf("invalid CEP_TIMEOUT: %w", err)
	}

	cepRateLimit, err := strconv.Atoi(getEnvOrDefault("CEP_RATE_LIMIT", "120"))
	if err != nil {
		return nil, fmt.Errorf("invalid CEP_RATE_LIMIT: %w", err)
	}

	submissionRateLimit, err := strconv.Atoi(getEnvOrDefault("SUBMISSION_RATE_LIMIT", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid SUBMISSION_RATE_LIMIT: %w", err)
	}

	wizardTTL, err := time.ParseDuration(getEnvOrDefault("WIZARD_SESSION_TTL", "2h"))
	if err != nil {
		return nil, fmt.Errorf("invalid WIZARD_SESSION_TTL: %w", err)
	}

	notificationTimeout, err := time.ParseDuration(getEnvOrDefault("NOTIFICATION_TIMEOUT", "15s"))
	if err != nil {
		return nil, fmt.Errorf("invalid NOTIFICATION_TIMEOUT: %w", err)
	}

	includeDependents, err := strconv.ParseBool(getEnvOrDefault("WIZARD_INCLUDE_DEPENDENTS", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid WIZARD_INCLUDE_DEPENDENTS: %w", err)
	}

	strictCPF, err := strconv.ParseBool(getEnvOrDefault("STRICT_CPF_CHECK", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid STRICT_CPF_CHECK: %w", err)
	}

	tracingEnabled, err := strconv.ParseBool(getEnvOrDefault("TRACING_ENABLED", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid TRACING_ENABLED: %w", err)
	}

	tracingSampleRatio, err := strconv.ParseFloat(getEnvOrDefault("TRACING_SAMPLE_RATIO", "1"), 64)
	if err != nil || tracingSampleRatio < 0 || tracingSampleRatio > 1 {
		return nil, fmt.Errorf("invalid TRACING_SAMPLE_RATIO: must be between 0 and 1")
	}

	environment := getEnvOrDefault("ENVIRONMENT", "development")

	// The admin surface must never run unauthenticated outside development.
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" && environment == "production" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required in production")
	}

	timezone := getEnvOrDefault("TIMEZONE", "America/Bahia")
	location, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE: %w", err)
	}

	return &Config{
		// Server configuration
		Port:        port,
		Environment: environment,

		// MongoDB configuration
		MongoURI:              getEnvOrDefault("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase:         getEnvOrDefault("MONGODB_DATABASE", "aabb"),
		ApplicationCollection: getEnvOrDefault("MONGODB_APPLICATION_COLLECTION", "applications"),

		// Redis configuration
		RedisURI:      getEnvOrDefault("REDIS_URI", "localhost:6379"),
		RedisPassword: getEnvOrDefault("REDIS_PASSWORD", ""),
		RedisDB:       redisDB,

		ViaCEPBaseURL: strings.TrimRight(getEnvOrDefault("VIACEP_BASE_URL", "https://viacep.com.br/ws"), "/"),
		CEPCacheTTL:   cepCacheTTL,
		CEPTimeout:    cepTimeout,
		CEPRateLimit:  cepRateLimit,

		WizardSessionTTL:        wizardTTL,
		WizardIncludeDependents: includeDependents,

		ResendAPIKey:        os.Getenv("RESEND_API_KEY"),
		EmailFrom:           getEnvOrDefault("EMAIL_FROM", "AABB Jequié <inscricoes@aabbjequie.com.br>"),
		StaffEmails:         splitList(os.Getenv("STAFF_EMAILS")),
		NotificationTimeout: notificationTimeout,

		ClubName: getEnvOrDefault("CLUB_NAME", "AABB Jequié"),
		Timezone: timezone,
		Location: location,

		StrictCPFCheck: strictCPF,

		SubmissionRateLimit: submissionRateLimit,

		JWTSecret: jwtSecret,
		AdminRole: getEnvOrDefault("ADMIN_ROLE", "admin"),

		TracingEnabled:     tracingEnabled,
		TracingEndpoint:    getEnvOrDefault("TRACING_ENDPOINT", "localhost:4317"),
		TracingSampleRatio: tracingSampleRatio,
	}, nil
}

// getEnvOrDefault returns environment variable value or default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// splitList parses a comma separated list, dropping blanks.
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
