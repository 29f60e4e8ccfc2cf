package config

import "github.com/kelseyhightower/envconfig"

// Config holds application configuration loaded from environment variables.
type Config struct {
	Port     int    `envconfig:"PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	Version  string `envconfig:"VERSION" default:"dev"`

	// Supabase: Postgres via the pooled connection string, Storage via the
	// REST endpoint derived from the project URL.
	DatabaseURL        string `envconfig:"DATABASE_URL" required:"true"`
	SupabaseURL        string `envconfig:"SUPABASE_URL" default:""`
	SupabaseServiceKey string `envconfig:"SUPABASE_SERVICE_KEY" default:""`

	AdminUsername string `envconfig:"ADMIN_USERNAME" default:"admin"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD" default:"admin"`

	SMTPHost          string `envconfig:"SMTP_HOST" default:"smtp.gmail.com"`
	SMTPPort          int    `envconfig:"SMTP_PORT" default:"587"`
	SMTPEmail         string `envconfig:"SMTP_EMAIL" default:""`
	SMTPPassword      string `envconfig:"SMTP_PASSWORD" default:""`
	NotificationEmail string `envconfig:"NOTIFICATION_EMAIL" default:""`

	CORSOrigins []string `envconfig:"CORS_ORIGINS" default:"http://localhost:5173"`
}

// Load reads configuration from environment variables into a Config struct.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
