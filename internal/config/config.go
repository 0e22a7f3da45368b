package config

// Environment names recognized by the application. Anything other than
// production is treated as a development-like environment.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// devJWTSecret is the fixed signing secret used outside production, so a
// local checkout runs without any configuration. Production refuses to
// start without an explicit secret.
const devJWTSecret = "dev-secret-key"

// Config holds all application configuration, organized into logical
// groups.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	Env      string `mapstructure:"env"       validate:"required,oneof=development production"`

	// AllowedOrigins is the CORS allow-list. An empty list means no
	// cross-origin requests are accepted.
	AllowedOrigins []string `mapstructure:"allowed_origins"`

	// RateLimitRequests is the per-IP request ceiling within
	// RateLimitWindowMinutes.
	RateLimitRequests      int `mapstructure:"rate_limit_requests"       validate:"gt=0"`
	RateLimitWindowMinutes int `mapstructure:"rate_limit_window_minutes" validate:"gt=0"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// AuthConfig contains all authentication settings.
type AuthConfig struct {
	// JWTSecret signs session tokens. Required (min 32 chars) in
	// production; defaulted to the fixed dev secret everywhere else.
	JWTSecret string `mapstructure:"jwt_secret"`

	// TokenLifetimeHours is the validity window of issued tokens.
	TokenLifetimeHours int `mapstructure:"token_lifetime_hours" validate:"gt=0"`
}

// IsProduction reports whether the server runs in production mode.
func (c ServerConfig) IsProduction() bool {
	return c.Env == EnvProduction
}
