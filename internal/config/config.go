package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
	Twilio   TwilioConfig   `mapstructure:"twilio"   validate:"required"`
	Jobs     JobsConfig     `mapstructure:"jobs"     validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret" validate:"required,min=32"`

	// TokenLifetimeMinutes is the access token lifetime.
	TokenLifetimeMinutes int `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`

	// RefreshTokenLifetimeMinutes is the refresh token lifetime.
	RefreshTokenLifetimeMinutes int `mapstructure:"refresh_token_lifetime_minutes" validate:"required,gt=0"`

	// OTPExpiryMinutes is how long a one-time login code stays valid.
	OTPExpiryMinutes int `mapstructure:"otp_expiry_minutes" validate:"required,gt=0"`
}

// TwilioConfig contains the SMS transport credentials.
type TwilioConfig struct {
	AccountSID  string `mapstructure:"account_sid"  validate:"required"`
	AuthToken   string `mapstructure:"auth_token"   validate:"required"`
	PhoneNumber string `mapstructure:"phone_number" validate:"required"`
}

// JobsConfig contains settings for background jobs.
type JobsConfig struct {
	// DailySendHourUTC is the UTC hour (0-23) at which the daily verse
	// prompts go out.
	DailySendHourUTC int `mapstructure:"daily_send_hour_utc" validate:"gte=0,lt=24"`
}
