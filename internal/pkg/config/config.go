package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timeouts, currency, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	App     AppConfig
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	Mail    MailConfig
	Payment PaymentConfig
	Admin   AdminConfig
}

type AppConfig struct {
	Env string `envconfig:"APP_ENV" default:"production"`
}

func (a AppConfig) IsDevelopment() bool {
	return a.Env == "development"
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:8081"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/London"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// MailConfig drives the relay and the enquiry notification copy.
// VenueName/VenuePhone appear in customer-facing email bodies.
type MailConfig struct {
	SendGridAPIKey string `envconfig:"SENDGRID_API_KEY" required:"true"`
	FromEmail      string `envconfig:"FROM_EMAIL" required:"true"`
	FromName       string `envconfig:"FROM_NAME" required:"true"`
	ReplyToEmail   string `envconfig:"REPLY_TO_EMAIL" required:"true"`
	AdminEmail     string `envconfig:"ADMIN_EMAIL" required:"true"`
	VenueName      string `envconfig:"VENUE_NAME" default:"The Backroom Leeds"`
	VenuePhone     string `envconfig:"VENUE_PHONE" default:"0113 2438666"`
	// MockDelay emulates real provider latency when a send falls back to
	// mock mode.
	MockDelay time.Duration `envconfig:"MAIL_MOCK_DELAY" default:"500ms"`
}

// DepositAmount is flat per booking regardless of package tier, in minor
// currency units (pence).
type PaymentConfig struct {
	StripeSecretKey string `envconfig:"STRIPE_SECRET_KEY" required:"true"`
	DepositAmount   int64  `envconfig:"DEPOSIT_AMOUNT" default:"5000"`
	Currency        string `envconfig:"CURRENCY" default:"gbp"`
}

type AdminConfig struct {
	JWTSecret   string `envconfig:"ADMIN_JWT_SECRET" required:"true"`
	JWTDuration string `envconfig:"ADMIN_JWT_DURATION" default:"24h"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		App: AppConfig{
			Env: "development",
		},
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		CORS: CORSConfig{
			AllowOrigins:     []string{"http://localhost:8081"},
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Europe/London",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		Mail: MailConfig{
			SendGridAPIKey: "SG.test",
			FromEmail:      "info@backroomleeds.co.uk",
			FromName:       "The Backroom Leeds",
			ReplyToEmail:   "info@backroomleeds.co.uk",
			AdminEmail:     "info@backroomleeds.co.uk",
			VenueName:      "The Backroom Leeds",
			VenuePhone:     "0113 2438666",
			MockDelay:      0,
		},
		Payment: PaymentConfig{
			StripeSecretKey: "sk_test_dummy",
			DepositAmount:   5000,
			Currency:        "gbp",
		},
		Admin: AdminConfig{
			JWTSecret:   "test-secret",
			JWTDuration: "24h",
		},
	}
}
