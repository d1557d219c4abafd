package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"rolsa/internal/calculator"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environments recognised by Validate.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Mail drivers.
const (
	MailDriverSMTP    = "smtp"
	MailDriverMailgun = "mailgun"
)

const envPrefix = "ROLSA"

// Config is built once at start-up and handed to the components that need it.
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	HTTP    HTTPConfig    `mapstructure:"http"`
	DB      DBConfig      `mapstructure:"db"`
	Log     LogConfig     `mapstructure:"log"`
	Session SessionConfig `mapstructure:"session"`
	Mail    MailConfig    `mapstructure:"mail"`
	Carbon  CarbonConfig  `mapstructure:"carbon"`
	Limits  LimitsConfig  `mapstructure:"limits"`
}

type AppConfig struct {
	Name string `mapstructure:"name"`
	Env  string `mapstructure:"env"`
}

type HTTPConfig struct {
	Port              string        `mapstructure:"port"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
	WriteTimeout      time.Duration `mapstructure:"write_timeout"`
	IdleTimeout       time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout"`
}

type DBConfig struct {
	Path string `mapstructure:"path"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type SessionConfig struct {
	Secret     string        `mapstructure:"secret"`
	TTL        time.Duration `mapstructure:"ttl"`
	CookieName string        `mapstructure:"cookie_name"`
	Secure     bool          `mapstructure:"secure"`
}

type MailConfig struct {
	Driver           string        `mapstructure:"driver"`
	From             string        `mapstructure:"from"`
	Timeout          time.Duration `mapstructure:"timeout"`
	SummaryRecipient string        `mapstructure:"summary_recipient"`
	SMTP             SMTPConfig    `mapstructure:"smtp"`
	Mailgun          MailgunConfig `mapstructure:"mailgun"`
}

type SMTPConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	// TLS is one of "mandatory", "opportunistic" or "none".
	TLS string `mapstructure:"tls"`
}

type MailgunConfig struct {
	Domain string `mapstructure:"domain"`
	APIKey string `mapstructure:"api_key"`
}

type CarbonConfig struct {
	Factors map[string]float64 `mapstructure:"factors"`
}

type LimitsConfig struct {
	EmailPerMinute int `mapstructure:"email_per_minute"`
	EmailBurst     int `mapstructure:"email_burst"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "rolsa")
	v.SetDefault("app.env", EnvDevelopment)

	v.SetDefault("http.port", "8080")
	v.SetDefault("http.read_header_timeout", 10*time.Second)
	v.SetDefault("http.write_timeout", 15*time.Second)
	v.SetDefault("http.idle_timeout", 60*time.Second)
	v.SetDefault("http.shutdown_timeout", 10*time.Second)

	v.SetDefault("db.path", "rolsa.db")
	v.SetDefault("log.level", "info")

	v.SetDefault("session.secret", "")
	v.SetDefault("session.ttl", 24*time.Hour)
	v.SetDefault("session.cookie_name", "rolsa_session")
	v.SetDefault("session.secure", false)

	v.SetDefault("mail.driver", MailDriverSMTP)
	v.SetDefault("mail.from", "Rolsa <no-reply@rolsa.local>")
	v.SetDefault("mail.timeout", 10*time.Second)
	v.SetDefault("mail.summary_recipient", "")
	v.SetDefault("mail.smtp.host", "localhost")
	v.SetDefault("mail.smtp.port", 587)
	v.SetDefault("mail.smtp.username", "")
	v.SetDefault("mail.smtp.password", "")
	v.SetDefault("mail.smtp.tls", "opportunistic")
	v.SetDefault("mail.mailgun.domain", "")
	v.SetDefault("mail.mailgun.api_key", "")

	for activity, factor := range calculator.DefaultEmissionFactors() {
		v.SetDefault("carbon.factors."+activity, factor)
	}

	v.SetDefault("limits.email_per_minute", 6)
	v.SetDefault("limits.email_burst", 3)
}

// Load reads defaults, then the YAML file at path (or configs/config.yml when path is empty),
// then a local .env file, then ROLSA_* environment variables.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("load .env: %w", err)
		}
	}

	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath("configs") // configs/config.yml
		v.SetConfigName("config")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects configurations the server cannot run safely with.
func (c *Config) Validate() error {
	if c.App.Env != EnvDevelopment && c.Session.Secret == "" {
		return errors.New("session.secret must be set outside development")
	}
	if c.Session.TTL <= 0 {
		return errors.New("session.ttl must be positive")
	}
	switch c.Mail.Driver {
	case MailDriverSMTP:
		if c.Mail.SMTP.Host == "" || c.Mail.SMTP.Port <= 0 {
			return errors.New("mail.smtp.host and mail.smtp.port are required for the smtp driver")
		}
	case MailDriverMailgun:
		if c.Mail.Mailgun.Domain == "" || c.Mail.Mailgun.APIKey == "" {
			return errors.New("mail.mailgun.domain and mail.mailgun.api_key are required for the mailgun driver")
		}
	default:
		return fmt.Errorf("unknown mail.driver %q", c.Mail.Driver)
	}
	if c.Mail.Timeout <= 0 {
		return errors.New("mail.timeout must be positive")
	}
	return nil
}

// EmissionFactors returns the configured factor table.
func (c *Config) EmissionFactors() calculator.EmissionFactors {
	out := calculator.EmissionFactors{}
	for activity, factor := range c.Carbon.Factors {
		out[strings.ToLower(activity)] = factor
	}
	return out
}

// IsDevelopment reports whether the app runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == EnvDevelopment
}
