// Package config resolves server settings from defaults, an optional TOML
// file, PORTFOLIO_* environment variables and command line flags.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
)

const (
	EnvPrefix = "PORTFOLIO"

	TransportMock = "mock"
	TransportSMTP = "smtp"
)

// Config is the resolved server configuration.
type Config struct {
	Port            int           `mapstructure:"port" json:"port"`
	Mode            string        `mapstructure:"mode" json:"mode"`
	DBPath          string        `mapstructure:"db_path" json:"db_path"`
	TemplatesDir    string        `mapstructure:"templates_dir" json:"templates_dir"`
	StaticDir       string        `mapstructure:"static_dir" json:"static_dir"`
	ImagesDir       string        `mapstructure:"images_dir" json:"images_dir"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" json:"shutdown_timeout"`

	Contact Contact `mapstructure:"contact" json:"contact"`
	Admin   Admin   `mapstructure:"admin" json:"admin"`
	Log     Log     `mapstructure:"log" json:"log"`
	Privacy Privacy `mapstructure:"privacy" json:"privacy"`
}

type Contact struct {
	Transport  string        `mapstructure:"transport" json:"transport"`
	MockDelay  time.Duration `mapstructure:"mock_delay" json:"mock_delay"`
	MockJitter time.Duration `mapstructure:"mock_jitter" json:"mock_jitter"`
}

type Admin struct {
	Username string `mapstructure:"username" json:"username"`
	Password string `mapstructure:"password" json:"-"`
}

type Log struct {
	Level string `mapstructure:"level" json:"level"`
	File  string `mapstructure:"file" json:"file"`
}

type Privacy struct {
	Retention time.Duration `mapstructure:"retention" json:"retention"`
}

// DefaultAdmin credentials are only meant for local development.
const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin123"
)

// New returns a viper instance with defaults and environment lookup set up.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// the site has always honored a bare PORT
	_ = v.BindEnv("port", EnvPrefix+"_PORT", "PORT")
	_ = v.BindEnv("admin.username", EnvPrefix+"_ADMIN_USERNAME", "ADMIN_USERNAME")
	_ = v.BindEnv("admin.password", EnvPrefix+"_ADMIN_PASSWORD", "ADMIN_PASSWORD")
	return v
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("port", 8080)
	v.SetDefault("mode", "release")
	v.SetDefault("db_path", "portfolio.db")
	v.SetDefault("templates_dir", "templates")
	v.SetDefault("static_dir", "static")
	v.SetDefault("images_dir", "images")
	v.SetDefault("shutdown_timeout", "10s")

	v.SetDefault("contact.transport", TransportMock)
	v.SetDefault("contact.mock_delay", "1s")
	v.SetDefault("contact.mock_jitter", "0s")

	v.SetDefault("admin.username", DefaultAdminUsername)
	v.SetDefault("admin.password", DefaultAdminPassword)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")

	v.SetDefault("privacy.retention", "8760h")
}

// ReadFile merges a TOML config file into v. An empty path is a no-op.
func ReadFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return nil
}

// Load decodes v into a Config and validates it.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.Contact.Transport = strings.ToLower(strings.TrimSpace(cfg.Contact.Transport))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error
	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("port %d out of range", c.Port))
	}
	switch c.Mode {
	case "debug", "release", "test":
	default:
		errs = append(errs, fmt.Errorf("unknown mode %q", c.Mode))
	}
	if strings.TrimSpace(c.DBPath) == "" {
		errs = append(errs, errors.New("db_path is required"))
	}
	switch c.Contact.Transport {
	case TransportMock, TransportSMTP:
	default:
		errs = append(errs, fmt.Errorf("unknown contact transport %q", c.Contact.Transport))
	}
	if c.Contact.MockDelay < 0 || c.Contact.MockJitter < 0 {
		errs = append(errs, errors.New("contact delays must not be negative"))
	}
	if c.Admin.Username == "" || c.Admin.Password == "" {
		errs = append(errs, errors.New("admin credentials are required"))
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log level: %w", err))
	}
	if c.Privacy.Retention <= 0 {
		errs = append(errs, errors.New("privacy.retention must be positive"))
	}
	return errors.Join(errs...)
}

// Addr is the listen address for Port.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// UsesDefaultAdmin reports whether the development credentials are active.
func (c Config) UsesDefaultAdmin() bool {
	return c.Admin.Username == DefaultAdminUsername && c.Admin.Password == DefaultAdminPassword
}
