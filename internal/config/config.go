// Package config resolves folio settings from defaults, an optional YAML
// file, a .env file and the environment, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin123"
)

type Config struct {
	Port       string `mapstructure:"port"`
	ContentDir string `mapstructure:"content_dir"`
	DBPath     string `mapstructure:"db_path"`
	Watch      bool   `mapstructure:"watch"`
	GitHub     GitHub `mapstructure:"github"`
	Admin      Admin  `mapstructure:"admin"`
	SMTP       SMTP   `mapstructure:"smtp"`
}

type GitHub struct {
	Username string        `mapstructure:"username"`
	APIURL   string        `mapstructure:"api_url"`
	PerPage  int           `mapstructure:"per_page"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

type Admin struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

// UsingDefaults reports whether either credential is still the development default.
func (a Admin) UsingDefaults() bool {
	return a.Username == DefaultAdminUsername || a.Password == DefaultAdminPassword
}

type SMTP struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
	User string `mapstructure:"user"`
	Pass string `mapstructure:"pass"`
	To   string `mapstructure:"to"`
}

// Configured reports whether credentials are present.
func (s SMTP) Configured() bool {
	return s.User != "" && s.Pass != ""
}

// Recipient is To, falling back to the sending account.
func (s SMTP) Recipient() string {
	if s.To != "" {
		return s.To
	}
	return s.User
}

// legacyEnv maps keys to the bare variable names the site has always read.
var legacyEnv = map[string]string{
	"port":           "PORT",
	"smtp.host":      "SMTP_HOST",
	"smtp.port":      "SMTP_PORT",
	"smtp.user":      "SMTP_USER",
	"smtp.pass":      "SMTP_PASS",
	"smtp.to":        "TO_EMAIL",
	"admin.username": "ADMIN_USERNAME",
	"admin.password": "ADMIN_PASSWORD",
}

// Load reads configuration. cfgFile may be empty, in which case folio.yaml is
// looked up in the working directory and silently skipped when absent.
func Load(cfgFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	v := viper.New()

	v.SetDefault("port", "8080")
	v.SetDefault("content_dir", "")
	v.SetDefault("db_path", "")
	v.SetDefault("watch", false)
	v.SetDefault("github.username", "Zachkp")
	v.SetDefault("github.api_url", "https://api.github.com")
	v.SetDefault("github.per_page", 100)
	v.SetDefault("github.timeout", 30*time.Second)
	v.SetDefault("admin.username", DefaultAdminUsername)
	v.SetDefault("admin.password", DefaultAdminPassword)
	v.SetDefault("smtp.host", "smtp.gmail.com")
	v.SetDefault("smtp.port", "587")
	v.SetDefault("smtp.user", "")
	v.SetDefault("smtp.pass", "")
	v.SetDefault("smtp.to", "")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("folio")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("FOLIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, name := range legacyEnv {
		prefixed := "FOLIO_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, prefixed, name); err != nil {
			return nil, fmt.Errorf("binding %s: %w", name, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || cfgFile != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		log.Println("Using config file:", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Port == "" {
		return fmt.Errorf("port is required")
	}
	if c.GitHub.Username == "" {
		return fmt.Errorf("github.username is required")
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}
