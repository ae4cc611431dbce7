package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults applied when the corresponding key is absent.
const (
	DefaultPort         = 587
	DefaultMaxRetries   = 3
	DefaultDelaySeconds = 3
	DefaultReportDir    = "logs"
)

// Config is the complete run configuration. It is loaded once before the
// run and never mutated afterwards.
type Config struct {
	SMTP     SMTP     `yaml:"smtp"`
	Email    Email    `yaml:"email"`
	Files    Files    `yaml:"files"`
	Settings Settings `yaml:"settings"`
}

// SMTP describes the one submission endpoint.
type SMTP struct {
	Server string `yaml:"server"`
	Port   int    `yaml:"port"`
	UseTLS *bool  `yaml:"use_tls"` // pointer so an absent key defaults to true
}

// Email holds the message-level options.
type Email struct {
	FromName string `yaml:"from_name"`
	Subject  string `yaml:"subject"`
}

// Files holds the input/output paths.
type Files struct {
	Recipients string `yaml:"recipients"`
	Template   string `yaml:"template"`
	Logo       string `yaml:"logo"`
	ReportDir  string `yaml:"report_dir"`
}

// Settings holds the delivery policy knobs.
type Settings struct {
	DelayBetweenSends float64 `yaml:"delay_between_sends_seconds"`
	MaxRetries        int     `yaml:"max_retries"`
	PreviewMode       bool    `yaml:"preview_mode"`
}

// Load reads, defaults, and validates the configuration file.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNotFound, path, err)
	}
	cfg := defaults()
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		SMTP: SMTP{Port: DefaultPort},
		Files: Files{
			ReportDir: DefaultReportDir,
		},
		Settings: Settings{
			DelayBetweenSends: DefaultDelaySeconds,
			MaxRetries:        DefaultMaxRetries,
		},
	}
}

func (c *Config) validate() error {
	if c.SMTP.Server == "" {
		return ErrMissingSMTPServer
	}
	if c.SMTP.Port < 1 || c.SMTP.Port > 65535 {
		return ErrInvalidPort
	}
	if c.Email.FromName == "" {
		return ErrMissingFromName
	}
	if c.Email.Subject == "" {
		return ErrMissingSubject
	}
	if c.Files.Recipients == "" {
		return ErrMissingRecipients
	}
	if c.Settings.DelayBetweenSends < 0 {
		return ErrNegativeDelay
	}
	if c.Settings.MaxRetries < 0 {
		return ErrNegativeRetries
	}
	return nil
}

// TLS reports whether STARTTLS is enabled; an absent use_tls key means true.
func (c *Config) TLS() bool {
	if c.SMTP.UseTLS == nil {
		return true
	}
	return *c.SMTP.UseTLS
}

// Delay returns the configured inter-send pause as a duration.
func (c *Config) Delay() time.Duration {
	return time.Duration(c.Settings.DelayBetweenSends * float64(time.Second))
}

// Credentials holds the SMTP account identity, sourced from the
// environment rather than the configuration file.
type Credentials struct {
	Email    string
	Password string
}

// CredentialsFromEnv reads the account credentials from the environment.
func CredentialsFromEnv() (Credentials, error) {
	creds := Credentials{
		Email:    os.Getenv("OUTLOOK_EMAIL"),
		Password: os.Getenv("OUTLOOK_PASSWORD"),
	}
	if creds.Email == "" || creds.Password == "" {
		return Credentials{}, ErrMissingCredentials
	}
	return creds, nil
}
