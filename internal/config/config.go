// Package config loads the console configuration from an HCL file.
//
//	domain              = "example"
//	api_key             = env("MOCO_API_KEY")
//	impersonate_user_id = 42
//	request_delay       = "1s"
//	rate_limit_retries  = 3
//	log_level           = "debug"
//	output              = "yaml"
//
// Every attribute is optional. MOCO_DOMAIN, MOCO_BASE_URL and MOCO_API_KEY
// fill domain, base_url and api_key when the file leaves them empty.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"

	"github.com/sommalia/moco-wrapper-sub001/pkg/moco"
)

// Environment variables read as fallbacks.
const (
	EnvDomain  = "MOCO_DOMAIN"
	EnvBaseURL = "MOCO_BASE_URL"
	EnvAPIKey  = "MOCO_API_KEY"
)

// Config is the decoded configuration file.
type Config struct {
	Domain            string `hcl:"domain,optional"`
	BaseURL           string `hcl:"base_url,optional"`
	APIKey            string `hcl:"api_key,optional"`
	Email             string `hcl:"email,optional"`
	Password          string `hcl:"password,optional"`
	ImpersonateUserID int    `hcl:"impersonate_user_id,optional"`
	TLSVerify         *bool  `hcl:"tls_verify,optional"`

	// Durations use time.ParseDuration syntax, e.g. "30s".
	Timeout      string `hcl:"timeout,optional"`
	RequestDelay string `hcl:"request_delay,optional"`
	RetryDelay   string `hcl:"retry_delay,optional"`

	RateLimitRetries int `hcl:"rate_limit_retries,optional"`

	// LogLevel is one of trace, debug, info, warn, error.
	LogLevel string `hcl:"log_level,optional"`

	// Output is the console output format, json or yaml.
	Output string `hcl:"output,optional"`
}

// Load reads filename and applies the environment fallbacks. An empty
// filename yields a configuration built from the environment alone.
func Load(filename string) (*Config, error) {
	cfg := &Config{}

	if filename != "" {
		if _, err := os.Stat(filename); os.IsNotExist(err) {
			return nil, fmt.Errorf("configuration file not found: %s", filename)
		}
		if err := hclsimple.DecodeFile(filename, evalContext(), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse configuration file: %w", err)
		}
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Parse decodes configuration source held in memory. filename only names
// the source in diagnostics and selects the syntax by its extension.
func Parse(filename string, src []byte) (*Config, error) {
	cfg := &Config{}
	if err := hclsimple.Decode(filename, src, evalContext(), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if c.Domain == "" {
		c.Domain = os.Getenv(EnvDomain)
	}
	if c.BaseURL == "" {
		c.BaseURL = os.Getenv(EnvBaseURL)
	}
	if c.APIKey == "" {
		c.APIKey = os.Getenv(EnvAPIKey)
	}
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Output == "" {
		c.Output = "json"
	}
}

// Validate checks the console specific settings. The client settings are
// checked again by moco.Config.Validate.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Timeout, validation.By(validDuration)),
		validation.Field(&c.RequestDelay, validation.By(validDuration)),
		validation.Field(&c.RetryDelay, validation.By(validDuration)),
		validation.Field(&c.RateLimitRetries, validation.Min(0)),
		validation.Field(&c.LogLevel, validation.In("trace", "debug", "info", "warn", "error")),
		validation.Field(&c.Output, validation.In("json", "yaml")),
	)
}

// MocoConfig converts the file settings into a client configuration.
func (c *Config) MocoConfig() (*moco.Config, error) {
	timeout, err := parseDuration(c.Timeout)
	if err != nil {
		return nil, fmt.Errorf("timeout: %w", err)
	}
	delay, err := parseDuration(c.RequestDelay)
	if err != nil {
		return nil, fmt.Errorf("request_delay: %w", err)
	}
	retryDelay, err := parseDuration(c.RetryDelay)
	if err != nil {
		return nil, fmt.Errorf("retry_delay: %w", err)
	}

	cfg := &moco.Config{
		Domain:            c.Domain,
		BaseURL:           c.BaseURL,
		APIKey:            c.APIKey,
		Email:             c.Email,
		Password:          c.Password,
		ImpersonateUserID: c.ImpersonateUserID,
		TLSVerify:         c.TLSVerify,
		Timeout:           timeout,
		RequestDelay:      delay,
		RateLimitRetries:  c.RateLimitRetries,
		RetryDelay:        retryDelay,
	}
	// "0s" in the file switches the pause off.
	if c.RequestDelay != "" && delay == 0 {
		cfg.RequestDelay = -1
	}
	return cfg, nil
}

func validDuration(value any) error {
	s, _ := value.(string)
	_, err := parseDuration(s)
	return err
}

func parseDuration(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, errors.New("must not be negative")
	}
	return d, nil
}

// evalContext exposes env("NAME") to configuration files.
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Functions: map[string]function.Function{
			"env": function.New(&function.Spec{
				Params: []function.Parameter{
					{Name: "name", Type: cty.String},
				},
				Type: function.StaticReturnType(cty.String),
				Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
					return cty.StringVal(os.Getenv(args[0].AsString())), nil
				},
			}),
		},
	}
}
