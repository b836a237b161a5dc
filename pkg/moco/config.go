package moco

import (
	"crypto/tls"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Config contains the settings of a Client.
//
// Either Domain (the account subdomain, "example" for
// https://example.mocoapp.com) or BaseURL must be set. Authentication uses
// APIKey, or Email and Password, in which case the client obtains a key
// from the session endpoint on first use.
type Config struct {
	// Domain is the Moco account subdomain.
	Domain string `json:"domain,omitempty"`

	// BaseURL overrides the URL derived from Domain.
	// Example: "https://example.mocoapp.com/api/v1"
	BaseURL string `json:"base_url,omitempty"`

	// APIKey is the personal api key of the acting user.
	APIKey string `json:"-"`

	// Email and Password log in through the session endpoint when no
	// APIKey is configured.
	Email    string `json:"email,omitempty"`
	Password string `json:"-"`

	// ImpersonateUserID sends every request on behalf of another user.
	// Requires an api key with impersonation rights.
	ImpersonateUserID int `json:"impersonate_user_id,omitempty"`

	// TLSVerify controls TLS certificate verification.
	TLSVerify *bool `json:"tls_verify,omitempty"`

	// Timeout for a single HTTP request.
	// Default: 30 seconds
	Timeout time.Duration `json:"timeout,omitempty"`

	// RequestDelay is the fixed pause before every request.
	// Default: 1 second. A negative value disables the pause.
	RequestDelay time.Duration `json:"request_delay,omitempty"`

	// RateLimitRetries is how often a 429 response is retried.
	// Default: 0, a rate limited call fails with ErrRateLimited.
	RateLimitRetries int `json:"rate_limit_retries,omitempty"`

	// RetryDelay between rate limit retries.
	// Default: 1 second
	RetryDelay time.Duration `json:"retry_delay,omitempty"`
}

var domainPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// DefaultConfig returns a Config with defaults applied.
func DefaultConfig() *Config {
	tlsVerify := true
	return &Config{
		TLSVerify:    &tlsVerify,
		Timeout:      30 * time.Second,
		RequestDelay: DefaultRequestDelay,
		RetryDelay:   1 * time.Second,
	}
}

// applyDefaults fills every unset field from DefaultConfig.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.TLSVerify == nil {
		c.TLSVerify = defaults.TLSVerify
	}
	if c.Timeout == 0 {
		c.Timeout = defaults.Timeout
	}
	if c.RequestDelay == 0 {
		c.RequestDelay = defaults.RequestDelay
	}
	if c.RetryDelay == 0 {
		c.RetryDelay = defaults.RetryDelay
	}
}

// Validate checks if the configuration is usable.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Domain,
			validation.Required.When(c.BaseURL == "").Error("domain or base_url is required"),
			validation.Match(domainPattern).Error("must be the account subdomain, e.g. \"example\""),
		),
		validation.Field(&c.BaseURL, validation.By(validateBaseURL)),
		validation.Field(&c.APIKey,
			validation.Required.When(c.Email == "" && c.Password == "").Error("api_key or email and password are required"),
		),
		validation.Field(&c.Email, validation.Required.When(c.APIKey == "" && c.Password != "")),
		validation.Field(&c.Password, validation.Required.When(c.APIKey == "" && c.Email != "")),
		validation.Field(&c.ImpersonateUserID, validation.Min(0)),
		validation.Field(&c.Timeout, validation.Min(time.Duration(0))),
		validation.Field(&c.RateLimitRetries, validation.Min(0)),
		validation.Field(&c.RetryDelay, validation.Min(time.Duration(0))),
	)
}

func validateBaseURL(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	parsed, err := url.Parse(s)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("must use http or https scheme, got: %s", parsed.Scheme)
	}
	if parsed.Host == "" {
		return errors.New("must include a host")
	}
	return nil
}

// APIBaseURL returns the URL every endpoint path is appended to.
func (c *Config) APIBaseURL() string {
	if c.BaseURL != "" {
		return strings.TrimRight(c.BaseURL, "/")
	}
	return fmt.Sprintf("https://%s.mocoapp.com/api/v1", c.Domain)
}

// NewHTTPClient creates the pooled HTTP client shared by all calls.
func (c *Config) NewHTTPClient() *http.Client {
	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}

	if c.TLSVerify != nil && !*c.TLSVerify {
		transport.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true,
		}
	}

	return &http.Client{
		Timeout:   c.Timeout,
		Transport: transport,
	}
}
