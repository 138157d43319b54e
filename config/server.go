package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"
)

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Host string `json:"host"`
	Port int    `json:"port"`
	// Debug enables debug logging, including prompts and model replies.
	Debug bool `json:"debug"`
	// AllowedOrigins is a comma-separated CORS allow-list.
	AllowedOrigins string `json:"allowed_origins"`
	// RateLimitRPS caps inbound plan requests per second. Zero disables it.
	RateLimitRPS   float64 `json:"rate_limit_rps"`
	RateLimitBurst int     `json:"rate_limit_burst"`
}

// SetDefaults applies sane defaults.
func (c *ServerConfig) SetDefaults() {
	if c.Host == "" {
		c.Host = "0.0.0.0"
	}
	if c.Port == 0 {
		c.Port = 8000
	}
	if c.AllowedOrigins == "" {
		c.AllowedOrigins = "http://localhost:5173"
	}
	if c.RateLimitBurst <= 0 {
		c.RateLimitBurst = 1
	}
}

// Validate checks mandatory fields.
func (c ServerConfig) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.RateLimitRPS < 0 {
		return fmt.Errorf("rate_limit_rps must not be negative")
	}
	return nil
}

// Addr returns the host:port listen address.
func (c ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Origins splits AllowedOrigins into its trimmed, non-empty entries.
func (c ServerConfig) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
