package ratelimit

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Rule is the rate limit for one endpoint pattern. Path matches by
// prefix; an empty method matches every method.
type Rule struct {
	Path   string
	Method string
	Limit  int
	Window time.Duration
	Burst  int
}

func (r Rule) key() string {
	return fmt.Sprintf("%s %s", r.Method, r.Path)
}

func (r Rule) burst() int {
	if r.Burst > 0 {
		return r.Burst
	}
	return r.Limit
}

func (r Rule) refillRate() float64 {
	if r.Window <= 0 {
		return float64(r.Limit)
	}
	return float64(r.Limit) / r.Window.Seconds()
}

// Config holds the limiter configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Rules           []Rule
}

// match returns the first endpoint rule matching the request, or the
// default rule.
func (c *Config) match(path, method string) Rule {
	for _, rule := range c.Rules {
		if rule.Method != "" && rule.Method != method {
			continue
		}
		if strings.HasPrefix(path, rule.Path) {
			return rule
		}
	}
	return Rule{Path: "", Method: "", Limit: c.DefaultLimit, Window: c.DefaultWindow}
}

// LoadConfig reads limiter settings from environment variables and
// applies the endpoint tiers.
func LoadConfig() *Config {
	if !getEnvBool("RATE_LIMIT_ENABLED", true) {
		return &Config{Enabled: false}
	}
	return &Config{
		Enabled:         true,
		DefaultLimit:    getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", 1000),
		DefaultWindow:   getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		Rules:           DefaultRules(),
	}
}

// DefaultRules returns the endpoint tiers. Auth endpoints are strict to
// slow down credential stuffing.
func DefaultRules() []Rule {
	return []Rule{
		{Path: "/auth/", Method: "POST", Limit: 20, Window: time.Minute, Burst: 5},
		{Path: "/resumes/", Method: "GET", Limit: 600, Window: time.Minute},
		{Path: "/resumes", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},
		{Path: "/resumes/", Method: "PUT", Limit: 300, Window: time.Minute, Burst: 30},
		{Path: "/resumes/", Method: "DELETE", Limit: 60, Window: time.Minute, Burst: 10},
	}
}

func getEnvBool(name string, fallback bool) bool {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(name string, fallback int) int {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(name string, fallback time.Duration) time.Duration {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}
