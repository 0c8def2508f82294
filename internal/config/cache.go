package config

import (
	"strings"
	"time"
)

// CacheConfig defines settings for the response cache middleware used on
// read-only catalog routes. When Enabled is false or no Redis client is
// configured, caching is skipped. KeyStrategy decides which parts of the
// request contribute to the cache key.
type CacheConfig struct {
	Enabled      bool          `env:"CACHE_ENABLED" env-default:"true"`
	Methods      []string      `env:"CACHE_METHODS" env-separator:"," env-default:"GET"`
	TTL          time.Duration `env:"CACHE_TTL" env-default:"30s"`
	KeyStrategy  string        `env:"CACHE_KEY_STRATEGY" env-default:"route_query"`
	Prefix       string        `env:"CACHE_PREFIX" env-default:"cache"`
	MaxBodyBytes int           `env:"CACHE_MAX_BODY_BYTES" env-default:"1048576"`
}

func (c *CacheConfig) normalize() {
	methods := make([]string, 0, len(c.Methods))
	for _, m := range c.Methods {
		if m = strings.ToUpper(strings.TrimSpace(m)); m != "" {
			methods = append(methods, m)
		}
	}
	c.Methods = methods
	if c.TTL <= 0 {
		c.TTL = 30 * time.Second
	}
}

// MethodSet returns the cacheable methods as a lookup set.
func (c CacheConfig) MethodSet() map[string]bool {
	set := make(map[string]bool, len(c.Methods))
	for _, m := range c.Methods {
		set[strings.ToUpper(m)] = true
	}
	return set
}
