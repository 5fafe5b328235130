package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds the server settings. Every field has a default so the server
// starts with an empty environment.
type Config struct {
	Addr         string
	AllowOrigins []string
	ReadBuffer   int
	WriteBuffer  int
}

const (
	defaultAddr        = ":3000"
	defaultOrigin      = "http://localhost:5173"
	defaultBufferBytes = 1024
)

// Load reads CMV_ADDR, CMV_ALLOW_ORIGINS (comma separated), CMV_READ_BUFFER
// and CMV_WRITE_BUFFER.
func Load() (Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (Config, error) {
	cfg := Config{
		Addr:         defaultAddr,
		AllowOrigins: []string{defaultOrigin},
		ReadBuffer:   defaultBufferBytes,
		WriteBuffer:  defaultBufferBytes,
	}

	if addr := strings.TrimSpace(getenv("CMV_ADDR")); addr != "" {
		cfg.Addr = addr
	}
	if origins := getenv("CMV_ALLOW_ORIGINS"); origins != "" {
		cfg.AllowOrigins = nil
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowOrigins = append(cfg.AllowOrigins, o)
			}
		}
		if len(cfg.AllowOrigins) == 0 {
			return Config{}, fmt.Errorf("CMV_ALLOW_ORIGINS has no origins: %q", origins)
		}
	}

	var err error
	if cfg.ReadBuffer, err = bufferSize(getenv, "CMV_READ_BUFFER", cfg.ReadBuffer); err != nil {
		return Config{}, err
	}
	if cfg.WriteBuffer, err = bufferSize(getenv, "CMV_WRITE_BUFFER", cfg.WriteBuffer); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func bufferSize(getenv func(string) string, key string, def int) (int, error) {
	v := strings.TrimSpace(getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %d", key, n)
	}
	return n, nil
}

// CORSOrigins joins the origins the way cors.Config expects them.
func (c Config) CORSOrigins() string {
	return strings.Join(c.AllowOrigins, ", ")
}
