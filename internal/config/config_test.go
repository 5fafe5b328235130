package config

import (
	"strings"
	"testing"
)

func env(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(env(nil))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":3000" || cfg.ReadBuffer != 1024 || cfg.WriteBuffer != 1024 {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.CORSOrigins() != "http://localhost:5173" {
		t.Fatalf("unexpected origins %q", cfg.CORSOrigins())
	}
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := load(env(map[string]string{
		"CMV_ADDR":          "127.0.0.1:8080",
		"CMV_ALLOW_ORIGINS": "https://a.example, https://b.example,",
		"CMV_READ_BUFFER":   "4096",
		"CMV_WRITE_BUFFER":  " 2048 ",
	}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != "127.0.0.1:8080" {
		t.Fatalf("unexpected addr %q", cfg.Addr)
	}
	if got := cfg.CORSOrigins(); got != "https://a.example, https://b.example" {
		t.Fatalf("unexpected origins %q", got)
	}
	if cfg.ReadBuffer != 4096 || cfg.WriteBuffer != 2048 {
		t.Fatalf("unexpected buffers %d %d", cfg.ReadBuffer, cfg.WriteBuffer)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		values map[string]string
		want   string
	}{
		{"non-numeric buffer", map[string]string{"CMV_READ_BUFFER": "big"}, "CMV_READ_BUFFER"},
		{"zero buffer", map[string]string{"CMV_WRITE_BUFFER": "0"}, "CMV_WRITE_BUFFER"},
		{"empty origin list", map[string]string{"CMV_ALLOW_ORIGINS": " , "}, "CMV_ALLOW_ORIGINS"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := load(env(c.values))
			if err == nil || !strings.Contains(err.Error(), c.want) {
				t.Fatalf("expected error mentioning %s, got %v", c.want, err)
			}
		})
	}
}
