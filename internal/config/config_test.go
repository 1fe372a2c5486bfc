package config_test

import (
	"testing"
	"time"

	"github.com/saulo-duarte/quizmaster-lambda/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("STORE_DRIVER", "")
	t.Setenv("GEMINI_MODEL", "")
	t.Setenv("GENERATE_TIMEOUT", "")
	t.Setenv("PORT", "")

	s := config.Load()

	if s.StoreDriver != config.StoreSQLite {
		t.Errorf("StoreDriver = %q, want %q", s.StoreDriver, config.StoreSQLite)
	}
	if s.GeminiModel != "gemini-2.0-flash" {
		t.Errorf("GeminiModel = %q", s.GeminiModel)
	}
	if s.GenerateTimeout != 60*time.Second {
		t.Errorf("GenerateTimeout = %s", s.GenerateTimeout)
	}
	if s.Port != "8080" {
		t.Errorf("Port = %q", s.Port)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", " Redis ")
	t.Setenv("GENERATE_TIMEOUT", "5s")
	t.Setenv("REDIS_URL", "redis://cache:6379/2")

	s := config.Load()

	if s.StoreDriver != config.StoreRedis {
		t.Errorf("StoreDriver = %q, want %q", s.StoreDriver, config.StoreRedis)
	}
	if s.GenerateTimeout != 5*time.Second {
		t.Errorf("GenerateTimeout = %s", s.GenerateTimeout)
	}
	if s.RedisURL != "redis://cache:6379/2" {
		t.Errorf("RedisURL = %q", s.RedisURL)
	}

	t.Run("InvalidTimeoutFallsBack", func(t *testing.T) {
		t.Setenv("GENERATE_TIMEOUT", "soon")
		if got := config.Load().GenerateTimeout; got != 60*time.Second {
			t.Errorf("GenerateTimeout = %s, want fallback", got)
		}
	})
}
