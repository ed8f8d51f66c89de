package internal

import (
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig_ValidAfterSecret(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Auth.JWTSecret = "s"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config with secret should pass: %v", err)
	}
}

func TestDefaultConfig_MissingSecret(t *testing.T) {
	cfg := NewDefaultConfig()
	if err := cfg.Validate(); err == nil {
		t.Fatal("missing jwt_secret should fail validation")
	}
}

func TestHTTPConfig_PortRange(t *testing.T) {
	for _, port := range []int{0, -1, 70000} {
		cfg := HTTPConfig{Port: port}
		if err := cfg.Validate(); err == nil {
			t.Errorf("port %d should fail validation", port)
		}
	}
	cfg := HTTPConfig{Port: 8080}
	if err := cfg.Validate(); err != nil {
		t.Errorf("port 8080 should pass: %v", err)
	}
	if cfg.Address() != ":8080" {
		t.Errorf("address = %q", cfg.Address())
	}
}

func TestSQLiteConfig_RequiresPath(t *testing.T) {
	cfg := SQLiteConfig{}
	if err := cfg.Validate(); err == nil {
		t.Fatal("empty sqlite path should fail validation")
	}
}

func TestAuthConfig_EmptyTTLDefaults(t *testing.T) {
	cfg := AuthConfig{JWTSecret: "s"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("empty token_ttl should default: %v", err)
	}
	if cfg.TokenTTL != "24h" {
		t.Errorf("token_ttl = %q, want 24h", cfg.TokenTTL)
	}
	if cfg.TTL() != 24*time.Hour {
		t.Errorf("TTL() = %v", cfg.TTL())
	}
}

func TestAuthConfig_InvalidTTL(t *testing.T) {
	cfg := AuthConfig{JWTSecret: "s", TokenTTL: "soon"}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("invalid token_ttl should fail validation")
	}
	if !strings.Contains(err.Error(), "token_ttl") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestAuthConfig_CustomTTL(t *testing.T) {
	cfg := AuthConfig{JWTSecret: "s", TokenTTL: "90m"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("90m should pass: %v", err)
	}
	if cfg.TTL() != 90*time.Minute {
		t.Errorf("TTL() = %v, want 90m", cfg.TTL())
	}
}

func TestAIConfig_RequiredFields(t *testing.T) {
	cfg := AIConfig{}
	if err := cfg.Validate(); err == nil {
		t.Fatal("empty AI config should fail validation")
	}
	cfg = AIConfig{BaseURL: "https://example.com", Model: "gemini-2.5-flash"}
	if err := cfg.Validate(); err != nil {
		t.Errorf("complete AI config should pass: %v", err)
	}
}

func TestFullConfig_SectionValidationCalled(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Auth.JWTSecret = "s"
	cfg.App.HTTP.Port = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("full config validate should catch http error")
	}
}
