package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(EnvBaseURL, "")
	t.Setenv(EnvAPIKey, "")
	t.Setenv(EnvTimeoutMS, "")

	cfg := Load()
	if cfg.BaseURL != "http://localhost:8000/api/" {
		t.Errorf("BaseURL = %q, want default", cfg.BaseURL)
	}
	if cfg.APIKey != "" {
		t.Errorf("APIKey = %q, want empty", cfg.APIKey)
	}
	if cfg.Timeout != 10*time.Second {
		t.Errorf("Timeout = %v, want 10s", cfg.Timeout)
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv(EnvBaseURL, "http://kegserver:8000/api/")
	t.Setenv(EnvAPIKey, "secret")
	t.Setenv(EnvTimeoutMS, "2500")

	cfg := Load()
	if cfg.BaseURL != "http://kegserver:8000/api/" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.APIKey != "secret" {
		t.Errorf("APIKey = %q, want secret", cfg.APIKey)
	}
	if cfg.Timeout != 2500*time.Millisecond {
		t.Errorf("Timeout = %v, want 2.5s", cfg.Timeout)
	}
}

func TestLoad_BadTimeoutFallsBack(t *testing.T) {
	t.Setenv(EnvTimeoutMS, "not-a-number")

	cfg := Load()
	if cfg.Timeout != 10*time.Second {
		t.Errorf("Timeout = %v, want default 10s", cfg.Timeout)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"empty base URL", Config{BaseURL: "", Timeout: time.Second}, true},
		{"relative base URL", Config{BaseURL: "/api/", Timeout: time.Second}, true},
		{"no scheme", Config{BaseURL: "kegserver:8000", Timeout: time.Second}, true},
		{"negative timeout", Config{BaseURL: "http://x/api/", Timeout: -time.Second}, true},
		{"valid", Config{BaseURL: "http://x/api/", APIKey: "k", Timeout: time.Second}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadEnvFile_MissingFile(t *testing.T) {
	if err := LoadEnvFile(t.TempDir() + "/does-not-exist.env"); err != nil {
		t.Errorf("LoadEnvFile() = %v, want nil for missing file", err)
	}
}
