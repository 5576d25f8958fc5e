package config

import "testing"

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "UPLOADS_DIR", "LLM_PROVIDER", "LLM_MODEL", "GEMINI_API_KEY"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.UploadsDir != "./uploads" {
		t.Errorf("UploadsDir = %q", cfg.UploadsDir)
	}
	if cfg.LLMProvider != "gemini" {
		t.Errorf("LLMProvider = %q, want gemini", cfg.LLMProvider)
	}
	if cfg.LLMModel != "gemini-2.0-flash" {
		t.Errorf("LLMModel = %q, want gemini-2.0-flash", cfg.LLMModel)
	}
}

func TestLoadConfig_ProviderKey(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "groq")
	t.Setenv("LLM_MODEL", "")
	t.Setenv("GROQ_API_KEY", "groq-key")
	t.Setenv("OPENAI_API_KEY", "wrong-key")

	cfg := LoadConfig()
	if cfg.LLMAPIKey != "groq-key" {
		t.Errorf("LLMAPIKey = %q, want the groq key", cfg.LLMAPIKey)
	}
	if cfg.LLMModel != "llama-3.3-70b-versatile" {
		t.Errorf("LLMModel = %q", cfg.LLMModel)
	}
}
