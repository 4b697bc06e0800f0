package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"database": map[string]any{
			"url":             "",
			"maxOpenConns":    20,
			"connMaxLifetime": "30m",
		},
		"jwt": map[string]any{
			"secret": "",
		},
		"http": map[string]any{
			"requestTimeout": "10s",
			"cors": map[string]any{
				"allowedOrigins": "*",
			},
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "DATABASE_URL", want: "database.url"},
		{envKey: "DATABASE_MAXOPENCONNS", want: "database.maxOpenConns"},
		{envKey: "JWT_SECRET", want: "jwt.secret"},
		{envKey: "HTTP_REQUESTTIMEOUT", want: "http.requestTimeout"},
		{envKey: "HTTP_CORS_ALLOWEDORIGINS", want: "http.cors.allowedOrigins"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
