package integration

import (
	"net/http"
	"testing"
)

func TestAuthFlow_WritesRequireOwnerToken(t *testing.T) {
	app := setupApp(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		token  string
		status int
	}{
		{"read_without_token", http.MethodGet, "/api/v1/journal-entries", "", "", http.StatusOK},
		{"write_without_token", http.MethodPost, "/api/v1/journal-entries", `{"date":"2024-01-02"}`, "", http.StatusUnauthorized},
		{"write_with_garbage_token", http.MethodPost, "/api/v1/journal-entries", `{"date":"2024-01-02"}`, "not-a-jwt", http.StatusUnauthorized},
		{"write_with_owner_token", http.MethodPost, "/api/v1/journal-entries", `{"date":"2024-01-02"}`, app.Token, http.StatusCreated},
		{"health", http.MethodGet, "/api/health", "", "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := app.request(tt.method, tt.path, tt.body, tt.token)
			if rec.Code != tt.status {
				t.Fatalf("expected %d, got %d: %s", tt.status, rec.Code, rec.Body.String())
			}
		})
	}
}
