package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/carsapi/carsapi-go/internal/crypto"
	"github.com/golang-jwt/jwt/v5"
)

type stubValidator struct {
	claims *crypto.Claims
	err    error
	got    string
}

func (s *stubValidator) Validate(_ context.Context, token string) (*crypto.Claims, error) {
	s.got = token
	return s.claims, s.err
}

func testClaims() *crypto.Claims {
	return &crypto.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "jti-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		UserID: 42,
	}
}

func TestJWTAuth(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		validator  *stubValidator
		wantStatus int
		wantToken  string
	}{
		{
			name:       "missing header",
			header:     "",
			validator:  &stubValidator{claims: testClaims()},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong scheme",
			header:     "Basic dXNlcjpwYXNz",
			validator:  &stubValidator{claims: testClaims()},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "empty bearer",
			header:     "Bearer ",
			validator:  &stubValidator{claims: testClaims()},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "invalid token",
			header:     "Bearer bad",
			validator:  &stubValidator{err: crypto.ErrInvalidToken},
			wantStatus: http.StatusUnauthorized,
			wantToken:  "bad",
		},
		{
			name:       "wrapped invalid token",
			header:     "Bearer revoked",
			validator:  &stubValidator{err: errors.Join(errors.New("revoked"), crypto.ErrInvalidToken)},
			wantStatus: http.StatusUnauthorized,
			wantToken:  "revoked",
		},
		{
			name:       "validator infrastructure failure",
			header:     "Bearer good",
			validator:  &stubValidator{err: errors.New("redis down")},
			wantStatus: http.StatusInternalServerError,
			wantToken:  "good",
		},
		{
			name:       "valid token",
			header:     "Bearer good",
			validator:  &stubValidator{claims: testClaims()},
			wantStatus: http.StatusOK,
			wantToken:  "good",
		},
		{
			name:       "lower-case scheme",
			header:     "bearer good",
			validator:  &stubValidator{claims: testClaims()},
			wantStatus: http.StatusOK,
			wantToken:  "good",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUserID int64
			var gotToken string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUserID, _ = UserIDFromContext(r.Context())
				gotToken, _ = TokenFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/cars", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			JWTAuth(tt.validator)(next).ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.validator.got != tt.wantToken {
				t.Errorf("validator saw token %q, want %q", tt.validator.got, tt.wantToken)
			}

			if tt.wantStatus != http.StatusOK {
				var body map[string]string
				if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
					t.Fatalf("decode error body: %v", err)
				}
				if body["error"] == "" {
					t.Error("error body missing error field")
				}
				return
			}
			if gotUserID != 42 {
				t.Errorf("UserIDFromContext() = %d, want 42", gotUserID)
			}
			if gotToken != tt.wantToken {
				t.Errorf("TokenFromContext() = %q, want %q", gotToken, tt.wantToken)
			}
		})
	}
}

func TestContextHelpersWithoutAuth(t *testing.T) {
	ctx := context.Background()
	if _, ok := UserIDFromContext(ctx); ok {
		t.Error("UserIDFromContext() ok on empty context")
	}
	if _, ok := TokenFromContext(ctx); ok {
		t.Error("TokenFromContext() ok on empty context")
	}
	if _, ok := ClaimsFromContext(ctx); ok {
		t.Error("ClaimsFromContext() ok on empty context")
	}
}

func TestLoggerPassesThrough(t *testing.T) {
	h := Logger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusTeapot {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusTeapot)
	}
}
