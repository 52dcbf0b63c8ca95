package crypto

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateToken(t *testing.T) {
	token, claims, err := GenerateToken(42, "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}
	if token == "" {
		t.Fatal("GenerateToken() returned empty string")
	}
	if claims.ID == "" {
		t.Error("GenerateToken() claims missing jti")
	}
	if claims.UserID != 42 {
		t.Errorf("GenerateToken() UserID = %d, want 42", claims.UserID)
	}
}

func TestGenerateTokenUniqueIDs(t *testing.T) {
	_, first, err := GenerateToken(42, "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}
	_, second, err := GenerateToken(42, "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}
	if first.ID == second.ID {
		t.Errorf("two tokens share jti %q", first.ID)
	}
}

func TestValidateTokenValid(t *testing.T) {
	token, issued, err := GenerateToken(7, "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	claims, err := ValidateToken(token, "test-secret")
	if err != nil {
		t.Fatalf("ValidateToken() unexpected error: %v", err)
	}
	if claims.UserID != 7 {
		t.Errorf("ValidateToken() UserID = %d, want 7", claims.UserID)
	}
	if claims.ID != issued.ID {
		t.Errorf("ValidateToken() jti = %q, want %q", claims.ID, issued.ID)
	}
}

func TestValidateTokenRejects(t *testing.T) {
	signed := func(t *testing.T, claims Claims, method jwt.SigningMethod, key any) string {
		t.Helper()
		s, err := jwt.NewWithClaims(method, claims).SignedString(key)
		if err != nil {
			t.Fatalf("SignedString() unexpected error: %v", err)
		}
		return s
	}
	valid := func() Claims {
		now := time.Now()
		return Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				ID:        "jti-1",
				Issuer:    tokenIssuer,
				Audience:  jwt.ClaimStrings{tokenAudience},
				ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
				IssuedAt:  jwt.NewNumericDate(now),
			},
			UserID: 42,
		}
	}

	expired, _, err := GenerateToken(42, "test-secret", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}
	wrongSecret, _, err := GenerateToken(42, "other-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	wrongIssuer := valid()
	wrongIssuer.Issuer = "wrong-issuer"
	wrongAudience := valid()
	wrongAudience.Audience = jwt.ClaimStrings{"wrong-audience"}
	noExpiry := valid()
	noExpiry.ExpiresAt = nil
	noID := valid()
	noID.ID = ""
	noUser := valid()
	noUser.UserID = 0

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-valid-token"},
		{name: "empty", token: ""},
		{name: "expired", token: expired},
		{name: "wrong secret", token: wrongSecret},
		{name: "wrong issuer", token: signed(t, wrongIssuer, jwt.SigningMethodHS256, []byte("test-secret"))},
		{name: "wrong audience", token: signed(t, wrongAudience, jwt.SigningMethodHS256, []byte("test-secret"))},
		{name: "no expiry", token: signed(t, noExpiry, jwt.SigningMethodHS256, []byte("test-secret"))},
		{name: "no jti", token: signed(t, noID, jwt.SigningMethodHS256, []byte("test-secret"))},
		{name: "no user", token: signed(t, noUser, jwt.SigningMethodHS256, []byte("test-secret"))},
		{name: "alg none", token: signed(t, valid(), jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateToken(tt.token, "test-secret")
			if !errors.Is(err, ErrInvalidToken) {
				t.Errorf("ValidateToken() error = %v, want ErrInvalidToken", err)
			}
		})
	}
}
