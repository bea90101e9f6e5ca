package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/fastm8/models"
	"github.com/golang-jwt/jwt/v5"
)

var testUser = models.User{UserID: 123, Username: "alice"}

func TestGenerateJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	duration := time.Hour
	key := "secret-key"

	token, err := GenerateJWTToken(issuer, testUser, duration, key)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Token == nil {
		t.Error("expected non-nil jwt.Token object")
	}
	if token.UserID != 123 || token.Username != "alice" {
		t.Errorf("unexpected identity %d/%s", token.UserID, token.Username)
	}

	// Verify claims
	claims, ok := token.Token.Claims.(*models.TokenClaims)
	if !ok {
		t.Fatal("could not cast claims to TokenClaims")
	}
	if claims.Issuer != issuer {
		t.Errorf("expected issuer %s, got %s", issuer, claims.Issuer)
	}
	if claims.Subject != "123" {
		t.Errorf("expected subject '123', got %s", claims.Subject)
	}
	if claims.UserID == nil || *claims.UserID != 123 {
		t.Errorf("expected userId claim 123, got %v", claims.UserID)
	}
	if claims.Username != "alice" {
		t.Errorf("expected username claim 'alice', got %s", claims.Username)
	}
	if got := claims.ExpiresAt.Sub(claims.IssuedAt.Time); got != duration {
		t.Errorf("expected lifetime %s, got %s", duration, got)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", time.Hour, "key"},
		{"zero duration", "iss", 0, "key"},
		{"negative duration", "iss", -time.Hour, "key"},
		{"empty key", "iss", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, testUser, tt.duration, tt.key)
			if !errors.Is(err, ErrInvalidTokenParams) {
				t.Errorf("expected ErrInvalidTokenParams, got %v", err)
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	generated, err := GenerateJWTToken("iss", testUser, time.Hour, "key")
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	parsed, err := ValidateAndParseJWTToken(generated.SignedString, "key", "iss")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if parsed.UserID != 123 {
		t.Errorf("expected UserID 123, got %d", parsed.UserID)
	}
	if parsed.Username != "alice" {
		t.Errorf("expected Username alice, got %s", parsed.Username)
	}
	if !parsed.Valid {
		t.Error("expected parsed token to be valid")
	}
}

func signClaims(t *testing.T, method jwt.SigningMethod, key any, claims jwt.Claims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	return s
}

func TestValidateAndParseJWTToken_Errors(t *testing.T) {
	uid := int64(5)
	now := time.Now()
	valid := jwt.RegisteredClaims{
		Issuer:    "iss",
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(now),
	}
	expired := valid
	expired.ExpiresAt = jwt.NewNumericDate(now.Add(-time.Minute))
	wrongIssuer := valid
	wrongIssuer.Issuer = "someone-else"
	noExpiry := valid
	noExpiry.ExpiresAt = nil

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{
			name:    "malformed",
			token:   "not-a-token",
			wantErr: jwt.ErrTokenMalformed,
		},
		{
			name:    "wrong key",
			token:   signClaims(t, jwt.SigningMethodHS256, []byte("other"), &models.TokenClaims{UserID: &uid, RegisteredClaims: valid}),
			wantErr: jwt.ErrTokenSignatureInvalid,
		},
		{
			name:    "expired",
			token:   signClaims(t, jwt.SigningMethodHS256, []byte("key"), &models.TokenClaims{UserID: &uid, RegisteredClaims: expired}),
			wantErr: jwt.ErrTokenExpired,
		},
		{
			name:    "wrong issuer",
			token:   signClaims(t, jwt.SigningMethodHS256, []byte("key"), &models.TokenClaims{UserID: &uid, RegisteredClaims: wrongIssuer}),
			wantErr: jwt.ErrTokenInvalidIssuer,
		},
		{
			name:    "wrong algorithm",
			token:   signClaims(t, jwt.SigningMethodHS512, []byte("key"), &models.TokenClaims{UserID: &uid, RegisteredClaims: valid}),
			wantErr: jwt.ErrTokenSignatureInvalid,
		},
		{
			name:    "no expiry",
			token:   signClaims(t, jwt.SigningMethodHS256, []byte("key"), &models.TokenClaims{UserID: &uid, RegisteredClaims: noExpiry}),
			wantErr: jwt.ErrTokenRequiredClaimMissing,
		},
		{
			name:    "missing userId claim",
			token:   signClaims(t, jwt.SigningMethodHS256, []byte("key"), &models.TokenClaims{RegisteredClaims: valid}),
			wantErr: ErrNoUserIDClaim,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAndParseJWTToken(tt.token, "key", "iss")
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"lowercase scheme", "bearer abc", "abc", false},
		{"surrounding spaces", "  Bearer   abc  ", "abc", false},
		{"empty", "", "", true},
		{"scheme only", "Bearer", "", true},
		{"wrong scheme", "Basic abc", "", true},
		{"too many parts", "Bearer a b", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAuthorizationHeader) {
					t.Errorf("expected ErrInvalidAuthorizationHeader, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestParseUserIDFromJWT(t *testing.T) {
	generated, err := GenerateJWTToken("iss", testUser, time.Hour, "key")
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	id, err := ParseUserIDFromJWT(generated.SignedString)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 123 {
		t.Errorf("expected 123, got %d", id)
	}

	if _, err := ParseUserIDFromJWT("garbage"); err == nil {
		t.Error("expected error for garbage token")
	}
}
