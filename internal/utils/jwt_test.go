package utils

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/fuel-station-dashboard/models"
	"github.com/golang-jwt/jwt/v5"
)

const (
	testIssuer  = "test-issuer"
	testKey     = "secret-key"
	testSubject = "0192f6f1-aaaa-7bbb-8ccc-000000000001"
)

var issuedAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func clockAt(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, testSubject, models.TokenPurposeSession, time.Hour, testKey, issuedAt)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" || token.String() != token.SignedString {
		t.Error("expected non-empty SignedString returned by String()")
	}
	if token.Token == nil {
		t.Error("expected non-nil jwt.Token object")
	}
	if token.Issuer != testIssuer {
		t.Errorf("expected issuer %s, got %s", testIssuer, token.Issuer)
	}
	if token.Subject != testSubject || token.SubjectID != testSubject {
		t.Errorf("expected subject %s, got %s / %s", testSubject, token.Subject, token.SubjectID)
	}
	if !token.ExpiresAt.Equal(issuedAt.Add(time.Hour)) {
		t.Errorf("expected exp %v, got %v", issuedAt.Add(time.Hour), token.ExpiresAt.Time)
	}
	if token.Purpose != models.TokenPurposeSession {
		t.Errorf("expected purpose session, got %s", token.Purpose)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		subject  string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", testSubject, time.Hour, testKey},
		{"empty subject", testIssuer, "", time.Hour, testKey},
		{"zero duration", testIssuer, testSubject, 0, testKey},
		{"negative duration", testIssuer, testSubject, -time.Second, testKey},
		{"empty key", testIssuer, testSubject, time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.subject, models.TokenPurposeSession, tt.duration, tt.key, issuedAt)
			if !errors.Is(err, ErrInvalidJWTParams) {
				t.Errorf("expected ErrInvalidJWTParams, got %v", err)
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	genToken, _ := GenerateJWTToken(testIssuer, testSubject, models.TokenPurposeReset, 5*time.Minute, testKey, issuedAt)

	parsedToken, err := ValidateAndParseJWTToken(genToken.SignedString, testKey, testIssuer, clockAt(issuedAt))

	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}
	if parsedToken.SubjectID != testSubject {
		t.Errorf("expected subject %s, got %s", testSubject, parsedToken.SubjectID)
	}
	if parsedToken.Purpose != models.TokenPurposeReset {
		t.Errorf("expected purpose reset, got %s", parsedToken.Purpose)
	}
	if parsedToken.Token == nil || !parsedToken.Valid {
		t.Error("expected a valid parsed jwt.Token")
	}
}

// TestValidateAndParseJWTToken_ExpiryBoundary checks that a token is valid
// one second before exp and expired at exp.
func TestValidateAndParseJWTToken_ExpiryBoundary(t *testing.T) {
	genToken, _ := GenerateJWTToken(testIssuer, testSubject, models.TokenPurposeSession, time.Hour, testKey, issuedAt)

	_, err := ValidateAndParseJWTToken(genToken.SignedString, testKey, testIssuer, clockAt(issuedAt.Add(time.Hour-time.Second)))
	if err != nil {
		t.Fatalf("expected token to be valid before exp, got: %v", err)
	}

	_, err = ValidateAndParseJWTToken(genToken.SignedString, testKey, testIssuer, clockAt(issuedAt.Add(time.Hour)))
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Fatalf("expected jwt.ErrTokenExpired at exp, got: %v", err)
	}
}

func TestValidateAndParseJWTToken_InvalidKey(t *testing.T) {
	genToken, _ := GenerateJWTToken(testIssuer, testSubject, models.TokenPurposeSession, time.Hour, "correct-key", issuedAt)

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "wrong-key", testIssuer, clockAt(issuedAt))
	if !errors.Is(err, jwt.ErrTokenSignatureInvalid) {
		t.Errorf("expected signature error, got %v", err)
	}
}

func TestValidateAndParseJWTToken_Tampered(t *testing.T) {
	genToken, _ := GenerateJWTToken(testIssuer, testSubject, models.TokenPurposeSession, time.Hour, testKey, issuedAt)

	// replace the first character of the signature
	parts := strings.Split(genToken.SignedString, ".")
	if parts[2][0] == 'A' {
		parts[2] = "B" + parts[2][1:]
	} else {
		parts[2] = "A" + parts[2][1:]
	}
	tampered := strings.Join(parts, ".")

	_, err := ValidateAndParseJWTToken(tampered, testKey, testIssuer, clockAt(issuedAt))
	if err == nil {
		t.Fatal("expected error for tampered token, got nil")
	}
	if errors.Is(err, jwt.ErrTokenExpired) {
		t.Fatal("tampered token must not be reported as expired")
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	genToken, _ := GenerateJWTToken("real-issuer", testSubject, models.TokenPurposeSession, time.Hour, testKey, issuedAt)

	_, err := ValidateAndParseJWTToken(genToken.SignedString, testKey, "fake-issuer", clockAt(issuedAt))
	if !errors.Is(err, jwt.ErrTokenInvalidIssuer) {
		t.Errorf("expected issuer error, got %v", err)
	}
}

func TestValidateAndParseJWTToken_WrongAlgorithm(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Issuer:    testIssuer,
		Subject:   testSubject,
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(time.Hour)),
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("could not build none-signed token: %v", err)
	}

	_, err = ValidateAndParseJWTToken(unsigned, testKey, testIssuer, clockAt(issuedAt))
	if err == nil {
		t.Error("expected error for alg none, got nil")
	}
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not.a.token", testKey, testIssuer, clockAt(issuedAt))
	if !errors.Is(err, jwt.ErrTokenMalformed) {
		t.Errorf("expected malformed error, got %v", err)
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{name: "bearer", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "any scheme", header: "Token abc", want: "abc"},
		{name: "surrounding spaces", header: "  Bearer abc  ", want: "abc"},
		{name: "scheme only", header: "Bearer", wantErr: ErrEmptyToken},
		{name: "scheme and trailing space", header: "Bearer ", wantErr: ErrEmptyToken},
		{name: "no scheme", header: "abc.def.ghi", wantErr: ErrEmptyToken},
		{name: "empty", header: "", wantErr: ErrEmptyToken},
		{name: "double space", header: "Bearer  abc", wantErr: ErrEmptyToken},
		{name: "too many parts", header: "Bearer a b", wantErr: ErrInvalidAuthorizationHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("expected %q, got %q (%v)", tt.want, got, err)
			}
		})
	}
}
