package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/fuel-station-dashboard/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidJWTParams is returned by GenerateJWTToken when a required
	// parameter is empty or the lifetime is not positive.
	ErrInvalidJWTParams = errors.New("invalid params for generating JWT Token")
	// ErrEmptyTokenSubject is returned when a verified token has no "sub" claim.
	ErrEmptyTokenSubject = errors.New("empty subject error")
	// ErrInvalidAuthorizationHeader is returned when the Authorization header
	// is not of the form "<scheme> <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")
	// ErrEmptyToken is returned when the Authorization header carries no
	// token after the scheme.
	ErrEmptyToken = errors.New("empty token in authorization header")
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token with the given parameters.
//
// The token includes the following claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the credential id
//   - IssuedAt  (iat): now
//   - ExpiresAt (exp): now plus tokenDuration
//   - purpose:         session or reset
//
// Timestamps are truncated to whole seconds, so the token is valid for
// instants strictly before exp.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("fuel-station-dashboard", id, models.TokenPurposeSession, time.Hour, key, time.Now())
func GenerateJWTToken(issuer, subjectID string, purpose models.TokenPurpose, tokenDuration time.Duration, signKey string, now time.Time) (models.Token, error) {
	if issuer == "" || subjectID == "" || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, ErrInvalidJWTParams
	}

	claims := &models.Token{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subjectID,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Purpose: purpose,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	claims.Token = token
	claims.SignedString = tokenString
	claims.SubjectID = subjectID

	return *claims, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Validation includes:
//   - HS256 as the only accepted algorithm
//   - Signature verification using the provided sign key
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim presence and check against now()
//   - Subject (sub) claim presence
//
// The returned error wraps the jwt sentinel errors, so callers can tell an
// expired token apart with errors.Is(err, jwt.ErrTokenExpired).
// Purpose is returned as-is and not checked here.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string, now func() time.Time) (models.Token, error) {
	claims := &models.Token{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(now),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	subjectID, err := token.Claims.GetSubject()
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during getting subject from token: %w", err)
	}
	if subjectID == "" {
		return models.Token{}, ErrEmptyTokenSubject
	}

	claims.Token = token
	claims.SignedString = tokenString
	claims.SubjectID = subjectID

	return *claims, nil
}

// ParseBearerToken extracts the token from an Authorization header value of
// the form "<scheme> <token>". The scheme itself is not checked.
//
// A header without a token part yields ErrEmptyToken; more than two parts
// yield ErrInvalidAuthorizationHeader.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	switch {
	case len(parts) < 2 || parts[1] == "":
		return "", ErrEmptyToken
	case len(parts) > 2:
		return "", ErrInvalidAuthorizationHeader
	}
	return parts[1], nil
}
