package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/fuel-station-dashboard/internal/config"
	"github.com/MKhiriev/fuel-station-dashboard/internal/logger"
	"github.com/MKhiriev/fuel-station-dashboard/internal/utils"
	"github.com/MKhiriev/fuel-station-dashboard/models"
	"github.com/golang-jwt/jwt/v5"
)

// tokenService is the HS256 implementation of [TokenService].
// All state is read-only after construction.
type tokenService struct {
	// signKey signs and verifies every token, session and reset alike.
	signKey string

	// issuer is the "iss" claim written on issue and required on verify.
	issuer string

	// enforcePurpose makes Verify reject a token whose purpose claim differs
	// from the requested one.
	enforcePurpose bool

	// now is the clock used for iat/exp on issue and for expiry on verify.
	now func() time.Time

	logger *logger.Logger
}

// NewTokenService constructs a [TokenService] from the token settings in cfg.
// A nil now uses time.Now.
func NewTokenService(cfg config.App, now func() time.Time, logger *logger.Logger) TokenService {
	if now == nil {
		now = time.Now
	}

	return &tokenService{
		signKey:        cfg.TokenSignKey,
		issuer:         cfg.TokenIssuer,
		enforcePurpose: cfg.EnforceTokenPurpose,
		now:            now,
		logger:         logger,
	}
}

// Issue signs a token with sub=subjectID, exp=now+ttl and the purpose claim.
func (s *tokenService) Issue(ctx context.Context, subjectID string, purpose models.TokenPurpose, ttl time.Duration) (models.Token, error) {
	token, err := utils.GenerateJWTToken(s.issuer, subjectID, purpose, ttl, s.signKey, s.now())
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*tokenService.Issue").Msg("error issuing token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// Verify returns the decoded token when tokenString is valid at the current
// clock reading. The purpose claim is compared only when enforcement is on.
func (s *tokenService) Verify(ctx context.Context, tokenString string, purpose models.TokenPurpose) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, s.signKey, s.issuer, s.now)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*tokenService.Verify").Msg("token rejected")
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, fmt.Errorf("%w: %w", ErrTokenIsExpired, err)
		}
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenIsInvalid, err)
	}

	if s.enforcePurpose && token.Purpose != purpose {
		logger.FromContext(ctx).Debug().
			Str("func", "*tokenService.Verify").
			Str("want", string(purpose)).
			Str("got", string(token.Purpose)).
			Msg("token purpose mismatch")
		return models.Token{}, fmt.Errorf("%w: purpose %q is not accepted here", ErrTokenIsInvalid, token.Purpose)
	}

	return token, nil
}
