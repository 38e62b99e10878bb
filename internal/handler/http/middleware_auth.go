package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/fuel-station-dashboard/internal/app"
	"github.com/MKhiriev/fuel-station-dashboard/internal/logger"
	"github.com/MKhiriev/fuel-station-dashboard/internal/service"
	"github.com/MKhiriev/fuel-station-dashboard/internal/utils"
	"github.com/MKhiriev/fuel-station-dashboard/models"
	"github.com/rs/zerolog"
)

// auth is an HTTP middleware that gates a route behind a session token.
//
// It takes the token from the "Authorization: <scheme> <token>" header,
// verifies it via [service.TokenService.Verify] and stores the subject id in
// the request context under [utils.SubjectIDCtxKey]. The request logger gets
// a "subject_id" field. The account itself is not looked up.
//
// Rejections are answered with 401 and a JSON message:
//   - no header, or a header without a token part: "No token provided";
//   - expired token: "token is expired";
//   - any other malformed header or verification failure: "Invalid token".
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Warn().Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteMessage(w, app.MsgNoToken, http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Warn().Err(err).Send()
			message := app.MsgInvalidToken
			if errors.Is(err, utils.ErrEmptyToken) {
				message = app.MsgNoToken
			}
			utils.WriteMessage(w, message, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.TokenService.Verify(ctx, tokenString, models.TokenPurposeSession)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenIsExpired):
				log.Warn().Err(err).Msg("token expired")
				utils.WriteMessage(w, app.MsgTokenIsExpired, http.StatusUnauthorized)
			default:
				log.Warn().Err(err).Msg("error occurred during parsing token")
				utils.WriteMessage(w, app.MsgInvalidToken, http.StatusUnauthorized)
			}
			return
		}

		ctx = context.WithValue(ctx, utils.SubjectIDCtxKey, token.SubjectID)

		subjectLogger := log.GetChildLogger()
		subjectLogger.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("subject_id", token.SubjectID)
		})
		ctx = subjectLogger.WithContext(ctx)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
