package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/fuel-station-dashboard/internal/app"
	"github.com/MKhiriev/fuel-station-dashboard/internal/logger"
	"github.com/MKhiriev/fuel-station-dashboard/internal/service"
	"github.com/MKhiriev/fuel-station-dashboard/internal/store"
	"github.com/MKhiriev/fuel-station-dashboard/internal/utils"
)

// errorStatuses is the fallback used when an operation has no specific
// mapping for an error. It is checked in order: a wrapped error may match
// several entries, so causes that change the status come before the
// generic wrappers.
var errorStatuses = []struct {
	target error
	status int
}{
	{context.DeadlineExceeded, http.StatusGatewayTimeout},

	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrAccountAlreadyExists, http.StatusConflict},
	{service.ErrAccountNotFound, http.StatusNotFound},
	{service.ErrWrongPassword, http.StatusUnauthorized},
	{service.ErrSamePassword, http.StatusConflict},
	{service.ErrTooManyAttempts, http.StatusTooManyRequests},
	{service.ErrTokenIsExpired, http.StatusUnauthorized},
	{service.ErrTokenIsInvalid, http.StatusUnauthorized},

	{store.ErrEmailAlreadyExists, http.StatusConflict},
	{store.ErrCredentialNotFound, http.StatusNotFound},

	{service.ErrTokenCreationFailed, http.StatusInternalServerError},
	{service.ErrHashingFailed, http.StatusInternalServerError},
	{service.ErrMailDispatchFailed, http.StatusInternalServerError},
	{service.ErrCredentialStoreFailed, http.StatusInternalServerError},
	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, entry := range errorStatuses {
		if errors.Is(err, entry.target) {
			return entry.status
		}
	}
	return http.StatusInternalServerError
}

// errorMapping binds an error to the response of one operation.
// An empty message means the error text itself is sent.
type errorMapping struct {
	target  error
	status  int
	message string
}

// errorMappings is checked in order; the first match wins.
type errorMappings []errorMapping

func (m errorMappings) resolve(err error) (int, string) {
	for _, mapping := range m {
		if !errors.Is(err, mapping.target) {
			continue
		}
		if mapping.message == "" {
			return mapping.status, err.Error()
		}
		return mapping.status, mapping.message
	}

	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		return status, app.MsgInternalError
	}
	return status, http.StatusText(status)
}

var invalidData = errorMapping{target: service.ErrInvalidDataProvided, status: http.StatusBadRequest}

var (
	registerErrors = errorMappings{
		invalidData,
		{target: service.ErrAccountAlreadyExists, status: http.StatusConflict, message: app.MsgUserAlreadyExists},
	}

	loginErrors = errorMappings{
		invalidData,
		{target: service.ErrAccountNotFound, status: http.StatusConflict, message: app.MsgUserDoesNotExist},
		{target: service.ErrWrongPassword, status: http.StatusBadRequest, message: app.MsgPasswordIncorrect},
		{target: service.ErrTooManyAttempts, status: http.StatusTooManyRequests, message: app.MsgTooManyAttempts},
	}

	forgotPasswordErrors = errorMappings{
		invalidData,
		{target: service.ErrAccountNotFound, status: http.StatusNotFound, message: app.MsgEmailNotFound},
	}

	resetPasswordErrors = errorMappings{
		invalidData,
		{target: service.ErrTokenIsExpired, status: http.StatusUnauthorized, message: app.MsgTokenIsExpired},
		{target: service.ErrTokenIsInvalid, status: http.StatusUnauthorized, message: app.MsgInvalidToken},
		{target: service.ErrAccountNotFound, status: http.StatusNotFound, message: app.MsgUserNotFound},
		{target: service.ErrSamePassword, status: http.StatusConflict, message: app.MsgSamePassword},
	}

	listAccountsErrors = errorMappings{
		invalidData,
	}

	meErrors = errorMappings{
		invalidData,
		{target: service.ErrAccountNotFound, status: http.StatusNotFound, message: app.MsgUserNotFound},
	}
)

// writeError logs err with the request logger and answers with the status
// and message resolved from mappings.
func writeError(w http.ResponseWriter, r *http.Request, err error, mappings errorMappings) {
	log := logger.FromRequest(r)
	status, message := mappings.resolve(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteMessage(w, message, status)
}
