package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/fuel-station-dashboard/internal/app"
	"github.com/MKhiriev/fuel-station-dashboard/internal/logger"
	"github.com/MKhiriev/fuel-station-dashboard/internal/utils"
	"github.com/MKhiriev/fuel-station-dashboard/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.AuthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		utils.WriteMessage(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	credential, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		writeError(w, r, err, registerErrors)
		return
	}

	log.Debug().Str("id", credential.ID).Msg("account registered")
	utils.WriteJSON(w, credential, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.AuthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		utils.WriteMessage(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	token, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		writeError(w, r, err, loginErrors)
		return
	}

	log.Debug().Str("id", token.SubjectID).Msg("account logged in")
	utils.WriteJSON(w, models.TokenResponse{Token: token.String()}, http.StatusOK)
}

func (h *Handler) forgotPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		utils.WriteMessage(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	if err := h.services.AuthService.ForgotPassword(ctx, req); err != nil {
		writeError(w, r, err, forgotPasswordErrors)
		return
	}

	utils.WriteMessage(w, app.MsgEmailSent, http.StatusCreated)
}

// resetPassword takes the token from the path. The body key match is
// case-insensitive, so both "newPassword" and "newpassword" are accepted.
func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		utils.WriteMessage(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}
	req.Token = chi.URLParam(r, "token")

	if err := h.services.AuthService.ResetPassword(ctx, req); err != nil {
		writeError(w, r, err, resetPasswordErrors)
		return
	}

	utils.WriteMessage(w, app.MsgPasswordReset, http.StatusCreated)
}

func (h *Handler) listAccounts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	filter, err := credentialFilterFromQuery(r)
	if err != nil {
		log.Warn().Err(err).Send()
		utils.WriteMessage(w, err.Error(), http.StatusBadRequest)
		return
	}

	credentials, err := h.services.AuthService.ListAccounts(ctx, filter)
	if err != nil {
		writeError(w, r, err, listAccountsErrors)
		return
	}

	utils.WriteJSON(w, credentials, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	subjectID, ok := utils.GetSubjectIDFromContext(ctx)
	if !ok {
		logger.FromRequest(r).Err(ErrNoSubjectInContext).Send()
		utils.WriteMessage(w, app.MsgInvalidToken, http.StatusUnauthorized)
		return
	}

	credential, err := h.services.AuthService.Me(ctx, subjectID)
	if err != nil {
		writeError(w, r, err, meErrors)
		return
	}

	utils.WriteJSON(w, credential, http.StatusOK)
}

// credentialFilterFromQuery reads ?email, ?limit and ?offset. Absent values
// leave the filter fields zero.
func credentialFilterFromQuery(r *http.Request) (models.CredentialFilter, error) {
	query := r.URL.Query()
	filter := models.CredentialFilter{Email: query.Get("email")}

	var err error
	if filter.Limit, err = parseUintParam(query.Get("limit"), "limit"); err != nil {
		return models.CredentialFilter{}, err
	}
	if filter.Offset, err = parseUintParam(query.Get("offset"), "offset"); err != nil {
		return models.CredentialFilter{}, err
	}

	return filter, nil
}

func parseUintParam(raw, name string) (uint64, error) {
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidQueryParameter, name)
	}
	return value, nil
}
