package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/fuel-station-dashboard/internal/config"
	"github.com/MKhiriev/fuel-station-dashboard/internal/logger"
	"github.com/MKhiriev/fuel-station-dashboard/internal/mock"
	"github.com/MKhiriev/fuel-station-dashboard/internal/service"
	"github.com/MKhiriev/fuel-station-dashboard/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── helpers ──

const (
	testSubjectID = "0192f6f1-aaaa-7bbb-8ccc-000000000001"
	testBearer    = "Bearer session-token"
)

type handlerMocks struct {
	auth   *mock.MockAuthService
	tokens *mock.MockTokenService
	info   *mock.MockAppInfoService
	reg    *prometheus.Registry
}

func newTestHandler(t *testing.T, cfg config.Server) (*Handler, handlerMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := handlerMocks{
		auth:   mock.NewMockAuthService(ctrl),
		tokens: mock.NewMockTokenService(ctrl),
		info:   mock.NewMockAppInfoService(ctrl),
		reg:    prometheus.NewRegistry(),
	}

	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{"*"}
	}

	services := &service.Services{
		AuthService:    m.auth,
		TokenService:   m.tokens,
		AppInfoService: m.info,
	}
	return NewHandler(services, m.reg, cfg, logger.Nop()), m
}

func newTestRouter(t *testing.T) (http.Handler, handlerMocks) {
	t.Helper()
	h, m := newTestHandler(t, config.Server{})
	return h.Init(), m
}

func serve(router http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func authorized() map[string]string {
	return map[string]string{"Authorization": testBearer}
}

func expectSession(m handlerMocks) {
	m.tokens.EXPECT().
		Verify(gomock.Any(), "session-token", models.TokenPurposeSession).
		Return(models.Token{SubjectID: testSubjectID}, nil)
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var msg models.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &msg), rec.Body.String())
	return msg.Message
}

func testCredential() models.Credential {
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	return models.Credential{
		ID:           testSubjectID,
		Email:        "operator@station.example",
		PasswordHash: "$2a$10$secret",
		CreatedAt:    created,
		UpdatedAt:    created,
	}
}
