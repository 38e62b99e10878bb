package http

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/fuel-station-dashboard/internal/app"
	"github.com/MKhiriev/fuel-station-dashboard/internal/config"
	"github.com/MKhiriev/fuel-station-dashboard/internal/logger"
	"github.com/MKhiriev/fuel-station-dashboard/internal/service"
	"github.com/MKhiriev/fuel-station-dashboard/internal/utils"
	"github.com/MKhiriev/fuel-station-dashboard/models"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── auth middleware ──

func TestAuthMiddleware_Rejects(t *testing.T) {
	tests := []struct {
		name        string
		header      string
		verifyErr   error
		wantVerify  bool
		wantMessage string
	}{
		{name: "no header", wantMessage: app.MsgNoToken},
		{name: "scheme only", header: "Bearer", wantMessage: app.MsgNoToken},
		{name: "scheme and blank", header: "Bearer   ", wantMessage: app.MsgNoToken},
		{name: "too many parts", header: "Bearer a b", wantMessage: app.MsgInvalidToken},
		{name: "tampered token", header: testBearer, verifyErr: service.ErrTokenIsInvalid, wantVerify: true, wantMessage: app.MsgInvalidToken},
		{name: "expired token", header: testBearer, verifyErr: service.ErrTokenIsExpired, wantVerify: true, wantMessage: "token is expired"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t, config.Server{})
			if tt.wantVerify {
				m.tokens.EXPECT().Verify(gomock.Any(), "session-token", models.TokenPurposeSession).Return(models.Token{}, tt.verifyErr)
			}

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { nextCalled = true })

			headers := map[string]string{}
			if tt.header != "" {
				headers["Authorization"] = tt.header
			}
			rec := serve(h.auth(next), http.MethodGet, "/api/auth/me", "", headers)

			assert.False(t, nextCalled)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, tt.wantMessage, decodeMessage(t, rec))
		})
	}
}

func TestAuthMiddleware_StoresSubject(t *testing.T) {
	h, m := newTestHandler(t, config.Server{})
	expectSession(m)

	var gotSubject string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSubject, _ = utils.GetSubjectIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	rec := serve(h.auth(next), http.MethodGet, "/api/auth/me", "", authorized())

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, testSubjectID, gotSubject)
}

func TestAuthMiddleware_GatesRoutes(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, path := range []string{"/api/auth/", "/api/auth", "/api/auth/me"} {
		rec := serve(router, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
		assert.Equal(t, app.MsgNoToken, decodeMessage(t, rec), path)
	}
}

// ── trace id & logging ──

func TestWithTraceID(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	t.Run("reuses incoming id", func(t *testing.T) {
		rec := serve(h.withTraceID(http.NotFoundHandler()), http.MethodGet, "/", "", map[string]string{traceIDHeader: "pump-7"})
		assert.Equal(t, "pump-7", rec.Header().Get(traceIDHeader))
	})

	t.Run("generates uuid", func(t *testing.T) {
		rec := serve(h.withTraceID(http.NotFoundHandler()), http.MethodGet, "/", "", nil)
		_, err := uuid.Parse(rec.Header().Get(traceIDHeader))
		assert.NoError(t, err)
	})
}

func TestWithLogging_WritesAccessLine(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("brew"))
	})
	rec := serve(h.withTraceID(h.withLogging(next)), http.MethodPost, "/api/auth/login?x=1", "", map[string]string{traceIDHeader: "trace-1"})
	require.Equal(t, http.StatusTeapot, rec.Code)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line), buf.String())
	assert.Equal(t, "trace-1", line["trace_id"])
	assert.Equal(t, "/api/auth/login?x=1", line["uri"])
	assert.Equal(t, "POST", line["method"])
	assert.EqualValues(t, http.StatusTeapot, line["status"])
	assert.EqualValues(t, 4, line["size"])
	assert.Contains(t, line, "duration")
}

func TestResponseWriter_HeaderOnce(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec}

	rw.Write([]byte("ab"))
	rw.WriteHeader(http.StatusInternalServerError)
	rw.Write([]byte("cd"))

	assert.Equal(t, http.StatusOK, rw.status)
	assert.Equal(t, 4, rw.size)
	assert.Equal(t, http.StatusOK, rec.Code)
}

// ── gzip ──

func TestWithGZip(t *testing.T) {
	router, m := newTestRouter(t)
	m.auth.EXPECT().
		Login(gomock.Any(), models.AuthRequest{Email: "operator@station.example", Password: "pump-42"}).
		Return(models.Token{SignedString: "signed.jwt.value"}, nil)

	var compressed bytes.Buffer
	zw := gzip.NewWriter(&compressed)
	_, err := zw.Write([]byte(`{"email":"operator@station.example","password":"pump-42"}`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", &compressed)
	req.Header.Set("Content-Encoding", "gzip")
	req.Header.Set("Accept-Encoding", "gzip, deflate")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))

	zr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	plain, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.JSONEq(t, `{"token":"signed.jwt.value"}`, string(plain))
}

func TestWithGZip_BrokenBody(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next must not be called")
	})

	rec := serve(withGZip(next), http.MethodPost, "/", "definitely not gzip", map[string]string{"Content-Encoding": "gzip"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWithGZip_EmptyResponse(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	rec := serve(withGZip(next), http.MethodGet, "/", "", map[string]string{"Accept-Encoding": "gzip"})

	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.Zero(t, rec.Body.Len())
}

// ── routes ──

func TestRoutes_Version(t *testing.T) {
	router, m := newTestRouter(t)
	m.info.EXPECT().GetAppVersion(gomock.Any()).Return("1.4.0")

	rec := serve(router, http.MethodGet, "/api/version", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
	assert.Equal(t, "1.4.0", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

func TestRoutes_Metrics(t *testing.T) {
	router, m := newTestRouter(t)
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "pump_checks_total", Help: "test counter"})
	m.reg.MustRegister(counter)
	counter.Inc()

	rec := serve(router, http.MethodGet, "/metrics", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "pump_checks_total 1")
}

func TestRoutes_WrongMethodIsNotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/auth/register"},
		{http.MethodDelete, "/api/version"},
		{http.MethodPut, "/api/auth/login"},
		{http.MethodGet, "/api/auth/reset-password/abc"},
	} {
		rec := serve(router, tc.method, tc.path, "", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code, tc.method+" "+tc.path)
		assert.Equal(t, http.StatusText(http.StatusNotFound), decodeMessage(t, rec))
	}
}

func TestRoutes_UnknownPath(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := serve(router, http.MethodGet, "/api/pumps", "", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, http.StatusText(http.StatusNotFound), decodeMessage(t, rec))
}

func TestRoutes_CORS(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := serve(router, http.MethodOptions, "/api/auth/login", "", map[string]string{
		"Origin":                        "http://localhost:5174",
		"Access-Control-Request-Method": http.MethodPost,
	})

	assert.Less(t, rec.Code, 300)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
}

func TestRoutes_RequestTimeout(t *testing.T) {
	h, m := newTestHandler(t, config.Server{RequestTimeout: 20 * time.Millisecond})
	m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ models.AuthRequest) (models.Token, error) {
			<-ctx.Done()
			return models.Token{}, ctx.Err()
		},
	)

	rec := serve(h.Init(), http.MethodPost, "/api/auth/login", `{"email":"a@b.c","password":"p"}`, nil)

	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
}
