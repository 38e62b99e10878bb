package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/fuel-station-dashboard/models"
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "fuel_station_dashboard"

// Operation labels.
const (
	opRegister       = "register"
	opLogin          = "login"
	opForgotPassword = "forgot_password"
	opResetPassword  = "reset_password"
	opListAccounts   = "list_accounts"
	opMe             = "me"
)

// AuthMetrics holds the prometheus collectors of the auth operations.
type AuthMetrics struct {
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

// NewAuthMetrics creates the collectors and registers them with reg.
func NewAuthMetrics(reg prometheus.Registerer) (*AuthMetrics, error) {
	m := &AuthMetrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "auth",
			Name:      "operations_total",
			Help:      "Auth operations by outcome.",
		}, []string{"operation", "result"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "auth",
			Name:      "operation_duration_seconds",
			Help:      "Auth operation latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
	}

	for _, c := range []prometheus.Collector{m.operations, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// observe records one finished operation.
func (m *AuthMetrics) observe(operation string, started time.Time, err error) {
	m.operations.WithLabelValues(operation, resultLabel(err)).Inc()
	m.duration.WithLabelValues(operation).Observe(time.Since(started).Seconds())
}

// resultLabel collapses an operation error into a bounded label value.
func resultLabel(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrInvalidDataProvided):
		return "invalid"
	case errors.Is(err, ErrAccountAlreadyExists), errors.Is(err, ErrSamePassword):
		return "conflict"
	case errors.Is(err, ErrAccountNotFound):
		return "not_found"
	case errors.Is(err, ErrWrongPassword):
		return "wrong_password"
	case errors.Is(err, ErrTokenIsExpired):
		return "token_expired"
	case errors.Is(err, ErrTokenIsInvalid):
		return "token_invalid"
	case errors.Is(err, ErrTooManyAttempts):
		return "throttled"
	default:
		return "error"
	}
}

// AuthMetricsService counts every call of the wrapped [AuthService].
type AuthMetricsService struct {
	inner   AuthService
	metrics *AuthMetrics
}

// NewAuthMetricsService constructs the counting wrapper.
func NewAuthMetricsService(metrics *AuthMetrics) AuthServiceWrapper {
	return &AuthMetricsService{metrics: metrics}
}

func (s *AuthMetricsService) Register(ctx context.Context, req models.AuthRequest) (models.Credential, error) {
	started := time.Now()
	credential, err := s.inner.Register(ctx, req)
	s.metrics.observe(opRegister, started, err)
	return credential, err
}

func (s *AuthMetricsService) Login(ctx context.Context, req models.AuthRequest) (models.Token, error) {
	started := time.Now()
	token, err := s.inner.Login(ctx, req)
	s.metrics.observe(opLogin, started, err)
	return token, err
}

func (s *AuthMetricsService) ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) error {
	started := time.Now()
	err := s.inner.ForgotPassword(ctx, req)
	s.metrics.observe(opForgotPassword, started, err)
	return err
}

func (s *AuthMetricsService) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	started := time.Now()
	err := s.inner.ResetPassword(ctx, req)
	s.metrics.observe(opResetPassword, started, err)
	return err
}

func (s *AuthMetricsService) ListAccounts(ctx context.Context, filter models.CredentialFilter) ([]models.Credential, error) {
	started := time.Now()
	credentials, err := s.inner.ListAccounts(ctx, filter)
	s.metrics.observe(opListAccounts, started, err)
	return credentials, err
}

func (s *AuthMetricsService) Me(ctx context.Context, subjectID string) (models.Credential, error) {
	started := time.Now()
	credential, err := s.inner.Me(ctx, subjectID)
	s.metrics.observe(opMe, started, err)
	return credential, err
}

func (s *AuthMetricsService) Wrap(inner AuthService) AuthService {
	s.inner = inner
	return s
}
