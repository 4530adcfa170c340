package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"crm/internal/delivery/api/response"
	deliverycontext "crm/internal/delivery/context"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/service"
	"crm/internal/infra/metrics"
	mockSvc "crm/internal/mocks/service"
	mockUC "crm/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(newTestLogger()).HandleHTTPError

	return e
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorResponse {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return body
}

func TestErrorMiddleware(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantDetails any
	}{
		{
			name:        "validation error keeps details",
			err:         domainerrors.ErrValidationFailed.WithDetails("email: is required"),
			wantStatus:  http.StatusUnprocessableEntity,
			wantCode:    "VALIDATION_FAILED",
			wantDetails: "email: is required",
		},
		{
			name:       "wrapped app error",
			err:        errors.Wrap(domainerrors.ErrDuplicateEmail, "signup"),
			wantStatus: http.StatusConflict,
			wantCode:   "EMAIL_ALREADY_EXISTS",
		},
		{
			name:       "unauthorized drops details",
			err:        domainerrors.ErrUnauthorized.WithDetails("secret"),
			wantStatus: http.StatusUnauthorized,
			wantCode:   "UNAUTHORIZED",
		},
		{
			name:       "echo http error",
			err:        echo.NewHTTPError(http.StatusRequestEntityTooLarge, "Request Entity Too Large"),
			wantStatus: http.StatusRequestEntityTooLarge,
			wantCode:   "HTTP_ERROR",
		},
		{
			name:       "unclassified error",
			err:        errors.New("connection reset"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEcho()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			deliverycontext.SetRequestID(c, "req-1")

			e.HTTPErrorHandler(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantDetails, body.Error.Details)
			assert.Equal(t, "req-1", body.Meta.RequestID)
			assert.NotContains(t, rec.Body.String(), "connection reset")
		})
	}
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		header     string
		ucErr      error
		wantStatus int
		wantCode   string
		wantToken  string
	}{
		{name: "valid bearer", header: "Bearer good-token", wantStatus: http.StatusOK, wantToken: "good-token"},
		{name: "lowercase scheme", header: "bearer good-token", wantStatus: http.StatusOK, wantToken: "good-token"},
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized, wantCode: "UNAUTHORIZED"},
		{name: "wrong scheme", header: "Basic abc", wantStatus: http.StatusUnauthorized, wantCode: "UNAUTHORIZED"},
		{name: "empty token", header: "Bearer ", wantStatus: http.StatusUnauthorized, wantCode: "UNAUTHORIZED"},
		{
			name:       "rejected token",
			header:     "Bearer stale",
			ucErr:      domainerrors.ErrUnauthorized.WrapMessage("access token rejected: token is expired"),
			wantStatus: http.StatusUnauthorized,
			wantCode:   "UNAUTHORIZED",
			wantToken:  "stale",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := mockUC.NewMockAuthUsecase(t)
			if tt.wantToken != "" {
				returnedID := userID
				if tt.ucErr != nil {
					returnedID = uuid.Nil
				}
				uc.EXPECT().Authenticate(mock.Anything, tt.wantToken).Return(returnedID, tt.ucErr).Once()
			}

			e := newTestEcho()
			e.GET("/user/profile", func(c echo.Context) error {
				got, ok := deliverycontext.GetUserID(c)
				require.True(t, ok)
				assert.Equal(t, userID, got)

				return c.NoContent(http.StatusOK)
			}, NewAuthMiddleware(uc).Authenticate)

			req := httptest.NewRequest(http.MethodGet, "/user/profile", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rec).Error.Code)
			}
		})
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		result         service.RateLimitResult
		limiterErr     error
		wantStatus     int
		wantRetryAfter string
		wantLimited    float64
	}{
		{
			name:       "allowed",
			result:     service.RateLimitResult{Allowed: true, Remaining: 3},
			wantStatus: http.StatusOK,
		},
		{
			name:           "exhausted",
			result:         service.RateLimitResult{RetryAfter: 1500 * time.Millisecond},
			wantStatus:     http.StatusTooManyRequests,
			wantRetryAfter: "2",
			wantLimited:    1,
		},
		{
			name:       "limiter error fails open",
			limiterErr: errors.New("redis down"),
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limiter := mockSvc.NewMockRateLimiter(t)
			limiter.EXPECT().Allow(mock.Anything, "198.51.100.9:/auth/login").Return(tt.result, tt.limiterErr).Once()

			m := metrics.New(metrics.NewRegistry())
			mw := NewRateLimitMiddleware(RateLimitMiddlewareParams{Limiter: limiter, Metrics: m, Logger: newTestLogger()})

			e := newTestEcho()
			e.IPExtractor = echo.ExtractIPDirect()
			e.POST("/auth/login", func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			}, mw.Limit)

			req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
			req.RemoteAddr = "198.51.100.9:41234"
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantRetryAfter, rec.Header().Get("Retry-After"))
			assert.InDelta(t, tt.wantLimited, testutil.ToFloat64(m.RateLimitExceeded), 0)
		})
	}
}

func TestRateLimitMiddleware_IgnoresForwardingHeadersFromUntrustedPeers(t *testing.T) {
	limiter := mockSvc.NewMockRateLimiter(t)
	limiter.EXPECT().Allow(mock.Anything, "198.51.100.9:/auth/login").
		Return(service.RateLimitResult{Allowed: true}, nil).
		Times(3)

	mw := NewRateLimitMiddleware(RateLimitMiddlewareParams{Limiter: limiter, Logger: newTestLogger()})

	e := newTestEcho()
	e.IPExtractor = echo.ExtractIPDirect()
	e.POST("/auth/login", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, mw.Limit)

	spoofed := []string{"203.0.113.1", "203.0.113.2", "203.0.113.3"}
	for _, ip := range spoofed {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		req.RemoteAddr = "198.51.100.9:41234"
		req.Header.Set(echo.HeaderXForwardedFor, ip)
		req.Header.Set(echo.HeaderXRealIP, ip)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestRateLimitMiddleware_NoLimiter(t *testing.T) {
	mw := NewRateLimitMiddleware(RateLimitMiddlewareParams{Logger: newTestLogger()})

	e := newTestEcho()
	e.POST("/auth/signup", func(c echo.Context) error {
		return c.NoContent(http.StatusCreated)
	}, mw.Limit)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/signup", nil))

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestMetricsMiddleware(t *testing.T) {
	m := metrics.New(metrics.NewRegistry())

	e := newTestEcho()
	e.Use(NewMetricsMiddleware(m).Handle)
	e.GET("/reviews", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	e.POST("/auth/login", func(c echo.Context) error {
		return domainerrors.ErrInvalidCredentials
	})

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/reviews", nil))
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/reviews", nil))
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/auth/login", nil))

	assert.InDelta(t, 2, testutil.ToFloat64(m.HTTPRequests.WithLabelValues(http.MethodGet, "/reviews", "200")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.HTTPRequests.WithLabelValues(http.MethodPost, "/auth/login", "401")), 0)
}
