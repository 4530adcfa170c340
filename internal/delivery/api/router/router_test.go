package router

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"crm/internal/delivery/api/middleware"
	"crm/internal/delivery/api/router/handler"
	"crm/internal/delivery/api/validator"
	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/service"
	"crm/internal/infra/metrics"
	mockSvc "crm/internal/mocks/service"
	mockUC "crm/internal/mocks/usecase"
	"crm/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const validAccessToken = "access-ok"

type testServer struct {
	e       *echo.Echo
	userID  uuid.UUID
	auth    *mockUC.MockAuthUsecase
	profile *mockUC.MockProfileUsecase
	reviews *mockUC.MockReviewUsecase
}

func newTestServer(t *testing.T, limiter service.RateLimiter) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	reg := metrics.NewRegistry()
	m := metrics.New(reg)

	ts := &testServer{
		userID:  uuid.New(),
		auth:    mockUC.NewMockAuthUsecase(t),
		profile: mockUC.NewMockProfileUsecase(t),
		reviews: mockUC.NewMockReviewUsecase(t),
	}
	ts.auth.EXPECT().Authenticate(mock.Anything, validAccessToken).Return(ts.userID, nil).Maybe()
	ts.auth.EXPECT().Authenticate(mock.Anything, mock.MatchedBy(func(bearer string) bool {
		return bearer != validAccessToken
	})).Return(uuid.Nil, domainerrors.ErrUnauthorized.WrapMessage("access token rejected")).Maybe()

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	NewRouter(RouterParams{
		AuthHandler:    handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: ts.auth, Logger: logger}),
		UserHandler:    handler.NewUserHandler(handler.UserHandlerParams{AuthUC: ts.auth, ProfileUC: ts.profile, Logger: logger}),
		ReviewHandler:  handler.NewReviewHandler(handler.ReviewHandlerParams{ReviewUC: ts.reviews, Logger: logger}),
		AuthMiddleware: middleware.NewAuthMiddleware(ts.auth),
		RateLimitMiddleware: middleware.NewRateLimitMiddleware(middleware.RateLimitMiddlewareParams{
			Limiter: limiter,
			Metrics: m,
			Logger:  logger,
		}),
		Registry: reg,
	}).RegisterRoutes(e)

	ts.e = e

	return ts
}

func (ts *testServer) authResult() *usecase.AuthResult {
	return &usecase.AuthResult{
		AccessToken:  "a",
		RefreshToken: "r",
		TokenType:    "bearer",
		User:         &entity.PublicUser{ID: ts.userID, Username: "jane", Email: "jane@example.com"},
	}
}

func (ts *testServer) do(method, path, body, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	ts.e.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func TestRoutes_StatusAndCodes(t *testing.T) {
	longPassword := strings.Repeat("a", 73)

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		token      string
		setup      func(ts *testServer)
		wantStatus int
		wantCode   string
	}{
		{name: "health", method: http.MethodGet, path: "/health", wantStatus: http.StatusOK},
		{
			name: "signup created", method: http.MethodPost, path: "/auth/signup",
			body: `{"email":"jane@example.com","username":"jane","password":"secret1"}`,
			setup: func(ts *testServer) {
				ts.auth.EXPECT().Signup(mock.Anything, mock.Anything).Return(ts.authResult(), nil).Once()
			},
			wantStatus: http.StatusCreated,
		},
		{name: "signup short password", method: http.MethodPost, path: "/auth/signup", body: `{"email":"jane@example.com","username":"jane","password":"123"}`, wantStatus: http.StatusUnprocessableEntity, wantCode: "VALIDATION_FAILED"},
		{name: "signup password over bcrypt limit", method: http.MethodPost, path: "/auth/signup", body: `{"email":"jane@example.com","username":"jane","password":"` + longPassword + `"}`, wantStatus: http.StatusUnprocessableEntity, wantCode: "VALIDATION_FAILED"},
		{name: "signup bad email", method: http.MethodPost, path: "/auth/signup", body: `{"email":"nope","username":"jane","password":"secret1"}`, wantStatus: http.StatusUnprocessableEntity, wantCode: "VALIDATION_FAILED"},
		{name: "signup malformed body", method: http.MethodPost, path: "/auth/signup", body: `{"email":`, wantStatus: http.StatusUnprocessableEntity, wantCode: "VALIDATION_FAILED"},
		{
			name: "login ok", method: http.MethodPost, path: "/auth/login",
			body: `{"email":"jane@example.com","password":"secret1"}`,
			setup: func(ts *testServer) {
				ts.auth.EXPECT().Login(mock.Anything, &usecase.LoginInput{Email: "jane@example.com", Password: "secret1"}).Return(ts.authResult(), nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "login wrong password", method: http.MethodPost, path: "/auth/login",
			body: `{"email":"jane@example.com","password":"nope"}`,
			setup: func(ts *testServer) {
				ts.auth.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials).Once()
			},
			wantStatus: http.StatusUnauthorized, wantCode: "INVALID_CREDENTIALS",
		},
		{
			name: "logout", method: http.MethodPost, path: "/auth/logout", body: `{"refresh_token":"r"}`,
			setup: func(ts *testServer) {
				ts.auth.EXPECT().Logout(mock.Anything, "r").Return(&usecase.LogoutResult{Revoked: true}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{name: "refresh missing token", method: http.MethodPost, path: "/auth/refresh", body: `{}`, wantStatus: http.StatusUnprocessableEntity, wantCode: "VALIDATION_FAILED"},
		{
			name: "google url not configured", method: http.MethodGet, path: "/auth/google/url",
			setup: func(ts *testServer) {
				ts.auth.EXPECT().GoogleAuthURL(mock.Anything).Return(nil, domainerrors.ErrOAuthNotConfigured).Once()
			},
			wantStatus: http.StatusServiceUnavailable, wantCode: "OAUTH_NOT_CONFIGURED",
		},
		{name: "google callback missing state", method: http.MethodPost, path: "/auth/google/callback", body: `{"code":"c"}`, wantStatus: http.StatusUnprocessableEntity, wantCode: "VALIDATION_FAILED"},
		{name: "logout-all needs token", method: http.MethodPost, path: "/auth/logout-all", wantStatus: http.StatusUnauthorized, wantCode: "UNAUTHORIZED"},
		{
			name: "logout-all", method: http.MethodPost, path: "/auth/logout-all", token: validAccessToken,
			setup: func(ts *testServer) {
				ts.auth.EXPECT().LogoutAll(mock.Anything, ts.userID).Return(&usecase.LogoutAllResult{Revoked: 3}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{name: "profile bad token", method: http.MethodGet, path: "/user/profile", token: "stale", wantStatus: http.StatusUnauthorized, wantCode: "UNAUTHORIZED"},
		{
			name: "profile", method: http.MethodGet, path: "/user/profile", token: validAccessToken,
			setup: func(ts *testServer) {
				ts.profile.EXPECT().GetProfile(mock.Anything, ts.userID).Return(&entity.PublicUser{ID: ts.userID, Username: "jane"}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{name: "profile short username", method: http.MethodPut, path: "/user/profile", body: `{"username":"ab"}`, token: validAccessToken, wantStatus: http.StatusUnprocessableEntity, wantCode: "VALIDATION_FAILED"},
		{name: "profile empty username", method: http.MethodPut, path: "/user/profile", body: `{"username":""}`, token: validAccessToken, wantStatus: http.StatusUnprocessableEntity, wantCode: "VALIDATION_FAILED"},
		{
			name: "change password", method: http.MethodPut, path: "/user/change-password",
			body: `{"current_password":"secret1","new_password":"secret2"}`, token: validAccessToken,
			setup: func(ts *testServer) {
				ts.auth.EXPECT().ChangePassword(mock.Anything, ts.userID, mock.Anything).Return(nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{name: "change password over bcrypt limit", method: http.MethodPut, path: "/user/change-password", body: `{"current_password":"secret1","new_password":"` + longPassword + `"}`, token: validAccessToken, wantStatus: http.StatusUnprocessableEntity, wantCode: "VALIDATION_FAILED"},
		{
			name: "delete account", method: http.MethodDelete, path: "/user/delete", token: validAccessToken,
			setup: func(ts *testServer) {
				ts.auth.EXPECT().DeleteAccount(mock.Anything, ts.userID).Return(nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "dashboard stats", method: http.MethodGet, path: "/user/dashboard/stats", token: validAccessToken,
			setup: func(ts *testServer) {
				ts.reviews.EXPECT().DashboardStats(mock.Anything, ts.userID).Return(&usecase.DashboardStats{RatingDistribution: map[string]int64{}}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{name: "dashboard stats unauthenticated", method: http.MethodGet, path: "/user/dashboard/stats", wantStatus: http.StatusUnauthorized, wantCode: "UNAUTHORIZED"},
		{name: "scrape max too large", method: http.MethodPost, path: "/reviews/scrape", body: `{"url":"https://maps.google.com/x","max_reviews":500}`, token: validAccessToken, wantStatus: http.StatusUnprocessableEntity, wantCode: "VALIDATION_FAILED"},
		{
			name: "scrape", method: http.MethodPost, path: "/reviews/scrape", body: `{"url":"https://maps.google.com/x"}`, token: validAccessToken,
			setup: func(ts *testServer) {
				ts.reviews.EXPECT().ScrapeReviews(mock.Anything, ts.userID, mock.Anything).
					Return(&usecase.ScrapeResult{Success: true, Message: "Successfully scraped 0 reviews", Reviews: []*usecase.ReviewView{}}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "list reviews", method: http.MethodGet, path: "/reviews", token: validAccessToken,
			setup: func(ts *testServer) {
				ts.reviews.EXPECT().ListReviews(mock.Anything, ts.userID).
					Return([]*usecase.ReviewView{{ID: uuid.New(), UserID: ts.userID, Author: "Bob", Rating: 5, CreatedAt: time.Now().UTC()}}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{name: "list reviews unauthenticated", method: http.MethodGet, path: "/reviews", wantStatus: http.StatusUnauthorized, wantCode: "UNAUTHORIZED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t, nil)
			if tt.setup != nil {
				tt.setup(ts)
			}

			rec := ts.do(tt.method, tt.path, tt.body, tt.token)

			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			env := decode(t, rec)
			if tt.wantCode == "" {
				assert.Nil(t, env.Error)
				assert.NotEmpty(t, env.Data)
			} else {
				require.NotNil(t, env.Error)
				assert.Equal(t, tt.wantCode, env.Error.Code)
			}
			assert.NotEmpty(t, env.Meta.RequestID)
		})
	}
}

func TestRoutes_PassInputsThrough(t *testing.T) {
	ts := newTestServer(t, nil)

	ts.auth.EXPECT().Signup(mock.Anything, &usecase.SignupInput{
		Email:    "Jane@Example.com",
		Username: "jane",
		Password: "secret1",
	}).Return(ts.authResult(), nil).Once()

	rec := ts.do(http.MethodPost, "/auth/signup", `{"email":"Jane@Example.com","username":"jane","password":"secret1"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	var result usecase.AuthResult
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &result))
	assert.Equal(t, "bearer", result.TokenType)
	assert.Equal(t, ts.userID, result.User.ID)

	ts.profile.EXPECT().UpdateProfile(mock.Anything, ts.userID, mock.Anything).
		RunAndReturn(func(_ context.Context, userID uuid.UUID, in *usecase.UpdateProfileInput) (*entity.PublicUser, error) {
			require.NotNil(t, in.Username)
			require.NotNil(t, in.Phone)
			assert.Equal(t, "janet", *in.Username)
			assert.Equal(t, "0912", *in.Phone)
			assert.Nil(t, in.Company)

			return &entity.PublicUser{ID: userID, Username: *in.Username}, nil
		}).Once()

	rec = ts.do(http.MethodPut, "/user/profile", `{"username":"janet","phone":"0912"}`, validAccessToken)
	require.Equal(t, http.StatusOK, rec.Code)

	ts.auth.EXPECT().ChangePassword(mock.Anything, ts.userID, &usecase.ChangePasswordInput{
		CurrentPassword: "secret1",
		NewPassword:     "secret2",
	}).Return(nil).Once()

	rec = ts.do(http.MethodPut, "/user/change-password", `{"current_password":"secret1","new_password":"secret2"}`, validAccessToken)
	require.Equal(t, http.StatusOK, rec.Code)

	ts.auth.EXPECT().DeleteAccount(mock.Anything, ts.userID).Return(nil).Once()

	rec = ts.do(http.MethodDelete, "/user/delete", "", validAccessToken)
	require.Equal(t, http.StatusOK, rec.Code)

	ts.reviews.EXPECT().ScrapeReviews(mock.Anything, ts.userID, &usecase.ScrapeReviewsInput{URL: "https://maps.google.com/x"}).
		Return(&usecase.ScrapeResult{Success: true, Reviews: []*usecase.ReviewView{}}, nil).Once()

	rec = ts.do(http.MethodPost, "/reviews/scrape", `{"url":"https://maps.google.com/x"}`, validAccessToken)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRoutes_DashboardStats(t *testing.T) {
	ts := newTestServer(t, nil)
	ts.reviews.EXPECT().DashboardStats(mock.Anything, ts.userID).Return(&usecase.DashboardStats{
		TotalReviews:       3,
		AverageRating:      4.33,
		RatingDistribution: map[string]int64{"1": 0, "2": 0, "3": 0, "4": 2, "5": 1},
	}, nil).Once()

	rec := ts.do(http.MethodGet, "/user/dashboard/stats", "", validAccessToken)
	require.Equal(t, http.StatusOK, rec.Code)

	var stats usecase.DashboardStats
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &stats))
	assert.Equal(t, int64(3), stats.TotalReviews)
	assert.InDelta(t, 4.33, stats.AverageRating, 0.001)
	assert.Equal(t, int64(2), stats.RatingDistribution["4"])
}

func TestRoutes_RateLimitedAuthEndpoints(t *testing.T) {
	limiter := mockSvc.NewMockRateLimiter(t)
	limiter.EXPECT().Allow(mock.Anything, mock.Anything).
		Return(service.RateLimitResult{RetryAfter: time.Second}, nil).
		Times(6)

	ts := newTestServer(t, limiter)

	for _, path := range []string{"/auth/signup", "/auth/login", "/auth/refresh", "/auth/google", "/auth/google/callback"} {
		rec := ts.do(http.MethodPost, path, `{}`, "")
		assert.Equal(t, http.StatusTooManyRequests, rec.Code, path)
		assert.Equal(t, "1", rec.Header().Get("Retry-After"), path)
		assert.Equal(t, "RATE_LIMIT_EXCEEDED", decode(t, rec).Error.Code, path)
	}

	rec := ts.do(http.MethodGet, "/auth/google/url", "", "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	// Logout and protected routes are not limited.
	ts.auth.EXPECT().Logout(mock.Anything, "r").Return(&usecase.LogoutResult{Revoked: true}, nil).Once()
	rec = ts.do(http.MethodPost, "/auth/logout", `{"refresh_token":"r"}`, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	ts.profile.EXPECT().GetProfile(mock.Anything, ts.userID).Return(&entity.PublicUser{ID: ts.userID}, nil).Once()
	rec = ts.do(http.MethodGet, "/user/profile", "", validAccessToken)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRoutes_RefreshErrorsHideDetails(t *testing.T) {
	ts := newTestServer(t, nil)
	ts.auth.EXPECT().Refresh(mock.Anything, "r").
		Return(nil, domainerrors.ErrInvalidOrExpiredToken.WithDetails("hash mismatch")).Once()

	rec := ts.do(http.MethodPost, "/auth/refresh", `{"refresh_token":"r"}`, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	env := decode(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_OR_EXPIRED_TOKEN", env.Error.Code)
	assert.Nil(t, env.Error.Details)
}

func TestRoutes_Metrics(t *testing.T) {
	ts := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	ts.e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
