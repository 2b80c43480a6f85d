package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"hotelpos/config"
	"hotelpos/infras/jwt"
	jwtMocks "hotelpos/infras/jwt/mocks"
	otelMocks "hotelpos/infras/otel/mocks"
	"hotelpos/permissions"
	"hotelpos/shared/constant"
	"hotelpos/shared/principal"
	"hotelpos/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var testPermissions = &permissions.PermissionData{
	Endpoints: []permissions.Permission{
		{Path: "/v1/auth/login", Method: http.MethodPost, Skip: true},
		{Path: "/v1/rooms", Method: http.MethodGet, Permissions: []string{}},
		{Path: "/v1/rooms", Method: http.MethodPost, Permissions: []string{constant.RoleAdmin}},
		{Path: "/v1/stays/{id}/checkout", Method: http.MethodPost, Permissions: []string{constant.RoleAdmin, constant.RoleReceptionist}},
	},
}

func newRouter(jwtService jwt.JWT, cfg *config.Config) (http.Handler, *principal.Principal) {
	authRole := middleware.NewAuthRoleMiddleware(jwtService, otelMocks.NewOtel(), testPermissions, cfg)

	seen := &principal.Principal{}
	ok := func(w http.ResponseWriter, r *http.Request) {
		*seen = principal.FromContext(r.Context())

		w.WriteHeader(http.StatusOK)
	}

	router := chi.NewRouter()
	router.Group(func(r chi.Router) {
		r.Use(authRole.APIKey, authRole.Auth, authRole.RBAC)

		r.Route("/v1", func(r chi.Router) {
			r.Post("/auth/login", ok)
			r.Route("/rooms", func(r chi.Router) {
				r.Get("/", ok)
				r.Post("/", ok)
			})
			r.Post("/stays/{id}/checkout", ok)
		})
	})

	return router, seen
}

func TestAuthRole(t *testing.T) {
	cashier := &jwt.Claims{UserID: "u-2", Username: "caisse", Role: constant.RoleCashier, TokenID: "t-2"}
	receptionist := &jwt.Claims{UserID: "u-3", Username: "reception", Role: constant.RoleReceptionist, TokenID: "t-3"}

	tests := []struct {
		name       string
		method     string
		path       string
		header     string
		mock       func(m *jwtMocks.MockJWT)
		wantCode   int
		wantCaller string
	}{
		{
			name:     "public route needs no token",
			method:   http.MethodPost,
			path:     "/v1/auth/login",
			mock:     func(_ *jwtMocks.MockJWT) {},
			wantCode: http.StatusOK,
		},
		{
			name:     "missing header",
			method:   http.MethodGet,
			path:     "/v1/rooms",
			mock:     func(_ *jwtMocks.MockJWT) {},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "malformed header",
			method:   http.MethodGet,
			path:     "/v1/rooms",
			header:   "Token abc",
			mock:     func(_ *jwtMocks.MockJWT) {},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:   "expired token",
			method: http.MethodGet,
			path:   "/v1/rooms",
			header: "Bearer expired",
			mock: func(m *jwtMocks.MockJWT) {
				m.EXPECT().ValidateToken("expired", jwt.AccessToken).Return(nil, jwt.ErrExpiredToken)
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:   "claims without username",
			method: http.MethodGet,
			path:   "/v1/rooms",
			header: "Bearer partial",
			mock: func(m *jwtMocks.MockJWT) {
				m.EXPECT().ValidateToken("partial", jwt.AccessToken).Return(&jwt.Claims{UserID: "u-9"}, nil)
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:   "any authenticated role",
			method: http.MethodGet,
			path:   "/v1/rooms/",
			header: "Bearer cashier",
			mock: func(m *jwtMocks.MockJWT) {
				m.EXPECT().ValidateToken("cashier", jwt.AccessToken).Return(cashier, nil)
			},
			wantCode:   http.StatusOK,
			wantCaller: "caisse",
		},
		{
			name:   "role not allowed",
			method: http.MethodPost,
			path:   "/v1/rooms/",
			header: "Bearer reception",
			mock: func(m *jwtMocks.MockJWT) {
				m.EXPECT().ValidateToken("reception", jwt.AccessToken).Return(receptionist, nil)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name:   "role allowed on parameterised route",
			method: http.MethodPost,
			path:   "/v1/stays/s-1/checkout",
			header: "Bearer reception",
			mock: func(m *jwtMocks.MockJWT) {
				m.EXPECT().ValidateToken("reception", jwt.AccessToken).Return(receptionist, nil)
			},
			wantCode:   http.StatusOK,
			wantCaller: "reception",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			jwtService := jwtMocks.NewMockJWT(ctrl)
			tt.mock(jwtService)

			router, seen := newRouter(jwtService, &config.Config{})

			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.header != "" {
				req.Header.Set(constant.RequestHeaderAuthorization, tt.header)
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantCaller, seen.Username)
		})
	}
}

func TestAPIKey(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.APIKey = "internal-key"

	t.Run("valid key acts as system", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		router, seen := newRouter(jwtMocks.NewMockJWT(ctrl), cfg)

		req := httptest.NewRequest(http.MethodPost, "/v1/rooms/", nil)
		req.Header.Set(constant.RequestHeaderAPIKey, "internal-key")

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, principal.System, *seen)
	})

	t.Run("wrong key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		router, _ := newRouter(jwtMocks.NewMockJWT(ctrl), cfg)

		req := httptest.NewRequest(http.MethodPost, "/v1/rooms/", nil)
		req.Header.Set(constant.RequestHeaderAPIKey, "guess")

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
