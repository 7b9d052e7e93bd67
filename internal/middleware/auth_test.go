package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"content-platform/internal/domain"
	"content-platform/internal/middleware"
	"content-platform/internal/mocks"
)

// whoami reports the resolved principal's username, or "anonymous".
func whoami(c *gin.Context) {
	if p := middleware.GetPrincipal(c); p != nil {
		c.String(http.StatusOK, p.Username)
		return
	}
	c.String(http.StatusOK, "anonymous")
}

func authRouter(resolver middleware.PrincipalResolver, guards ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Authenticate(resolver))
	router.GET("/me", append(guards, whoami)...)
	return router
}

func get(router *gin.Engine, id, kind string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if id != "" {
		req.Header.Set(middleware.PrincipalIDHeader, id)
		req.Header.Set(middleware.PrincipalKindHeader, kind)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthenticate(t *testing.T) {
	alice := &domain.Principal{ID: uuid.NewString(), Kind: domain.PrincipalExternal, Username: "alice", Active: true}

	t.Run("resolves the forwarded principal", func(t *testing.T) {
		resolver := mocks.NewMockIdentityServiceInterface(t)
		resolver.EXPECT().Resolve(mock.Anything, alice.Ref()).Return(alice, nil)

		w := get(authRouter(resolver), alice.ID, "external")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "alice", w.Body.String())
	})

	t.Run("no headers is anonymous", func(t *testing.T) {
		w := get(authRouter(mocks.NewMockIdentityServiceInterface(t)), "", "")
		assert.Equal(t, "anonymous", w.Body.String())
	})

	t.Run("unknown kind is anonymous", func(t *testing.T) {
		w := get(authRouter(mocks.NewMockIdentityServiceInterface(t)), alice.ID, "robot")
		assert.Equal(t, "anonymous", w.Body.String())
	})

	t.Run("malformed id is anonymous without a lookup", func(t *testing.T) {
		for _, id := range []string{"not-a-uuid", "123", alice.ID + "x"} {
			w := get(authRouter(mocks.NewMockIdentityServiceInterface(t)), id, "local")

			assert.Equal(t, http.StatusOK, w.Code, id)
			assert.Equal(t, "anonymous", w.Body.String(), id)
		}
	})

	t.Run("id is resolved in canonical form", func(t *testing.T) {
		resolver := mocks.NewMockIdentityServiceInterface(t)
		resolver.EXPECT().Resolve(mock.Anything, alice.Ref()).Return(alice, nil)

		w := get(authRouter(resolver), strings.ToUpper(alice.ID), "external")

		assert.Equal(t, "alice", w.Body.String())
	})

	t.Run("unknown and inactive principals are anonymous", func(t *testing.T) {
		inactive := *alice
		inactive.Active = false
		resolver := mocks.NewMockIdentityServiceInterface(t)
		resolver.EXPECT().Resolve(mock.Anything, alice.Ref()).Return(&inactive, nil).Once()
		resolver.EXPECT().Resolve(mock.Anything, alice.Ref()).Return(nil, nil).Once()
		router := authRouter(resolver)

		assert.Equal(t, "anonymous", get(router, alice.ID, "external").Body.String())
		assert.Equal(t, "anonymous", get(router, alice.ID, "external").Body.String())
	})

	t.Run("resolver failure is a 500", func(t *testing.T) {
		resolver := mocks.NewMockIdentityServiceInterface(t)
		resolver.EXPECT().Resolve(mock.Anything, alice.Ref()).Return(nil, errors.New("connection reset"))

		w := get(authRouter(resolver), alice.ID, "external")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
	})
}

func TestRequireAuth(t *testing.T) {
	w := get(authRouter(mocks.NewMockIdentityServiceInterface(t), middleware.RequireAuth()), "", "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"authentication required"}`, w.Body.String())
}

func TestRequireAdmin(t *testing.T) {
	user := &domain.Principal{ID: uuid.NewString(), Kind: domain.PrincipalLocal, Username: "bob", Role: domain.RoleUser, Active: true}
	root := &domain.Principal{ID: uuid.NewString(), Kind: domain.PrincipalLocal, Username: "root", Role: domain.RoleAdmin, Active: true}
	// Admin role on an external principal grants nothing.
	outsider := &domain.Principal{ID: uuid.NewString(), Kind: domain.PrincipalExternal, Username: "ext", Role: domain.RoleAdmin, Active: true}

	tests := []struct {
		name      string
		principal *domain.Principal
		wantCode  int
	}{
		{"anonymous", nil, http.StatusUnauthorized},
		{"regular user", user, http.StatusForbidden},
		{"external admin role", outsider, http.StatusForbidden},
		{"local admin", root, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := mocks.NewMockIdentityServiceInterface(t)
			var id, kind string
			if tt.principal != nil {
				id, kind = tt.principal.ID, string(tt.principal.Kind)
				resolver.EXPECT().Resolve(mock.Anything, tt.principal.Ref()).Return(tt.principal, nil)
			}

			w := get(authRouter(resolver, middleware.RequireAdmin()), id, kind)

			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}
