package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"content-platform/internal/domain"
	"content-platform/internal/middleware"
	"content-platform/internal/mocks"
	"content-platform/internal/validator"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testServer struct {
	identity      *mocks.MockIdentityServiceInterface
	subscriptions *mocks.MockSubscriptionServiceInterface
	articles      *mocks.MockArticleServiceInterface
	votes         *mocks.MockVoteServiceInterface
	comments      *mocks.MockCommentServiceInterface
	reports       *mocks.MockReportServiceInterface

	// principal is attached to every request when set.
	principal *domain.Principal
	router    *gin.Engine
}

func newTestServer(t *testing.T) *testServer {
	s := &testServer{
		identity:      mocks.NewMockIdentityServiceInterface(t),
		subscriptions: mocks.NewMockSubscriptionServiceInterface(t),
		articles:      mocks.NewMockArticleServiceInterface(t),
		votes:         mocks.NewMockVoteServiceInterface(t),
		comments:      mocks.NewMockCommentServiceInterface(t),
		reports:       mocks.NewMockReportServiceInterface(t),
	}
	s.router = gin.New()
	s.router.Use(middleware.RequestID(), func(c *gin.Context) {
		if s.principal != nil {
			c.Set(middleware.PrincipalKey, s.principal)
		}
		c.Next()
	})
	RegisterRoutes(s.router, Handlers{
		Identity:      NewIdentityHandler(s.identity),
		Subscriptions: NewSubscriptionHandler(s.subscriptions),
		Articles:      NewArticleHandler(s.articles),
		Votes:         NewVoteHandler(s.votes),
		Comments:      NewCommentHandler(s.comments),
		Reports:       NewReportHandler(s.reports),
	})
	return s
}

func (s *testServer) as(p *domain.Principal) *testServer {
	s.principal = p
	return s
}

func (s *testServer) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body
}

func user(username string) *domain.Principal {
	return &domain.Principal{
		ID:       uuid.NewString(),
		Kind:     domain.PrincipalLocal,
		Username: username,
		Role:     domain.RoleUser,
		Active:   true,
	}
}

func adminUser() *domain.Principal {
	p := user("root")
	p.Role = domain.RoleAdmin
	return p
}

func TestRespondError(t *testing.T) {
	fieldErr := validator.NewValidator().ValidateID("id", "nope")

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{"validation", domain.Validationf("bad input"), http.StatusBadRequest, "bad input"},
		{"invalid operation", domain.InvalidOperationf("cannot subscribe to yourself"), http.StatusBadRequest, "cannot subscribe to yourself"},
		{"invalid state", domain.InvalidStatef("already approved"), http.StatusBadRequest, "already approved"},
		{"not found", domain.NotFoundf("article not found"), http.StatusNotFound, "article not found"},
		{"conflict", domain.Conflictf("username already taken"), http.StatusConflict, "username already taken"},
		{"forbidden", domain.Forbiddenf("admin access required"), http.StatusForbidden, "admin access required"},
		{"internal", domain.Internal("query", errors.New("pq: secret detail")), http.StatusInternalServerError, "internal server error"},
		{"plain error", errors.New("boom"), http.StatusInternalServerError, "internal server error"},
		{"field errors", fieldErr, http.StatusBadRequest, "validation failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.GET("/x", func(c *gin.Context) { respondError(c, tt.err) })

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			body := decode(t, w)
			assert.Equal(t, tt.wantError, body["error"])
			assert.NotContains(t, w.Body.String(), "secret detail")
		})
	}

	t.Run("field map is included", func(t *testing.T) {
		router := gin.New()
		router.GET("/x", func(c *gin.Context) { respondError(c, fieldErr) })

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

		assert.JSONEq(t, `{"error":"validation failed","fields":{"id":"invalid_id"}}`, w.Body.String())
	})
}

func TestPageFromQuery(t *testing.T) {
	tests := []struct {
		query   string
		want    domain.Page
		wantErr bool
	}{
		{"", domain.Page{}, false},
		{"page=3&limit=15", domain.Page{Number: 3, Size: 15}, false},
		{"limit=1000", domain.Page{Size: 1000}, false},
		{"page=abc", domain.Page{}, true},
		{"limit=-1", domain.Page{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/?"+tt.query, nil)

			page, err := pageFromQuery(c)

			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, page)
		})
	}
}

func TestRoutes_AuthGuards(t *testing.T) {
	s := newTestServer(t)

	protected := []struct{ method, path string }{
		{http.MethodPost, "/api/news/newpost"},
		{http.MethodPost, "/api/news/" + uuid.NewString() + "/upvote"},
		{http.MethodPost, "/api/news/" + uuid.NewString() + "/report"},
		{http.MethodPatch, "/api/userprofile"},
		{http.MethodGet, "/api/userprofile/overview"},
		{http.MethodPost, "/api/users/" + uuid.NewString() + "/subscribe"},
		{http.MethodGet, "/api/news/saved"},
		{http.MethodGet, "/api/admin/reports"},
	}
	for _, r := range protected {
		w := s.do(r.method, r.path, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", r.method, r.path)
	}

	s.as(user("bob"))
	for _, path := range []string{"/api/admin/articles", "/api/admin/reports/counts"} {
		assert.Equal(t, http.StatusForbidden, s.do(http.MethodGet, path, "").Code, path)
	}
}
