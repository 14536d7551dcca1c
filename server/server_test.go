package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/codewithdark-git/khanana/pkg/auth"
	"github.com/codewithdark-git/khanana/pkg/config"
	"github.com/codewithdark-git/khanana/pkg/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testEnv struct {
	server   *Server
	products *memProductStore
	orders   *memOrderStore
	reviews  *memReviewStore
	media    *memMediaStore
	settings *memSettingsStore
	journal  *memJournal
	notifier *recordingNotifier
	token    string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		products: &memProductStore{},
		orders:   &memOrderStore{},
		reviews:  &memReviewStore{},
		media:    &memMediaStore{},
		settings: &memSettingsStore{},
		journal:  &memJournal{},
		notifier: &recordingNotifier{},
	}

	cfg := &config.Config{
		Admin: config.AdminConfig{
			Email:      "admin@khanana.shop",
			Password:   "shawl-secret",
			SessionTTL: time.Hour,
		},
	}
	authenticator := auth.NewAuthenticator(&cfg.Admin, auth.NewMemoryTokenStore())

	env.server = NewServer(cfg, zap.NewNop(), Stores{
		Products: env.products,
		Orders:   env.orders,
		Reviews:  env.reviews,
		Media:    env.media,
		Settings: env.settings,
	}, nil, env.journal, authenticator, env.notifier)
	env.server.SetupRoutes()

	token, err := authenticator.Login(context.Background(), "admin@khanana.shop", "shawl-secret")
	require.NoError(t, err)
	env.token = token

	return env
}

type request struct {
	method string
	path   string
	body   interface{}
	token  string
}

func (e *testEnv) do(t *testing.T, req request) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var body *bytes.Buffer
	if req.body != nil {
		data, err := json.Marshal(req.body)
		require.NoError(t, err)
		body = bytes.NewBuffer(data)
	} else {
		body = bytes.NewBuffer(nil)
	}

	httpReq := httptest.NewRequest(req.method, req.path, body)
	httpReq.Header.Set("Content-Type", "application/json")
	if req.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.token)
	}

	rec := httptest.NewRecorder()
	e.server.Router().ServeHTTP(rec, httpReq)

	var envelope map[string]interface{}
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	}
	return rec, envelope
}

func (e *testEnv) seedProduct(p models.Product) {
	e.products.products = append(e.products.products, p)
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)
	rec, _ := env.do(t, request{method: http.MethodGet, path: "/health"})
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestLoginEndpoint(t *testing.T) {
	env := newTestEnv(t)

	t.Run("valid credentials return a token", func(t *testing.T) {
		rec, body := env.do(t, request{
			method: http.MethodPost,
			path:   "/api/admin/login",
			body:   map[string]string{"email": "admin@khanana.shop", "password": "shawl-secret"},
		})
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, true, body["success"])
		data := body["data"].(map[string]interface{})
		require.NotEmpty(t, data["token"])
	})

	t.Run("bad credentials are a 401 envelope", func(t *testing.T) {
		rec, body := env.do(t, request{
			method: http.MethodPost,
			path:   "/api/admin/login",
			body:   map[string]string{"email": "admin@khanana.shop", "password": "wrong"},
		})
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, false, body["success"])
	})
}

func TestAdminRoutesRequireToken(t *testing.T) {
	env := newTestEnv(t)
	env.seedProduct(models.Product{ID: "jet-black", Name: "Pathan Jet Black"})

	adminCalls := []request{
		{method: http.MethodPost, path: "/api/products", body: map[string]string{}},
		{method: http.MethodPut, path: "/api/products/jet-black", body: map[string]string{}},
		{method: http.MethodDelete, path: "/api/products/jet-black"},
		{method: http.MethodPatch, path: "/api/orders/x", body: map[string]string{}},
		{method: http.MethodDelete, path: "/api/orders/x"},
		{method: http.MethodPatch, path: "/api/reviews/x", body: map[string]string{}},
		{method: http.MethodDelete, path: "/api/reviews/x"},
		{method: http.MethodPut, path: "/api/settings", body: map[string]string{}},
		{method: http.MethodPost, path: "/api/media", body: map[string]string{}},
		{method: http.MethodDelete, path: "/api/media?id=x"},
		{method: http.MethodPost, path: "/api/notify-admin", body: map[string]string{}},
		{method: http.MethodGet, path: "/api/notifications"},
	}

	for _, call := range adminCalls {
		rec, _ := env.do(t, call)
		require.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", call.method, call.path)
	}

	// Storefront surface stays public.
	publicCalls := []request{
		{method: http.MethodGet, path: "/api/products"},
		{method: http.MethodGet, path: "/api/products/jet-black"},
		{method: http.MethodGet, path: "/api/reviews"},
		{method: http.MethodGet, path: "/api/settings"},
		{method: http.MethodGet, path: "/api/media"},
	}
	for _, call := range publicCalls {
		rec, _ := env.do(t, call)
		require.Equal(t, http.StatusOK, rec.Code, "%s %s", call.method, call.path)
	}
}
