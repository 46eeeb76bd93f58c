package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cafe-client/internal/common/logger"
	"cafe-client/internal/domain"
)

type stubTokens struct{ token string }

func (s stubTokens) Token() string { return s.token }

func newTestClient(url, token string) *Client {
	return NewClient(url, 5*time.Second, stubTokens{token: token}, logger.Nop())
}

func TestFetchMenu(t *testing.T) {
	t.Run("parses categories", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/menu/get", r.URL.Path)
			assert.Empty(t, r.Header.Get("Authorization"), "menu fetch is anonymous")
			_, _ = w.Write([]byte(`{"success":true,"data":{
				"hot":[{"id":1,"name":"Latte","type":"hot","price":"180.00","description":"","image_url":null,"is_available":1}],
				"cold":[{"id":2,"name":"Iced Mocha","type":"cold","price":"220.00","description":"","image_url":null,"is_available":1}]
			}}`))
		}))
		defer srv.Close()

		menu, err := newTestClient(srv.URL, "").FetchMenu(context.Background())
		require.NoError(t, err)
		require.Len(t, menu, 2)
		require.Len(t, menu["hot"], 1)
		assert.Equal(t, "Latte", menu["hot"][0].Name)

		unit, err := menu["hot"][0].UnitPrice()
		require.NoError(t, err)
		assert.Equal(t, 180.0, unit)
	})

	t.Run("success false maps to BackendError", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"success":false,"message":"menu unavailable"}`))
		}))
		defer srv.Close()

		_, err := newTestClient(srv.URL, "").FetchMenu(context.Background())
		var be *domain.BackendError
		require.ErrorAs(t, err, &be)
		assert.Equal(t, "menu unavailable", be.Msg)
	})
}

func TestBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-abc", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))
		_, _ = w.Write([]byte(`{"success":true,"data":[],"pagination":{"currentPage":1,"totalPages":1,"totalItems":0}}`))
	}))
	defer srv.Close()

	resp, err := newTestClient(srv.URL, "tok-abc").MyOrders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Pagination.CurrentPage)
}

func TestErrorMapping(t *testing.T) {
	t.Run("transport failure maps to NetworkError", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		_, err := newTestClient(srv.URL, "").FetchMenu(context.Background())
		var ne *domain.NetworkError
		assert.ErrorAs(t, err, &ne)
	})

	t.Run("http error status maps to BackendError with message", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"success":false,"message":"token expired"}`))
		}))
		defer srv.Close()

		err := newTestClient(srv.URL, "stale").CreateOrder(context.Background(), domain.OrderRequest{})
		var be *domain.BackendError
		require.ErrorAs(t, err, &be)
		assert.Equal(t, http.StatusUnauthorized, be.Status)
		assert.Equal(t, "token expired", be.Msg)
	})

	t.Run("unparseable body maps to BackendError", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html>gateway</html>`))
		}))
		defer srv.Close()

		_, err := newTestClient(srv.URL, "").FetchMenu(context.Background())
		var be *domain.BackendError
		assert.ErrorAs(t, err, &be)
	})
}

func TestSignin(t *testing.T) {
	t.Run("returns identity and token", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/auth/signin", r.URL.Path)
			_, _ = w.Write([]byte(`{"success":true,"message":"ok","data":{
				"userId":7,"name":"Nadia","email":"nadia@example.com","phone":"01712345678","role":"user","token":"tok-7"}}`))
		}))
		defer srv.Close()

		data, err := newTestClient(srv.URL, "").Signin(context.Background(), "nadia@example.com", "pw")
		require.NoError(t, err)
		assert.Equal(t, 7, data.UserID)
		assert.Equal(t, domain.RoleUser, data.Role)
		assert.Equal(t, "tok-7", data.Token)
	})

	t.Run("rejected credentials surface the backend message", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"success":false,"message":"wrong password"}`))
		}))
		defer srv.Close()

		_, err := newTestClient(srv.URL, "").Signin(context.Background(), "nadia@example.com", "nope")
		var be *domain.BackendError
		require.ErrorAs(t, err, &be)
		assert.Equal(t, "wrong password", be.Msg)
	})
}

func TestUpdateOrderStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/orders/status", r.URL.Path)
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	err := newTestClient(srv.URL, "admin-tok").UpdateOrderStatus(context.Background(), 42, "processing")
	assert.NoError(t, err)
}
