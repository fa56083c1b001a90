package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clubverde/memberweb/internal/models"
)

func newStub(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL)
}

func TestClient_Profile(t *testing.T) {
	t.Parallel()

	c := newStub(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/auth/profile", r.URL.Path)
		require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(models.Profile{ID: "u1", MembershipLevel: "premium"})
	})

	p, err := c.Profile(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, "u1", p.ID)
	assert.Equal(t, "premium", p.MembershipLevel)
}

func TestClient_NonOKIsStatusError(t *testing.T) {
	t.Parallel()

	c := newStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"insufficient stock"}`))
	})

	_, err := c.CreateOrder(context.Background(), "tok", models.Order{})
	require.Error(t, err)

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusUnprocessableEntity, se.Code)
	assert.Contains(t, se.Body, "insufficient stock")
}

func TestClient_CreateProduct_SendsBodyAndToken(t *testing.T) {
	t.Parallel()

	c := newStub(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/products", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.Equal(t, "Bearer admin-tok", r.Header.Get("Authorization"))

		var p models.Product
		require.NoError(t, json.NewDecoder(r.Body).Decode(&p))
		p.ID = "new-id"
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(p)
	})

	created, err := c.CreateProduct(context.Background(), "admin-tok", models.Product{Name: "Gelato", Price: 9.5})
	require.NoError(t, err)
	assert.Equal(t, "new-id", created.ID)
	assert.Equal(t, "Gelato", created.Name)
}

func TestClient_DeleteUser_NoContent(t *testing.T) {
	t.Parallel()

	c := newStub(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/users/u9", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, c.DeleteUser(context.Background(), "tok", "u9"))
}

func TestClient_TransportErrorIsNotStatusError(t *testing.T) {
	t.Parallel()

	c := NewClient("http://127.0.0.1:1")
	_, err := c.ListProducts(context.Background(), "")
	require.Error(t, err)

	var se *StatusError
	assert.False(t, errors.As(err, &se))
}
