package moxfield

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"mtg-utils/core/cardlist"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func newTestClient(serverURL string) *Client {
	c := NewClient(Config{BaseURL: serverURL + "/", PageSize: 2})
	c.rateLimiter = rate.NewLimiter(rate.Inf, 1)
	c.backoff = time.Millisecond
	return c
}

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient(Config{BaseURL: "https://api2.moxfield.com"})

	assert.Equal(t, 100, c.pageSize)
	assert.Equal(t, "mtg-utils/1.0", c.userAgent)
	assert.Equal(t, 30*time.Second, c.httpClient.Timeout)
	assert.NotNil(t, c.rateLimiter)
}

func TestClient_FetchDeck(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/decks/all/deck-1", r.URL.Path)
		assert.Equal(t, "mtg-utils/1.0", r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"name": "Superfriends",
			"boards": {
				"mainboard": {"count": 3, "cards": {
					"x1": {"quantity": 10, "card": {"name": "Plains"}},
					"x2": {"quantity": 1, "card": {"name": "Sol Ring"}},
					"x3": {"quantity": 2, "card": {"name": "Island"}}
				}},
				"commanders": {"count": 2, "cards": {
					"c2": {"quantity": 1, "card": {"name": "Ravos, Soultender"}},
					"c1": {"quantity": 1, "card": {"name": "Kraum, Ludevic's Opus"}}
				}}
			}
		}`)
	}))
	defer server.Close()

	list, err := newTestClient(server.URL).FetchDeck(context.Background(), "deck-1")
	require.NoError(t, err)

	// Lines sort as strings, so "10 Plains" precedes "2 Island"
	assert.Equal(t, cardlist.List{
		{Quantity: 1, Name: "Kraum, Ludevic's Opus"},
		{Quantity: 1, Name: "Ravos, Soultender"},
		{Quantity: 1, Name: "Sol Ring"},
		{Quantity: 10, Name: "Plains"},
		{Quantity: 2, Name: "Island"},
	}, list)
}

func TestClient_FetchBinder_Pagination(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "/v1/trade-binders/binder-1/search", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("pageSize"))

		switch r.URL.Query().Get("pageNumber") {
		case "1":
			fmt.Fprint(w, `{"pageNumber": 1, "totalPages": 2, "data": [
				{"quantity": 2, "card": {"name": "Snow-Covered Forest"}},
				{"quantity": 1, "card": {"name": "Forest"}}
			]}`)
		case "2":
			fmt.Fprint(w, `{"pageNumber": 2, "totalPages": 2, "data": [
				{"quantity": 3, "card": {"name": "Forest"}},
				{"quantity": 1, "card": {"name": "Aether Vial"}}
			]}`)
		default:
			w.WriteHeader(http.StatusBadRequest)
		}
	}))
	defer server.Close()

	list, err := newTestClient(server.URL).FetchBinder(context.Background(), "binder-1")
	require.NoError(t, err)

	assert.Equal(t, int32(2), calls.Load())
	assert.Equal(t, cardlist.List{
		{Quantity: 1, Name: "Aether Vial"},
		{Quantity: 4, Name: "Forest"},
		{Quantity: 2, Name: "Snow-Covered Forest"},
	}, list)
}

func TestClient_RetryOnServerError(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		fmt.Fprint(w, `{"totalPages": 1, "data": [{"quantity": 1, "card": {"name": "Sol Ring"}}]}`)
	}))
	defer server.Close()

	list, err := newTestClient(server.URL).FetchBinder(context.Background(), "b")
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
	assert.Equal(t, 1, list.Total())
}

func TestClient_NoRetryOnNotFound(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).FetchDeck(context.Background(), "missing")

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_MaxRetries(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).FetchDeck(context.Background(), "busy")
	assert.ErrorContains(t, err, "max retries exceeded")
	assert.Equal(t, int32(maxRetries+1), calls.Load())
}

func TestClient_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"boards": [`)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).FetchDeck(context.Background(), "deck")
	assert.ErrorContains(t, err, "failed to parse JSON")
}
