package zoom

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient(Config{
		AccountID:    "acc",
		ClientID:     "id",
		ClientSecret: "secret",
		BaseURL:      srv.URL,
		AuthURL:      srv.URL + "/oauth/token",
	}, zap.NewNop())
	return c, srv
}

func TestCreateMeeting(t *testing.T) {
	var tokenCalls int32

	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&tokenCalls, 1)
		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "id", user)
		assert.Equal(t, "secret", pass)
		w.Write([]byte(`{"access_token":"tok-1","expires_in":3600}`))
	})
	mux.HandleFunc("/users/me/meetings", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":123456,"join_url":"https://zoom.us/j/123456","start_url":"https://zoom.us/s/123456","password":"pw"}`))
	})

	c, _ := testClient(t, mux)

	start := time.Date(2026, 9, 2, 10, 0, 0, 0, time.UTC)
	m, err := c.CreateMeeting(context.Background(), "Photography Consultation - Jane", start, 60)
	require.NoError(t, err)
	assert.Equal(t, int64(123456), m.ID)
	assert.NotEmpty(t, m.JoinURL)

	// Second call reuses the cached token.
	_, err = c.CreateMeeting(context.Background(), "another", start.Add(time.Hour), 60)
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&tokenCalls))
}

func TestCreateMeeting_BadCredentials(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"reason":"Invalid client"}`))
	})

	c, _ := testClient(t, mux)

	_, err := c.CreateMeeting(context.Background(), "topic", time.Now(), 60)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestCreateMeeting_MissingCredentials(t *testing.T) {
	c := NewClient(Config{}, zap.NewNop())
	_, err := c.CreateMeeting(context.Background(), "topic", time.Now(), 60)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestCreateMeeting_ServerError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"access_token":"tok","expires_in":3600}`))
	})
	mux.HandleFunc("/users/me/meetings", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	c, _ := testClient(t, mux)

	_, err := c.CreateMeeting(context.Background(), "topic", time.Now(), 60)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestDeleteMeeting(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"access_token":"tok","expires_in":3600}`))
	})
	mux.HandleFunc("/meetings/123456", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	})

	c, _ := testClient(t, mux)
	assert.NoError(t, c.DeleteMeeting(context.Background(), 123456))
}

func TestTokenCache_RefreshesWhenExpired(t *testing.T) {
	calls := 0
	tc := newTokenCache(func(ctx context.Context) (string, time.Time, error) {
		calls++
		// Already inside the refresh margin, so every get refetches.
		return "tok", time.Now().Add(30 * time.Second), nil
	})

	_, err := tc.get(context.Background())
	require.NoError(t, err)
	_, err = tc.get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}
