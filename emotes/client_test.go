package emotes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(
		WithBaseURL(srv.URL),
		WithHTTPClient(srv.Client()),
		WithLogger(zerolog.Nop()),
	)
}

func TestClient_FetchSet(t *testing.T) {
	var gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(sampleSetPayload))
	})

	set, err := c.FetchSet(context.Background(), "62cdd34e72a832540de95857")
	require.NoError(t, err)
	assert.Equal(t, "/v3/emote-sets/62cdd34e72a832540de95857", gotPath)
	assert.Equal(t, "Channel Emotes", set.Name)
	assert.Len(t, set.Emotes, 2)
}

func TestClient_FetchSet_ServerError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "oops", http.StatusInternalServerError)
	})

	_, err := c.FetchSet(context.Background(), "whatever")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestClient_FetchSet_BadPayload(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"name": "no id"}`))
	})

	_, err := c.FetchSet(context.Background(), "whatever")
	require.ErrorIs(t, err, ErrSchema)
}

func TestClient_FetchSet_ContextCancelled(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleSetPayload))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.FetchSet(ctx, "whatever")
	require.Error(t, err)
}
