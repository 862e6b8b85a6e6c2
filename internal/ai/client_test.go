package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickAI/internal/config"
)

func newTestClient(srv *httptest.Server) *Client {
	return NewClient(config.AI{
		TextEndpoint:  srv.URL + "/chat/completions",
		TextAPIKey:    "text-key",
		TextModel:     "test-model",
		ImageEndpoint: srv.URL + "/text-to-image",
		ImageAPIKey:   "image-key",
		Timeout:       5 * time.Second,
	})
}

func TestClient_GenerateText(t *testing.T) {
	t.Run("returns first choice", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/chat/completions", r.URL.Path)
			assert.Equal(t, "Bearer text-key", r.Header.Get("Authorization"))

			var req chatRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "test-model", req.Model)
			assert.Equal(t, 800, req.MaxTokens)
			require.Len(t, req.Messages, 1)
			assert.Equal(t, "write about go", req.Messages[0].Content)

			w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"# Go"}}]}`))
		}))
		defer srv.Close()

		content, err := newTestClient(srv).GenerateText(context.Background(), "write about go", 800)

		require.NoError(t, err)
		assert.Equal(t, "# Go", content)
	})

	t.Run("provider error message is surfaced", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error":{"message":"quota exceeded"}}`))
		}))
		defer srv.Close()

		_, err := newTestClient(srv).GenerateText(context.Background(), "p", 100)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "429")
		assert.Contains(t, err.Error(), "quota exceeded")
	})

	t.Run("empty content", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"choices":[]}`))
		}))
		defer srv.Close()

		_, err := newTestClient(srv).GenerateText(context.Background(), "p", 100)

		assert.ErrorIs(t, err, ErrEmptyResponse)
	})
}

func TestClient_GenerateImage(t *testing.T) {
	t.Run("returns image bytes", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "image-key", r.Header.Get("x-api-key"))
			require.NoError(t, r.ParseMultipartForm(1<<20))
			assert.Equal(t, "a red fox", r.FormValue("prompt"))

			w.Header().Set("Content-Type", "image/png")
			w.Write([]byte{0x89, 'P', 'N', 'G'})
		}))
		defer srv.Close()

		img, err := newTestClient(srv).GenerateImage(context.Background(), "a red fox")

		require.NoError(t, err)
		assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, img)
	})

	t.Run("plain error body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":"prompt too long"}`))
		}))
		defer srv.Close()

		_, err := newTestClient(srv).GenerateImage(context.Background(), "p")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "prompt too long")
	})
}
