package uploader

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(serverURL string) *UploadcareClient {
	return New(Config{
		BaseURI:      serverURL,
		PublicKey:    "pub-key",
		PollInterval: time.Millisecond,
		MaxPolls:     5,
	}, testLogger())
}

func TestUploadFromURL_PollsUntilSuccess(t *testing.T) {
	polls := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/from_url/":
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "pub-key", r.URL.Query().Get("pub_key"))
			assert.Equal(t, "https://cdn.example/scan.pdf", r.URL.Query().Get("source_url"))
			assert.Equal(t, "1", r.URL.Query().Get("store"))
			assert.Equal(t, "Knack - 2021-03-05.pdf", r.URL.Query().Get("filename"))
			w.Write([]byte(`{"type":"token","token":"tok-1"}`))
		case "/from_url/status/":
			assert.Equal(t, "tok-1", r.URL.Query().Get("token"))
			polls++
			if polls < 3 {
				w.Write([]byte(`{"status":"progress"}`))
				return
			}
			w.Write([]byte(`{"status":"success","uuid":"file-uuid","size":2048,"is_image":false,"mime_type":"application/pdf","filename":"scan.pdf"}`))
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	file, err := newTestClient(server.URL).UploadFromURL(context.Background(), "https://cdn.example/scan.pdf", "Knack - 2021-03-05.pdf")

	require.NoError(t, err)
	assert.Equal(t, 3, polls)
	assert.Equal(t, "file-uuid", file.UUID)
	assert.Equal(t, int64(2048), file.Size)
	assert.Equal(t, "application/pdf", file.MimeType)
	assert.Equal(t, "scan.pdf", file.Filename)
}

func TestUploadFromURL_SynchronousFileInfo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/from_url/", r.URL.Path)
		w.Write([]byte(`{"type":"file_info","uuid":"inline-uuid","size":10,"is_image":true,"mime_type":"image/png"}`))
	}))
	defer server.Close()

	file, err := newTestClient(server.URL).UploadFromURL(context.Background(), "https://cdn.example/pic.png", "pic.png")

	require.NoError(t, err)
	assert.Equal(t, "inline-uuid", file.UUID)
	assert.True(t, file.IsImage)
	// No filename in the response falls back to the requested one.
	assert.Equal(t, "pic.png", file.Filename)
}

func TestUploadFromURL_SourceFetchFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/from_url/" {
			w.Write([]byte(`{"type":"token","token":"tok-2"}`))
			return
		}
		w.Write([]byte(`{"status":"error","error":"fetch failed: 404"}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).UploadFromURL(context.Background(), "https://cdn.example/missing.jpg", "missing.jpg")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch failed: 404")
}

func TestUploadFromURL_GivesUpAfterMaxPolls(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/from_url/" {
			w.Write([]byte(`{"type":"token","token":"tok-3"}`))
			return
		}
		w.Write([]byte(`{"status":"progress"}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).UploadFromURL(context.Background(), "https://cdn.example/huge.mp4", "huge.mp4")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "did not finish after 5 polls")
}

func TestUploadFromURL_StartRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "pub_key is invalid", http.StatusForbidden)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).UploadFromURL(context.Background(), "https://cdn.example/x", "x")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "start upload")
	assert.Contains(t, err.Error(), "403")
}

func TestUploadFromURL_ContextCancelledWhilePolling(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/from_url/" {
			w.Write([]byte(`{"type":"token","token":"tok-4"}`))
			return
		}
		w.Write([]byte(`{"status":"progress"}`))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestClient(server.URL).UploadFromURL(ctx, "https://cdn.example/x", "x")

	require.ErrorIs(t, err, context.Canceled)
}
