package restyutil

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/require"
)

type memoryOutput struct {
	lock     sync.Mutex
	messages map[string]string
}

func (o *memoryOutput) Write(id string, contents string) {
	o.lock.Lock()
	defer o.lock.Unlock()
	o.messages[id] = contents
}

func TestFormatHeaders(t *testing.T) {
	headers := http.Header{}
	headers.Add("X-B", "2")
	headers.Add("X-A", "1")
	headers.Add("X-A", "one")

	require.Equal(t, "X-A: 1\nX-A: one\nX-B: 2", formatHeaders(headers))
	require.Equal(t, "", formatHeaders(http.Header{}))
}

func TestFormatRequestBody(t *testing.T) {
	require.Equal(t, "<NO BODY>", formatRequestBody(nil))

	get := httptest.NewRequest(http.MethodGet, "/page", nil)
	get.GetBody = func() (io.ReadCloser, error) { return nil, nil }
	require.Equal(t, "<NO BODY>", formatRequestBody(get))

	post := httptest.NewRequest(http.MethodPost, "/page", nil)
	post.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(strings.NewReader(`{"url":"x"}`)), nil
	}
	require.Equal(t, `{"url":"x"}`, formatRequestBody(post))
}

func TestInstrumentClient(t *testing.T) {
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer slog.SetDefault(previous)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Fixture", "yes")
		_, _ = w.Write([]byte("fixture body"))
	}))
	defer server.Close()

	out := &memoryOutput{messages: map[string]string{}}
	client := resty.New()
	InstrumentClient(client, nil, out)

	res, err := client.R().Get(server.URL + "/page")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode())

	require.Len(t, out.messages, 1)
	message := out.messages["1"]
	require.Contains(t, message, "GET "+server.URL+"/page")
	require.Contains(t, message, "X-Fixture: yes")
	require.Contains(t, message, "<NO BODY>")
	require.True(t, strings.HasSuffix(message, "fixture body"))
}

func TestInstrumentClientTransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	link := server.URL
	server.Close()

	client := resty.New()
	InstrumentClient(client, nil, nil)

	_, err := client.R().Get(link)
	require.Error(t, err)
}

func TestFilesystemOutput(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "resty")
	require.NoError(t, os.MkdirAll(dir, 0750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "stale"), []byte("old"), 0600))

	out, err := NewFilesystemOutput(dir)
	require.NoError(t, err)
	out.Write("7", "contents")

	_, err = os.Stat(filepath.Join(dir, "stale"))
	require.True(t, os.IsNotExist(err))

	written, err := os.ReadFile(filepath.Join(dir, "7"))
	require.NoError(t, err)
	require.Equal(t, "contents", string(written))
}
