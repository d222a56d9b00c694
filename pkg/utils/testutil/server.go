package testutil

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// UpstreamServer is a fake upstream HTTP service that replies with a fixed
// response and records the requests it received.
type UpstreamServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []*http.Request
}

// NewUpstreamServer starts a server replying with status, contentType and body
// to every request. It is closed when the test ends.
func NewUpstreamServer(t *testing.T, status int, contentType string, body []byte) *UpstreamServer {
	t.Helper()

	s := &UpstreamServer{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		recorded := r.Clone(r.Context())
		recorded.Body = io.NopCloser(bytes.NewReader(data))

		s.mu.Lock()
		s.requests = append(s.requests, recorded)
		s.mu.Unlock()

		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(status)
		_, _ = w.Write(body)
	}))
	t.Cleanup(s.Close)

	return s
}

// Requests returns the received requests in arrival order. Bodies are
// buffered and can be read after the handler returned.
func (x *UpstreamServer) Requests() []*http.Request {
	x.mu.Lock()
	defer x.mu.Unlock()
	return append([]*http.Request(nil), x.requests...)
}
