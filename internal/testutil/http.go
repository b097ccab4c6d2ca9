package testutil

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
)

// NewRequest creates an HTTP request for testing.
func NewRequest(method, target string) *http.Request {
	return httptest.NewRequest(method, target, nil)
}

// ResponseRecorder wraps httptest.ResponseRecorder with helper methods.
type ResponseRecorder struct {
	*httptest.ResponseRecorder
}

// NewRecorder creates a new ResponseRecorder.
func NewRecorder() *ResponseRecorder {
	return &ResponseRecorder{httptest.NewRecorder()}
}

// Serve runs req through h and returns the recorded response.
func Serve(h http.Handler, method, target string) *ResponseRecorder {
	rec := NewRecorder()
	h.ServeHTTP(rec, NewRequest(method, target))
	return rec
}

// AssertStatus checks the response status code.
func (r *ResponseRecorder) AssertStatus(t interface{ Errorf(string, ...any) }, expected int) {
	if r.Code != expected {
		t.Errorf("status code: got %d, want %d", r.Code, expected)
	}
}

// AssertBody checks the response body matches exactly.
func (r *ResponseRecorder) AssertBody(t interface{ Errorf(string, ...any) }, expected string) {
	if got := r.Body.String(); got != expected {
		t.Errorf("body: got %q, want %q", got, expected)
	}
}

// AssertContains checks if the response body contains the expected string.
func (r *ResponseRecorder) AssertContains(t interface{ Errorf(string, ...any) }, expected string) {
	if !strings.Contains(r.Body.String(), expected) {
		t.Errorf("response body does not contain %q", expected)
	}
}

// AssertContentType checks the Content-Type header media type, ignoring parameters.
func (r *ResponseRecorder) AssertContentType(t interface{ Errorf(string, ...any) }, expected string) {
	ct := r.Header().Get("Content-Type")
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	if ct != expected {
		t.Errorf("Content-Type: got %q, want %q", ct, expected)
	}
}

// ReadBody drains and closes a live response body, for tests that go over a
// real listener instead of a recorder.
func ReadBody(t interface{ Fatalf(string, ...any) }, resp *http.Response) string {
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return string(b)
}
