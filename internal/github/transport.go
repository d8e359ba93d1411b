package github

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
)

type responseBodyKey struct{}

// responseBody holds the raw body of a failed response for one request
type responseBody struct {
	data []byte
}

func withResponseBody(ctx context.Context) (context.Context, *responseBody) {
	rb := &responseBody{}
	return context.WithValue(ctx, responseBodyKey{}, rb), rb
}

func (rb *responseBody) String() string {
	if rb == nil {
		return ""
	}
	return strings.TrimSpace(string(rb.data))
}

// bodyCaptureTransport records non-2xx response bodies so transport errors
// can report what the server sent. The body is restored for go-gh to parse.
type bodyCaptureTransport struct {
	base http.RoundTripper
}

func (t *bodyCaptureTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}

	resp, err := base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		capture(req.Context(), resp)
	}
	return resp, nil
}

func capture(ctx context.Context, resp *http.Response) {
	rb, ok := ctx.Value(responseBodyKey{}).(*responseBody)
	if !ok || resp.Body == nil {
		return
	}

	data, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	resp.Body = io.NopCloser(bytes.NewReader(data))
	if err != nil {
		return
	}
	rb.data = data
}
