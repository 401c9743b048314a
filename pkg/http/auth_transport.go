package http

import "net/http"

// headerAuthTransport injects a static credential header into every
// outbound request. The header name is provider-specific (for the
// Gemini API it is "x-goog-api-key").
type headerAuthTransport struct {
	header    string
	value     string
	transport http.RoundTripper
}

func (t *headerAuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	reqCopy := req.Clone(req.Context())

	if t.value != "" {
		reqCopy.Header.Set(t.header, t.value)
	}

	return t.transport.RoundTrip(reqCopy)
}

// WithHeaderAuth attaches the credential under the given header name.
func WithHeaderAuth(header, value string) Option {
	return WithTransport(func(rt http.RoundTripper) http.RoundTripper {
		return &headerAuthTransport{
			header:    header,
			value:     value,
			transport: rt,
		}
	})
}
