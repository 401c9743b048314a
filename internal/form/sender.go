package form

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	retrygo "github.com/avast/retry-go/v4"
	"github.com/google/uuid"

	"github.com/dongycare/checker-backend/internal/entity"
	pkgretry "github.com/dongycare/checker-backend/internal/pkg/retry"
	pkghttp "github.com/dongycare/checker-backend/pkg/http"
)

const analyzeEndpoint = "/api/analyze"

// TransportError is a non-2xx relay answer whose body carried no
// usable error envelope.
type TransportError struct {
	Status int
	Body   []byte
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("relay returned HTTP %d", e.Status)
}

// RelayError is the message from the relay's {"error": ...} envelope.
type RelayError struct {
	Message string
}

func (e *RelayError) Error() string {
	return e.Message
}

// HTTPSender posts assembled requests to the relay with exponential
// backoff. Connection failures and 5xx answers are retried; 4xx
// answers are terminal on the first attempt.
type HTTPSender struct {
	client   *http.Client
	baseURL  string
	retryCfg *pkgretry.Config
}

func NewHTTPSender(baseURL string, retryCfg *pkgretry.Config, opts ...pkghttp.Option) *HTTPSender {
	if retryCfg == nil {
		retryCfg = pkgretry.DefaultConfig()
	}
	return &HTTPSender{
		client:   pkghttp.New(opts...),
		baseURL:  baseURL,
		retryCfg: retryCfg,
	}
}

func retryable(err error) bool {
	var netErr *pkghttp.NetworkError
	if errors.As(err, &netErr) {
		return true
	}

	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return transportErr.Status >= http.StatusInternalServerError
	}

	return false
}

// Send posts the request and returns the relay's 2xx body verbatim.
// All attempts of one Send share a single X-Request-ID.
func (s *HTTPSender) Send(ctx context.Context, req *entity.AnalyzeRequest) ([]byte, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	requestID := uuid.NewString()

	var raw []byte
	err = retrygo.Do(
		func() error {
			httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+analyzeEndpoint, bytes.NewReader(payload))
			if err != nil {
				return retrygo.Unrecoverable(fmt.Errorf("create request: %w", err))
			}
			httpReq.Header.Set("Content-Type", "application/json")
			httpReq.Header.Set("X-Request-ID", requestID)

			resp, err := s.client.Do(httpReq)
			if err != nil {
				return &pkghttp.NetworkError{Err: err}
			}
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			if err != nil {
				return &pkghttp.NetworkError{Err: err}
			}

			if resp.StatusCode < 200 || resp.StatusCode >= 300 {
				return &TransportError{Status: resp.StatusCode, Body: body}
			}

			if !json.Valid(body) {
				return retrygo.Unrecoverable(fmt.Errorf("%w: not valid JSON", entity.ErrMalformedResponse))
			}

			raw = body
			return nil
		},
		append(s.retryCfg.ToOptions(),
			retrygo.Context(ctx),
			retrygo.RetryIf(retryable),
		)...,
	)
	if err != nil {
		return nil, normalizeSendError(err)
	}

	return raw, nil
}

// normalizeSendError promotes a relay error envelope to a RelayError
// so callers see the server's message rather than a bare status code.
func normalizeSendError(err error) error {
	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		return err
	}

	var envelope struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(transportErr.Body, &envelope) == nil && envelope.Error != "" {
		return &RelayError{Message: envelope.Error}
	}

	return transportErr
}
