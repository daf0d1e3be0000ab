package acl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/jsamuelsen/portfolio-service/internal/adapters/clients"
	"github.com/jsamuelsen/portfolio-service/internal/domain"
)

// BaseAdapter is embedded by service adapters. It sends requests through the
// instrumented client and maps failures to domain errors.
type BaseAdapter struct {
	client      *clients.Client
	serviceName string
}

// NewBaseAdapter creates a base adapter for serviceName.
func NewBaseAdapter(client *clients.Client, serviceName string) BaseAdapter {
	return BaseAdapter{
		client:      client,
		serviceName: serviceName,
	}
}

// Client returns the underlying HTTP client.
func (a *BaseAdapter) Client() *clients.Client {
	return a.client
}

// ServiceName returns the name of the downstream service.
func (a *BaseAdapter) ServiceName() string {
	return a.serviceName
}

// Send performs method on path. On a 2xx it returns the body, which the
// caller must close. Anything else is mapped to a domain error with ec; the
// Service field of ec is filled in from the adapter.
func (a *BaseAdapter) Send(ctx context.Context, method, path string, body io.Reader, ec ErrorContext) (io.ReadCloser, error) {
	ec.Service = a.serviceName

	var (
		resp *http.Response
		err  error
	)

	switch method {
	case http.MethodGet:
		resp, err = a.client.Get(ctx, path)
	case http.MethodPost:
		resp, err = a.client.Post(ctx, path, body)
	case http.MethodPut:
		resp, err = a.client.Put(ctx, path, body)
	case http.MethodPatch:
		resp, err = a.client.Patch(ctx, path, body)
	case http.MethodDelete:
		resp, err = a.client.Delete(ctx, path)
	default:
		return nil, fmt.Errorf("unsupported method %s", method)
	}

	if err != nil {
		return nil, MapHTTPError(nil, err, ec)
	}

	if resp.StatusCode >= http.StatusMultipleChoices {
		defer func() { _ = resp.Body.Close() }()

		return nil, MapHTTPError(resp, nil, ec)
	}

	return resp.Body, nil
}

// DecodeResponse decodes a JSON body into T and closes it.
func DecodeResponse[T any](body io.ReadCloser) (*T, error) {
	if body == nil {
		return nil, errors.New("response body is nil")
	}
	defer func() { _ = body.Close() }()

	var result T
	if err := json.NewDecoder(body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return &result, nil
}

// ValidatePositive rejects ids and counts that are zero or negative.
func ValidatePositive[T ~int | ~int64 | ~float64](value T, fieldName string) error {
	if value <= 0 {
		return domain.NewValidationError(fieldName, "must be positive")
	}

	return nil
}

// Translator converts one external DTO into a domain value, validating it.
type Translator[External any, Domain any] func(ext *External) (*Domain, error)

// TranslateSlice translates every item, stopping at the first failure.
func TranslateSlice[E any, D any](items []E, translate Translator[E, D]) ([]D, error) {
	result := make([]D, 0, len(items))

	for i := range items {
		translated, err := translate(&items[i])
		if err != nil {
			return nil, fmt.Errorf("translating item %d: %w", i, err)
		}

		result = append(result, *translated)
	}

	return result, nil
}
