package acl

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/portfolio-service/internal/adapters/clients"
	"github.com/jsamuelsen/portfolio-service/internal/domain"
)

var toggleCtx = ErrorContext{Service: "todo-api", Operation: "toggle todo", Entity: domain.EntityTodo, ID: "4"}

func response(status int, body string) *http.Response {
	return &http.Response{StatusCode: status, Body: io.NopCloser(strings.NewReader(body))}
}

func TestMapHTTPError_Status(t *testing.T) {
	tests := []struct {
		name  string
		resp  *http.Response
		check func(error) bool
	}{
		{"404", response(http.StatusNotFound, ``), domain.IsNotFound},
		{"409", response(http.StatusConflict, `{"message":"duplicate"}`), domain.IsConflict},
		{"400", response(http.StatusBadRequest, `{}`), domain.IsValidation},
		{"401", response(http.StatusUnauthorized, ``), domain.IsForbidden},
		{"403", response(http.StatusForbidden, ``), domain.IsForbidden},
		{"429", response(http.StatusTooManyRequests, ``), domain.IsUnavailable},
		{"503", response(http.StatusServiceUnavailable, ``), domain.IsUnavailable},
		{"418", response(http.StatusTeapot, ``), domain.IsValidation},
		{"code wins below 500", response(http.StatusBadRequest, `{"code":"CONFLICT","message":"x"}`), domain.IsConflict},
		{"code ignored on 5xx", response(http.StatusInternalServerError, `{"code":"NOT_FOUND"}`), domain.IsUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := MapHTTPError(tt.resp, nil, toggleCtx)
			require.Error(t, err)
			assert.True(t, tt.check(err), "got %v", err)
		})
	}
}

func TestMapHTTPError_ValidationDetails(t *testing.T) {
	err := MapHTTPError(response(http.StatusUnprocessableEntity,
		`{"error":{"code":"","message":"bad","details":{"title":"title is required"}}}`), nil, toggleCtx)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "title", verr.Field)
	assert.Equal(t, "title is required", verr.Message)
}

func TestMapHTTPError_ClientErrors(t *testing.T) {
	err := MapHTTPError(nil, clients.ErrCircuitOpen, toggleCtx)
	assert.True(t, domain.IsUnavailable(err))
	assert.Contains(t, err.Error(), "circuit breaker open during toggle todo")

	err = MapHTTPError(nil, fmt.Errorf("%w: dial tcp: refused", clients.ErrMaxRetriesExceeded), toggleCtx)
	assert.True(t, domain.IsUnavailable(err))
	assert.Contains(t, err.Error(), "refused")

	err = MapHTTPError(nil, errors.New("eof"), toggleCtx)
	assert.True(t, domain.IsUnavailable(err))
}

func TestMapHTTPError_SuccessAndNil(t *testing.T) {
	require.NoError(t, MapHTTPError(response(http.StatusNoContent, ``), nil, toggleCtx))
	assert.True(t, domain.IsUnavailable(MapHTTPError(nil, nil, toggleCtx)))
}

func TestParseErrorResponse(t *testing.T) {
	nested := ParseErrorResponse(strings.NewReader(`{"error":{"code":"NOT_FOUND","message":"gone"}}`))
	require.NotNil(t, nested)
	assert.Equal(t, "NOT_FOUND", nested.GetCode())
	assert.Equal(t, "gone", nested.GetMessage())

	flat := ParseErrorResponse(strings.NewReader(`{"code":"CONFLICT","message":"dup"}`))
	require.NotNil(t, flat)
	assert.Equal(t, "CONFLICT", flat.GetCode())
	assert.Equal(t, "dup", flat.GetMessage())

	assert.Nil(t, ParseErrorResponse(strings.NewReader(`not json`)))
	assert.Nil(t, ParseErrorResponse(strings.NewReader(`{}`)))
	assert.Nil(t, ParseErrorResponse(nil))
}

func TestTranslateSlice(t *testing.T) {
	items := []externalTodo{{ID: 1, Title: "a"}, {ID: 2, Title: "b", Priority: 1}}

	got, err := TranslateSlice(items, translateTodo)
	require.NoError(t, err)
	assert.Equal(t, []domain.Todo{{ID: 1, Title: "a"}, {ID: 2, Title: "b", Priority: domain.PriorityMid}}, got)

	_, err = TranslateSlice([]externalTodo{{ID: 1}, {ID: -1}}, translateTodo)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "translating item 1")
}

func TestDecodeResponse(t *testing.T) {
	got, err := DecodeResponse[externalTodo](io.NopCloser(strings.NewReader(`{"id":3}`)))
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.ID)

	_, err = DecodeResponse[externalTodo](io.NopCloser(strings.NewReader(`{`)))
	require.Error(t, err)

	_, err = DecodeResponse[externalTodo](nil)
	require.Error(t, err)
}
