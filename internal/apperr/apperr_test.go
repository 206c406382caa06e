package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindsAndStatusCodes(t *testing.T) {
	tests := []struct {
		err    *Error
		kind   Kind
		status int
	}{
		{err: Validation("too short"), kind: KindValidation, status: http.StatusBadRequest},
		{err: Duplicate("already submitted"), kind: KindDuplicate, status: http.StatusConflict},
		{err: AuthExpired(), kind: KindAuthExpired, status: http.StatusUnauthorized},
		{err: Server("rejected"), kind: KindServer, status: http.StatusBadGateway},
		{err: Network("unreachable", nil), kind: KindNetwork, status: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.kind, tt.err.Kind)
		assert.Equal(t, tt.status, tt.err.StatusCode())
		assert.True(t, Is(tt.err, tt.kind))
	}
}

func TestIsMatchesThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("refresh failed: %w", Network("connection refused", errors.New("dial tcp")))

	assert.True(t, Is(wrapped, KindNetwork))
	assert.False(t, Is(wrapped, KindValidation))
	assert.False(t, Is(errors.New("plain"), KindNetwork))
	assert.False(t, Is(nil, KindNetwork))
}

func TestUnwrapExposesCause(t *testing.T) {
	cause := errors.New("dial tcp: timeout")
	err := Network("could not reach the server", cause)

	assert.True(t, errors.Is(err, cause))
}

func TestServerDefaultMessage(t *testing.T) {
	err := Server("")
	assert.NotEmpty(t, err.Message, "server rejections always carry a displayable message")
}

func TestUserMessage(t *testing.T) {
	require.Equal(t, "too short", UserMessage(Validation("too short")))
	assert.NotEmpty(t, UserMessage(errors.New("internal detail")), "unknown errors get a generic message")
	assert.NotContains(t, UserMessage(errors.New("pq: relation does not exist")), "pq:", "internals never leak to the user")
}
