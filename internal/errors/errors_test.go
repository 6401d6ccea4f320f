package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		wantMsg  string
		wantKind Kind
	}{
		{"network", "W001", "Request did not complete", KindNetwork},
		{"status", "W002", "Request failed", KindStatus},
		{"decode", "W003", "Response was not valid JSON", KindDecode},
		{"config", "W010", "Invalid configuration", KindConfig},
		{"unknown", "W999", "Unknown error", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code)
			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.wantMsg, err.Message)
			assert.Equal(t, tt.wantKind, err.Kind)
		})
	}
}

func TestErrorMessageIsUserFacing(t *testing.T) {
	err := New("W002").WithMessage("Quantity exceeds stock").WithRequest("POST", "/api/products/1/adjust", 400)

	assert.Equal(t, "Quantity exceeds stock", err.Error())
	assert.Equal(t, "W002: Quantity exceeds stock (POST /api/products/1/adjust -> 400)", err.String())
}

func TestUnwrapAndAs(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := fmt.Errorf("loading products: %w", New("W001").Wrap(cause))

	assert.True(t, Is(err, cause))
	e, ok := As(err)
	require.True(t, ok)
	assert.Equal(t, KindNetwork, e.Kind)
	assert.True(t, IsKind(err, KindNetwork))
	assert.False(t, IsKind(err, KindStatus))
	assert.False(t, IsKind(cause, KindNetwork))
}

func TestFromError(t *testing.T) {
	assert.Nil(t, FromError(nil, "W001"))

	existing := New("W003")
	assert.Same(t, existing, FromError(fmt.Errorf("wrapped: %w", existing), "W001"))

	plain := stderrors.New("boom")
	e := FromError(plain, "W001")
	assert.Equal(t, "W001", e.Code)
	assert.Same(t, plain, e.Unwrap())
}

func TestFormat(t *testing.T) {
	DisableColors()
	defer EnableColors()

	out := New("W001").WithRequest("GET", "http://localhost/api/products", 0).Wrap(stderrors.New("dial tcp: connection refused")).Format()

	assert.True(t, strings.HasPrefix(out, "ERROR W001: Request did not complete\n"))
	assert.Contains(t, out, "request: GET http://localhost/api/products\n")
	assert.NotContains(t, out, "->")
	assert.Contains(t, out, "cause: dial tcp: connection refused")
}
