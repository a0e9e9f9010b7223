package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/raywall/vfs-tracker-services/pkg/apperr"
	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", apperr.Validation("missing field: %s", "fileKey"), http.StatusBadRequest},
		{"auth", apperr.Auth("invalid token", nil), http.StatusUnauthorized},
		{"forbidden", apperr.Forbidden("access denied"), http.StatusForbidden},
		{"configuration", apperr.Configuration("bucket not set", nil), http.StatusInternalServerError},
		{"dependency", apperr.Dependency("query failed", errors.New("throttled")), http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
		{"wrapped validation", fmt.Errorf("handler: %w", apperr.Validation("bad date")), http.StatusBadRequest},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, apperr.StatusOf(tc.err))
		})
	}
}

func TestUnwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("conditional check failed")
	err := apperr.Dependency("update failed", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "update failed")
	assert.Contains(t, err.Error(), "conditional check failed")
}
