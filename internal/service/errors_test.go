package service_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"fairplay10x/internal/service"
)

func TestIsNotFound(t *testing.T) {
	assert.True(t, service.IsNotFound(service.ErrNotFound("event not found")))
	assert.True(t, service.IsNotFound(fmt.Errorf("load: %w", service.ErrNotFound("draw not found"))))
	assert.False(t, service.IsNotFound(service.ErrDomain("DRAW_CONFIRMED", "teams are already confirmed")))
	assert.False(t, service.IsNotFound(errors.New("boom")))
}

func TestErrDomain_Status(t *testing.T) {
	tests := map[string]int{
		"NOT_ENOUGH_SIGNUPS":    http.StatusUnprocessableEntity,
		"NOT_ENOUGH_PLAYERS":    http.StatusUnprocessableEntity,
		"EVENT_FULL":            http.StatusUnprocessableEntity,
		"EVENT_COMPLETED":       http.StatusUnprocessableEntity,
		"EMAIL_TAKEN":           http.StatusBadRequest,
		"DRAW_CONFIRMED":        http.StatusConflict,
		"DRAW_VERSION_CONFLICT": http.StatusConflict,
		"DRAW_STALE":            http.StatusConflict,
	}
	for code, status := range tests {
		t.Run(code, func(t *testing.T) {
			assert.Equal(t, status, service.ErrDomain(code, "msg").Status)
		})
	}
}
