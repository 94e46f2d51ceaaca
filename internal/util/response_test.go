package util

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fadilmartias/skillsyncer/internal/apperror"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"record not found", fmt.Errorf("find: %w", gorm.ErrRecordNotFound), fiber.StatusNotFound},
		{"duplicate", gorm.ErrDuplicatedKey, fiber.StatusConflict},
		{"fiber error", fiber.NewError(fiber.StatusTooManyRequests, "slow down"), fiber.StatusTooManyRequests},
		{"validation", apperror.Validation("bad"), fiber.StatusBadRequest},
		{"upload", apperror.New(apperror.KindUpload, "bad file"), fiber.StatusBadRequest},
		{"not found kind", apperror.NotFound("gone"), fiber.StatusNotFound},
		{"conflict", apperror.Conflict("twice"), fiber.StatusConflict},
		{"forbidden", apperror.Forbidden("no"), fiber.StatusForbidden},
		{"plain", errors.New("boom"), fiber.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFor(tt.err))
		})
	}
}
