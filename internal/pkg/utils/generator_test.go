package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateImageObjectName(t *testing.T) {
	uploadedAt := time.Unix(1718200000, 0)

	t.Run("spaces become underscores", func(t *testing.T) {
		name := GenerateImageObjectName("villa sunset view.jpg", uploadedAt)
		assert.Equal(t, "villa_sunset_view_1718200000.jpg", name)
	})

	t.Run("extension is preserved", func(t *testing.T) {
		name := GenerateImageObjectName("plan.webp", uploadedAt)
		assert.Equal(t, "plan_1718200000.webp", name)
	})

	t.Run("no extension", func(t *testing.T) {
		name := GenerateImageObjectName("snapshot", uploadedAt)
		assert.Equal(t, "snapshot_1718200000", name)
	})
}
