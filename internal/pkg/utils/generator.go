package utils

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.New().String()
}

func GenerateSessionID() string {
	return uuid.New().String()
}

// GenerateImageObjectName derives the stored object name from the uploaded
// filename: spaces become underscores and the upload timestamp is appended
// before the original extension, e.g. "villa sunset.jpg" ->
// "villa_sunset_1718200000.jpg".
func GenerateImageObjectName(originalFileName string, uploadedAt time.Time) string {
	ext := filepath.Ext(originalFileName)
	base := strings.TrimSuffix(originalFileName, ext)
	base = strings.ReplaceAll(base, " ", "_")
	return fmt.Sprintf("%s_%d%s", base, uploadedAt.Unix(), ext)
}
