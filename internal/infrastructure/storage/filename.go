package storage

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// OutputExtension - transcoder luôn encode WebP nên extension luôn là .webp
const OutputExtension = ".webp"

var nonSlugChars = regexp.MustCompile(`[^a-z0-9-]+`)
var repeatedHyphens = regexp.MustCompile(`-+`)

// AllocateFilename sinh tên file collision-free cho output
// Format: <sanitized-base>-<uuid>-<unix-millis>.webp
// UUID v4 (128-bit) đủ để bỏ qua collision checking, kể cả khi
// nhiều process cùng allocate đồng thời
func AllocateFilename(originalName string) string {
	ext := filepath.Ext(originalName)
	base := sanitizeBaseName(strings.TrimSuffix(filepath.Base(originalName), ext))

	return fmt.Sprintf("%s-%s-%d%s", base, uuid.NewString(), time.Now().UnixMilli(), OutputExtension)
}

// sanitizeBaseName giữ lại [a-z0-9-], lowercase, collapse hyphens
// Tên gốc có thể chứa ký tự nguy hiểm cho filesystem/URL
func sanitizeBaseName(base string) string {
	base = strings.ToLower(base)
	base = strings.ReplaceAll(base, " ", "-")
	base = nonSlugChars.ReplaceAllString(base, "-")
	base = repeatedHyphens.ReplaceAllString(base, "-")
	base = strings.Trim(base, "-")

	if base == "" {
		return "image"
	}
	return base
}
