package storage

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllocateFilename(t *testing.T) {
	t.Run("always webp extension", func(t *testing.T) {
		for _, original := range []string{"photo.jpg", "photo.png", "photo.webp", "photo", "photo.JPEG"} {
			got := AllocateFilename(original)
			assert.True(t, strings.HasSuffix(got, OutputExtension), "got %q", got)
			// Extension gốc không được lẫn vào tên
			assert.NotContains(t, strings.TrimSuffix(got, OutputExtension), ".")
		}
	})

	t.Run("keeps sanitized base name", func(t *testing.T) {
		got := AllocateFilename("My Project Screenshot.png")
		assert.True(t, strings.HasPrefix(got, "my-project-screenshot-"), "got %q", got)
	})

	t.Run("strips dangerous characters", func(t *testing.T) {
		got := AllocateFilename("../../etc/passwd!!.png")
		assert.NotContains(t, got, "/")
		assert.NotContains(t, got, "!")
	})

	t.Run("empty base falls back", func(t *testing.T) {
		got := AllocateFilename("....png")
		assert.True(t, strings.HasPrefix(got, "image-"), "got %q", got)
	})

	t.Run("unique across sequential calls", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 1000; i++ {
			name := AllocateFilename("photo.png")
			assert.False(t, seen[name], "duplicate filename %q", name)
			seen[name] = true
		}
	})

	t.Run("unique across concurrent calls", func(t *testing.T) {
		const workers = 8
		const perWorker = 200

		var mu sync.Mutex
		seen := make(map[string]bool)

		var wg sync.WaitGroup
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := 0; i < perWorker; i++ {
					name := AllocateFilename("photo.png")
					mu.Lock()
					assert.False(t, seen[name], "duplicate filename %q", name)
					seen[name] = true
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		assert.Len(t, seen, workers*perWorker)
	})
}

func TestSanitizeBaseName(t *testing.T) {
	cases := map[string]string{
		"My Photo":        "my-photo",
		"hello--world":    "hello-world",
		"UPPER":           "upper",
		"tên-ảnh":         "t-n-nh",
		"---":             "image",
		"":                "image",
		"already-clean-1": "already-clean-1",
	}

	for in, want := range cases {
		assert.Equal(t, want, sanitizeBaseName(in), "input %q", in)
	}
}
