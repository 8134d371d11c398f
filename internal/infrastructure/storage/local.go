package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// LocalStorage ghi file vào disk dưới <root>/<folder>/<filename>
// Static responder (gin) serve cùng root tại /uploads
type LocalStorage struct {
	root string
}

// NewLocalStorage tạo storage và ensure các folder tồn tại sẵn
func NewLocalStorage(root string) (*LocalStorage, error) {
	s := &LocalStorage{root: root}
	if err := s.ensureFolders(); err != nil {
		return nil, err
	}
	return s, nil
}

// Root trả về thư mục gốc (dùng cho static file serving)
func (s *LocalStorage) Root() string {
	return s.root
}

// ensureFolders tạo folder cho từng entity kind nếu chưa có
// MkdirAll idempotent - concurrent first-callers không lỗi "already exists"
func (s *LocalStorage) ensureFolders() error {
	for _, folder := range []string{FolderProjects, FolderClients} {
		dir := filepath.Join(s.root, folder)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create upload directory %s: %w", dir, err)
		}
	}
	return nil
}

func (s *LocalStorage) Write(ctx context.Context, folder, filename string, data []byte) (string, error) {
	if !ValidFolder(folder) {
		return "", fmt.Errorf("%w: %s", ErrInvalidFolder, folder)
	}

	// Ensure lại trước mỗi write - folder có thể bị xóa runtime
	dir := filepath.Join(s.root, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: mkdir %s: %v", ErrStorageWrite, dir, err)
	}

	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("%w: write %s: %v", ErrStorageWrite, path, err)
	}

	return path, nil
}

// Delete xóa file - advisory, file không tồn tại không phải lỗi
func (s *LocalStorage) Delete(ctx context.Context, folder, filename string) error {
	if !ValidFolder(folder) {
		return fmt.Errorf("%w: %s", ErrInvalidFolder, folder)
	}

	path := filepath.Join(s.root, folder, filename)
	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to delete %s: %w", path, err)
	}

	return nil
}
