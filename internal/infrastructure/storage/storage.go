package storage

import (
	"context"
	"fmt"
)

// Folders là closed set - mỗi entity kind một folder riêng
const (
	FolderProjects = "projects"
	FolderClients  = "clients"
)

// ValidFolder kiểm tra folder có thuộc closed set không
func ValidFolder(folder string) bool {
	return folder == FolderProjects || folder == FolderClients
}

// ObjectStorage là contract chung cho local disk và MinIO
// Write trả về path/key đã ghi; Delete là advisory cleanup -
// file không tồn tại KHÔNG phải là lỗi
type ObjectStorage interface {
	Write(ctx context.Context, folder, filename string, data []byte) (string, error)
	Delete(ctx context.Context, folder, filename string) error
}

// ProcessedImage là kết quả của pipeline transcode + store
// Transient - chỉ filename đi vào database record
type ProcessedImage struct {
	Filename string
	Size     int64
	MimeType string
	Path     string
}

// ImageURL build public URL cho ảnh đã stored
// Pure function của (origin, folder, filename) - tính lúc serialize,
// không lưu vào DB để origin đổi không làm URL cũ drift
func ImageURL(backendURL, folder, filename string) string {
	return fmt.Sprintf("%s/uploads/%s/%s", backendURL, folder, filename)
}
