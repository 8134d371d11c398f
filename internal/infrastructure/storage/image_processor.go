package storage

import (
	"bytes"
	"fmt"
	"image"
	"mime/multipart"

	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"github.com/disintegration/imaging"
	"github.com/gen2brain/webp"

	"portfolio-backend/internal/config"
)

// ImageProcessor validate upload metadata và transcode ảnh về WebP
// Mọi limits inject từ config, không dùng global state
type ImageProcessor struct {
	MaxSize      int64
	AllowedTypes map[string]bool
	Quality      int // WebP quality mặc định khi caller không override
}

func NewImageProcessor(cfg config.UploadConfig) *ImageProcessor {
	allowed := make(map[string]bool, len(cfg.AllowedMimeTypes))
	for _, t := range cfg.AllowedMimeTypes {
		allowed[t] = true
	}

	return &ImageProcessor{
		MaxSize:      cfg.MaxFileSize,
		AllowedTypes: allowed,
		Quality:      cfg.Quality,
	}
}

// ValidateUpload kiểm tra multipart form TRƯỚC khi decode bất cứ thứ gì
// Pure decision trên metadata - rejection path phải rẻ
// Yêu cầu: đúng một file, đúng field name, MIME whitelist, dưới size ceiling
func (p *ImageProcessor) ValidateUpload(form *multipart.Form, field string) (*multipart.FileHeader, error) {
	if form == nil {
		return nil, ErrMissingFile
	}

	for name := range form.File {
		if name != field {
			return nil, ErrUnexpectedField
		}
	}

	files := form.File[field]
	if len(files) == 0 {
		return nil, ErrMissingFile
	}
	if len(files) > 1 {
		return nil, ErrTooManyFiles
	}

	fh := files[0]

	contentType := fh.Header.Get("Content-Type")
	if !p.AllowedTypes[contentType] {
		return nil, ErrInvalidFileType
	}

	// Size check độc lập với MIME check
	if fh.Size > p.MaxSize {
		return nil, ErrFileTooLarge
	}

	return fh, nil
}

// Transcode resize ảnh về đúng width×height (cover-fit) và encode WebP
// Cover-fit: scale sao cho chiều ngắn phủ kín target box, rồi center-crop
// quality <= 0 dùng default từ config
// Không bao giờ trả partial output - lỗi decode/encode là lỗi trọn vẹn
func (p *ImageProcessor) Transcode(data []byte, width, height, quality int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrImageProcessing, err)
	}

	resized := imaging.Fill(img, width, height, imaging.Center, imaging.Lanczos)

	if quality <= 0 {
		quality = p.Quality
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, resized, webp.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("%w: encode: %v", ErrImageProcessing, err)
	}

	return buf.Bytes(), nil
}
