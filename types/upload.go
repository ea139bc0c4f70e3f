package types

import (
	"io"
	"mime/multipart"
)

// Upload 上传文件的边界抽象，handler 从 multipart 适配，测试直接构造
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// NewUpload 从 multipart 文件头适配
func NewUpload(header *multipart.FileHeader) (*Upload, func() error, error) {
	f, err := header.Open()
	if err != nil {
		return nil, nil, err
	}
	return &Upload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Reader:      f,
	}, f.Close, nil
}
