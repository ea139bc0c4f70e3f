package config

// Storage 本地媒体文件存储
type Storage struct {
	Root string `json:"root" yaml:"root"`
}

// Upload 上传限制，零值时取默认
type Upload struct {
	MaxBytes int64 `json:"max_bytes" yaml:"max_bytes"`
	MaxEdge  int   `json:"max_edge" yaml:"max_edge"`
}

const (
	DefaultMaxUploadBytes = 5 << 20 // 5 MiB
	DefaultMaxEdge        = 4000    // 最长边 4000px
)

func (u *Upload) MaxUploadBytes() int64 {
	if u == nil || u.MaxBytes <= 0 {
		return DefaultMaxUploadBytes
	}
	return u.MaxBytes
}

func (u *Upload) MaxEdgePixels() int {
	if u == nil || u.MaxEdge <= 0 {
		return DefaultMaxEdge
	}
	return u.MaxEdge
}
