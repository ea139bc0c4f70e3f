package storage

import (
	"Gallery/config"
	"Gallery/pkg/utils"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ImagePath 生成图片的相对存储路径：gallery/<用户名>/<slug><小写扩展名>
// slug 为空时退化为按文件名生成
func ImagePath(username string, slug string, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if slug == "" {
		slug = utils.Slugify(strings.TrimSuffix(filename, filepath.Ext(filename)))
	}
	return path.Join("gallery", username, slug+ext)
}

// AvatarPath 头像用随机对象名，避免同名覆盖
func AvatarPath(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return path.Join("avatars", uuid.NewString()+ext)
}

// Disk 本地磁盘存储
type Disk struct {
	Root string
}

func NewDisk(conf *config.Config) *Disk {
	return &Disk{Root: conf.Storage.Root}
}

// Abs 相对路径转绝对路径
func (d *Disk) Abs(rel string) string {
	return filepath.Join(d.Root, filepath.FromSlash(rel))
}

// SaveReader 写入文件，已存在则覆盖
func (d *Disk) SaveReader(r io.Reader, rel string) error {
	abs := d.Abs(rel)
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return err
	}
	f, err := os.Create(abs)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = io.Copy(f, r)
	return err
}

func (d *Disk) Remove(rel string) error {
	err := os.Remove(d.Abs(rel))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Size 文件字节数
func (d *Disk) Size(rel string) (int64, error) {
	info, err := os.Stat(d.Abs(rel))
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}
