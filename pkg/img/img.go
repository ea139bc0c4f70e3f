package img

import (
	"image"
	"os"

	// 注册解码器，Probe/Downscale 按内容识别格式
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

// Meta 物理文件的度量信息，入库时回写到 Image 行
type Meta struct {
	Width    int
	Height   int
	FileSize int64
}

// Probe 读取实际像素宽高和字节数
func Probe(path string) (Meta, error) {
	f, err := os.Open(path)
	if err != nil {
		return Meta{}, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return Meta{}, err
	}
	info, err := os.Stat(path)
	if err != nil {
		return Meta{}, err
	}
	return Meta{Width: cfg.Width, Height: cfg.Height, FileSize: info.Size()}, nil
}

// Exceeds 任一边超过 maxEdge
func (m Meta) Exceeds(maxEdge int) bool {
	return m.Width > maxEdge || m.Height > maxEdge
}

// DownscaleInPlace 等比缩放到两边都不超过 maxEdge，原地按扩展名重编码
// webp 没有编码器，imaging.Save 会报错，由调用方按软失败处理
func DownscaleInPlace(path string, maxEdge int) error {
	src, err := imaging.Open(path)
	if err != nil {
		return err
	}
	dst := imaging.Fit(src, maxEdge, maxEdge, imaging.Lanczos)
	return imaging.Save(dst, path)
}
