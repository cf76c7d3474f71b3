package keying

import (
	"image"

	"golang.org/x/image/draw"
)

// ToNRGBA 转为 NRGBA，方便统一按平铺 Pix 处理
func ToNRGBA(img image.Image) *image.NRGBA {
	if nrgba, ok := img.(*image.NRGBA); ok && nrgba.Bounds().Min == image.Pt(0, 0) {
		return nrgba
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// buildKeyView 生成颜色判定专用的 keying 视图。
// smooth 为 true 时对 RGB 做一次 3x3 高斯，压掉 JPEG 压缩噪声，
// 让容差匹配更稳；输出颜色永远取自 artwork 视图，这里的平滑
// 绝不会写回输出通道。不平滑时直接复用源图。
func buildKeyView(src *image.NRGBA, smooth bool) *image.NRGBA {
	if !smooth {
		return src
	}

	w := src.Bounds().Dx()
	h := src.Bounds().Dy()
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	copy(out.Pix, src.Pix)

	// 3x3 高斯卷积，边界一圈保持原值（它们是 floodfill 的种子）
	k := [3][3]int{
		{1, 2, 1},
		{2, 4, 2},
		{1, 2, 1},
	}
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			for c := 0; c < 3; c++ {
				sum := 0
				for ky := -1; ky <= 1; ky++ {
					for kx := -1; kx <= 1; kx++ {
						sum += int(src.Pix[(y+ky)*src.Stride+(x+kx)*4+c]) * k[ky+1][kx+1]
					}
				}
				out.Pix[y*out.Stride+x*4+c] = uint8(sum >> 4)
			}
		}
	}
	return out
}
