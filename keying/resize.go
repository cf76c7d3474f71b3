package keying

import (
	"image"

	"github.com/nfnt/resize"
)

// ResizeWithinMax 缩放（最长边 <= maxSide），已经够小时原样返回。
// 所有阶段都是像素数线性的，先把尺寸压下来才能兜住最坏内存和耗时
func ResizeWithinMax(img *image.NRGBA, maxSide int) *image.NRGBA {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	longest := max(w, h)

	if maxSide <= 0 || longest <= maxSide {
		return img
	}

	scale := float64(maxSide) / float64(longest)
	newW := max(1, int(float64(w)*scale))
	newH := max(1, int(float64(h)*scale))

	resized := resize.Resize(uint(newW), uint(newH), img, resize.Lanczos3)
	return ToNRGBA(resized)
}
