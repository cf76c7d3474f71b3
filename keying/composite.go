package keying

import "image"

// ApplyAlpha 按背景掩码生成 RGBA：掩码命中的像素 alpha=0，其余 255
// 透明像素的颜色通道保持原样，后续对 alpha 做模糊柔化时
// 半透明边缘才能落在真实的边缘颜色上
func ApplyAlpha(src *image.NRGBA, bg *Mask) *image.NRGBA {
	w, h := bg.W, bg.H
	out := image.NewNRGBA(image.Rect(0, 0, w, h))

	for y := 0; y < h; y++ {
		si := y * src.Stride
		oi := y * out.Stride
		for x := 0; x < w; x++ {
			copy(out.Pix[oi+x*4:oi+x*4+3], src.Pix[si+x*4:si+x*4+3])
			if bg.At(x, y) {
				out.Pix[oi+x*4+3] = 0
			} else {
				// 源图自带的 alpha 原样透传
				out.Pix[oi+x*4+3] = src.Pix[si+x*4+3]
			}
		}
	}
	return out
}
