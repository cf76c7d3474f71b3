package keying

import "image"

// newUniform 生成纯色不带透明的测试图
func newUniform(w, h int, c RGB) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			setPix(img, x, y, c)
		}
	}
	return img
}

func setPix(img *image.NRGBA, x, y int, c RGB) {
	i := y*img.Stride + x*4
	img.Pix[i] = c.R
	img.Pix[i+1] = c.G
	img.Pix[i+2] = c.B
	img.Pix[i+3] = 255
}

func alphaAt(img *image.NRGBA, x, y int) uint8 {
	return img.Pix[y*img.Stride+x*4+3]
}

func setAlpha(img *image.NRGBA, x, y int, a uint8) {
	img.Pix[y*img.Stride+x*4+3] = a
}

func opaqueCount(img *image.NRGBA) int {
	n := 0
	b := img.Bounds()
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			if alphaAt(img, x, y) > 0 {
				n++
			}
		}
	}
	return n
}

var (
	white = RGB{R: 255, G: 255, B: 255}
	blue  = RGB{B: 255}
)
