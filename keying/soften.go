package keying

import (
	"image"
	"math"
)

// SoftenAlpha 只对 alpha 通道做高斯模糊，给锯齿边缘做抗锯齿。
// threshold 为 true 时模糊后在 128 处重新二值化（边缘更干脆），
// 否则保留平滑的渐变 alpha。
func SoftenAlpha(rgba *image.NRGBA, radius int, threshold bool) {
	if radius <= 0 {
		return
	}

	w := rgba.Bounds().Dx()
	h := rgba.Bounds().Dy()
	kernel := gaussKernel(radius)

	src := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			src[y*w+x] = float64(rgba.Pix[y*rgba.Stride+x*4+3])
		}
	}

	// 水平、垂直两趟可分离卷积，越界部分用边缘值截断
	tmp := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var sum float64
			for k := -radius; k <= radius; k++ {
				xx := min(max(x+k, 0), w-1)
				sum += src[y*w+xx] * kernel[k+radius]
			}
			tmp[y*w+x] = sum
		}
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var sum float64
			for k := -radius; k <= radius; k++ {
				yy := min(max(y+k, 0), h-1)
				sum += tmp[yy*w+x] * kernel[k+radius]
			}
			a := uint8(math.Round(math.Min(255, math.Max(0, sum))))
			if threshold {
				if a >= 128 {
					a = 255
				} else {
					a = 0
				}
			}
			rgba.Pix[y*rgba.Stride+x*4+3] = a
		}
	}
}

// gaussKernel 归一化的一维高斯核，sigma 取 radius/2
func gaussKernel(radius int) []float64 {
	sigma := math.Max(0.5, float64(radius)/2)
	kernel := make([]float64, 2*radius+1)
	var sum float64
	for k := -radius; k <= radius; k++ {
		v := math.Exp(-float64(k*k) / (2 * sigma * sigma))
		kernel[k+radius] = v
		sum += v
	}
	for i := range kernel {
		kernel[i] /= sum
	}
	return kernel
}
