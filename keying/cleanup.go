package keying

import "image"

// CleanResidual 清除初次抠图后残留的 key 色像素（spill）。
// 容差按 boostPct 百分比放大后匹配 keying 视图；scope 非 nil 时
// 只处理 scope 命中的像素（通常是膨胀后的边缘掩码），nil 则全图。
// 放大后的容差没有上限，boost 给太大时几乎什么颜色都能命中，
// 调用方自己兜底。
func CleanResidual(rgba, view *image.NRGBA, target RGB, tol, boostPct int, scope *Mask) {
	boosted := tol + tol*boostPct/100

	w := rgba.Bounds().Dx()
	h := rgba.Bounds().Dy()

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if scope != nil && !scope.At(x, y) {
				continue
			}
			if rgba.Pix[y*rgba.Stride+x*4+3] == 0 {
				continue
			}
			p := view.Pix[y*view.Stride+x*4:]
			if near(p[0], p[1], p[2], target, boosted) {
				rgba.Pix[y*rgba.Stride+x*4+3] = 0
			}
		}
	}
}
