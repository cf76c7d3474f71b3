package keying

import "image"

// ErodeAlpha 把不透明区域向内收缩 erodePx 层，消除背景色残留的 1px 光晕。
// 每轮先整图扫描，凡 alpha>0 且存在全透明 4 邻居的像素记下来，
// 扫完再统一清零 —— 本轮清掉的像素只会影响下一轮，保证无论边界
// 形状如何，收缩的层数都恰好等于迭代次数。
// 只清零、从不置位：不透明像素数单调不增。
func ErodeAlpha(rgba *image.NRGBA, erodePx int) {
	if erodePx <= 0 {
		return
	}

	w := rgba.Bounds().Dx()
	h := rgba.Bounds().Dy()

	alphaAt := func(x, y int) uint8 {
		return rgba.Pix[y*rgba.Stride+x*4+3]
	}

	var toClear []int
	for iter := 0; iter < erodePx; iter++ {
		toClear = toClear[:0]
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if alphaAt(x, y) == 0 {
					continue
				}
				for _, n := range [4][2]int{{x - 1, y}, {x + 1, y}, {x, y - 1}, {x, y + 1}} {
					nx, ny := n[0], n[1]
					if nx < 0 || nx >= w || ny < 0 || ny >= h {
						continue
					}
					if alphaAt(nx, ny) == 0 {
						toClear = append(toClear, y*w+x)
						break
					}
				}
			}
		}
		if len(toClear) == 0 {
			break
		}
		for _, i := range toClear {
			x, y := i%w, i/w
			rgba.Pix[y*rgba.Stride+x*4+3] = 0
		}
	}
}
