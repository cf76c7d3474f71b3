package keying

import "image"

// EdgeMask 标出不透明/透明交界处的像素：
// alpha 介于 (0,255) 的半透明像素，或 alpha>0 且有全透明 4 邻居的像素
func EdgeMask(rgba *image.NRGBA) *Mask {
	w := rgba.Bounds().Dx()
	h := rgba.Bounds().Dy()
	edge := NewMask(w, h)

	alphaAt := func(x, y int) uint8 {
		return rgba.Pix[y*rgba.Stride+x*4+3]
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			a := alphaAt(x, y)
			if a == 0 {
				continue
			}
			if a < 255 {
				edge.Set(x, y)
				continue
			}
			for _, n := range [4][2]int{{x - 1, y}, {x + 1, y}, {x, y - 1}, {x, y + 1}} {
				nx, ny := n[0], n[1]
				if nx < 0 || nx >= w || ny < 0 || ny >= h {
					continue
				}
				if alphaAt(nx, ny) == 0 {
					edge.Set(x, y)
					break
				}
			}
		}
	}
	return edge
}

// Dilate 对掩码做 rounds 轮 4 邻接膨胀，每轮向外扩一个曼哈顿距离。
// 用来把残色清理限制在边界附近，保护内部恰好接近 key 色的前景。
func (m *Mask) Dilate(rounds int) {
	w, h := m.W, m.H
	for r := 0; r < rounds; r++ {
		next := make([]bool, len(m.Bits))
		copy(next, m.Bits)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if !m.Bits[y*w+x] {
					continue
				}
				if x > 0 {
					next[y*w+x-1] = true
				}
				if x < w-1 {
					next[y*w+x+1] = true
				}
				if y > 0 {
					next[(y-1)*w+x] = true
				}
				if y < h-1 {
					next[(y+1)*w+x] = true
				}
			}
		}
		m.Bits = next
	}
}
