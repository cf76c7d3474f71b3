package keying

import "image"

// RemoveHoles 找出"背景色但不与边界连通"的封闭区域（艺术品内部的
// 背景口袋），面积 >= minArea 的整块抠掉。
//
// 全图只做一次遍历：visited 掩码在所有区域间共享，预先置上已知的
// 边界连通背景（它们不可能属于任何封闭孔洞），因此总开销 O(w*h)，
// 与区域数量无关。匹配容差与主扫描阶段一致。
func RemoveHoles(rgba, view *image.NRGBA, target RGB, tol, minArea int, borderBG *Mask) {
	if minArea <= 0 {
		minArea = 1
	}

	w, h := borderBG.W, borderBG.H
	visited := borderBG.Clone()

	isBG := func(x, y int) bool {
		p := view.Pix[y*view.Stride+x*4:]
		return near(p[0], p[1], p[2], target, tol)
	}

	var queue, region []int

	for y0 := 0; y0 < h; y0++ {
		for x0 := 0; x0 < w; x0++ {
			i0 := visited.Idx(x0, y0)
			if visited.Bits[i0] {
				continue
			}
			if !isBG(x0, y0) {
				visited.Bits[i0] = true
				continue
			}

			// BFS 收集这一个区域
			queue = append(queue[:0], i0)
			region = append(region[:0], i0)
			visited.Bits[i0] = true
			touchesBorder := visited.onBorder(x0, y0)

			for head := 0; head < len(queue); head++ {
				i := queue[head]
				x, y := i%w, i/w
				for _, n := range [4][2]int{{x - 1, y}, {x + 1, y}, {x, y - 1}, {x, y + 1}} {
					nx, ny := n[0], n[1]
					if nx < 0 || nx >= w || ny < 0 || ny >= h {
						continue
					}
					ni := visited.Idx(nx, ny)
					if visited.Bits[ni] {
						continue
					}
					visited.Bits[ni] = true
					if isBG(nx, ny) {
						queue = append(queue, ni)
						region = append(region, ni)
						if visited.onBorder(nx, ny) {
							touchesBorder = true
						}
					}
				}
			}

			// 只清除封闭且足够大的区域，避免误删小高光
			if !touchesBorder && len(region) >= minArea {
				for _, i := range region {
					x, y := i%w, i/w
					rgba.Pix[y*rgba.Stride+x*4+3] = 0
				}
			}
		}
	}
}
