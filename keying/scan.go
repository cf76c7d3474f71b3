package keying

import "image"

// BorderScan 从图像四边做 4 邻接 floodfill，返回"与边界连通的背景"掩码
//
//	seedTol  播种容差：只有边界上命中它的像素才能入队
//	fillTol  扩张容差：入队后向内扩张时使用
//
// 单阶段扫描两者相等；两阶段用较紧的 seedTol 抑制边界附近
// 恰好接近 key 色的前景被误播种，再用较松的 fillTol 吃掉
// 离种子更远的压缩噪声背景。
// 每个像素的录取只取决于自身颜色和与已录取邻居的连通性，
// 与遍历顺序无关，结果是唯一的极大掩码。
func BorderScan(view *image.NRGBA, target RGB, seedTol, fillTol int) *Mask {
	w := view.Bounds().Dx()
	h := view.Bounds().Dy()

	bg := NewMask(w, h)
	queue := make([]int, 0, 2*(w+h))

	trySeed := func(x, y int) {
		i := bg.Idx(x, y)
		if bg.Bits[i] {
			return
		}
		p := view.Pix[y*view.Stride+x*4:]
		if near(p[0], p[1], p[2], target, seedTol) {
			bg.Bits[i] = true
			queue = append(queue, i)
		}
	}

	for x := 0; x < w; x++ {
		trySeed(x, 0)
		trySeed(x, h-1)
	}
	for y := 0; y < h; y++ {
		trySeed(0, y)
		trySeed(w-1, y)
	}

	// BFS 扩张，队列用平铺索引
	for head := 0; head < len(queue); head++ {
		i := queue[head]
		x, y := i%w, i/w
		for _, n := range [4][2]int{{x - 1, y}, {x + 1, y}, {x, y - 1}, {x, y + 1}} {
			nx, ny := n[0], n[1]
			if nx < 0 || nx >= w || ny < 0 || ny >= h {
				continue
			}
			ni := bg.Idx(nx, ny)
			if bg.Bits[ni] {
				continue
			}
			p := view.Pix[ny*view.Stride+nx*4:]
			if near(p[0], p[1], p[2], target, fillTol) {
				bg.Bits[ni] = true
				queue = append(queue, ni)
			}
		}
	}

	return bg
}
