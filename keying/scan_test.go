package keying

import (
	"image"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBorderScan_UniformTarget(t *testing.T) {
	img := newUniform(8, 6, white)

	bg := BorderScan(img, white, 10, 10)
	assert.Equal(t, 8*6, bg.Count(), "全图都是 key 色时应整图命中")
}

func TestBorderScan_UniformFarColor(t *testing.T) {
	img := newUniform(8, 6, RGB{200, 200, 200})

	// 每通道差 55 > 容差 10
	bg := BorderScan(img, white, 10, 10)
	assert.Equal(t, 0, bg.Count())
}

func TestBorderScan_InteriorPocketNotReached(t *testing.T) {
	// 白色口袋被蓝色环完全包住，floodfill 到不了
	img := newUniform(7, 7, white)
	for y := 1; y < 6; y++ {
		for x := 1; x < 6; x++ {
			setPix(img, x, y, blue)
		}
	}
	setPix(img, 3, 3, white)

	bg := BorderScan(img, white, 10, 10)
	assert.False(t, bg.At(3, 3))
	assert.True(t, bg.At(0, 0))
	assert.Equal(t, 24, bg.Count(), "只有边界一圈白色命中")
}

func TestBorderScan_SinglePixelPath(t *testing.T) {
	// 口袋通过一条 1px 宽的白色通道接到边界，应整体算作边界连通
	img := newUniform(9, 9, blue)
	for y := 3; y <= 5; y++ {
		for x := 3; x <= 5; x++ {
			setPix(img, x, y, white)
		}
	}
	setPix(img, 4, 0, white)
	setPix(img, 4, 1, white)
	setPix(img, 4, 2, white)

	bg := BorderScan(img, white, 10, 10)
	for y := 3; y <= 5; y++ {
		for x := 3; x <= 5; x++ {
			assert.True(t, bg.At(x, y), "口袋像素 (%d,%d) 应通过通道连到边界", x, y)
		}
	}
	assert.Equal(t, 9+3, bg.Count())
}

// floodStack 用 LIFO 顺序实现同一逻辑，验证结果与遍历顺序无关
func floodStack(view *image.NRGBA, target RGB, seedTol, fillTol int) *Mask {
	w := view.Bounds().Dx()
	h := view.Bounds().Dy()
	bg := NewMask(w, h)
	var stack []int

	trySeed := func(x, y int) {
		i := bg.Idx(x, y)
		p := view.Pix[y*view.Stride+x*4:]
		if !bg.Bits[i] && near(p[0], p[1], p[2], target, seedTol) {
			bg.Bits[i] = true
			stack = append(stack, i)
		}
	}
	// 反方向播种，顺序刻意与 BorderScan 不同
	for y := h - 1; y >= 0; y-- {
		trySeed(w-1, y)
		trySeed(0, y)
	}
	for x := w - 1; x >= 0; x-- {
		trySeed(x, h-1)
		trySeed(x, 0)
	}

	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		x, y := i%w, i/w
		for _, n := range [4][2]int{{x + 1, y}, {x, y + 1}, {x - 1, y}, {x, y - 1}} {
			nx, ny := n[0], n[1]
			if nx < 0 || nx >= w || ny < 0 || ny >= h {
				continue
			}
			ni := bg.Idx(nx, ny)
			p := view.Pix[ny*view.Stride+nx*4:]
			if !bg.Bits[ni] && near(p[0], p[1], p[2], target, fillTol) {
				bg.Bits[ni] = true
				stack = append(stack, ni)
			}
		}
	}
	return bg
}

func TestBorderScan_OrderIndependent(t *testing.T) {
	// 带噪声的随机图上，BFS 和 DFS 两种遍历顺序必须产出同一掩码
	rng := rand.New(rand.NewSource(42))
	img := image.NewNRGBA(image.Rect(0, 0, 64, 48))
	for y := 0; y < 48; y++ {
		for x := 0; x < 64; x++ {
			n := uint8(rng.Intn(60))
			c := RGB{255 - n, 255 - n, 255 - n}
			if rng.Intn(4) == 0 {
				c = RGB{uint8(rng.Intn(256)), uint8(rng.Intn(256)), uint8(rng.Intn(256))}
			}
			setPix(img, x, y, c)
		}
	}

	bfs := BorderScan(img, white, 25, 50)
	dfs := floodStack(img, white, 25, 50)
	require.Equal(t, dfs.Bits, bfs.Bits)
}

func TestBorderScan_TwoStageSeeding(t *testing.T) {
	// 边界色与 key 色差 15：松容差能播种，紧容差不能
	img := newUniform(6, 6, RGB{240, 240, 240})

	relaxed := BorderScan(img, white, 40, 40)
	assert.Equal(t, 36, relaxed.Count())

	strict := BorderScan(img, white, 5, 40)
	assert.Equal(t, 0, strict.Count(), "紧播种挡住了伪背景，扩张容差再松也没有种子")
}
