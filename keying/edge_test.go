package keying

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEdgeMask_InteriorOpaqueNotFlagged(t *testing.T) {
	// 全不透明：没有任何像素邻接透明，不存在边缘
	rgba := newUniform(5, 5, blue)
	edge := EdgeMask(rgba)
	assert.Equal(t, 0, edge.Count())
}

func TestEdgeMask_LoneTransparentPixel(t *testing.T) {
	// 单个全透明像素：它的 4 个不透明邻居都是边缘
	rgba := newUniform(5, 5, blue)
	setAlpha(rgba, 2, 2, 0)

	edge := EdgeMask(rgba)
	assert.Equal(t, 4, edge.Count())
	assert.True(t, edge.At(1, 2))
	assert.True(t, edge.At(3, 2))
	assert.True(t, edge.At(2, 1))
	assert.True(t, edge.At(2, 3))
	assert.False(t, edge.At(2, 2), "透明像素本身不算边缘")
	assert.False(t, edge.At(1, 1), "对角邻居不算")
}

func TestEdgeMask_PartialAlphaFlagged(t *testing.T) {
	rgba := newUniform(3, 3, blue)
	setAlpha(rgba, 1, 1, 128)

	edge := EdgeMask(rgba)
	assert.True(t, edge.At(1, 1), "半透明像素本身就是边缘")
	assert.Equal(t, 1, edge.Count())
}

func TestDilate_ManhattanGrowth(t *testing.T) {
	// 单点膨胀 2 轮 = 曼哈顿距离 <= 2 的全部像素，不多不少
	m := NewMask(7, 7)
	m.Set(3, 3)
	m.Dilate(2)

	for y := 0; y < 7; y++ {
		for x := 0; x < 7; x++ {
			dist := abs(x-3) + abs(y-3)
			assert.Equal(t, dist <= 2, m.At(x, y), "(%d,%d)", x, y)
		}
	}
	assert.Equal(t, 13, m.Count())
}

func TestDilate_OneRoundPlusShape(t *testing.T) {
	// 单轮膨胀得到 5 像素的十字
	m := NewMask(5, 5)
	m.Set(2, 2)
	m.Dilate(1)

	assert.Equal(t, 5, m.Count())
	assert.True(t, m.At(2, 2))
	assert.True(t, m.At(1, 2))
	assert.True(t, m.At(3, 2))
	assert.True(t, m.At(2, 1))
	assert.True(t, m.At(2, 3))
}

func TestDilate_ClipsAtBounds(t *testing.T) {
	m := NewMask(3, 3)
	m.Set(0, 0)
	m.Dilate(1)
	assert.Equal(t, 3, m.Count())
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
