package keying

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanResidual_WholeImage(t *testing.T) {
	rgba := newUniform(5, 5, blue)
	view := newUniform(5, 5, blue)
	// 两个残留的近白像素
	setPix(view, 0, 0, RGB{250, 250, 250})
	setPix(view, 2, 2, RGB{250, 250, 250})

	CleanResidual(rgba, view, white, 10, 0, nil)
	assert.Equal(t, uint8(0), alphaAt(rgba, 0, 0))
	assert.Equal(t, uint8(0), alphaAt(rgba, 2, 2))
	assert.Equal(t, 23, opaqueCount(rgba))
}

func TestCleanResidual_EdgeScopeProtectsInterior(t *testing.T) {
	rgba := newUniform(5, 5, blue)
	view := newUniform(5, 5, blue)
	setPix(view, 0, 0, RGB{250, 250, 250}) // 边缘附近的 spill
	setPix(view, 2, 2, RGB{250, 250, 250}) // 内部恰好近 key 色的前景

	scope := NewMask(5, 5)
	scope.Set(0, 0)

	CleanResidual(rgba, view, white, 10, 0, scope)
	assert.Equal(t, uint8(0), alphaAt(rgba, 0, 0))
	assert.Equal(t, uint8(255), alphaAt(rgba, 2, 2), "scope 之外的像素不动")
}

func TestCleanResidual_BoostedTolerance(t *testing.T) {
	rgba := newUniform(3, 3, blue)
	view := newUniform(3, 3, blue)
	setPix(view, 1, 1, RGB{240, 240, 240}) // 每通道差 15

	// 容差 10 不命中
	CleanResidual(rgba, view, white, 10, 0, nil)
	assert.Equal(t, uint8(255), alphaAt(rgba, 1, 1))

	// boost 100% 后容差 20，命中
	CleanResidual(rgba, view, white, 10, 100, nil)
	assert.Equal(t, uint8(0), alphaAt(rgba, 1, 1))
}

func TestCleanResidual_SkipsTransparent(t *testing.T) {
	rgba := newUniform(3, 3, white)
	view := newUniform(3, 3, white)
	setAlpha(rgba, 0, 0, 0)
	// 原来的颜色通道保持不变
	before := make([]uint8, 3)
	copy(before, rgba.Pix[0:3])

	CleanResidual(rgba, view, white, 10, 0, nil)
	assert.Equal(t, before, rgba.Pix[0:3])
	assert.Equal(t, 0, opaqueCount(rgba))
}
