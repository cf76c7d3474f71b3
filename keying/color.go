package keying

import (
	"fmt"
	"strconv"
	"strings"
)

// RGB 8-bit 三通道颜色
type RGB struct {
	R, G, B uint8
}

// ParseHexColor 解析 '#RRGGBB' 或 'RRGGBB' 形式的 key 色
func ParseHexColor(s string) (RGB, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColorSpec, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColorSpec, s)
	}
	return RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}

// near 逐通道容差匹配：每个通道与 target 的绝对差都 <= tol 才算命中
// 对纯色背景来说足够快也足够稳
func near(r, g, b uint8, target RGB, tol int) bool {
	return absDiff(r, target.R) <= tol &&
		absDiff(g, target.G) <= tol &&
		absDiff(b, target.B) <= tol
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a) - int(b)
	}
	return int(b) - int(a)
}
