package keying

// Mask 平铺的 w*h 布尔掩码，index = y*w + x
// 替代逐行嵌套数组，整个 pipeline 内共用这一种索引方式
type Mask struct {
	W, H int
	Bits []bool
}

func NewMask(w, h int) *Mask {
	return &Mask{W: w, H: h, Bits: make([]bool, w*h)}
}

func (m *Mask) Idx(x, y int) int { return y*m.W + x }

func (m *Mask) At(x, y int) bool { return m.Bits[y*m.W+x] }

func (m *Mask) Set(x, y int) { m.Bits[y*m.W+x] = true }

// Count 已置位像素数
func (m *Mask) Count() int {
	n := 0
	for _, b := range m.Bits {
		if b {
			n++
		}
	}
	return n
}

// Clone 深拷贝
func (m *Mask) Clone() *Mask {
	c := &Mask{W: m.W, H: m.H, Bits: make([]bool, len(m.Bits))}
	copy(c.Bits, m.Bits)
	return c
}

// onBorder 是否在图像边界上
func (m *Mask) onBorder(x, y int) bool {
	return x == 0 || y == 0 || x == m.W-1 || y == m.H-1
}
