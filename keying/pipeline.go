package keying

import (
	"errors"
	"fmt"
	"image"
)

var (
	// ErrInvalidColorSpec key 色必须是 6 位十六进制，如 #FFFFFF
	ErrInvalidColorSpec = errors.New("invalid hex color spec")
	// ErrInvalidDimensions 零面积图像
	ErrInvalidDimensions = errors.New("image has zero area")
	// ErrImageTooLarge 超出处理上限的保险检查，上游缩放正确时不会触发
	ErrImageTooLarge = errors.New("image exceeds processing limit")
)

const (
	// maxPixels 单次处理的像素数上限
	maxPixels = 4096 * 4096

	// 两阶段扫描里 strict >= relaxed 时的钳制参数，
	// 保住"紧播种、松扩张"的不对称性
	strictFloor  = 4
	strictMargin = 12
)

// Options 一次 pipeline 运行的全部参数，构造后不再修改。
// 没有任何进程级可变默认值：每次调用显式传入自己的一份
type Options struct {
	Target RGB // key 背景色

	Tolerance     int  // 扩张（relaxed）容差
	TwoStage      bool // 两阶段扫描开关
	SeedTolerance int  // 播种（strict）容差，仅两阶段用

	SmoothKeyView bool // keying 视图是否预平滑

	RemoveHoles bool // 清除封闭背景口袋
	MinHoleArea int  // 小于该面积的口袋保留

	CleanResidual    bool // 残色清理开关
	ResidualBoostPct int  // 残色匹配容差放大百分比，无上限
	ResidualEdgeOnly bool // 只清理膨胀边缘范围内
	EdgeExpandPct    int  // 边缘膨胀幅度（约每 10% 一个像素）

	ErodePx int // alpha 腐蚀层数

	SoftenEdges     bool // 边缘柔化开关
	SoftenRadius    int  // 柔化模糊半径
	SoftenThreshold bool // 柔化后是否在 128 处重新二值化
}

// DefaultOptions 对 JPG 产品图比较稳的一组默认值
func DefaultOptions() Options {
	return Options{
		Target:           RGB{R: 255, G: 255, B: 255},
		Tolerance:        40,
		SeedTolerance:    24,
		RemoveHoles:      true,
		MinHoleArea:      250,
		ResidualBoostPct: 20,
		ResidualEdgeOnly: true,
		EdgeExpandPct:    20,
		ErodePx:          1,
		SoftenRadius:     2,
	}
}

// Process 整条抠图 pipeline，阶段顺序固定：
//
//	keying 视图 → 边界连通扫描 → 合成 alpha → [孔洞清除]
//	→ [边缘掩码+膨胀 → 残色清理] → 腐蚀 → [边缘柔化]
//
// 可选阶段关闭时为 no-op。全部缓冲都在本次调用内分配和丢弃，
// 失败时不返回任何部分结果。
func Process(img image.Image, opts Options) (*image.NRGBA, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, w, h)
	}
	if w*h > maxPixels {
		return nil, fmt.Errorf("%w: %dx%d", ErrImageTooLarge, w, h)
	}

	src := ToNRGBA(img)
	view := buildKeyView(src, opts.SmoothKeyView)

	seedTol := opts.Tolerance
	if opts.TwoStage {
		seedTol = opts.SeedTolerance
		if seedTol >= opts.Tolerance {
			seedTol = max(strictFloor, opts.Tolerance-strictMargin)
		}
	}

	bg := BorderScan(view, opts.Target, seedTol, opts.Tolerance)
	out := ApplyAlpha(src, bg)

	if opts.RemoveHoles {
		RemoveHoles(out, view, opts.Target, opts.Tolerance, opts.MinHoleArea, bg)
	}

	if opts.CleanResidual {
		var scope *Mask
		if opts.ResidualEdgeOnly {
			scope = EdgeMask(out)
			scope.Dilate(max(1, opts.EdgeExpandPct/10))
		}
		CleanResidual(out, view, opts.Target, opts.Tolerance, opts.ResidualBoostPct, scope)
	}

	ErodeAlpha(out, opts.ErodePx)

	if opts.SoftenEdges {
		SoftenAlpha(out, opts.SoftenRadius, opts.SoftenThreshold)
	}

	return out, nil
}
