// Package axis 一维分箱轴
//
// 轴由严格递增的边界序列组成，第 i 个区间为半开区间 [b[i], b[i+1])。
// 三种构造方式：均匀划分 Regular、Sturges 公式 Sturges、外部生成函数 Variable。
// 构造成功时整体替换边界，失败时保留原边界不变。
package axis

import (
	"math"
	"sort"

	"libstat/infra/errorx"
	"libstat/infra/errorx/errCode"
)

// Generator 边界生成函数，下标 -> 边界值，要求在 0..count 上严格递增
type Generator func(i int) float64

type Axis struct {
	bounds []float64
}

func New() *Axis {
	return &Axis{}
}

// Regular 把 [min, max] 均匀分成 parts 份
func (a *Axis) Regular(min, max float64, parts int) error {
	if max <= min {
		return errorx.Newf(errCode.INVALID_BOUNDS, "invalid interval bounds [%v, %v]", min, max)
	}
	if parts <= 1 {
		return errorx.Newf(errCode.INVALID_PART_COUNT, "invalid number of parts: %d", parts)
	}
	h := (max - min) / float64(parts)
	bounds := make([]float64, parts+1)
	for i := range bounds {
		bounds[i] = min + float64(i)*h
	}
	a.bounds = bounds
	return nil
}

// Sturges 区间宽度 h = (max-min)/(1+3.322*lg(volume))
// 首个边界为 min-h/2，步进 h 直到边界 >= max，再补最后一个边界。
// 结果可以超出 [min, max]，不做截断。
func (a *Axis) Sturges(min, max float64, volume int) error {
	if max <= min {
		return errorx.Newf(errCode.INVALID_BOUNDS, "invalid interval bounds [%v, %v]", min, max)
	}
	if volume <= 1 {
		return errorx.Newf(errCode.INVALID_OBSERVATION_COUNT, "invalid observation series length: %d", volume)
	}
	h := SturgesWidth(min, max, volume)
	start := min - h/2

	// max-min 溢出时 h 为 +Inf，边界退化为 [NaN]，区间数为 0
	var bounds []float64
	i := 0
	for start+h*float64(i) < max {
		bounds = append(bounds, start+h*float64(i))
		i++
	}
	// 最后一个边界
	bounds = append(bounds, start+h*float64(i))
	a.bounds = bounds
	return nil
}

// SturgesWidth 不做参数检查
func SturgesWidth(min, max float64, volume int) float64 {
	return (max - min) / (1 + 3.322*math.Log10(float64(volume)))
}

// Variable 边界由 fn(0..count) 给出，共 count 个区间。
// min 只作为调用方的标注，不与 fn(0) 比较。
func (a *Axis) Variable(min float64, count int, fn Generator) error {
	if count < 1 {
		return errorx.Newf(errCode.INVALID_PART_COUNT, "invalid number of parts: %d", count)
	}
	if fn == nil {
		return errorx.New(errCode.INVALID_VALUE, "generator is nil")
	}
	bounds := make([]float64, count+1)
	bounds[0] = fn(0)
	for n := 1; n <= count; n++ {
		val := fn(n)
		// NaN 比较恒为 false，同样视为断裂
		if !(val > bounds[n-1]) {
			return errorx.Newf(errCode.NON_MONOTONIC_SEQUENCE, "sequence is broken at %d: %v after %v", n, val, bounds[n-1])
		}
		bounds[n] = val
	}
	a.bounds = bounds
	return nil
}

// Size 区间个数，未初始化时为 0
func (a *Axis) Size() int {
	if len(a.bounds) == 0 {
		return 0
	}
	return len(a.bounds) - 1
}

// Index 返回 x 所在区间下标。
// 小于首个边界、大于等于最后一个边界（以及 NaN）都返回 -1，两种越界无法区分。
func (a *Axis) Index(x float64) int {
	n := len(a.bounds)
	// 第一个 b[j] > x 的位置，等价于自 -1 起线性扫描首个 x < b[i+1] 的 i
	j := sort.Search(n, func(j int) bool { return x < a.bounds[j] })
	if j == n {
		return -1
	}
	return j - 1
}

// Range 第 idx 个区间的 [a, b)
func (a *Axis) Range(idx int) (float64, float64, error) {
	if idx < 0 || a.Size() <= idx {
		return 0, 0, errorx.Newf(errCode.INVALID_INDEX, "invalid index value: %d", idx)
	}
	return a.bounds[idx], a.bounds[idx+1], nil
}

// Bounds 边界序列的副本
func (a *Axis) Bounds() []float64 {
	out := make([]float64, len(a.bounds))
	copy(out, a.bounds)
	return out
}
