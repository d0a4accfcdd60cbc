// Package hist 分组数据的频数直方图
//
// Histogram 独占一个 axis.Axis 和与之等长的频数数组。经 Histogram 构造轴时，
// 频数数组同步重置为全零；Load 只会累加频数。
package hist

import (
	"libstat/grouped/axis"
	"libstat/infra/observe/log/staticLog"

	"gonum.org/v1/gonum/floats"
)

type Histogram struct {
	axis   *axis.Axis
	freq   []int
	median MedianFormula
}

func New() *Histogram {
	return &Histogram{axis: axis.New()}
}

// Regular 均匀划分，参数检查在 axis 内完成
func (h *Histogram) Regular(min, max float64, parts int) error {
	if err := h.axis.Regular(min, max, parts); err != nil {
		return err
	}
	h.reset()
	return nil
}

func (h *Histogram) Sturges(min, max float64, volume int) error {
	if err := h.axis.Sturges(min, max, volume); err != nil {
		return err
	}
	h.reset()
	return nil
}

func (h *Histogram) Variable(min float64, count int, fn axis.Generator) error {
	if err := h.axis.Variable(min, count, fn); err != nil {
		return err
	}
	h.reset()
	return nil
}

func (h *Histogram) reset() {
	size := h.axis.Size()
	if size <= 0 {
		h.freq = nil
		return
	}
	h.freq = make([]int, size)
}

// Load 累加观测序列，落在所有区间之外的值直接丢弃
func (h *Histogram) Load(values []float64) {
	if len(values) == 0 {
		return
	}
	dropped := 0
	for _, v := range values {
		idx := h.axis.Index(v)
		if idx < 0 {
			dropped++
			continue
		}
		h.freq[idx]++
	}
	if dropped > 0 {
		staticLog.Log.Debugf("hist: %d of %d observations outside axis", dropped, len(values))
	}
}

func (h *Histogram) Index(x float64) int {
	return h.axis.Index(x)
}

func (h *Histogram) Range(idx int) (float64, float64, error) {
	return h.axis.Range(idx)
}

func (h *Histogram) Bounds() []float64 {
	return h.axis.Bounds()
}

// Size 区间个数
func (h *Histogram) Size() int {
	return h.axis.Size()
}

// Shape 同 Size
func (h *Histogram) Shape() int {
	return h.axis.Size()
}

// FreqAt 下标越界返回 -1，不返回 error，便于批量扫描
func (h *Histogram) FreqAt(idx int) int {
	if idx < 0 || len(h.freq) <= idx {
		return -1
	}
	return h.freq[idx]
}

// Frequencies 频数快照
func (h *Histogram) Frequencies() []int {
	out := make([]int, len(h.freq))
	copy(out, h.freq)
	return out
}

// Volume 总频数
func (h *Histogram) Volume() int {
	n := 0
	for _, f := range h.freq {
		n += f
	}
	return n
}

// RelFrequencies 相对频数，总频数为零时全为 0
func (h *Histogram) RelFrequencies() []float64 {
	out := make([]float64, len(h.freq))
	for i, f := range h.freq {
		out[i] = float64(f)
	}
	total := floats.Sum(out)
	if total == 0 {
		return out
	}
	floats.Scale(1/total, out)
	return out
}
