package hist

import (
	"libstat/infra/errorx"
	"libstat/infra/errorx/errCode"
)

// 中位数估计公式
type MedianFormula int

const (
	// Me = a + h*(0.5*Wc)/Wm，沿用既有实现的计算方式（默认）
	MEDIAN_SOURCE MedianFormula = iota
	// Me = a + h*(0.5-Wc)/Wm，分组数据中位数的经典公式
	MEDIAN_CLASSIC
)

func (f MedianFormula) String() string {
	switch f {
	case MEDIAN_CLASSIC:
		return "classic"
	default:
		return "source"
	}
}

func GetMedianFormula(s string) (MedianFormula, bool) {
	switch s {
	case "", "source":
		return MEDIAN_SOURCE, true
	case "classic":
		return MEDIAN_CLASSIC, true
	default:
		return MEDIAN_SOURCE, false
	}
}

func (h *Histogram) SetMedianFormula(f MedianFormula) {
	h.median = f
}

func (h *Histogram) MedianFormula() MedianFormula {
	return h.median
}

// Median 返回中位数区间下标与中位数估计
//
//	a  - 中位数区间起点
//	h  - 中位数区间宽度
//	Wc - 中位数区间之前的累积相对频数
//	Wm - 中位数区间的相对频数
//
// 默认公式 a + h*(0.5*Wc)/Wm 与经典公式 a + h*(0.5-Wc)/Wm 不同，见 MEDIAN_CLASSIC。
//
// 中位数区间要求频数 > 0。只有 N == 1（target 为 0）时这一条件才会改变结果：
// 跳过开头的空区间，取观测所在区间，而不是在空区间上除以 0。
// N >= 2 时选出的区间与逐区间累积扫描一致。
func (h *Histogram) Median() (int, float64, error) {
	N := h.Volume()
	if N == 0 {
		return -1, 0, errorx.New(errCode.EMPTY_POPULATION, "histogram is empty")
	}
	target := N / 2

	// 定位中位数区间；freq > 0 只在 N == 1 时起作用，跳过开头的空区间
	cumulative := 0
	i := 0
	for ; i < len(h.freq); i++ {
		freq := h.freq[i]
		if freq > 0 && target <= cumulative+freq {
			break
		}
		cumulative += freq
	}

	a, b, err := h.axis.Range(i)
	if err != nil {
		return -1, 0, err
	}
	width := b - a
	Wc := float64(cumulative) / float64(N)
	Wm := float64(h.freq[i]) / float64(N)

	if h.median == MEDIAN_CLASSIC {
		return i, a + width*(0.5-Wc)/Wm, nil
	}
	return i, a + width*(0.5*Wc)/Wm, nil
}

// Mode 返回众数区间下标与众数估计
// 众数区间为频数最大的区间（并列取第一个）：
//
//	mode = a + h*(Wm-Wp)/(2*Wm-Wp-Wn)
//
// 首区间只用后一区间 Wn，末区间只用前一区间 Wp。
// 分母为 0（相邻区间频数与众数区间相同）时取区间中点。
func (h *Histogram) Mode() (int, float64, error) {
	size := h.Size()
	if size == 0 {
		return -1, 0, errorx.New(errCode.DEGENERATE_HISTOGRAM, "histogram has no intervals")
	}
	N := h.Volume()
	if N == 0 {
		return -1, 0, errorx.New(errCode.EMPTY_POPULATION, "histogram is empty")
	}

	idx := 0
	for i, f := range h.freq {
		if f > h.freq[idx] {
			idx = i
		}
	}

	a, b, err := h.axis.Range(idx)
	if err != nil {
		return -1, 0, err
	}
	width := b - a
	rel := func(i int) float64 {
		if i < 0 || i >= size {
			return 0
		}
		return float64(h.freq[i]) / float64(N)
	}
	Wm := rel(idx)

	var num, den float64
	switch {
	case size == 1:
		num, den = Wm, 2*Wm
	case idx == 0:
		Wn := rel(idx + 1)
		num, den = Wm-Wn, 2*(Wm-Wn)
	case idx == size-1:
		Wp := rel(idx - 1)
		num, den = Wm-Wp, 2*(Wm-Wp)
	default:
		Wp, Wn := rel(idx-1), rel(idx+1)
		num, den = Wm-Wp, 2*Wm-Wp-Wn
	}
	if den == 0 {
		return idx, a + width/2, nil
	}
	return idx, a + width*num/den, nil
}
