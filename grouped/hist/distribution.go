package hist

import (
	"libstat/infra/errorx"
	"libstat/infra/errorx/errCode"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// CDF 经验分布函数：区间 0..i-1 的累积频数
// i == 0 返回 0，i == Size() 返回总频数；absolute 为 false 时返回相对值。
func (h *Histogram) CDF(i int, absolute bool) (float64, error) {
	size := h.Size()
	if i < 0 || size < i {
		return 0, errorx.Newf(errCode.INVALID_INDEX, "invalid index value: %d", i)
	}
	sum := 0
	for k := 0; k < i; k++ {
		sum += h.freq[k]
	}
	if absolute {
		return float64(sum), nil
	}
	N := h.Volume()
	if N == 0 {
		return 0, errorx.New(errCode.EMPTY_POPULATION, "histogram is empty")
	}
	return float64(sum) / float64(N), nil
}

// P x 所在区间的相对频数，越界或空直方图返回 0
func (h *Histogram) P(x float64) float64 {
	idx := h.axis.Index(x)
	if idx < 0 {
		return 0
	}
	N := h.Volume()
	if N == 0 {
		return 0
	}
	return float64(h.freq[idx]) / float64(N)
}

// midpoints 区间中点与对应频数（权重）
func (h *Histogram) midpoints() (mids, weights []float64) {
	b := h.axis.Bounds()
	mids = make([]float64, len(h.freq))
	weights = make([]float64, len(h.freq))
	for i, f := range h.freq {
		mids[i] = (b[i] + b[i+1]) / 2
		weights[i] = float64(f)
	}
	return mids, weights
}

// Mean 以区间中点代替观测值的分组均值
func (h *Histogram) Mean() (float64, error) {
	mids, weights := h.midpoints()
	if floats.Sum(weights) == 0 {
		return 0, errorx.New(errCode.EMPTY_POPULATION, "histogram is empty")
	}
	return stat.Mean(mids, weights), nil
}

// Variance 分组样本方差（无偏），至少需要 2 个观测
func (h *Histogram) Variance() (float64, error) {
	mids, weights := h.midpoints()
	if floats.Sum(weights) < 2 {
		return 0, errorx.New(errCode.EMPTY_POPULATION, "need at least 2 observations")
	}
	return stat.Variance(mids, weights), nil
}

// Rejection 剔除离群值
// 用 Sturges 公式对 values 分组，若某区间相对频数超过 threshold，
// 只保留落在该区间 [a, b] 内的值并返回 true；否则原样返回 false。
// 不修改传入的切片。
func Rejection(values []float64, threshold float64) (bool, []float64, error) {
	if len(values) < 2 {
		return false, values, nil
	}
	lo, hi := floats.Min(values), floats.Max(values)
	if lo == hi {
		return false, values, nil
	}

	h := New()
	if err := h.Sturges(lo, hi, len(values)); err != nil {
		return false, values, err
	}
	h.Load(values)
	N := float64(h.Volume())
	if N == 0 {
		return false, values, nil
	}

	for i, f := range h.freq {
		if float64(f)/N <= threshold {
			continue
		}
		a, b, err := h.Range(i)
		if err != nil {
			return false, values, err
		}
		kept := make([]float64, 0, f)
		for _, v := range values {
			if v >= a && v <= b {
				kept = append(kept, v)
			}
		}
		return true, kept, nil
	}
	return false, values, nil
}
