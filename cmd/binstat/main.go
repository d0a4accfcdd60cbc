// binstat 对观测序列分组，输出频数表与中位数、众数估计
//
//	binstat -config profile.yaml -input values.txt
//	binstat -input run.json -json-path run.latency
//	binstat -demo 1000
//
// 未给出 -config 时按序列的最小、最大值用 Sturges 公式分组；
// 常数序列或单个观测时区间放宽，仍输出频数表。
package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	"libstat/grouped/config"
	"libstat/grouped/hist"
	"libstat/grouped/series"
	"libstat/infra/observe/log/staticLog"

	legacystat "github.com/gonum/stat"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

func main() {
	var (
		cfgPath  = flag.String("config", "", "yaml binning profile")
		input    = flag.String("input", "-", "series file (.json or whitespace separated text), - for stdin")
		jsonPath = flag.String("json-path", "", "gjson path of the series array in a .json input")
		demo     = flag.Int("demo", 0, "generate N normal(50, 10) observations instead of reading input")
		seed     = flag.Uint64("seed", 1, "seed for -demo")
	)
	flag.Parse()

	if err := run(os.Stdout, *cfgPath, *input, *jsonPath, *demo, *seed); err != nil {
		staticLog.Log.Errorf("binstat: %v", err)
		os.Exit(1)
	}
}

func run(w io.Writer, cfgPath, input, jsonPath string, demo int, seed uint64) error {
	values, err := readSeries(input, jsonPath, demo, seed)
	if err != nil {
		return err
	}
	if len(values) == 0 {
		return fmt.Errorf("empty series")
	}

	var cfg *config.Config
	if cfgPath != "" {
		if err := config.Init(cfgPath); err != nil {
			return err
		}
		cfg = config.Current()
		if err := staticLog.Init(cfg.Log); err != nil {
			return fmt.Errorf("init log: %w", err)
		}
		staticLog.Log.Infof("binstat: config %s loaded (axis=%s)", cfgPath, cfg.Axis.Strategy)
	} else {
		cfg = fallbackConfig(values)
	}

	h, err := config.Build(cfg, len(values))
	if err != nil {
		return err
	}
	h.Load(values)
	staticLog.Log.Infof("binstat: %d intervals, %d of %d observations counted", h.Size(), h.Volume(), len(values))

	return report(w, h, values)
}

// fallbackConfig Sturges 分组覆盖序列的 [min, max]
// 常数序列两侧各放宽 0.5，单个观测按 volume 2 计算
func fallbackConfig(values []float64) *config.Config {
	lo, hi := floats.Min(values), floats.Max(values)
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}
	volume := len(values)
	if volume < 2 {
		volume = 2
	}
	return &config.Config{
		Axis: config.AxisConfig{
			Strategy: config.STRATEGY_STURGES,
			Min:      lo,
			Max:      hi,
			Volume:   volume,
		},
		MedianFormula: hist.MEDIAN_SOURCE.String(),
	}
}

func readSeries(input, jsonPath string, demo int, seed uint64) ([]float64, error) {
	if demo > 0 {
		dist := distuv.Normal{Mu: 50, Sigma: 10, Src: rand.NewPCG(seed, seed)}
		out := make([]float64, demo)
		for i := range out {
			out[i] = dist.Rand()
		}
		return out, nil
	}
	if input == "-" || input == "" {
		return series.ReadText(os.Stdin)
	}
	return series.ReadFile(input, jsonPath)
}

func report(w io.Writer, h *hist.Histogram, values []float64) error {
	fmt.Fprintf(w, "%-4s %-12s %-12s %8s %8s\n", "#", "from", "to", "freq", "rel")
	rel := h.RelFrequencies()
	for i := 0; i < h.Size(); i++ {
		a, b, err := h.Range(i)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%-4d %-12.6g %-12.6g %8d %8.4f\n", i, a, b, h.FreqAt(i), rel[i])
	}
	fmt.Fprintf(w, "N %d  raw mean %.6g  raw std %.6g\n", h.Volume(),
		legacystat.Mean(values, nil), legacystat.StdDev(values, nil))

	if mean, err := h.Mean(); err == nil {
		fmt.Fprintf(w, "grouped mean %.6g\n", mean)
	}
	if v, err := h.Variance(); err == nil {
		fmt.Fprintf(w, "grouped variance %.6g\n", v)
	}
	idx, me, err := h.Median()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "median interval %d  estimate %.6g (%s)\n", idx, me, h.MedianFormula())
	idx, mo, err := h.Mode()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "mode interval %d  estimate %.6g\n", idx, mo)
	return nil
}
