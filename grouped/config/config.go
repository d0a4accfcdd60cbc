package config

import (
	"fmt"
	"os"
	"strings"
	"sync/atomic"

	"libstat/grouped/hist"
	"libstat/infra/observe/log/staticLog"

	"gopkg.in/yaml.v3"
)

const (
	STRATEGY_REGULAR  = "regular"
	STRATEGY_STURGES  = "sturges"
	STRATEGY_VARIABLE = "variable"
)

type Config struct {
	Log           staticLog.Options `yaml:"log"`
	Axis          AxisConfig        `yaml:"axis"`
	MedianFormula string            `yaml:"median_formula"`
}

type AxisConfig struct {
	Strategy string    `yaml:"strategy"`
	Min      float64   `yaml:"min"`
	Max      float64   `yaml:"max"`
	Parts    int       `yaml:"parts"`  // regular
	Volume   int       `yaml:"volume"` // sturges, 0 表示取序列长度
	Bounds   []float64 `yaml:"bounds"` // variable
}

// 用 atomic.Value 存当前配置，无锁读取
var cfgValue atomic.Value // stores *Config

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read yaml: %w", err)
	}
	return Parse(b)
}

func Parse(b []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("unmarshal yaml: %w", err)
	}

	// 规范化：小写、去空格
	c.Axis.Strategy = strings.ToLower(strings.TrimSpace(c.Axis.Strategy))
	if c.Axis.Strategy == "" {
		c.Axis.Strategy = STRATEGY_REGULAR
	}
	c.MedianFormula = strings.ToLower(strings.TrimSpace(c.MedianFormula))
	if c.MedianFormula == "" {
		c.MedianFormula = hist.MEDIAN_SOURCE.String()
	}
	if _, ok := hist.GetMedianFormula(c.MedianFormula); !ok {
		return nil, fmt.Errorf("invalid median_formula: %q", c.MedianFormula)
	}

	switch c.Axis.Strategy {
	case STRATEGY_REGULAR:
	case STRATEGY_STURGES:
		if c.Axis.Volume < 0 {
			return nil, fmt.Errorf("invalid volume: %d", c.Axis.Volume)
		}
	case STRATEGY_VARIABLE:
		if len(c.Axis.Bounds) < 2 {
			return nil, fmt.Errorf("variable axis needs at least 2 bounds, got %d", len(c.Axis.Bounds))
		}
	default:
		return nil, fmt.Errorf("unknown axis strategy: %q", c.Axis.Strategy)
	}
	return &c, nil
}

func Init(path string) error {
	c, err := Load(path)
	if err != nil {
		return err
	}
	cfgValue.Store(c)
	return nil
}

// Current 未 Init 时返回 nil
func Current() *Config {
	cAny := cfgValue.Load()
	if cAny == nil {
		return nil
	}
	return cAny.(*Config)
}

// Build 按配置构造直方图，n 为待加载序列长度（Sturges 且 volume 为 0 时使用）
func Build(c *Config, n int) (*hist.Histogram, error) {
	h := hist.New()
	f, _ := hist.GetMedianFormula(c.MedianFormula)
	h.SetMedianFormula(f)

	ax := c.Axis
	var err error
	switch ax.Strategy {
	case STRATEGY_STURGES:
		volume := ax.Volume
		if volume == 0 {
			volume = n
		}
		err = h.Sturges(ax.Min, ax.Max, volume)
	case STRATEGY_VARIABLE:
		bounds := ax.Bounds
		err = h.Variable(ax.Min, len(bounds)-1, func(i int) float64 { return bounds[i] })
	default:
		err = h.Regular(ax.Min, ax.Max, ax.Parts)
	}
	if err != nil {
		return nil, fmt.Errorf("build %s axis: %w", ax.Strategy, err)
	}
	return h, nil
}
