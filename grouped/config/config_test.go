package config

import (
	"testing"

	"libstat/grouped/hist"
	"libstat/infra/errorx"
	"libstat/infra/errorx/errCode"
)

func TestLoadFile(t *testing.T) {
	c, err := Load("testdata/sturges.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if c.Axis.Strategy != STRATEGY_STURGES {
		t.Errorf("strategy = %q", c.Axis.Strategy)
	}
	if c.Log.Level != "warn" || c.MedianFormula != "classic" {
		t.Errorf("config = %+v", c)
	}

	h, err := Build(c, 10)
	if err != nil {
		t.Fatal(err)
	}
	if h.Size() != 5 {
		t.Errorf("size = %d, want 5", h.Size())
	}
	if h.MedianFormula() != hist.MEDIAN_CLASSIC {
		t.Error("median formula not applied")
	}

	// volume 0 且序列过短
	if _, err := Build(c, 1); !errorx.HasCode(err, errCode.INVALID_OBSERVATION_COUNT) {
		t.Errorf("got %v", err)
	}
}

func TestParseDefaults(t *testing.T) {
	c, err := Parse([]byte("axis: {min: 0, max: 100, parts: 10}\n"))
	if err != nil {
		t.Fatal(err)
	}
	if c.Axis.Strategy != STRATEGY_REGULAR || c.MedianFormula != "source" {
		t.Errorf("config = %+v", c)
	}
	h, err := Build(c, 0)
	if err != nil {
		t.Fatal(err)
	}
	if h.Size() != 10 || h.MedianFormula() != hist.MEDIAN_SOURCE {
		t.Errorf("size = %d", h.Size())
	}
}

func TestParseVariable(t *testing.T) {
	c, err := Parse([]byte("axis:\n  strategy: variable\n  bounds: [0, 1, 5, 20]\n"))
	if err != nil {
		t.Fatal(err)
	}
	h, err := Build(c, 0)
	if err != nil {
		t.Fatal(err)
	}
	b := h.Bounds()
	if len(b) != 4 || b[2] != 5 {
		t.Errorf("bounds = %v", b)
	}

	bad, err := Parse([]byte("axis:\n  strategy: variable\n  bounds: [0, 5, 5]\n"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Build(bad, 0); !errorx.HasCode(err, errCode.NON_MONOTONIC_SEQUENCE) {
		t.Errorf("got %v", err)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []string{
		"axis: {strategy: cubic}\n",
		"axis: {strategy: variable, bounds: [1]}\n",
		"axis: {strategy: sturges, volume: -1}\n",
		"median_formula: mean\n",
		"axis: [\n",
	}
	for _, s := range cases {
		if _, err := Parse([]byte(s)); err == nil {
			t.Errorf("expected error for %q", s)
		}
	}
	if _, err := Load("testdata/missing.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestInitCurrent(t *testing.T) {
	if err := Init("testdata/sturges.yaml"); err != nil {
		t.Fatal(err)
	}
	c := Current()
	if c == nil || c.Axis.Max != 10 {
		t.Fatalf("current = %+v", c)
	}
}
