package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"libstat/infra/observe/log/staticLog"
)

func TestRunDemo(t *testing.T) {
	var buf bytes.Buffer
	if err := run(&buf, "", "", "", 500, 7); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"median interval", "mode interval", "grouped mean"} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
}

func TestRunConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "profile.yaml")
	in := filepath.Join(dir, "values.txt")
	if err := os.WriteFile(cfg, []byte("axis: {strategy: regular, min: 0, max: 100, parts: 10}\nmedian_formula: classic\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(in, []byte("5 5 5 15 25 95\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := run(&buf, cfg, in, "", 0, 0); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "median interval 0  estimate 10 (classic)") {
		t.Errorf("unexpected median line:\n%s", out)
	}
	if !strings.Contains(out, "mode interval 0  estimate 5\n") {
		t.Errorf("unexpected mode line:\n%s", out)
	}
}

func TestRunErrors(t *testing.T) {
	var buf bytes.Buffer
	dir := t.TempDir()
	empty := filepath.Join(dir, "empty.txt")
	if err := os.WriteFile(empty, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := run(&buf, "", empty, "", 0, 0); err == nil {
		t.Error("expected error for empty series")
	}
	if err := run(&buf, filepath.Join(dir, "missing.yaml"), "", "", 10, 1); err == nil {
		t.Error("expected error for missing config")
	}
}

func TestRunDegenerateSeries(t *testing.T) {
	dir := t.TempDir()
	for name, data := range map[string]string{"constant.txt": "3 3 3\n", "single.txt": "7\n"} {
		in := filepath.Join(dir, name)
		if err := os.WriteFile(in, []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}
		var buf bytes.Buffer
		if err := run(&buf, "", in, "", 0, 0); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if !strings.Contains(buf.String(), "mode interval") {
			t.Errorf("%s: no estimates printed:\n%s", name, buf.String())
		}
	}
}

func TestRunConfigLogSink(t *testing.T) {
	defer staticLog.Init(staticLog.Options{})

	dir := t.TempDir()
	logFile := filepath.Join(dir, "binstat.log")
	cfg := filepath.Join(dir, "profile.yaml")
	profile := "log: {level: info, file: " + logFile + "}\naxis: {min: 0, max: 10, parts: 5}\n"
	if err := os.WriteFile(cfg, []byte(profile), 0o644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := run(&buf, cfg, "", "", 20, 3); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "config "+cfg+" loaded") {
		t.Errorf("config line missing from configured log file:\n%s", b)
	}
}
