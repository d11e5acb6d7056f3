package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gopkg.in/yaml.v3"

	"github.com/wildfunctions/solve24/pkg/card"
	"github.com/wildfunctions/solve24/pkg/pool"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newEngine(t *testing.T, mutate func(*Config)) *Engine {
	t.Helper()
	cfg := DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	e, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func infixes(r Report) []string {
	out := make([]string, len(r.Solutions))
	for i, s := range r.Solutions {
		out[i] = s.Infix
	}
	return out
}

func TestEngine_SmallRun(t *testing.T) {
	e := newEngine(t, func(c *Config) { c.Workers = 1 })

	report, err := e.Run(context.Background(), e.Card([]float64{1, 3, 4, 6}))
	if err != nil {
		t.Fatal(err)
	}
	if report.Count != 1 {
		t.Fatalf("Expected exactly one solution, got %d: %v", report.Count, infixes(report))
	}
	s := report.Solutions[0]
	if s.Index != 1 || s.Infix != "(6/(1-(3/4)))" || s.Value != 24 {
		t.Errorf("Unexpected solution %+v", s)
	}
	if s.Prefix != "(/ 6 (- 1 (/ 3 4)))" || s.Postfix != "(6 (1 (3 4 /) -) /)" {
		t.Errorf("Unexpected renderings %q %q", s.Prefix, s.Postfix)
	}
	if len(s.Steps) != 3 {
		t.Errorf("Expected 3 steps, got %v", s.Steps)
	}
	if report.Pool != pool.Default || report.Target != 24 {
		t.Errorf("Unexpected report header %+v", report)
	}
}

func TestEngine_ParallelMatchesSequential(t *testing.T) {
	cards := [][]float64{
		{1, 2, 3, 4},
		{1, 4, 5, 6},
		{4, 4, 10, 10},
		{1, 1, 1, 1},
		{24},
		{},
	}
	seq := newEngine(t, func(c *Config) { c.Workers = 1 })
	par := newEngine(t, func(c *Config) { c.Workers = 4 })

	for _, nums := range cards {
		want, err := seq.Run(context.Background(), seq.Card(nums))
		if err != nil {
			t.Fatal(err)
		}
		got, err := par.Run(context.Background(), par.Card(nums))
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%v: parallel mismatch (-want +got):\n%s", nums, diff)
		}
	}
}

func TestEngine_Counts(t *testing.T) {
	e := newEngine(t, nil)
	tests := []struct {
		numbers []float64
		want    int
	}{
		{[]float64{1, 2, 3, 4}, 242},
		{[]float64{1, 1, 4, 6}, 456},
		{[]float64{2, 0, 3, 4}, 180},
		{[]float64{0, 0, 0, 0}, 0},
		{[]float64{5}, 0},
	}
	for _, tc := range tests {
		report, err := e.Run(context.Background(), e.Card(tc.numbers))
		if err != nil {
			t.Fatal(err)
		}
		if report.Count != tc.want {
			t.Errorf("%v: got %d solutions, want %d", tc.numbers, report.Count, tc.want)
		}
	}
}

func TestEngine_Limit(t *testing.T) {
	for _, workers := range []int{1, 4} {
		e := newEngine(t, func(c *Config) {
			c.Workers = workers
			c.Limit = 5
		})
		report, err := e.Run(context.Background(), e.Card([]float64{1, 2, 3, 4}))
		if err != nil {
			t.Fatal(err)
		}
		if report.Count != 5 || !report.Truncated {
			t.Errorf("workers=%d: got count=%d truncated=%v", workers, report.Count, report.Truncated)
		}
		if report.Solutions[4].Index != 5 {
			t.Errorf("workers=%d: indices not renumbered: %+v", workers, report.Solutions[4])
		}

		// A limit equal to the solution count must not report truncation.
		e = newEngine(t, func(c *Config) {
			c.Workers = workers
			c.Limit = 1
		})
		report, err = e.Run(context.Background(), e.Card([]float64{1, 3, 4, 6}))
		if err != nil {
			t.Fatal(err)
		}
		if report.Count != 1 || report.Truncated {
			t.Errorf("workers=%d: got count=%d truncated=%v", workers, report.Count, report.Truncated)
		}
	}
}

func TestEngine_CardTargetOverride(t *testing.T) {
	e := newEngine(t, nil)
	c := e.Card([]float64{1, 2, 3}, card.WithTarget(7))
	report, err := e.Run(context.Background(), c)
	if err != nil {
		t.Fatal(err)
	}
	if report.Target != 7 {
		t.Errorf("Expected target 7, got %v", report.Target)
	}
	found := false
	for _, s := range report.Solutions {
		if s.Infix == "(1+(2*3))" {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected (1+(2*3)) among %v", infixes(report))
	}
}

func TestEngine_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, workers := range []int{1, 4} {
		e := newEngine(t, func(c *Config) { c.Workers = workers })
		_, err := e.Run(ctx, e.Card([]float64{1, 2, 3, 4}))
		if !errors.Is(err, context.Canceled) {
			t.Errorf("workers=%d: expected context.Canceled, got %v", workers, err)
		}
	}
}

func TestEngine_Each(t *testing.T) {
	e := newEngine(t, func(c *Config) { c.Workers = 1 })
	full, err := e.Run(context.Background(), e.Card([]float64{1, 4, 5, 6}))
	if err != nil {
		t.Fatal(err)
	}

	var got []Solution
	err = e.Each(context.Background(), e.Card([]float64{1, 4, 5, 6}), func(s Solution) error {
		got = append(got, s)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(full.Solutions, got); diff != "" {
		t.Errorf("Each mismatch (-want +got):\n%s", diff)
	}

	stop := errors.New("stop")
	calls := 0
	err = e.Each(context.Background(), e.Card([]float64{1, 2, 3, 4}), func(Solution) error {
		calls++
		if calls == 3 {
			return stop
		}
		return nil
	})
	if !errors.Is(err, stop) || calls != 3 {
		t.Errorf("Expected stop after 3 calls, got err=%v calls=%d", err, calls)
	}

	limited := newEngine(t, func(c *Config) { c.Limit = 2 })
	calls = 0
	err = limited.Each(context.Background(), limited.Card([]float64{1, 2, 3, 4}), func(Solution) error {
		calls++
		return nil
	})
	if err != nil || calls != 2 {
		t.Errorf("Expected 2 calls under limit, got err=%v calls=%d", err, calls)
	}
}

func TestEngine_Logging(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	e, err := New(DefaultConfig(), WithLogger(zap.New(core)))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := e.Run(context.Background(), e.Card([]float64{1, 3, 4, 6})); err != nil {
		t.Fatal(err)
	}
	solved := logs.FilterMessage("solved").All()
	if len(solved) != 1 {
		t.Fatalf("Expected one solved entry, got %d", len(solved))
	}
	if got := solved[0].ContextMap()["solutions"]; got != int64(1) {
		t.Errorf("Expected solutions=1 in log, got %v", got)
	}
}

func TestConfig_Validate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown pool", func(c *Config) { c.Pool = "nope" }},
		{"negative limit", func(c *Config) { c.Limit = -1 }},
		{"bad notation", func(c *Config) { c.Notation = "polish" }},
		{"bad format", func(c *Config) { c.Format = "xml" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			if _, err := New(cfg); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}

	cfg := DefaultConfig()
	cfg.Pool = "nope"
	if err := cfg.Validate(); !errors.Is(err, pool.ErrUnknownPool) {
		t.Errorf("Expected wrapped ErrUnknownPool, got %v", err)
	}
}

func solvedReport(t *testing.T, nums []float64) Report {
	t.Helper()
	e := newEngine(t, nil)
	report, err := e.Run(context.Background(), e.Card(nums))
	if err != nil {
		t.Fatal(err)
	}
	return report
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	WriteText(&buf, solvedReport(t, []float64{1, 3, 4, 6}), "infix", true)

	want := strings.Join([]string{
		"Card:      [1 3 4 6] -> 24",
		"Pool:      standard",
		"Solutions: 1",
		"  #1: (6/(1-(3/4))) = 24",
		"        3 / 4 = 0.75",
		"        1 - 0.75 = 0.25",
		"        6 / 0.25 = 24",
		"",
	}, "\n")
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("text mismatch (-want +got):\n%s", diff)
	}

	buf.Reset()
	WriteText(&buf, solvedReport(t, []float64{1, 1, 1, 1}), "infix", true)
	if !strings.Contains(buf.String(), "No solutions.") {
		t.Errorf("Expected no-solutions line, got:\n%s", buf.String())
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, solvedReport(t, []float64{1, 4, 5, 6})); err != nil {
		t.Fatal(err)
	}
	var got Report
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	want := []string{"(4/(1-(5/6)))", "(6/((5/4)-1))"}
	if diff := cmp.Diff(want, infixes(got)); diff != "" {
		t.Errorf("json mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteYAML(&buf, solvedReport(t, []float64{1, 3, 4, 6})); err != nil {
		t.Fatal(err)
	}
	var got Report
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.Count != 1 || got.Solutions[0].Postfix != "(6 (1 (3 4 /) -) /)" {
		t.Errorf("Unexpected yaml report %+v", got)
	}
}

func TestWriteMarkdown(t *testing.T) {
	var buf bytes.Buffer
	WriteMarkdown(&buf, solvedReport(t, []float64{1, 3, 4, 6}), "prefix", true)
	out := buf.String()
	for _, want := range []string{
		"## [1 3 4 6] -> 24",
		"| # | Solution | Value | Explanation |",
		"| 1 | `(/ 6 (- 1 (/ 3 4)))` | 24 | 3 / 4 = 0.75; 1 - 0.75 = 0.25; 6 / 0.25 = 24 |",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in markdown:\n%s", want, out)
		}
	}
}

func TestWrite_Dispatch(t *testing.T) {
	report := solvedReport(t, []float64{1, 3, 4, 6})
	for _, format := range formats {
		t.Run(format, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Format = format
			var buf bytes.Buffer
			if err := Write(&buf, report, cfg); err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(buf.String(), "6") {
				t.Errorf("Expected solution in %s output:\n%s", format, buf.String())
			}
		})
	}
}
