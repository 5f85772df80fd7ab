package scenario

import (
	"fmt"
	"sort"

	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

var defaultTrendStats = []string{"avg", "min", "med", "max", "p(90)", "p(95)"}

type stageOption struct {
	Duration string `json:"duration"`
	Target   int    `json:"target"`
}

// Options renders the engine options for s: stages, thresholds, the trend
// stats the summary needs, and tags identifying the run.
func (s Scenario) Options(environment string) ([]byte, error) {
	stages := make([]stageOption, 0, len(s.Stages))
	for _, st := range s.Stages {
		stages = append(stages, stageOption{Duration: FormatDuration(st.Duration), Target: st.Target})
	}

	out := []byte(`{}`)
	var err error

	if out, err = sjson.SetBytes(out, "stages", stages); err != nil {
		return nil, fmt.Errorf("setting stages: %w", err)
	}

	if len(s.Thresholds) > 0 {
		if out, err = sjson.SetBytes(out, "thresholds", s.Thresholds); err != nil {
			return nil, fmt.Errorf("setting thresholds: %w", err)
		}
	}

	if out, err = sjson.SetBytes(out, "summaryTrendStats", s.TrendStats()); err != nil {
		return nil, fmt.Errorf("setting summary trend stats: %w", err)
	}

	if out, err = sjson.SetBytes(out, "tags.scenario", s.Name); err != nil {
		return nil, fmt.Errorf("setting scenario tag: %w", err)
	}

	if out, err = sjson.SetBytes(out, "tags.environment", environment); err != nil {
		return nil, fmt.Errorf("setting environment tag: %w", err)
	}

	return pretty.Pretty(out), nil
}

// TrendStats lists the trend aggregations the engine must export so that the
// summary fields and percentile thresholds can be read back.
func (s Scenario) TrendStats() []string {
	seen := make(map[string]bool, len(defaultTrendStats))
	stats := append([]string(nil), defaultTrendStats...)
	for _, st := range stats {
		seen[st] = true
	}

	var extra []string
	add := func(stat string) {
		if !seen[stat] {
			seen[stat] = true
			extra = append(extra, stat)
		}
	}

	for _, f := range s.Report.Fields {
		switch f {
		case FieldP90Duration, FieldP95Duration, FieldP99Duration:
			add(string(f))
		}
	}

	for _, exprs := range s.Thresholds {
		for _, expr := range exprs {
			if t, err := ParseThreshold(expr); err == nil && t.IsPercentile() {
				add(t.Aggregation)
			}
		}
	}

	sort.Strings(extra)
	return append(stats, extra...)
}
