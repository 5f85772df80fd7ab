package summary

import (
	"fmt"
	"io"
	"sort"

	"github.com/tidwall/gjson"

	"github.com/sportdeets/load-tests/internal/environment"
	"github.com/sportdeets/load-tests/internal/scenario"
)

const (
	metricReqs        = "http_reqs"
	metricReqFailed   = "http_req_failed"
	metricReqDuration = "http_req_duration"
)

// Summary wraps the engine's end-of-test JSON document.
type Summary struct {
	doc gjson.Result
}

func Parse(data []byte) (Summary, error) {
	if !gjson.ValidBytes(data) {
		return Summary{}, fmt.Errorf("summary is not valid JSON")
	}
	return Summary{doc: gjson.ParseBytes(data)}, nil
}

// Value returns metrics.<metric>.values.<stat>, or 0 when the engine did not
// export it.
func (s Summary) Value(metric, stat string) float64 {
	values := s.doc.Get("metrics." + metric + ".values")
	if !values.IsObject() {
		return 0
	}
	return values.Map()[stat].Float()
}

// FailedThresholds lists "metric: expression" for every threshold the engine
// marked as not ok, sorted.
func (s Summary) FailedThresholds() []string {
	var failed []string

	s.doc.Get("metrics").ForEach(func(metric, m gjson.Result) bool {
		m.Get("thresholds").ForEach(func(expr, t gjson.Result) bool {
			if !t.Get("ok").Bool() {
				failed = append(failed, metric.String()+": "+expr.String())
			}
			return true
		})
		return true
	})

	sort.Strings(failed)
	return failed
}

// ThresholdsPassed is true when no threshold failed, including when none exist.
func (s Summary) ThresholdsPassed() bool {
	return len(s.FailedThresholds()) == 0
}

// Print writes the human-readable lines of sc's report for s.
func Print(w io.Writer, sc scenario.Scenario, env environment.Config, s Summary) error {
	ew := &errWriter{w: w}
	r := sc.Report

	ew.printf("\n%s %s for %s\n", r.Icon, r.Heading, env.Description)
	ew.printf("   Base URL: %s\n", env.BaseURL)

	for _, f := range r.Fields {
		ew.printf("   %s\n", fieldLine(f, s))
	}

	if r.Verdict {
		if s.ThresholdsPassed() {
			ew.printf("\n   ✅ All thresholds passed\n")
		} else {
			ew.printf("\n   ❌ Some thresholds failed\n")
		}
	}

	if len(r.Hints) > 0 {
		ew.printf("\n%s\n", r.HintsHeading)
		for _, hint := range r.Hints {
			ew.printf("   - %s\n", hint)
		}
	}

	return ew.err
}

func fieldLine(f scenario.Field, s Summary) string {
	switch f {
	case scenario.FieldRequests:
		return fmt.Sprintf("Total Requests: %d", int64(s.Value(metricReqs, "count")))
	case scenario.FieldRate:
		return fmt.Sprintf("Request Rate: %.2f req/s", s.Value(metricReqs, "rate"))
	case scenario.FieldPeakRate:
		return fmt.Sprintf("Peak Request Rate: %.2f req/s", s.Value(metricReqs, "rate"))
	case scenario.FieldFailed:
		return fmt.Sprintf("Failed Requests: %d", int64(s.Value(metricReqFailed, "passes")))
	case scenario.FieldAvgDuration:
		return fmt.Sprintf("Avg Response Time: %.2fms", s.Value(metricReqDuration, "avg"))
	case scenario.FieldP90Duration:
		return fmt.Sprintf("p90 Response Time: %.2fms", s.Value(metricReqDuration, "p(90)"))
	case scenario.FieldP95Duration:
		return fmt.Sprintf("p95 Response Time: %.2fms", s.Value(metricReqDuration, "p(95)"))
	case scenario.FieldP99Duration:
		return fmt.Sprintf("p99 Response Time: %.2fms", s.Value(metricReqDuration, "p(99)"))
	case scenario.FieldMaxDuration:
		return fmt.Sprintf("Max Response Time: %.2fms", s.Value(metricReqDuration, "max"))
	default:
		return fmt.Sprintf("%s: n/a", f)
	}
}

type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
