package scenario

import (
	"net/http"
	"time"

	"github.com/sportdeets/load-tests/internal/selector"
)

const (
	metricReqFailed   = "http_req_failed"
	metricReqDuration = "http_req_duration"
	metricErrors      = "errors"
)

func Smoke() Scenario {
	return Scenario{
		Name:    "smoke",
		Purpose: "Quick validation that endpoints are accessible and responding",
		Stages: []Stage{
			{Duration: 30 * time.Second, Target: 2},
			{Duration: 30 * time.Second, Target: 0},
		},
		Thresholds: map[string][]string{
			metricReqFailed:   {"rate<0.01"},
			metricReqDuration: {"p(95)<1000"},
		},
		Steps: []Step{
			{
				Name:      "health",
				Endpoints: []selector.Endpoint{{URL: "/health", Weight: 1}},
				Checks: []Check{
					StatusIn("health check status is 200", http.StatusOK),
					FasterThan("health check responds quickly", 500*time.Millisecond),
				},
				Pause: time.Second,
			},
			{
				Name:      "swagger",
				Endpoints: []selector.Endpoint{{URL: "/swagger/v1/swagger.json", Weight: 1}},
				Checks: []Check{
					StatusIn("swagger endpoint accessible", http.StatusOK),
					ContentTypeContains("swagger returns JSON", "application/json"),
				},
				Pause: time.Second,
			},
		},
		Report: Report{
			Icon:    "✅",
			Heading: "Smoke Test Complete",
			Fields:  []Field{FieldRequests, FieldFailed, FieldAvgDuration},
		},
	}
}

func Load() Scenario {
	return Scenario{
		Name:    "load",
		Purpose: "Validate performance under typical load",
		Stages: []Stage{
			{Duration: time.Minute, Target: 20},
			{Duration: 3 * time.Minute, Target: 50},
			{Duration: time.Minute, Target: 0},
		},
		Thresholds: map[string][]string{
			metricReqFailed:   {"rate<0.01"},
			metricReqDuration: {"p(95)<500", "p(99)<1000"},
			metricErrors:      {"rate<0.01"},
		},
		Steps: []Step{
			{
				Name: "browse",
				Endpoints: []selector.Endpoint{
					{URL: "/health", Weight: 1},
					{URL: "/api/health", Weight: 1},
				},
				Checks: []Check{
					StatusIn("status is 200", http.StatusOK),
					FasterThan("response time < 500ms", 500*time.Millisecond),
					HasBody("response has content"),
				},
			},
		},
		ThinkTime: ThinkTime{Min: time.Second, Max: 3 * time.Second},
		Report: Report{
			Icon:    "📊",
			Heading: "Load Test Summary",
			Fields: []Field{
				FieldRequests, FieldRate, FieldFailed,
				FieldAvgDuration, FieldP95Duration, FieldP99Duration,
			},
			Verdict: true,
		},
	}
}

func Stress() Scenario {
	return Scenario{
		Name:    "stress",
		Purpose: "Find system limits, test autoscaling, identify bottlenecks",
		Stages: []Stage{
			{Duration: 2 * time.Minute, Target: 50},
			{Duration: 2 * time.Minute, Target: 100},
			{Duration: 2 * time.Minute, Target: 200},
			{Duration: 2 * time.Minute, Target: 300},
			{Duration: 2 * time.Minute, Target: 0},
		},
		Thresholds: map[string][]string{
			metricReqFailed:   {"rate<0.05"},
			metricReqDuration: {"p(95)<2000"},
		},
		Steps: []Step{
			{
				Name:      "health",
				Endpoints: []selector.Endpoint{{URL: "/health", Weight: 1}},
				Checks: []Check{
					StatusIn("status is 200 or 429 (rate limited)", http.StatusOK, http.StatusTooManyRequests),
					FasterThan("response time acceptable", 3*time.Second),
				},
			},
		},
		ThinkTime: ThinkTime{Min: 500 * time.Millisecond, Max: 1500 * time.Millisecond},
		Report: Report{
			Icon:    "🔥",
			Heading: "Stress Test Summary",
			Fields: []Field{
				FieldRequests, FieldPeakRate, FieldFailed,
				FieldAvgDuration, FieldP95Duration, FieldP99Duration, FieldMaxDuration,
			},
			HintsHeading: "💡 Monitor Grafana for:",
			Hints: []string{
				"GC pressure and frequency",
				"Memory growth patterns",
				"ThreadPool saturation",
				"Pod CPU/Memory usage (kubectl top pods)",
				"HPA scaling events (kubectl get hpa --watch)",
			},
			SaveResults: true,
		},
	}
}

func Spike() Scenario {
	return Scenario{
		Name:    "spike",
		Purpose: "Test autoscaler responsiveness and burst handling",
		Stages: []Stage{
			{Duration: 30 * time.Second, Target: 10},
			{Duration: 30 * time.Second, Target: 300},
			{Duration: 2 * time.Minute, Target: 300},
			{Duration: 30 * time.Second, Target: 10},
			{Duration: time.Minute, Target: 0},
		},
		Thresholds: map[string][]string{
			metricReqFailed:   {"rate<0.10"},
			metricReqDuration: {"p(90)<3000"},
		},
		Steps: []Step{
			{
				Name:      "health",
				Endpoints: []selector.Endpoint{{URL: "/health", Weight: 1}},
				Checks: []Check{
					StatusIn("survived spike", http.StatusOK, http.StatusTooManyRequests, http.StatusServiceUnavailable),
					FasterThan("response eventually received", 10*time.Second),
				},
			},
		},
		ThinkTime: ThinkTime{Min: 0, Max: 500 * time.Millisecond},
		Report: Report{
			Icon:    "⚡",
			Heading: "Spike Test Summary",
			Fields: []Field{
				FieldRequests, FieldFailed,
				FieldAvgDuration, FieldP90Duration, FieldMaxDuration,
			},
			HintsHeading: "🎯 Check if:",
			Hints: []string{
				"HPA scaled pods quickly enough",
				"Circuit breakers triggered appropriately",
				"No cascading failures occurred",
				"System recovered after spike ended",
			},
			SaveResults: true,
		},
	}
}
