package scenario

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/sportdeets/load-tests/internal/selector"
)

// Step is one request of an iteration. A step with several endpoints picks
// one of them by weight each time it runs.
type Step struct {
	Name      string
	Endpoints []selector.Endpoint
	Checks    []Check
	Pause     time.Duration
}

// ThinkTime is the uniform pause a virtual user takes after each iteration.
type ThinkTime struct {
	Min time.Duration
	Max time.Duration
}

// Next maps a uniform draw in [0, 1) onto [Min, Max).
func (t ThinkTime) Next(draw float64) time.Duration {
	return t.Min + time.Duration(draw*float64(t.Max-t.Min))
}

type Field string

const (
	FieldRequests    Field = "requests"
	FieldRate        Field = "rate"
	FieldPeakRate    Field = "peak_rate"
	FieldFailed      Field = "failed"
	FieldAvgDuration Field = "avg"
	FieldP90Duration Field = "p(90)"
	FieldP95Duration Field = "p(95)"
	FieldP99Duration Field = "p(99)"
	FieldMaxDuration Field = "max"
)

// Report describes how the engine's end-of-test summary is printed.
type Report struct {
	Icon         string
	Heading      string
	Fields       []Field
	Verdict      bool
	HintsHeading string
	Hints        []string
	SaveResults  bool
}

type Scenario struct {
	Name       string
	Purpose    string
	Stages     []Stage
	Thresholds map[string][]string
	Steps      []Step
	ThinkTime  ThinkTime
	Report     Report
}

// TotalDuration is the sum of all stage durations.
func (s Scenario) TotalDuration() time.Duration {
	var total time.Duration
	for _, st := range s.Stages {
		total += st.Duration
	}
	return total
}

// PeakTarget is the highest virtual-user target across stages.
func (s Scenario) PeakTarget() int {
	peak := 0
	for _, st := range s.Stages {
		if st.Target > peak {
			peak = st.Target
		}
	}
	return peak
}

func (s Scenario) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Name, validation.Required),
		validation.Field(&s.Stages,
			validation.Required,
			validation.Each(validation.By(validateStage)),
		),
		validation.Field(&s.Thresholds, validation.By(validateThresholds)),
		validation.Field(&s.Steps,
			validation.Required,
			validation.Each(validation.By(validateStep)),
		),
		validation.Field(&s.ThinkTime, validation.By(validateThinkTime)),
	)
}

func validateStage(value interface{}) error {
	st, ok := value.(Stage)
	if !ok {
		return validation.NewError("validation_invalid_type", "must be a Stage")
	}

	return validation.ValidateStruct(&st,
		validation.Field(&st.Duration, validation.Required, validation.Min(time.Second)),
		validation.Field(&st.Target, validation.Min(0)),
	)
}

func validateThresholds(value interface{}) error {
	thresholds, ok := value.(map[string][]string)
	if !ok {
		return validation.NewError("validation_invalid_type", "must be a threshold map")
	}

	for metric, exprs := range thresholds {
		if len(exprs) == 0 {
			return validation.NewError("validation_empty_threshold", "metric "+metric+" has no threshold expressions")
		}
		for _, expr := range exprs {
			if _, err := ParseThreshold(expr); err != nil {
				return validation.NewError("validation_invalid_threshold", err.Error())
			}
		}
	}

	return nil
}

func validateStep(value interface{}) error {
	step, ok := value.(Step)
	if !ok {
		return validation.NewError("validation_invalid_type", "must be a Step")
	}

	return validation.ValidateStruct(&step,
		validation.Field(&step.Name, validation.Required),
		validation.Field(&step.Endpoints, validation.By(func(interface{}) error {
			return selector.Validate(step.Endpoints)
		})),
		validation.Field(&step.Pause, validation.Min(time.Duration(0))),
	)
}

func validateThinkTime(value interface{}) error {
	tt, ok := value.(ThinkTime)
	if !ok {
		return validation.NewError("validation_invalid_type", "must be a ThinkTime")
	}

	if tt.Min < 0 || tt.Max < tt.Min {
		return validation.NewError("validation_invalid_think_time", "think time must satisfy 0 <= min <= max")
	}

	return nil
}
