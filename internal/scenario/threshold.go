package scenario

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var ErrInvalidThreshold = errors.New("invalid threshold expression")

var thresholdPattern = regexp.MustCompile(`^\s*(avg|min|max|med|count|rate|value|p\((\d+(?:\.\d+)?)\))\s*(<=|>=|==|!=|<|>)\s*(-?\d+(?:\.\d+)?)\s*$`)

// Threshold is one parsed expression such as "p(95)<500" or "rate<0.01".
type Threshold struct {
	Aggregation string
	Operator    string
	Value       float64
}

func ParseThreshold(expr string) (Threshold, error) {
	m := thresholdPattern.FindStringSubmatch(expr)
	if m == nil {
		return Threshold{}, fmt.Errorf("%w: %q", ErrInvalidThreshold, expr)
	}

	if m[2] != "" {
		p, err := strconv.ParseFloat(m[2], 64)
		if err != nil || p < 0 || p > 100 {
			return Threshold{}, fmt.Errorf("%w: percentile out of range in %q", ErrInvalidThreshold, expr)
		}
	}

	value, err := strconv.ParseFloat(m[4], 64)
	if err != nil {
		return Threshold{}, fmt.Errorf("%w: %q", ErrInvalidThreshold, expr)
	}

	return Threshold{
		Aggregation: m[1],
		Operator:    m[3],
		Value:       value,
	}, nil
}

func (t Threshold) String() string {
	return t.Aggregation + t.Operator + strconv.FormatFloat(t.Value, 'f', -1, 64)
}

// IsPercentile reports whether the aggregation is a p(N) trend stat.
func (t Threshold) IsPercentile() bool {
	return strings.HasPrefix(t.Aggregation, "p(")
}
