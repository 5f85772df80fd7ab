package scenario_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sportdeets/load-tests/internal/scenario"
)

var _ = Describe("ParseThreshold", func() {
	DescribeTable("valid expressions",
		func(expr string, expected scenario.Threshold, percentile bool) {
			t, err := scenario.ParseThreshold(expr)
			Expect(err).NotTo(HaveOccurred())
			Expect(t).To(Equal(expected))
			Expect(t.IsPercentile()).To(Equal(percentile))
		},
		Entry("rate", "rate<0.01", scenario.Threshold{Aggregation: "rate", Operator: "<", Value: 0.01}, false),
		Entry("p95", "p(95)<500", scenario.Threshold{Aggregation: "p(95)", Operator: "<", Value: 500}, true),
		Entry("fractional percentile", "p(99.9)<=2000", scenario.Threshold{Aggregation: "p(99.9)", Operator: "<=", Value: 2000}, true),
		Entry("count with spaces", " count > 10 ", scenario.Threshold{Aggregation: "count", Operator: ">", Value: 10}, false),
		Entry("max", "max<3000", scenario.Threshold{Aggregation: "max", Operator: "<", Value: 3000}, false),
	)

	DescribeTable("invalid expressions",
		func(expr string) {
			_, err := scenario.ParseThreshold(expr)
			Expect(err).To(MatchError(scenario.ErrInvalidThreshold))
		},
		Entry("empty", ""),
		Entry("unknown aggregation", "p95<500"),
		Entry("missing operator", "rate 0.01"),
		Entry("missing value", "rate<"),
		Entry("percentile above 100", "p(101)<5"),
	)

	It("should render back to its expression", func() {
		t, err := scenario.ParseThreshold("p(95) < 500")
		Expect(err).NotTo(HaveOccurred())
		Expect(t.String()).To(Equal("p(95)<500"))
	})
})
