package scenario_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/tidwall/gjson"

	"github.com/sportdeets/load-tests/internal/scenario"
)

var _ = Describe("Options", func() {
	It("should render stages and thresholds", func() {
		out, err := scenario.Load().Options("prod-internal")
		Expect(err).NotTo(HaveOccurred())
		Expect(gjson.ValidBytes(out)).To(BeTrue())

		doc := gjson.ParseBytes(out)
		Expect(doc.Get("stages.#").Int()).To(Equal(int64(3)))
		Expect(doc.Get("stages.0.duration").String()).To(Equal("1m"))
		Expect(doc.Get("stages.0.target").Int()).To(Equal(int64(20)))
		Expect(doc.Get("stages.1.duration").String()).To(Equal("3m"))
		Expect(doc.Get("thresholds.http_req_duration.#").Int()).To(Equal(int64(2)))
		Expect(doc.Get("thresholds.errors.0").String()).To(Equal("rate<0.01"))
		Expect(doc.Get("tags.scenario").String()).To(Equal("load"))
		Expect(doc.Get("tags.environment").String()).To(Equal("prod-internal"))
	})

	It("should export the percentiles the summary reads", func() {
		out, err := scenario.Load().Options("dev")
		Expect(err).NotTo(HaveOccurred())

		var stats []string
		for _, v := range gjson.GetBytes(out, "summaryTrendStats").Array() {
			stats = append(stats, v.String())
		}
		Expect(stats).To(ContainElements("avg", "max", "p(90)", "p(95)", "p(99)"))
	})

	It("should use seconds for short stages", func() {
		out, err := scenario.Spike().Options("dev")
		Expect(err).NotTo(HaveOccurred())
		Expect(gjson.GetBytes(out, "stages.0.duration").String()).To(Equal("30s"))
		Expect(gjson.GetBytes(out, "stages.1.target").Int()).To(Equal(int64(300)))
	})
})

var _ = Describe("TrendStats", func() {
	It("should not duplicate default stats", func() {
		stats := scenario.Spike().TrendStats()
		Expect(stats).To(Equal([]string{"avg", "min", "med", "max", "p(90)", "p(95)"}))
	})

	It("should append missing percentiles sorted", func() {
		s := scenario.Smoke()
		s.Thresholds["http_req_duration"] = []string{"p(99.9)<2000", "p(99)<1500"}
		Expect(s.TrendStats()).To(Equal([]string{"avg", "min", "med", "max", "p(90)", "p(95)", "p(99)", "p(99.9)"}))
	})
})
