package probe_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sportdeets/load-tests/internal/environment"
	"github.com/sportdeets/load-tests/internal/probe"
	"github.com/sportdeets/load-tests/internal/scenario"
	"github.com/sportdeets/load-tests/internal/selector"
)

var _ = Describe("Prober", func() {
	var (
		server   *httptest.Server
		env      environment.Config
		log      *slog.Logger
		prober   *probe.Prober
		requests atomic.Int32
		status   atomic.Int32
	)

	BeforeEach(func() {
		requests.Store(0)
		status.Store(http.StatusOK)
		log = slog.New(slog.NewTextHandler(io.Discard, nil))

		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests.Add(1)
			switch r.URL.Path {
			case "/health", "/api/health":
				w.WriteHeader(int(status.Load()))
				w.Write([]byte("Healthy"))
			case "/swagger/v1/swagger.json":
				w.Header().Set("Content-Type", "application/json; charset=utf-8")
				w.Write([]byte(`{"openapi":"3.0.1"}`))
			default:
				http.NotFound(w, r)
			}
		}))

		env = environment.Config{BaseURL: server.URL, Description: "test server"}
		prober = probe.New(selector.NewWeightedRandom(nil), log, 5*time.Second)
	})

	AfterEach(func() {
		server.Close()
	})

	It("should run every smoke step and pass its checks", func() {
		results, err := prober.Run(context.Background(), scenario.Smoke(), env)
		Expect(err).NotTo(HaveOccurred())
		Expect(results).To(HaveLen(2))
		Expect(results[0].URL).To(Equal(server.URL + "/health"))
		Expect(results[1].URL).To(Equal(server.URL + "/swagger/v1/swagger.json"))
		Expect(results[1].Checks).To(HaveKeyWithValue("swagger returns JSON", true))
		Expect(probe.AllPassed(results)).To(BeTrue())
		Expect(requests.Load()).To(Equal(int32(2)))
	})

	It("should pick a load endpoint from the weighted list", func() {
		results, err := prober.Run(context.Background(), scenario.Load(), env)
		Expect(err).NotTo(HaveOccurred())
		Expect(results).To(HaveLen(1))
		Expect(results[0].URL).To(BeElementOf(server.URL+"/health", server.URL+"/api/health"))
		Expect(results[0].Checks).To(HaveLen(3))
		Expect(results[0].Passed).To(BeTrue())
	})

	It("should accept rate limiting under stress", func() {
		status.Store(http.StatusTooManyRequests)

		results, err := prober.Run(context.Background(), scenario.Stress(), env)
		Expect(err).NotTo(HaveOccurred())
		Expect(results[0].Status).To(Equal(http.StatusTooManyRequests))
		Expect(probe.AllPassed(results)).To(BeTrue())
	})

	It("should fail checks on server errors", func() {
		status.Store(http.StatusInternalServerError)

		results, err := prober.Run(context.Background(), scenario.Spike(), env)
		Expect(err).NotTo(HaveOccurred())
		Expect(results[0].Checks).To(HaveKeyWithValue("survived spike", false))
		Expect(probe.AllPassed(results)).To(BeFalse())
	})

	It("should record transport errors as failed results", func() {
		server.Close()

		results, err := prober.Run(context.Background(), scenario.Stress(), env)
		Expect(err).NotTo(HaveOccurred())
		Expect(results[0].Err).To(HaveOccurred())
		Expect(results[0].Passed).To(BeFalse())
	})

	It("should stop waiting when the context is cancelled", func() {
		prober = probe.New(selector.NewWeightedRandom(nil), log, 5*time.Second, probe.WithPauses())
		ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
		defer cancel()

		start := time.Now()
		results, err := prober.Run(ctx, scenario.Smoke(), env)
		Expect(err).To(MatchError(context.DeadlineExceeded))
		Expect(results).To(HaveLen(1))
		Expect(time.Since(start)).To(BeNumerically("<", time.Second))
	})

	It("should surface endpoint selection errors", func() {
		s := scenario.Stress()
		s.Steps[0].Endpoints = nil

		_, err := prober.Run(context.Background(), s, env)
		Expect(err).To(MatchError(selector.ErrNoEndpoints))
	})

	It("should use a custom HTTP client", func() {
		prober = probe.New(selector.NewWeightedRandom(nil), log, time.Second, probe.WithHTTPClient(server.Client()))

		results, err := prober.Run(context.Background(), scenario.Stress(), env)
		Expect(err).NotTo(HaveOccurred())
		Expect(results[0].Passed).To(BeTrue())
	})
})
