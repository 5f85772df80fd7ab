package probe

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/sportdeets/load-tests/internal/environment"
	"github.com/sportdeets/load-tests/internal/scenario"
	"github.com/sportdeets/load-tests/internal/selector"
)

const maxBodyBytes = 1 << 20

// Result is the outcome of one request of the iteration.
type Result struct {
	Step     string
	URL      string
	Status   int
	Duration time.Duration
	Checks   map[string]bool
	Passed   bool
	Err      error
}

type Prober struct {
	client   *http.Client
	selector selector.Selector
	logger   *slog.Logger
	pause    bool
}

type Option func(*Prober)

func WithHTTPClient(client *http.Client) Option {
	return func(p *Prober) {
		p.client = client
	}
}

// WithPauses makes the iteration honour step pauses and think time.
func WithPauses() Option {
	return func(p *Prober) {
		p.pause = true
	}
}

func New(sel selector.Selector, logger *slog.Logger, timeout time.Duration, opts ...Option) *Prober {
	p := &Prober{
		client:   &http.Client{Timeout: timeout},
		selector: sel,
		logger:   logger,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Run executes every step of s once against env.
func (p *Prober) Run(ctx context.Context, s scenario.Scenario, env environment.Config) ([]Result, error) {
	results := make([]Result, 0, len(s.Steps))

	for _, step := range s.Steps {
		ep, err := p.selector.Select(step.Endpoints)
		if err != nil {
			return results, fmt.Errorf("selecting endpoint for step %s: %w", step.Name, err)
		}

		res := p.request(ctx, step, env.URL(ep.URL))
		results = append(results, res)

		if ctx.Err() != nil {
			return results, ctx.Err()
		}

		if err := p.wait(ctx, step.Pause); err != nil {
			return results, err
		}
	}

	if err := p.wait(ctx, s.ThinkTime.Next(rand.Float64())); err != nil {
		return results, err
	}

	return results, nil
}

func (p *Prober) request(ctx context.Context, step scenario.Step, url string) Result {
	res := Result{Step: step.Name, URL: url}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		res.Err = err
		return res
	}

	start := time.Now()
	resp, err := p.client.Do(req)
	if err != nil {
		res.Duration = time.Since(start)
		res.Err = err
		p.logger.Warn("Request failed",
			slog.String("step", step.Name),
			slog.String("url", url),
			slog.String("error", err.Error()))
		return res
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	res.Duration = time.Since(start)
	res.Status = resp.StatusCode
	if err != nil {
		res.Err = err
	}

	res.Checks, res.Passed = scenario.Evaluate(step.Checks, scenario.Response{
		Status:   resp.StatusCode,
		Duration: res.Duration,
		Header:   resp.Header,
		Body:     body,
	})
	res.Passed = res.Passed && res.Err == nil

	p.logger.Debug("Request completed",
		slog.String("step", step.Name),
		slog.String("url", url),
		slog.Int("status", res.Status),
		slog.Duration("duration", res.Duration),
		slog.Bool("passed", res.Passed))

	return res
}

func (p *Prober) wait(ctx context.Context, d time.Duration) error {
	if !p.pause || d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// AllPassed reports whether every request succeeded and passed its checks.
func AllPassed(results []Result) bool {
	for _, r := range results {
		if !r.Passed {
			return false
		}
	}
	return true
}
