package health

import (
	"context"
	"math"
	"time"
)

type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusUnhealthy Status = "unhealthy"
)

// Probe is any zero-argument dependency check expected to complete quickly.
type Probe func(ctx context.Context) error

type CheckResult struct {
	Status    Status  `json:"status"`
	LatencyMS float64 `json:"latency_ms"`
	Error     *string `json:"error"`
}

// Checker probes registered dependencies and aggregates them into an overall
// status. Liveness is deliberately not part of it: a running process is alive
// whether or not its dependencies answer.
type Checker struct {
	version   string
	startedAt time.Time
	names     []string
	probes    map[string]Probe
}

func NewChecker(version string) *Checker {
	return &Checker{
		version:   version,
		startedAt: time.Now(),
		probes:    map[string]Probe{},
	}
}

// Register adds a named dependency probe. Not safe for concurrent use; wire
// all probes during startup.
func (c *Checker) Register(name string, p Probe) {
	if _, ok := c.probes[name]; !ok {
		c.names = append(c.names, name)
	}
	c.probes[name] = p
}

func (c *Checker) Version() string { return c.version }

func (c *Checker) UptimeSeconds() float64 {
	return roundMS(time.Since(c.startedAt).Seconds())
}

// CheckDependency runs one probe and times exactly its invocation.
func CheckDependency(ctx context.Context, p Probe) CheckResult {
	start := time.Now()
	err := p(ctx)
	latency := roundMS(float64(time.Since(start).Microseconds()) / 1000.0)

	if err != nil {
		msg := err.Error()
		return CheckResult{Status: StatusUnhealthy, LatencyMS: latency, Error: &msg}
	}
	return CheckResult{Status: StatusHealthy, LatencyMS: latency}
}

// Aggregate is a strict AND: every check must be healthy, no partial credit.
func Aggregate(checks map[string]CheckResult) Status {
	for _, r := range checks {
		if r.Status != StatusHealthy {
			return StatusUnhealthy
		}
	}
	return StatusHealthy
}

// Run probes every registered dependency and aggregates the results.
func (c *Checker) Run(ctx context.Context) (Status, map[string]CheckResult) {
	checks := make(map[string]CheckResult, len(c.probes))
	for _, name := range c.names {
		checks[name] = CheckDependency(ctx, c.probes[name])
	}
	return Aggregate(checks), checks
}

func roundMS(v float64) float64 { return math.Round(v*100) / 100 }
