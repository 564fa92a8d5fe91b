package health

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

const checkTimeout = 2 * time.Second

// Pinger is a dependency that can report liveness.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to Pinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

// Service encapsulates health-related checks.
type Service struct {
	checks map[string]Pinger
}

// NewService constructs a new health service. Nil checks are skipped.
func NewService(checks map[string]Pinger) *Service {
	filtered := make(map[string]Pinger, len(checks))
	for name, p := range checks {
		if p != nil {
			filtered[name] = p
		}
	}
	return &Service{checks: filtered}
}

// Report is the health payload.
type Report struct {
	OK     bool              `json:"ok"`
	Checks map[string]string `json:"checks,omitempty"`
}

// Status pings every dependency concurrently.
func (s *Service) Status(ctx context.Context) Report {
	report := Report{OK: true}
	if s == nil || len(s.checks) == 0 {
		return report
	}
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	results := make(map[string]string, len(s.checks))
	names := make([]string, 0, len(s.checks))
	errs := make([]error, 0, len(s.checks))
	for name := range s.checks {
		names = append(names, name)
		errs = append(errs, nil)
	}
	var g errgroup.Group
	for i, name := range names {
		pinger := s.checks[name]
		g.Go(func() error {
			errs[i] = pinger.Ping(ctx)
			return nil
		})
	}
	_ = g.Wait()

	for i, name := range names {
		if errs[i] != nil {
			results[name] = errs[i].Error()
			report.OK = false
			continue
		}
		results[name] = "ok"
	}
	report.Checks = results
	return report
}
