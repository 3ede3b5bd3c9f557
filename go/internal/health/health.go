// Package health reports whether the server's backing services are reachable.
package health

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// Status is the outcome of one round of checks
type Status struct {
	Healthy           bool            `json:"healthy"`
	DatabaseConnected bool            `json:"database_connected"`
	NATSConnected     *bool           `json:"nats_connected,omitempty"`
	Checks            map[string]bool `json:"checks,omitempty"`
	Errors            []string        `json:"errors"`
}

// Pinger is satisfied by *sql.DB
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Connectivity is satisfied by the favorites event publisher
type Connectivity interface {
	IsConnected() bool
}

type namedCheck struct {
	name string
	fn   func(ctx context.Context) error
}

// Checker pings the database plus any optional dependencies
type Checker struct {
	db      Pinger
	events  Connectivity
	checks  []namedCheck
	timeout time.Duration
}

func NewChecker(db Pinger) *Checker {
	return &Checker{db: db, timeout: 5 * time.Second}
}

// WithEvents adds the event bus connection to the report.
func (c *Checker) WithEvents(events Connectivity) *Checker {
	c.events = events
	return c
}

// WithCheck adds a named dependency, e.g. the redis session store.
func (c *Checker) WithCheck(name string, fn func(ctx context.Context) error) *Checker {
	c.checks = append(c.checks, namedCheck{name: name, fn: fn})
	return c
}

func (c *Checker) Check(ctx context.Context) Status {
	status := Status{
		Healthy: true,
		Errors:  []string{},
	}

	// Check database connection
	if err := c.db.PingContext(ctx); err != nil {
		status.Healthy = false
		status.Errors = append(status.Errors, fmt.Sprintf("database ping failed: %v", err))
	} else {
		status.DatabaseConnected = true
	}

	// Check NATS connection
	if c.events != nil {
		connected := c.events.IsConnected()
		status.NATSConnected = &connected
		if !connected {
			status.Healthy = false
			status.Errors = append(status.Errors, "NATS disconnected")
		}
	}

	for _, check := range c.checks {
		if status.Checks == nil {
			status.Checks = make(map[string]bool, len(c.checks))
		}
		err := check.fn(ctx)
		status.Checks[check.name] = err == nil
		if err != nil {
			status.Healthy = false
			status.Errors = append(status.Errors, fmt.Sprintf("%s: %v", check.name, err))
		}
	}

	return status
}

func (c *Checker) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), c.timeout)
	defer cancel()

	status := c.Check(ctx)

	w.Header().Set("Content-Type", "application/json")
	if !status.Healthy {
		log.Warn().Strs("errors", status.Errors).Msg("health check failed")
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	if err := json.NewEncoder(w).Encode(status); err != nil {
		log.Debug().Err(err).Msg("failed to write health response")
	}
}
