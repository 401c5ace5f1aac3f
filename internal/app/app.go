// Package app wires together the gnssd daemon: the HTTP API that resolves
// GNSS identifiers, the WebSocket telemetry hub, and the heartbeat loop.
package app

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/large-farva/gnss/internal/config"
	"github.com/large-farva/gnss/internal/telemetry"
	"github.com/large-farva/gnss/internal/ws"
)

// Operating states. The daemon boots, binds its listener, and is READY
// for the rest of its life; there is no degraded state because lookups
// are pure in-memory resolutions.
const (
	StateBooting = "BOOTING"
	StateReady   = "READY"
)

// Options configures a daemon instance.
type Options struct {
	Logger *log.Logger
	Cfg    config.Config

	// Bind overrides cfg.Server.Bind when non-empty (set from the
	// command line).
	Bind string
}

// App is the gnssd daemon.
type App struct {
	logger *log.Logger
	cfg    config.Config
	bind   string

	hub     *ws.Hub
	state   atomic.Value // string
	started time.Time
	lookups atomic.Int64
}

// New builds a daemon from options. Run starts it.
func New(opts Options) *App {
	bind := opts.Cfg.Server.Bind
	if opts.Bind != "" {
		bind = opts.Bind
	}

	a := &App{
		logger: opts.Logger,
		cfg:    opts.Cfg,
		bind:   bind,
		hub:    ws.NewHub(),
	}
	a.state.Store(StateBooting)
	return a
}

// State returns the current operating state.
func (a *App) State() string {
	return a.state.Load().(string)
}

// transition moves the daemon to a new state, logging and broadcasting
// the change.
func (a *App) transition(to string) {
	from := a.State()
	if from == to {
		return
	}
	a.state.Store(to)
	a.logger.Printf("state %s -> %s", from, to)
	a.hub.BroadcastJSON(telemetry.StateTransition{
		Event: telemetry.Event{Type: telemetry.EventState, TS: telemetry.NowTS()},
		From:  from,
		To:    to,
	})
}

// Run starts the HTTP server and blocks until ctx is cancelled, then
// shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	a.started = time.Now()

	go a.hub.Run(ctx)
	go a.heartbeatLoop(ctx)

	ln, err := net.Listen("tcp", a.bind)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           a.routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	a.logger.Printf("listening on %s", ln.Addr())
	a.transition(StateReady)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case <-ctx.Done():
		a.logger.Printf("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// heartbeatLoop broadcasts a heartbeat event at the configured interval.
func (a *App) heartbeatLoop(ctx context.Context) {
	interval := time.Duration(a.cfg.Heartbeat.IntervalSeconds) * time.Second
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			a.hub.BroadcastJSON(telemetry.Heartbeat{
				Event:         telemetry.Event{Type: telemetry.EventHeartbeat, TS: telemetry.NowTS()},
				State:         a.State(),
				UptimeSeconds: int64(time.Since(a.started).Seconds()),
				Lookups:       a.lookups.Load(),
			})
		}
	}
}

// recordLookup counts an API resolution and mirrors it to watching
// clients.
func (a *App) recordLookup(kind, query, result string, ok bool) {
	a.lookups.Add(1)
	a.hub.BroadcastJSON(telemetry.Lookup{
		Event:  telemetry.Event{Type: telemetry.EventLookup, TS: telemetry.NowTS()},
		Kind:   kind,
		Query:  query,
		Result: result,
		OK:     ok,
	})
}
