package watchdog

import (
	"context"
	"sync"
	"time"

	"github.com/fabwise/equipment-mgmt/internal/pkg/application/monitor"
	"github.com/fabwise/equipment-mgmt/internal/pkg/infrastructure/logging"

	"github.com/rs/zerolog"
)

type Watchdog interface {
	Start()
	Stop()
}

type watchdogImpl struct {
	interval time.Duration
	monitor  monitor.EquipmentMonitor
	log      zerolog.Logger

	mu      sync.Mutex
	running bool
	done    chan struct{}
	stopped chan struct{}
}

func New(m monitor.EquipmentMonitor, interval time.Duration, log zerolog.Logger) Watchdog {
	if interval <= 0 {
		interval = monitor.DefaultCheckInterval
	}

	return &watchdogImpl{
		interval: interval,
		monitor:  m,
		log:      log,
	}
}

func (w *watchdogImpl) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		w.log.Info().Msg("equipment watchdog already running")
		return
	}

	// a previous worker may still be finishing its last cycle
	if w.stopped != nil {
		<-w.stopped
	}

	w.running = true
	w.done = make(chan struct{})
	w.stopped = make(chan struct{})

	go backgroundWorker(w, w.done, w.stopped)

	w.log.Info().Msgf("equipment watchdog started, check interval %s", w.interval)
}

// Stop is idempotent and safe to call before Start. An in flight cycle runs
// to completion; only the scheduling of the next one is suppressed.
func (w *watchdogImpl) Stop() {
	w.mu.Lock()

	if !w.running {
		w.mu.Unlock()
		w.log.Info().Msg("equipment watchdog is not running")
		return
	}

	w.running = false
	close(w.done)
	stopped := w.stopped
	w.mu.Unlock()

	<-stopped

	w.log.Info().Msg("equipment watchdog stopped")
}

// backgroundWorker runs one cycle immediately and then once per tick. Cycles
// never overlap: the ticker is only read again after the previous cycle has
// returned.
func backgroundWorker(w *watchdogImpl, done <-chan struct{}, stopped chan<- struct{}) {
	defer close(stopped)

	w.runCycle()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			w.runCycle()
		}
	}
}

func (w *watchdogImpl) runCycle() {
	ctx := logging.NewContextWithLogger(context.Background(), w.log)

	err := w.monitor.CheckAllEquipment(ctx)
	if err != nil {
		w.log.Error().Err(err).Msg("detection cycle failed")
	}
}
