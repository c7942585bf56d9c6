// Package workers hosts the application's background workers.
package workers

import (
	"context"

	"github.com/pfalcao/go-biblioteca/internal/config"
	"github.com/pfalcao/go-biblioteca/internal/logger"
	"github.com/pfalcao/go-biblioteca/internal/service"
)

// Worker is the lifecycle contract for background workers. Start launches the
// worker's goroutine and returns immediately; Stop blocks until it has fully
// exited. Stop is safe to call when the worker is not running.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

type Workers struct {
	OverdueScanner Worker
}

func NewWorkers(services *service.Services, cfg config.Workers, logger *logger.Logger) *Workers {
	return &Workers{
		OverdueScanner: NewOverdueScanner(services.LoanService, cfg, logger),
	}
}

// StartAll launches every worker. The passed context bounds their lifetime.
func (w *Workers) StartAll(ctx context.Context) {
	w.OverdueScanner.Start(ctx)
}

// StopAll stops every worker and waits for them to exit.
func (w *Workers) StopAll() {
	w.OverdueScanner.Stop()
}
