package workers

import (
	"context"
	"sync"
	"time"

	"github.com/pfalcao/go-biblioteca/internal/config"
	"github.com/pfalcao/go-biblioteca/internal/logger"
	"github.com/pfalcao/go-biblioteca/internal/service"
)

const defaultScanInterval = time.Hour

// overdueScanner periodically lists open loans older than the configured
// threshold and logs them, giving librarians a standing report of books that
// should have come back.
type overdueScanner struct {
	loanService service.LoanService
	interval    time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewOverdueScanner creates an overdueScanner running every
// cfg.OverdueScanInterval. The worker is idle until Start is called.
func NewOverdueScanner(loanService service.LoanService, cfg config.Workers, logger *logger.Logger) Worker {
	return &overdueScanner{
		loanService: loanService,
		interval:    cfg.OverdueScanInterval,
		logger:      logger,
	}
}

// Start stops any previously running scan loop, then launches a background
// goroutine that scans every interval. If the interval is zero or negative it
// defaults to one hour. The goroutine exits when ctx is cancelled or Stop is
// called.
func (s *overdueScanner) Start(ctx context.Context) {
	interval := s.interval
	if interval <= 0 {
		interval = defaultScanInterval
	}

	s.Stop()

	s.mu.Lock()
	scanCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-scanCtx.Done():
				return
			case <-t.C:
				s.scan(scanCtx)
			}
		}
	}()
}

// Stop cancels the background goroutine's context and blocks until the
// goroutine has fully exited. Safe to call when the worker is not running.
func (s *overdueScanner) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	s.wg.Wait()
}

func (s *overdueScanner) scan(ctx context.Context) {
	overdue, err := s.loanService.ListOverdueLoans(ctx)
	if err != nil {
		s.logger.Err(err).Msg("overdue scan failed")
		return
	}

	if len(overdue) == 0 {
		s.logger.Debug().Msg("overdue scan: nothing overdue")
		return
	}

	for _, loan := range overdue {
		s.logger.Warn().
			Int64("id", loan.LoanID).
			Str("usuario", loan.Username).
			Str("livro", loan.BookTitle).
			Str("data_emprestimo", loan.LoanDate.String()).
			Msg("loan is overdue")
	}
}
