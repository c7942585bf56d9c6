package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pfalcao/go-biblioteca/internal/config"
	"github.com/pfalcao/go-biblioteca/internal/logger"
	"github.com/pfalcao/go-biblioteca/models"
	"github.com/stretchr/testify/assert"
)

// fakeLoanService counts ListOverdueLoans calls; the other methods are unused
// by the scanner.
type fakeLoanService struct {
	calls atomic.Int64
}

func (f *fakeLoanService) CreateLoan(ctx context.Context, loan models.Loan) (models.Loan, error) {
	return models.Loan{}, nil
}

func (f *fakeLoanService) RegisterReturn(ctx context.Context, loanID int64, returnDate models.Date) (models.Loan, error) {
	return models.Loan{}, nil
}

func (f *fakeLoanService) ListLoans(ctx context.Context) ([]models.LoanListItem, error) {
	return nil, nil
}

func (f *fakeLoanService) ListOverdueLoans(ctx context.Context) ([]models.LoanListItem, error) {
	f.calls.Add(1)
	return []models.LoanListItem{{LoanID: 1, Username: "maria", BookTitle: "Dom Casmurro"}}, nil
}

func TestOverdueScanner_ScansOnTicker(t *testing.T) {
	svc := &fakeLoanService{}
	scanner := NewOverdueScanner(svc, config.Workers{OverdueScanInterval: 10 * time.Millisecond}, logger.Nop())

	scanner.Start(context.Background())
	defer scanner.Stop()

	assert.Eventually(t, func() bool {
		return svc.calls.Load() >= 2
	}, time.Second, 5*time.Millisecond)
}

func TestOverdueScanner_StopWaitsForExit(t *testing.T) {
	svc := &fakeLoanService{}
	scanner := NewOverdueScanner(svc, config.Workers{OverdueScanInterval: 10 * time.Millisecond}, logger.Nop())

	scanner.Start(context.Background())
	time.Sleep(25 * time.Millisecond)
	scanner.Stop()

	callsAfterStop := svc.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, callsAfterStop, svc.calls.Load(), "no scans may run after Stop returns")
}

func TestOverdueScanner_StopWithoutStart(t *testing.T) {
	scanner := NewOverdueScanner(&fakeLoanService{}, config.Workers{}, logger.Nop())

	// must not panic or block
	scanner.Stop()
}

func TestOverdueScanner_ContextCancelStopsScanning(t *testing.T) {
	svc := &fakeLoanService{}
	scanner := NewOverdueScanner(svc, config.Workers{OverdueScanInterval: 10 * time.Millisecond}, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	scanner.Start(ctx)
	time.Sleep(25 * time.Millisecond)
	cancel()
	time.Sleep(25 * time.Millisecond)

	callsAfterCancel := svc.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, callsAfterCancel, svc.calls.Load())
}
