package service

import (
	"context"
	"testing"
	"time"

	"github.com/pfalcao/go-biblioteca/internal/config"
	"github.com/pfalcao/go-biblioteca/internal/logger"
	"github.com/pfalcao/go-biblioteca/internal/mock"
	"github.com/pfalcao/go-biblioteca/internal/store"
	"github.com/pfalcao/go-biblioteca/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestLoanSvc(t *testing.T, ctrl *gomock.Controller) (LoanService, *mock.MockLoanRepository) {
	t.Helper()
	mockLoans := mock.NewMockLoanRepository(ctrl)
	svc := NewLoanService(mockLoans, config.Workers{OverdueAfter: 14 * 24 * time.Hour}, logger.Nop())
	return svc, mockLoans
}

// ── CreateLoan ───────────────────────────────────────────────────────────────

func TestLoanService_CreateLoan_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockLoans := newTestLoanSvc(t, ctrl)
	ctx := context.Background()

	loanDate := models.NewDate(2026, time.August, 20)
	mockLoans.EXPECT().CreateLoan(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, l models.Loan) (models.Loan, error) {
			assert.Equal(t, loanDate, l.LoanDate)
			l.LoanID = 5
			return l, nil
		})

	created, err := svc.CreateLoan(ctx, models.Loan{UserID: 1, BookID: 2, LoanDate: loanDate})

	require.NoError(t, err)
	assert.Equal(t, int64(5), created.LoanID)
}

func TestLoanService_CreateLoan_MissingLoanDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestLoanSvc(t, ctrl)

	// no repository call expected: the loan must be rejected before storage
	_, err := svc.CreateLoan(context.Background(), models.Loan{UserID: 1, BookID: 2})

	require.ErrorIs(t, err, ErrValidationLoanDate)
}

func TestLoanService_CreateLoan_InvalidIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestLoanSvc(t, ctrl)

	_, err := svc.CreateLoan(context.Background(), models.Loan{UserID: 0, BookID: 2})
	require.ErrorIs(t, err, ErrValidationLoanIDs)

	_, err = svc.CreateLoan(context.Background(), models.Loan{UserID: 1, BookID: -3})
	require.ErrorIs(t, err, ErrValidationLoanIDs)
}

func TestLoanService_CreateLoan_BookUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockLoans := newTestLoanSvc(t, ctrl)
	ctx := context.Background()

	mockLoans.EXPECT().CreateLoan(ctx, gomock.Any()).
		Return(models.Loan{}, store.ErrBookUnavailable)

	_, err := svc.CreateLoan(ctx, models.Loan{UserID: 1, BookID: 2, LoanDate: models.Today()})

	require.ErrorIs(t, err, store.ErrBookUnavailable)
}

// ── RegisterReturn ───────────────────────────────────────────────────────────

func TestLoanService_RegisterReturn_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockLoans := newTestLoanSvc(t, ctrl)
	ctx := context.Background()

	returnDate := models.NewDate(2026, time.August, 30)
	mockLoans.EXPECT().RegisterReturn(ctx, int64(5), returnDate).DoAndReturn(
		func(_ context.Context, loanID int64, date models.Date) (models.Loan, error) {
			return models.Loan{LoanID: loanID, ReturnDate: &date, Returned: true}, nil
		})

	closed, err := svc.RegisterReturn(ctx, 5, returnDate)

	require.NoError(t, err)
	assert.True(t, closed.Returned)
	require.NotNil(t, closed.ReturnDate)
	assert.Equal(t, returnDate, *closed.ReturnDate)
}

func TestLoanService_RegisterReturn_MissingReturnDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestLoanSvc(t, ctrl)

	_, err := svc.RegisterReturn(context.Background(), 5, models.Date{})

	require.ErrorIs(t, err, ErrValidationReturnDate)
}

func TestLoanService_RegisterReturn_BeforeLoanDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockLoans := newTestLoanSvc(t, ctrl)
	ctx := context.Background()

	returnDate := models.NewDate(2026, time.August, 1)
	mockLoans.EXPECT().RegisterReturn(ctx, int64(5), returnDate).
		Return(models.Loan{}, store.ErrReturnBeforeLoanDate)

	_, err := svc.RegisterReturn(ctx, 5, returnDate)

	require.ErrorIs(t, err, store.ErrReturnBeforeLoanDate)
}

func TestLoanService_RegisterReturn_AlreadyReturned(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockLoans := newTestLoanSvc(t, ctrl)
	ctx := context.Background()

	mockLoans.EXPECT().RegisterReturn(ctx, int64(5), gomock.Any()).
		Return(models.Loan{}, store.ErrLoanAlreadyReturned)

	_, err := svc.RegisterReturn(ctx, 5, models.Today())

	require.ErrorIs(t, err, store.ErrLoanAlreadyReturned)
}

func TestLoanService_RegisterReturn_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestLoanSvc(t, ctrl)

	_, err := svc.RegisterReturn(context.Background(), 0, models.Today())

	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ── Listings ─────────────────────────────────────────────────────────────────

func TestLoanService_ListLoans(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockLoans := newTestLoanSvc(t, ctrl)
	ctx := context.Background()

	expected := []models.LoanListItem{{LoanID: 1, Username: "maria", BookTitle: "Dom Casmurro"}}
	mockLoans.EXPECT().GetAllLoans(ctx).Return(expected, nil)

	loans, err := svc.ListLoans(ctx)

	require.NoError(t, err)
	assert.Equal(t, expected, loans)
}

func TestLoanService_ListOverdueLoans_CutoffRespectsThreshold(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockLoans := newTestLoanSvc(t, ctrl)
	ctx := context.Background()

	mockLoans.EXPECT().GetOverdueLoans(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, cutoff models.Date) ([]models.LoanListItem, error) {
			expected := time.Now().UTC().Add(-14 * 24 * time.Hour)
			assert.WithinDuration(t, expected, cutoff.Time, time.Minute)
			return nil, nil
		})

	_, err := svc.ListOverdueLoans(ctx)

	require.NoError(t, err)
}
