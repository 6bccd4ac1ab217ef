package balance_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/kakeibo-app/kakeibo/internal/balance"
	"github.com/kakeibo-app/kakeibo/internal/ledger"
	"github.com/kakeibo-app/kakeibo/internal/period"
)

func calendarCalc(t *testing.T) *period.Calculator {
	t.Helper()

	c, err := period.NewCalculator(period.Config{
		CutoverDay:      1,
		NextMonthMinDay: 16,
		MinYear:         2019,
		MaxYear:         2100,
	})
	require.NoError(t, err)

	return c
}

func TestSumAmounts_EmptySetIsZero(t *testing.T) {
	assert.Equal(t, int64(0), balance.SumIncomeAmounts(nil))
	assert.Equal(t, int64(0), balance.SumIncomeAmounts([]*ledger.Income{}))
	assert.Equal(t, int64(0), balance.SumExpenseAmounts(nil))
}

func TestSumAmounts(t *testing.T) {
	incs := []*ledger.Income{
		{Amount: 250000},
		{Amount: 1500},
	}
	assert.Equal(t, int64(251500), balance.SumIncomeAmounts(incs))

	exps := []*ledger.Expense{
		{Amount: 80000},
		{Amount: 6500},
		{Amount: 3000},
	}
	assert.Equal(t, int64(89500), balance.SumExpenseAmounts(exps))
}

func TestService_CumulativeBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := balance.NewMockRepository(ctrl)

	lastDate := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

	repo.EXPECT().SumIncomes(gomock.Any(), lastDate, false).Return(int64(500000), nil)
	repo.EXPECT().SumExpenses(gomock.Any(), lastDate, false).Return(int64(320000), nil)

	svc := balance.NewService(repo, calendarCalc(t))

	got, err := svc.CumulativeBalance(context.Background(), 2024, 6)
	require.NoError(t, err)
	assert.Equal(t, int64(180000), got)
}

func TestService_CumulativeBalanceDone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := balance.NewMockRepository(ctrl)

	lastDate := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

	repo.EXPECT().SumIncomes(gomock.Any(), lastDate, true).Return(int64(450000), nil)
	repo.EXPECT().SumExpenses(gomock.Any(), lastDate, true).Return(int64(300000), nil)

	svc := balance.NewService(repo, calendarCalc(t))

	got, err := svc.CumulativeBalanceDone(context.Background(), 2024, 6)
	require.NoError(t, err)
	assert.Equal(t, int64(150000), got)
}

func TestService_AccountRequirements(t *testing.T) {
	flush := &ledger.Account{ID: uuid.New(), Balance: 100000}
	tight := &ledger.Account{ID: uuid.New(), Balance: 20000}
	idle := &ledger.Account{ID: uuid.New(), Balance: 5000}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := balance.NewMockRepository(ctrl)

	repo.EXPECT().Accounts(gomock.Any()).
		Return([]*ledger.Account{flush, tight, idle}, nil)
	repo.EXPECT().UndoneExpenseSumsByAccount(gomock.Any(),
		time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
	).Return(map[uuid.UUID]int64{
		flush.ID: 80000,
		tight.ID: 45000,
	}, nil)

	svc := balance.NewService(repo, calendarCalc(t))

	reqs, err := svc.AccountRequirements(context.Background(), 2024, 6)
	require.NoError(t, err)
	require.Len(t, reqs, 3)

	assert.Equal(t, int64(80000), reqs[0].Requirement)
	assert.False(t, reqs[0].IsInsufficient)
	assert.Equal(t, int64(0), reqs[0].InsufficientAmount)

	assert.Equal(t, int64(45000), reqs[1].Requirement)
	assert.True(t, reqs[1].IsInsufficient)
	assert.Equal(t, int64(25000), reqs[1].InsufficientAmount)

	// No undone expenses at all: requirement is 0, never an error.
	assert.Equal(t, int64(0), reqs[2].Requirement)
	assert.False(t, reqs[2].IsInsufficient)
}

func TestService_MethodRequirements(t *testing.T) {
	account := &ledger.Account{ID: uuid.New(), Balance: 30000}
	debit := &ledger.Method{ID: uuid.New(), Name: "引き落とし", AccountID: account.ID, Account: account}
	cash := &ledger.Method{ID: uuid.New(), Name: "現金", AccountID: account.ID, Account: account}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := balance.NewMockRepository(ctrl)

	repo.EXPECT().Methods(gomock.Any()).Return([]*ledger.Method{debit, cash}, nil)
	repo.EXPECT().UndoneExpenseSumsByMethod(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(map[uuid.UUID]int64{debit.ID: 42000}, nil)

	svc := balance.NewService(repo, calendarCalc(t))

	reqs, err := svc.MethodRequirements(context.Background(), 2024, 6)
	require.NoError(t, err)
	require.Len(t, reqs, 2)

	assert.True(t, reqs[0].IsInsufficient)
	assert.Equal(t, int64(12000), reqs[0].InsufficientAmount)
	assert.Equal(t, int64(0), reqs[1].Requirement)
}

func TestService_Discrepancy(t *testing.T) {
	type testCase struct {
		name        string
		balances    []int64
		doneIncome  int64
		doneExpense int64
		wantDiff    int64
	}

	tests := []testCase{
		{
			// Real balances exactly reflect the completed ledger.
			name:        "Reconciled",
			balances:    []int64{120000, 30000},
			doneIncome:  400000,
			doneExpense: 250000,
			wantDiff:    0,
		},
		{
			name:        "UnrecordedManualSpending",
			balances:    []int64{100000, 30000},
			doneIncome:  400000,
			doneExpense: 250000,
			wantDiff:    -20000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := balance.NewMockRepository(ctrl)

			accounts := make([]*ledger.Account, len(tt.balances))
			for i, b := range tt.balances {
				accounts[i] = &ledger.Account{ID: uuid.New(), Balance: b}
			}

			repo.EXPECT().Accounts(gomock.Any()).Return(accounts, nil)
			repo.EXPECT().SumIncomes(gomock.Any(), gomock.Any(), true).Return(tt.doneIncome, nil)
			repo.EXPECT().SumExpenses(gomock.Any(), gomock.Any(), true).Return(tt.doneExpense, nil)

			svc := balance.NewService(repo, calendarCalc(t))

			report, err := svc.Discrepancy(context.Background(), 2024, 6)
			require.NoError(t, err)

			assert.Equal(t, tt.doneIncome-tt.doneExpense, report.LedgerDoneBalance)
			assert.Equal(t, tt.wantDiff, report.Diff)
		})
	}
}

func TestService_BulkMarkMethodDone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := balance.NewMockRepository(ctrl)
	methodID := uuid.New()

	repo.EXPECT().MarkMethodExpensesDone(gomock.Any(), methodID,
		time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
	).Return(int64(4), nil)

	svc := balance.NewService(repo, calendarCalc(t))

	n, err := svc.BulkMarkMethodDone(context.Background(), methodID, 2024, 6)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}

func TestService_CumulativeBalance_InvalidPeriod(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := balance.NewService(balance.NewMockRepository(ctrl), calendarCalc(t))

	_, err := svc.CumulativeBalance(context.Background(), 2018, 6)
	assert.ErrorIs(t, err, period.ErrInvalidPeriod)
}
