package ledger_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

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

// Fixed "today" for the freeze guard: current fiscal month is 2024-06 under
// calendar-month configuration.
func june2024() time.Time {
	return time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
}

func TestService_CanModifyEntry(t *testing.T) {
	type testCase struct {
		name        string
		year, month int
		want        bool
	}

	tests := []testCase{
		{"CurrentPeriod", 2024, 6, true},
		{"OnePeriodBack", 2024, 5, true},
		{"TwoPeriodsBack", 2024, 4, false},
		{"FuturePeriod", 2024, 7, true},
		{"PreviousYearSameMonth", 2023, 6, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := ledger.NewService(ledger.NewMockRepository(ctrl), calendarCalc(t), june2024)

			assert.Equal(t, tt.want, svc.CanModifyEntry(tt.year, tt.month))
		})
	}
}

func TestService_UpdateIncome_FreezeGuard(t *testing.T) {
	type testCase struct {
		name    string
		payDate time.Time
		wantErr error
	}

	tests := []testCase{
		{
			name:    "OnePeriodBackAllowed",
			payDate: time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "TwoPeriodsBackFrozen",
			payDate: time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC),
			wantErr: ledger.ErrPastPeriod,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := ledger.NewMockRepository(ctrl)
			id := uuid.New()

			existing := &ledger.Income{
				ID:      id,
				Name:    "給料",
				PayDate: tt.payDate,
				Amount:  250000,
				State:   ledger.StateDecided,
			}

			repo.EXPECT().GetIncome(gomock.Any(), id).Return(existing, nil)

			if tt.wantErr == nil {
				repo.EXPECT().UpdateIncome(gomock.Any(), gomock.Any()).Return(nil)
			}

			svc := ledger.NewService(repo, calendarCalc(t), june2024)

			err := svc.UpdateIncome(context.Background(), &ledger.Income{ID: id, Name: "給料", PayDate: tt.payDate, Amount: 260000, State: ledger.StateDecided})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestService_DeleteExpense_FreezeGuard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := ledger.NewMockRepository(ctrl)
	id := uuid.New()

	repo.EXPECT().GetExpense(gomock.Any(), id).Return(&ledger.Expense{
		ID:      id,
		Name:    "家賃",
		PayDate: time.Date(2024, 3, 27, 0, 0, 0, 0, time.UTC),
		Amount:  80000,
		State:   ledger.StateDone,
	}, nil)

	svc := ledger.NewService(repo, calendarCalc(t), june2024)

	err := svc.DeleteExpense(context.Background(), id)
	assert.ErrorIs(t, err, ledger.ErrPastPeriod)
}

func TestService_AdvanceExpenseState(t *testing.T) {
	type testCase struct {
		name    string
		current ledger.State
		target  ledger.State
		wantErr error
	}

	tests := []testCase{
		{
			name:    "DecidedToDone",
			current: ledger.StateDecided,
			target:  ledger.StateDone,
		},
		{
			name:    "UndecidedToDecided",
			current: ledger.StateUndecided,
			target:  ledger.StateDecided,
		},
		{
			name:    "DoneBackToDecidedRejected",
			current: ledger.StateDone,
			target:  ledger.StateDecided,
			wantErr: ledger.ErrStateTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := ledger.NewMockRepository(ctrl)
			id := uuid.New()

			repo.EXPECT().GetExpense(gomock.Any(), id).Return(&ledger.Expense{
				ID:      id,
				Name:    "電気代",
				PayDate: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
				Amount:  6500,
				State:   tt.current,
			}, nil)

			if tt.wantErr == nil {
				repo.EXPECT().
					UpdateExpense(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, exp *ledger.Expense) error {
						assert.Equal(t, tt.target, exp.State)
						return nil
					})
			}

			svc := ledger.NewService(repo, calendarCalc(t), june2024)

			err := svc.AdvanceExpenseState(context.Background(), id, tt.target)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestService_ListPeriodExpenses(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := ledger.NewMockRepository(ctrl)

	first := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

	repo.EXPECT().
		ListExpenses(gomock.Any(), ledger.EntryFilter{From: &first, To: &last}).
		Return([]*ledger.Expense{{ID: uuid.New()}}, nil)

	svc := ledger.NewService(repo, calendarCalc(t), june2024)

	exps, err := svc.ListPeriodExpenses(context.Background(), 2024, 6)
	require.NoError(t, err)
	assert.Len(t, exps, 1)
}
