package recurrence_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/kakeibo-app/kakeibo/internal/ledger"
	"github.com/kakeibo-app/kakeibo/internal/period"
	"github.com/kakeibo-app/kakeibo/internal/recurrence"
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

// Current fiscal month is 2023-01 in most fixtures below.
func jan2023() time.Time {
	return time.Date(2023, 1, 10, 9, 0, 0, 0, time.UTC)
}

func TestService_MaterializeIncomes(t *testing.T) {
	methodID := uuid.New()

	salary := &ledger.DefaultIncome{
		ID:       uuid.New(),
		Name:     "給料",
		PayDay:   25,
		MethodID: methodID,
		Amount:   250000,
		Months:   []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12},
	}

	bonus := &ledger.DefaultIncome{
		ID:        uuid.New(),
		Name:      "ボーナス",
		PayDay:    10,
		MethodID:  methodID,
		Amount:    400000,
		Undecided: true,
		Months:    []int{1, 7},
	}

	type testCase struct {
		name      string
		setupMock func(repo *recurrence.MockRepository, tx *recurrence.MockTx)
		wantAdded int
		wantErr   error
	}

	tests := []testCase{
		{
			name: "AddsAllMissingTemplates",
			setupMock: func(repo *recurrence.MockRepository, tx *recurrence.MockTx) {
				repo.EXPECT().DefaultIncomesForMonth(gomock.Any(), 1).
					Return([]*ledger.DefaultIncome{salary, bonus}, nil)
				repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)

				tx.EXPECT().IncomeNames(gomock.Any(),
					time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
					time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC),
				).Return(map[string]bool{}, nil)

				tx.EXPECT().
					CreateIncome(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, inc *ledger.Income) error {
						assert.Equal(t, "給料", inc.Name)
						assert.Equal(t, time.Date(2023, 1, 25, 0, 0, 0, 0, time.UTC), inc.PayDate)
						assert.Equal(t, ledger.StateDecided, inc.State)
						return nil
					})
				tx.EXPECT().
					CreateIncome(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, inc *ledger.Income) error {
						assert.Equal(t, "ボーナス", inc.Name)
						assert.Equal(t, ledger.StateUndecided, inc.State)
						return nil
					})

				tx.EXPECT().Commit().Return(nil)
				tx.EXPECT().Rollback().Return(nil)
			},
			wantAdded: 2,
		},
		{
			name: "SecondRunIsANoOp",
			setupMock: func(repo *recurrence.MockRepository, tx *recurrence.MockTx) {
				repo.EXPECT().DefaultIncomesForMonth(gomock.Any(), 1).
					Return([]*ledger.DefaultIncome{salary, bonus}, nil)
				repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)

				tx.EXPECT().IncomeNames(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(map[string]bool{"給料": true, "ボーナス": true}, nil)

				tx.EXPECT().Commit().Return(nil)
				tx.EXPECT().Rollback().Return(nil)
			},
			wantAdded: 0,
		},
		{
			name: "NoTemplatesForMonthSucceedsWithoutTx",
			setupMock: func(repo *recurrence.MockRepository, tx *recurrence.MockTx) {
				repo.EXPECT().DefaultIncomesForMonth(gomock.Any(), 1).Return(nil, nil)
			},
			wantAdded: 0,
		},
		{
			name: "CreateFailureAborts",
			setupMock: func(repo *recurrence.MockRepository, tx *recurrence.MockTx) {
				repo.EXPECT().DefaultIncomesForMonth(gomock.Any(), 1).
					Return([]*ledger.DefaultIncome{salary}, nil)
				repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)

				tx.EXPECT().IncomeNames(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(map[string]bool{}, nil)
				tx.EXPECT().CreateIncome(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
				tx.EXPECT().Rollback().Return(nil)
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := recurrence.NewMockRepository(ctrl)
			tx := recurrence.NewMockTx(ctrl)
			tt.setupMock(repo, tx)

			svc := recurrence.NewService(repo, calendarCalc(t), jan2023)

			added, err := svc.MaterializeIncomes(context.Background(), 2023, 1)

			if tt.wantErr != nil {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantAdded, added)
		})
	}
}

func TestService_MaterializeIncomes_PastPeriodRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := recurrence.NewMockRepository(ctrl)
	svc := recurrence.NewService(repo, calendarCalc(t), jan2023)

	_, err := svc.MaterializeIncomes(context.Background(), 2022, 12)
	assert.ErrorIs(t, err, ledger.ErrPastPeriod)
}

func TestService_CanMaterialize(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := recurrence.NewService(recurrence.NewMockRepository(ctrl), calendarCalc(t), jan2023)

	assert.False(t, svc.CanMaterialize(2022, 12))
	assert.True(t, svc.CanMaterialize(2023, 1))
	assert.True(t, svc.CanMaterialize(2023, 2))
}

func TestService_MaterializeExpenses_CarriesPeriodDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	periodDay := 15
	card := &ledger.DefaultExpense{
		ID:        uuid.New(),
		Name:      "カード請求",
		PayDay:    27,
		PeriodDay: &periodDay,
		MethodID:  uuid.New(),
		Amount:    45000,
		Months:    []int{1},
	}

	repo := recurrence.NewMockRepository(ctrl)
	tx := recurrence.NewMockTx(ctrl)

	repo.EXPECT().DefaultExpensesForMonth(gomock.Any(), 1).
		Return([]*ledger.DefaultExpense{card}, nil)
	repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)

	tx.EXPECT().ExpenseNames(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(map[string]bool{}, nil)
	tx.EXPECT().
		CreateExpense(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, exp *ledger.Expense) error {
			assert.Equal(t, time.Date(2023, 1, 27, 0, 0, 0, 0, time.UTC), exp.PayDate)
			require.NotNil(t, exp.PeriodDate)
			assert.Equal(t, time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC), *exp.PeriodDate)
			return nil
		})
	tx.EXPECT().Commit().Return(nil)
	tx.EXPECT().Rollback().Return(nil)

	svc := recurrence.NewService(repo, calendarCalc(t), jan2023)

	added, err := svc.MaterializeExpenses(context.Background(), 2023, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, added)
}

func TestService_MaterializeLoanExpenses(t *testing.T) {
	loan := &ledger.Loan{
		ID:               uuid.New(),
		Name:             "車ローン",
		PayDay:           5,
		MethodID:         uuid.New(),
		AmountFirst:      35000,
		AmountFromSecond: 30000,
		FirstYear:        2023, FirstMonth: 1,
		LastYear: 2023, LastMonth: 3,
	}

	type testCase struct {
		name        string
		year, month int
		inRange     bool
		wantAmount  int64
	}

	tests := []testCase{
		{"MonthBeforeRange", 2022, 12, false, 0},
		{"FirstInstallmentUsesFirstAmount", 2023, 1, true, 35000},
		{"SecondInstallment", 2023, 2, true, 30000},
		{"LastInstallment", 2023, 3, true, 30000},
		{"MonthAfterRange", 2023, 4, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := recurrence.NewMockRepository(ctrl)
			tx := recurrence.NewMockTx(ctrl)

			repo.EXPECT().Loans(gomock.Any()).Return([]*ledger.Loan{loan}, nil)

			if tt.inRange {
				repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
				tx.EXPECT().ExpenseNames(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(map[string]bool{}, nil)
				tx.EXPECT().
					CreateExpense(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, exp *ledger.Expense) error {
						assert.Equal(t, "車ローン", exp.Name)
						assert.Equal(t, tt.wantAmount, exp.Amount)
						assert.Equal(t, ledger.StateDecided, exp.State)
						return nil
					})
				tx.EXPECT().Commit().Return(nil)
				tx.EXPECT().Rollback().Return(nil)
			}

			now := func() time.Time {
				return time.Date(tt.year, time.Month(tt.month), 10, 0, 0, 0, 0, time.UTC)
			}

			svc := recurrence.NewService(repo, calendarCalc(t), now)

			added, err := svc.MaterializeLoanExpenses(context.Background(), tt.year, tt.month)
			require.NoError(t, err)

			if tt.inRange {
				assert.Equal(t, 1, added)
			} else {
				assert.Equal(t, 0, added)
			}
		})
	}
}

func TestService_MaterializeLoanExpenses_SkipsExisting(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loan := &ledger.Loan{
		ID:               uuid.New(),
		Name:             "車ローン",
		PayDay:           5,
		MethodID:         uuid.New(),
		AmountFirst:      35000,
		AmountFromSecond: 30000,
		FirstYear:        2023, FirstMonth: 1,
		LastYear: 2023, LastMonth: 3,
	}

	repo := recurrence.NewMockRepository(ctrl)
	tx := recurrence.NewMockTx(ctrl)

	repo.EXPECT().Loans(gomock.Any()).Return([]*ledger.Loan{loan}, nil)
	repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	tx.EXPECT().ExpenseNames(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(map[string]bool{"車ローン": true}, nil)
	tx.EXPECT().Commit().Return(nil)
	tx.EXPECT().Rollback().Return(nil)

	svc := recurrence.NewService(repo, calendarCalc(t), jan2023)

	added, err := svc.MaterializeLoanExpenses(context.Background(), 2023, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, added)
}

func TestService_MaterializeAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := recurrence.NewMockRepository(ctrl)

	repo.EXPECT().DefaultIncomesForMonth(gomock.Any(), 1).Return(nil, nil)
	repo.EXPECT().DefaultExpensesForMonth(gomock.Any(), 1).Return(nil, nil)
	repo.EXPECT().Loans(gomock.Any()).Return(nil, nil)

	svc := recurrence.NewService(repo, calendarCalc(t), jan2023)

	res, err := svc.MaterializeAll(context.Background(), 2023, 1)
	require.NoError(t, err)
	assert.Equal(t, recurrence.Result{}, res)
}
