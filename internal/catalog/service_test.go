package catalog_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/kakeibo-app/kakeibo/internal/catalog"
	"github.com/kakeibo-app/kakeibo/internal/ledger"
	"github.com/kakeibo-app/kakeibo/internal/period"
)

func intPtr(v int) *int {
	return &v
}

func TestService_CreateAccount_NegativeBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := catalog.NewService(catalog.NewMockRepository(ctrl))

	_, err := svc.CreateAccount(context.Background(), uuid.New(), uuid.New(), -1)
	assert.Error(t, err)
}

func TestService_UpdateAccountBalance(t *testing.T) {
	type testCase struct {
		name     string
		balance  int64
		wantCall bool
	}

	tests := []testCase{
		{"Zero", 0, true},
		{"Positive", 1234500, true},
		{"Negative", -500, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := catalog.NewMockRepository(ctrl)
			id := uuid.New()

			if tt.wantCall {
				repo.EXPECT().UpdateAccountBalance(gomock.Any(), id, tt.balance).Return(nil)
			}

			svc := catalog.NewService(repo)

			err := svc.UpdateAccountBalance(context.Background(), id, tt.balance)

			if tt.wantCall {
				assert.NoError(t, err)
				return
			}

			assert.Error(t, err)
		})
	}
}

func TestService_CreateDefaultExpense_Validation(t *testing.T) {
	type testCase struct {
		name      string
		payDay    int
		periodDay *int
		months    []int
		wantErr   bool
	}

	tests := []testCase{
		{
			name:   "Valid",
			payDay: 27,
			months: []int{1, 4, 7, 10},
		},
		{
			name:      "ValidWithPeriodDay",
			payDay:    27,
			periodDay: intPtr(15),
			months:    []int{6},
		},
		{
			name:    "PayDayPastTemplateLimit",
			payDay:  29,
			months:  []int{6},
			wantErr: true,
		},
		{
			name:    "PayDayZero",
			payDay:  0,
			months:  []int{6},
			wantErr: true,
		},
		{
			name:      "PeriodDayPastTemplateLimit",
			payDay:    27,
			periodDay: intPtr(31),
			months:    []int{6},
			wantErr:   true,
		},
		{
			name:    "MonthOutOfRange",
			payDay:  27,
			months:  []int{13},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := catalog.NewMockRepository(ctrl)

			def := &ledger.DefaultExpense{
				Name:      "家賃",
				PayDay:    tt.payDay,
				PeriodDay: tt.periodDay,
				MethodID:  uuid.New(),
				Amount:    85000,
				Months:    tt.months,
			}

			if !tt.wantErr {
				repo.EXPECT().CreateDefaultExpense(gomock.Any(), def).Return(nil)
			}

			svc := catalog.NewService(repo)

			err := svc.CreateDefaultExpense(context.Background(), def)

			if tt.wantErr {
				assert.ErrorIs(t, err, period.ErrInvalidPeriod)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestService_CreateLoan_Validation(t *testing.T) {
	type testCase struct {
		name                  string
		firstYear, firstMonth int
		lastYear, lastMonth   int
		payDay                int
		wantErr               bool
	}

	tests := []testCase{
		{
			name:      "Valid",
			firstYear: 2024, firstMonth: 4,
			lastYear: 2026, lastMonth: 3,
			payDay: 27,
		},
		{
			name:      "SingleInstallment",
			firstYear: 2024, firstMonth: 4,
			lastYear: 2024, lastMonth: 4,
			payDay: 27,
		},
		{
			name:      "InvertedRange",
			firstYear: 2025, firstMonth: 1,
			lastYear: 2024, lastMonth: 12,
			payDay:  27,
			wantErr: true,
		},
		{
			name:      "PayDayPastTemplateLimit",
			firstYear: 2024, firstMonth: 4,
			lastYear: 2026, lastMonth: 3,
			payDay:  31,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := catalog.NewMockRepository(ctrl)

			loan := &ledger.Loan{
				Name:             "車のローン",
				PayDay:           tt.payDay,
				MethodID:         uuid.New(),
				AmountFirst:      35000,
				AmountFromSecond: 32000,
				FirstYear:        tt.firstYear,
				FirstMonth:       tt.firstMonth,
				LastYear:         tt.lastYear,
				LastMonth:        tt.lastMonth,
			}

			if !tt.wantErr {
				repo.EXPECT().CreateLoan(gomock.Any(), loan).Return(nil)
			}

			svc := catalog.NewService(repo)

			err := svc.CreateLoan(context.Background(), loan)

			if tt.wantErr {
				assert.ErrorIs(t, err, period.ErrInvalidPeriod)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestService_CreateTemplateExpense(t *testing.T) {
	type testCase struct {
		name     string
		dateMode ledger.TemplateDateMode
		payDay   *int
		wantErr  bool
	}

	tests := []testCase{
		{"TodayModeNoPayDay", ledger.DateModeToday, nil, false},
		{"LaterModeWithPayDay", ledger.DateModeLater, intPtr(27), false},
		{"LaterModeMissingPayDay", ledger.DateModeLater, nil, true},
		{"LaterModePayDayOutOfRange", ledger.DateModeLater, intPtr(29), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := catalog.NewMockRepository(ctrl)

			tpl := &ledger.TemplateExpense{
				Name:     "コンビニ",
				MethodID: uuid.New(),
				DateMode: tt.dateMode,
				PayDay:   tt.payDay,
			}

			if !tt.wantErr {
				repo.EXPECT().CreateTemplateExpense(gomock.Any(), tpl).Return(nil)
			}

			svc := catalog.NewService(repo)

			err := svc.CreateTemplateExpense(context.Background(), tpl)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestService_Suggestions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := catalog.NewMockRepository(ctrl)

	today := time.Date(2024, 6, 20, 10, 0, 0, 0, time.UTC)

	tpls := []*ledger.TemplateExpense{
		{
			Name:     "コンビニ",
			DateMode: ledger.DateModeToday,
		},
		{
			// Booked on the 27th, but entries after the 15th roll to next month.
			Name:      "カード引き落とし",
			DateMode:  ledger.DateModeLater,
			PayDay:    intPtr(27),
			LimitDay:  intPtr(15),
			Undecided: true,
		},
	}

	repo.EXPECT().ListTemplateExpenses(gomock.Any()).Return(tpls, nil)

	svc := catalog.NewService(repo)

	got, err := svc.Suggestions(context.Background(), today)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC), got[0].PayDate)
	assert.False(t, got[0].Undecided)

	assert.Equal(t, time.Date(2024, 7, 27, 0, 0, 0, 0, time.UTC), got[1].PayDate)
	assert.True(t, got[1].Undecided)
}
