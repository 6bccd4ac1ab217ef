package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kakeibo-app/kakeibo/internal/ledger"
)

func TestStateFromFlags(t *testing.T) {
	type testCase struct {
		name            string
		undecided, done bool
		want            ledger.State
	}

	// Mapping must match the historical boolean-to-enum data migration.
	tests := []testCase{
		{"Undecided", true, false, ledger.StateUndecided},
		{"UndecidedWinsOverDone", true, true, ledger.StateUndecided},
		{"Decided", false, false, ledger.StateDecided},
		{"Done", false, true, ledger.StateDone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ledger.StateFromFlags(tt.undecided, tt.done))
		})
	}
}

func TestParseState(t *testing.T) {
	for _, valid := range []string{"undecided", "decided", "done"} {
		s, err := ledger.ParseState(valid)
		assert.NoError(t, err)
		assert.Equal(t, ledger.State(valid), s)
	}

	_, err := ledger.ParseState("paid")
	assert.Error(t, err)
}

func TestState_CanAdvanceTo(t *testing.T) {
	type testCase struct {
		name         string
		from, target ledger.State
		want         bool
	}

	tests := []testCase{
		{"UndecidedToDecided", ledger.StateUndecided, ledger.StateDecided, true},
		{"UndecidedToDone", ledger.StateUndecided, ledger.StateDone, true},
		{"DecidedToDone", ledger.StateDecided, ledger.StateDone, true},
		{"SameState", ledger.StateDecided, ledger.StateDecided, true},
		{"DoneBackToDecided", ledger.StateDone, ledger.StateDecided, false},
		{"DecidedBackToUndecided", ledger.StateDecided, ledger.StateUndecided, false},
		{"UnknownTarget", ledger.StateDecided, ledger.State("paid"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanAdvanceTo(tt.target))
		})
	}
}

func TestLoan_Covers(t *testing.T) {
	loan := &ledger.Loan{
		FirstYear: 2023, FirstMonth: 1,
		LastYear: 2023, LastMonth: 3,
	}

	assert.False(t, loan.Covers(2022, 12))
	assert.True(t, loan.Covers(2023, 1))
	assert.True(t, loan.Covers(2023, 2))
	assert.True(t, loan.Covers(2023, 3))
	assert.False(t, loan.Covers(2023, 4))

	spanning := &ledger.Loan{
		FirstYear: 2022, FirstMonth: 11,
		LastYear: 2023, LastMonth: 2,
	}

	assert.True(t, spanning.Covers(2022, 12))
	assert.True(t, spanning.Covers(2023, 1))
	assert.False(t, spanning.Covers(2022, 10))
	assert.False(t, spanning.Covers(2023, 3))
}

func TestLoan_InstallmentAmount(t *testing.T) {
	loan := &ledger.Loan{
		FirstYear: 2023, FirstMonth: 1,
		LastYear: 2023, LastMonth: 3,
		AmountFirst:      35000,
		AmountFromSecond: 30000,
	}

	assert.Equal(t, int64(35000), loan.InstallmentAmount(2023, 1))
	assert.Equal(t, int64(30000), loan.InstallmentAmount(2023, 2))
	assert.Equal(t, int64(30000), loan.InstallmentAmount(2023, 3))
}
