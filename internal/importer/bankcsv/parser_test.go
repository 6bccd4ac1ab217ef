package bankcsv

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestParser_Parse_BankStatement(t *testing.T) {
	input := strings.Join([]string{
		"株式会社サンプル銀行",
		"日付,摘要,出金金額,入金金額,残高",
		"2024/06/10,コンビニ,1200,,98800",
		"2024/06/25,給料,,280000,378800",
		"2024/06/27,家賃,85000,,293800",
		",,,,",
		"合計,,86200,280000,",
	}, "\n")

	parser := NewParser(BankProfiles())

	rows, err := parser.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, Row{
		Description: "コンビニ",
		Date:        date(2024, 6, 10),
		Amount:      1200,
		Withdrawal:  true,
	}, rows[0])

	assert.Equal(t, Row{
		Description: "給料",
		Date:        date(2024, 6, 25),
		Amount:      280000,
		Withdrawal:  false,
	}, rows[1])

	assert.Equal(t, Row{
		Description: "家賃",
		Date:        date(2024, 6, 27),
		Amount:      85000,
		Withdrawal:  true,
	}, rows[2])
}

func TestParser_Parse_CardStatement(t *testing.T) {
	input := strings.Join([]string{
		"利用日,利用店名,利用金額",
		`2024/06/05,スーパーマーケット,"3,480"`,
		"2024/06/12,ガソリンスタンド,5200",
	}, "\n")

	parser := NewParser(CardProfiles())

	rows, err := parser.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, int64(3480), rows[0].Amount)
	assert.True(t, rows[0].Withdrawal)
	assert.Equal(t, "ガソリンスタンド", rows[1].Description)
}

func TestParser_Parse_NoMatchingProfile(t *testing.T) {
	parser := NewParser(BankProfiles())

	_, err := parser.Parse(strings.NewReader("foo,bar\n1,2\n"))
	assert.ErrorContains(t, err, "no matching statement format")
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input   string
		want    int64
		wantErr bool
	}{
		{input: "1200", want: 1200},
		{input: "1,200", want: 1200},
		{input: "¥85,000", want: 85000},
		{input: "85000円", want: 85000},
		{input: "-3,480", want: 3480},
		{input: "", wantErr: true},
		{input: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseAmount(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
