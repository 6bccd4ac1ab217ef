package encoding

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

func encode(t *testing.T, s string, enc transform.Transformer) []byte {
	t.Helper()

	out, _, err := transform.Bytes(enc, []byte(s))
	require.NoError(t, err)

	return out
}

func TestNewUTF8Reader(t *testing.T) {
	const sample = "日付,摘要,出金金額\n2024/06/10,コンビニ,1200\n"

	tests := []struct {
		name  string
		input []byte
		want  string
	}{
		{
			name:  "plain utf8",
			input: []byte(sample),
			want:  sample,
		},
		{
			name:  "utf8 with bom",
			input: append([]byte{0xEF, 0xBB, 0xBF}, []byte(sample)...),
			want:  sample,
		},
		{
			name:  "shift_jis",
			input: encode(t, sample, japanese.ShiftJIS.NewEncoder()),
			want:  sample,
		},
		{
			name:  "euc-jp",
			input: encode(t, sample, japanese.EUCJP.NewEncoder()),
			want:  sample,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewUTF8Reader(bytes.NewReader(tt.input))
			require.NoError(t, err)

			got, err := io.ReadAll(r)
			require.NoError(t, err)

			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestNewUTF8Reader_ASCIIPassesThrough(t *testing.T) {
	r, err := NewUTF8Reader(strings.NewReader("date,amount\n2024-06-10,1200\n"))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)

	assert.Equal(t, "date,amount\n2024-06-10,1200\n", string(got))
}
