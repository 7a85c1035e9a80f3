package staging

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/brownian/internal/contracts"
)

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "1.000000000000000e+00", FormatValue(1))
	assert.Equal(t, "-1.281551565544601e+00", FormatValue(-1.2815515655446008))
	assert.Equal(t, "0.000000000000000e+00", FormatValue(0))
	assert.Equal(t, "1.234500000000000e-07", FormatValue(1.2345e-7))
}

func TestEncode_NoTrailingNewline(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, []float64{1, 2.5, -3}))

	assert.Equal(t,
		"1.000000000000000e+00\n2.500000000000000e+00\n-3.000000000000000e+00",
		buf.String())
}

func TestEncodeDecode_PreservesPrecision(t *testing.T) {
	in := []float64{math.Pi, -math.E, 1e-300, 123456.789012345, 0.1 + 0.2}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, in))
	out, err := Decode(&buf)
	require.NoError(t, err)
	require.Len(t, out, len(in))

	for i := range in {
		assert.InDelta(t, in[i], out[i], 1e-15*math.Abs(in[i]), "index %d", i)
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    []float64
		wantErr error
	}{
		{"single", "4.2e+00", []float64{4.2}, nil},
		{"trailing newline tolerated", "1e0\n2e0\n", []float64{1, 2}, nil},
		{"windows line endings", "1e0\r\n2e0", []float64{1, 2}, nil},
		{"blank lines skipped", "\n1\n\n  \n-2.5\n", []float64{1, -2.5}, nil},
		{"plain decimals", "0.5\n-7", []float64{0.5, -7}, nil},
		{"empty", "", nil, contracts.ErrMalformedArtifact},
		{"only blanks", "\n \n", nil, contracts.ErrMalformedArtifact},
		{"garbage line", "1.0\nabc\n2.0", nil, contracts.ErrMalformedArtifact},
		{"two numbers on one line", "1.0 2.0", nil, contracts.ErrMalformedArtifact},
		{"nan", "NaN", nil, contracts.ErrMalformedArtifact},
		{"infinity", "1\n+Inf", nil, contracts.ErrMalformedArtifact},
		{"hex float", "1.0\n0x1p-2", nil, contracts.ErrMalformedArtifact},
		{"digit separator", "1_0", nil, contracts.ErrMalformedArtifact},
		{"overlong line", "1.0\n" + strings.Repeat("x", 70000), nil, contracts.ErrMalformedArtifact},
		{"overlong digits", strings.Repeat("1", 70000), nil, contracts.ErrMalformedArtifact},
		{"signed exponent", "-1.5E-3\n+2e+1", []float64{-0.0015, 20}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(strings.NewReader(tt.body))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecode_MaxLen(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < contracts.MaxLen; i++ {
		sb.WriteString("1\n")
	}

	got, err := Decode(strings.NewReader(sb.String()))
	require.NoError(t, err)
	assert.Len(t, got, contracts.MaxLen)

	sb.WriteString("1")
	_, err = Decode(strings.NewReader(sb.String()))
	assert.ErrorIs(t, err, contracts.ErrInvalidInputSize)
}
