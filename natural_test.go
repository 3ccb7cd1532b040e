package rangesum

import (
	"errors"
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNatural(t *testing.T) {
	for _, tt := range [...]struct {
		name  string
		input any
		want  string
	}{
		{"int", 7, "7"},
		{"int8", int8(math.MaxInt8), "127"},
		{"int16", int16(math.MaxInt16), "32767"},
		{"int32", int32(math.MaxInt32), "2147483647"},
		{"int64", int64(math.MaxInt64), "9223372036854775807"},
		{"uint", uint(0), "0"},
		{"uint8", uint8(math.MaxUint8), "255"},
		{"uint16", uint16(math.MaxUint16), "65535"},
		{"uint32", uint32(math.MaxUint32), "4294967295"},
		{"uint64", uint64(math.MaxUint64), "18446744073709551615"},
		{"uintptr", uintptr(42), "42"},
		{"big", big.NewInt(99), "99"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Natural(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.String())
		})
	}
}

func TestNatural_copies(t *testing.T) {
	in := big.NewInt(5)
	v, err := Natural(in)
	require.NoError(t, err)
	require.NotSame(t, in, v)
	v.SetInt64(6)
	assert.Equal(t, int64(5), in.Int64())
}

func TestNaturalOf(t *testing.T) {
	v, err := NaturalOf(int16(12))
	require.NoError(t, err)
	assert.Equal(t, "12", v.String())

	v, err = NaturalOf(int64(math.MinInt64))
	assert.Nil(t, v)
	var target *PreconditionError
	require.True(t, errors.As(err, &target))
	assert.Equal(t, `n`, target.Arg)
	assert.Equal(t, int64(math.MinInt64), target.Value)
	assert.EqualError(t, err, `rangesum: precondition violation: n: negative value: -9223372036854775808 (int64)`)
}

func TestParseNatural(t *testing.T) {
	for _, tt := range [...]struct {
		input  string
		want   string
		reason string
	}{
		{input: "0", want: "0"},
		{input: "+15", want: "15"},
		{input: "000123", want: "123"},
		{input: "100000000000000000001", want: "100000000000000000001"},
		{input: "", reason: `not an exact integer`},
		{input: "+", reason: `not an exact integer`},
		{input: "-1", reason: `negative value`},
		{input: "2.5", reason: `not an exact integer`},
		{input: "1e3", reason: `not an exact integer`},
		{input: "0x10", reason: `not an exact integer`},
		{input: " 1", reason: `not an exact integer`},
		{input: "1_000", reason: `not an exact integer`},
		{input: "++1", reason: `not an exact integer`},
	} {
		t.Run(tt.input, func(t *testing.T) {
			v, err := ParseNatural(tt.input)
			if tt.reason != `` {
				assert.Nil(t, v)
				require.ErrorIs(t, err, ErrPreconditionViolation)
				var target *PreconditionError
				require.ErrorAs(t, err, &target)
				assert.Equal(t, tt.reason, target.Reason)
				assert.Equal(t, tt.input, target.Value)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.String())
		})
	}
}

func TestPreconditionError_Error(t *testing.T) {
	for _, tt := range [...]struct {
		err  *PreconditionError
		want string
	}{
		{&PreconditionError{Arg: `m`, Reason: `nil value`, Value: (*big.Int)(nil)}, `rangesum: precondition violation: m: nil value: <nil>`},
		{&PreconditionError{Arg: `n`, Reason: `not an exact integer`}, `rangesum: precondition violation: n: not an exact integer: <nil>`},
		{&PreconditionError{Arg: `n`, Reason: `negative value`, Value: big.NewInt(-4)}, `rangesum: precondition violation: n: negative value: -4`},
		{&PreconditionError{Arg: `n`, Reason: `not an exact integer`, Value: `2.5`}, `rangesum: precondition violation: n: not an exact integer: "2.5"`},
	} {
		assert.Equal(t, tt.want, tt.err.Error())
		assert.ErrorIs(t, tt.err, ErrPreconditionViolation)
	}
}
