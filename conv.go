package rangesum

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"unsafe"

	"github.com/joeycumines/go-utilpkg/jsonenc"
)

const strNil = `<nil>`

type (
	// IntConv implements lossless encoding and decoding for
	// [math/big.Int] values.
	//
	// The JSON representation is a base 10 string, as arbitrarily large
	// integers will not survive most JSON number implementations. Decoding
	// also accepts bare JSON numbers, provided they are integers.
	IntConv big.Int

	// Result models a computed sum, and the path taken to compute it.
	Result struct {
		// Range is the normalized range that was summed.
		Range

		// Sum is the exact sum of Range.
		Sum *big.Int

		// Rational indicates the operands were classified as large, and the
		// sum was evaluated using [math/big.Rat] arithmetic, rather than
		// float64. The sum is exact either way.
		Rational bool

		// Strategy is the classification strategy that was used.
		Strategy Strategy
	}
)

func (x *IntConv) Value() *big.Int {
	return (*big.Int)(x)
}

func (x *IntConv) String() string {
	if x != nil {
		b := append(make([]byte, 0, 16), `big.Int(`...)
		b = x.Value().Append(b, 10)
		b = append(b, ')')
		return unsafe.String(unsafe.SliceData(b), len(b))
	}
	return strNil
}

func (x *IntConv) MarshalJSON() ([]byte, error) {
	if x != nil {
		return x.append(make([]byte, 0, 16)), nil
	}
	return []byte(`null`), nil
}

func (x *IntConv) UnmarshalJSON(b []byte) error {
	// note: >=3 because empty string is invalid
	if len(b) >= 3 && b[0] == '"' && b[len(b)-1] == '"' {
		b = b[1 : len(b)-1]
	} else if len(b) == 0 || bytes.ContainsAny(b, `".eE`) || string(b) == `null` {
		return fmt.Errorf("rangesum: intconv: invalid value: %s", b)
	}
	if _, ok := x.Value().SetString(string(b), 10); !ok {
		return fmt.Errorf("rangesum: intconv: invalid value: %s", b)
	}
	return nil
}

func (x *IntConv) MarshalText() ([]byte, error) {
	if x == nil {
		return []byte(strNil), nil
	}
	return x.Value().Append(nil, 10), nil
}

func (x *IntConv) UnmarshalText(b []byte) error {
	if _, ok := x.Value().SetString(string(b), 10); !ok {
		return fmt.Errorf("rangesum: intconv: invalid value: %s", b)
	}
	return nil
}

func (x *IntConv) append(b []byte) []byte {
	b = append(b, '"')
	b = x.Value().Append(b, 10)
	b = append(b, '"')
	return b
}

// MarshalJSON encodes the result as an object, with each integer encoded as
// per [IntConv].
func (x *Result) MarshalJSON() ([]byte, error) {
	if x == nil {
		return []byte(`null`), nil
	}
	strategy, err := x.Strategy.MarshalText()
	if err != nil {
		return nil, err
	}
	b := append(make([]byte, 0, 96), `{"lo":`...)
	b = appendInt(b, x.Lo)
	b = append(b, `,"hi":`...)
	b = appendInt(b, x.Hi)
	b = append(b, `,"sum":`...)
	b = appendInt(b, x.Sum)
	b = append(b, `,"rational":`...)
	if x.Rational {
		b = append(b, `true`...)
	} else {
		b = append(b, `false`...)
	}
	b = append(b, `,"strategy":`...)
	b = jsonenc.AppendString(b, string(strategy))
	b = append(b, '}')
	return b, nil
}

// UnmarshalJSON decodes the format produced by [Result.MarshalJSON].
func (x *Result) UnmarshalJSON(b []byte) error {
	if string(b) == `null` {
		return errors.New(`rangesum: result: invalid value: null`)
	}
	var v struct {
		Lo       *IntConv `json:"lo"`
		Hi       *IntConv `json:"hi"`
		Sum      *IntConv `json:"sum"`
		Rational bool     `json:"rational"`
		Strategy Strategy `json:"strategy"`
	}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	if v.Lo == nil || v.Hi == nil || v.Sum == nil {
		return fmt.Errorf(`rangesum: result: missing field: %s`, b)
	}
	*x = Result{
		Range:    Range{Lo: v.Lo.Value(), Hi: v.Hi.Value()},
		Sum:      v.Sum.Value(),
		Rational: v.Rational,
		Strategy: v.Strategy,
	}
	return nil
}

func appendInt(b []byte, v *big.Int) []byte {
	if v == nil {
		return append(b, `null`...)
	}
	return (*IntConv)(v).append(b)
}
