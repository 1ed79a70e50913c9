package rle

import (
	"encoding/json"
	"fmt"
)

// Mode decides how runs of length one are written.
type Mode int

const (
	// ArrayAlways writes every run as [symbol, count] (overmap layers).
	ArrayAlways Mode = iota

	// ScalarWhenSingle writes a run of one as the bare symbol (submap terrain).
	ScalarWhenSingle
)

// Run is a symbol repeated Count times.
type Run struct {
	Symbol string
	Count  int
}

// Runs collapses adjacent equal symbols.
func Runs(symbols []string) []Run {
	runs := []Run{}
	for _, s := range symbols {
		last := len(runs) - 1
		if last >= 0 && runs[last].Symbol == s {
			runs[last].Count++
			continue
		}
		runs = append(runs, Run{Symbol: s, Count: 1})
	}
	return runs
}

// Encode returns the game's compressed form of symbols, ready to be marshalled.
func Encode(symbols []string, mode Mode) []interface{} {
	runs := Runs(symbols)
	out := make([]interface{}, 0, len(runs))
	for _, r := range runs {
		if r.Count == 1 && mode == ScalarWhenSingle {
			out = append(out, r.Symbol)
			continue
		}
		out = append(out, []interface{}{r.Symbol, r.Count})
	}
	return out
}

// EncodeBools is Encode for boolean layers. They are always ArrayAlways.
func EncodeBools(values []bool) []interface{} {
	out := []interface{}{}
	for i := 0; i < len(values); {
		j := i
		for j < len(values) && values[j] == values[i] {
			j++
		}
		out = append(out, []interface{}{values[i], j - i})
		i = j
	}
	return out
}

// Repeat is the encoding of a single symbol repeated n times.
func Repeat(symbol string, n int) []interface{} {
	return []interface{}{[]interface{}{symbol, n}}
}

// Decode expands encoded runs back into symbols. It accepts both the values
// produced by Encode and the generic values produced by json.Unmarshal.
func Decode(encoded []interface{}, mode Mode) ([]string, error) {
	out := []string{}
	for i, v := range encoded {
		switch run := v.(type) {
		case string:
			if mode == ArrayAlways {
				return nil, fmt.Errorf("run %d: bare symbol %q in array-only encoding", i, run)
			}
			out = append(out, run)
		case []interface{}:
			if len(run) != 2 {
				return nil, fmt.Errorf("run %d: expected [symbol, count], got %d elements", i, len(run))
			}
			sym, ok := run[0].(string)
			if !ok {
				return nil, fmt.Errorf("run %d: symbol is %T not string", i, run[0])
			}
			count, err := toCount(run[1])
			if err != nil {
				return nil, fmt.Errorf("run %d: %w", i, err)
			}
			if count < 1 || (count == 1 && mode == ScalarWhenSingle) {
				return nil, fmt.Errorf("run %d: invalid count %d", i, count)
			}
			for n := 0; n < count; n++ {
				out = append(out, sym)
			}
		default:
			return nil, fmt.Errorf("run %d: unexpected %T", i, v)
		}
	}
	return out, nil
}

func toCount(v interface{}) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case float64:
		if n != float64(int(n)) {
			return 0, fmt.Errorf("count %v is not an integer", n)
		}
		return int(n), nil
	case json.Number:
		i, err := n.Int64()
		return int(i), err
	}
	return 0, fmt.Errorf("count is %T not a number", v)
}
