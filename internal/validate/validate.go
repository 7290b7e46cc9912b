package validate

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	reID   = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
	reSort = regexp.MustCompile(`^(price-low|price-high|rating)$`)
)

// ID validates a simple resource identifier (product/order ids).
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// Sort validates a product sort key; empty means insertion order.
func Sort(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", true
	}
	return s, reSort.MatchString(s)
}

// Qty parses a form quantity, clamped to a sane range.
func Qty(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 1
	}
	if n > 99 {
		return 99
	}
	return n
}

// Num is a JSON scalar that accepts a number or a numeric string. The admin
// form submits every field as a string while API clients send numbers; both
// decode to the same value.
type Num string

func (n *Num) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch t := v.(type) {
	case nil:
		*n = ""
	case string:
		*n = Num(strings.TrimSpace(t))
	case float64:
		*n = Num(strconv.FormatFloat(t, 'f', -1, 64))
	default:
		return fmt.Errorf("cannot parse %T as number", v)
	}
	return nil
}

// Empty reports whether no usable value was supplied.
func (n Num) Empty() bool { return strings.TrimSpace(string(n)) == "" }

func (n Num) Float() (float64, error) {
	s := strings.TrimSpace(string(n))
	if s == "" {
		return 0, fmt.Errorf("empty number")
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	// ParseFloat accepts "NaN" and "Inf"; neither is a usable value here
	// (NaN in particular cannot even be stored or marshalled to JSON).
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("non-finite number %q", s)
	}
	return f, nil
}

// FloatOr returns the parsed value, or def when absent or unparseable.
func (n Num) FloatOr(def float64) float64 {
	f, err := n.Float()
	if err != nil {
		return def
	}
	return f
}

// IntOr returns the parsed value truncated to an int, or def when absent or
// unparseable.
func (n Num) IntOr(def int) int {
	f, err := n.Float()
	if err != nil {
		return def
	}
	return int(f)
}
