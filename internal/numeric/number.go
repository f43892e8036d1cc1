// Package numeric holds the blankable integer used by every numeric sheet
// field, and the signed text helpers that edit it.
package numeric

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Number is an integer that may be blank. The zero value is blank.
type Number struct {
	value int
	set   bool
}

// Blank returns a blank Number
func Blank() Number {
	return Number{}
}

// Of returns a Number holding n
func Of(n int) Number {
	return Number{value: n, set: true}
}

// IsBlank reports whether no value has been committed
func (n Number) IsBlank() bool {
	return !n.set
}

// Int returns the value and whether it is set
func (n Number) Int() (int, bool) {
	return n.value, n.set
}

// Or returns the value, or def when blank
func (n Number) Or(def int) int {
	if !n.set {
		return def
	}
	return n.value
}

// String renders the plain value; blank renders as an empty string
func (n Number) String() string {
	if !n.set {
		return ""
	}
	return strconv.Itoa(n.value)
}

// MarshalJSON encodes blank as "" to stay compatible with exported sheets
func (n Number) MarshalJSON() ([]byte, error) {
	if !n.set {
		return []byte(`""`), nil
	}
	return []byte(strconv.Itoa(n.value)), nil
}

// UnmarshalJSON accepts numbers, numeric strings, "" and null
func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*n = Blank()
		return nil
	}

	if data[0] == '"' {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		*n = ParseSigned(text)
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("numeric: %s is not a number", string(data))
	}
	v, err := FromFloat(f)
	if err != nil {
		return err
	}
	*n = v
	return nil
}

// FromFloat converts a whole float. Fractions, NaN, infinities and values
// outside the int range are errors.
func FromFloat(f float64) (Number, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return Blank(), fmt.Errorf("numeric: %v is not an integer", f)
	}
	if f >= float64(math.MaxInt) || f < float64(math.MinInt) {
		return Blank(), fmt.Errorf("numeric: %v is out of range", f)
	}
	return Of(int(f)), nil
}

// FormatSigned renders blank as "", non-negative values with a leading "+",
// and negative values with their own sign.
func FormatSigned(n Number) string {
	v, ok := n.Int()
	if !ok {
		return ""
	}
	if v >= 0 {
		return "+" + strconv.Itoa(v)
	}
	return strconv.Itoa(v)
}

// ParseSigned reads free text typed into a signed field. "", a lone "+" and a
// lone "-" are not yet committed and read as blank, as does anything that is
// not an integer.
func ParseSigned(text string) Number {
	raw := strings.TrimSpace(text)
	if raw == "" || raw == "+" || raw == "-" {
		return Blank()
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return Blank()
	}
	return Of(v)
}

var typingPattern = regexp.MustCompile(`^[-+]?\d*$`)

// TypingValid reports whether text is an acceptable in-progress entry for a
// signed field: an optional sign followed by digits.
func TypingValid(text string) bool {
	return typingPattern.MatchString(strings.TrimSpace(text))
}
