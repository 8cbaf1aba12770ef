package models

import (
	"fmt"
	"strings"
)

// Milliunits is YNAB's fixed-point currency representation:
// 1000 milliunits equal one currency unit, so -123450 is -123.45.
// Keeping amounts in milliunits end to end avoids floating-point drift;
// conversion to a decimal string happens only at the presentation edge.
type Milliunits int64

// Decimal renders the amount as an exact decimal string with trailing zeros
// trimmed: 200000 is "200", -123450 is "-123.45", 5 is "0.005".
func (m Milliunits) Decimal() string {
	sign := ""
	v := int64(m)
	if v < 0 {
		sign = "-"
		v = -v
	}

	s := fmt.Sprintf("%s%d.%03d", sign, v/1000, v%1000)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	return s
}

// ParseMilliunits converts a decimal currency string such as "200", "-75.5"
// or "0.005" into milliunits without going through floating point.
// At most three fractional digits are allowed.
func ParseMilliunits(s string) (Milliunits, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}

	sign := int64(1)
	switch s[0] {
	case '-':
		sign = -1
		s = s[1:]
	case '+':
		s = s[1:]
	}

	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" && frac == "" {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	if len(frac) > 3 {
		return 0, fmt.Errorf("amount %q has more than three decimal places", s)
	}

	var v int64
	for _, r := range whole {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("invalid amount %q", s)
		}
		v = v*10 + int64(r-'0')
	}

	// pad the fraction to exactly three digits
	f := int64(0)
	for i := 0; i < 3; i++ {
		f *= 10
		if i < len(frac) {
			r := frac[i]
			if r < '0' || r > '9' {
				return 0, fmt.Errorf("invalid amount %q", s)
			}
			f += int64(r - '0')
		}
	}

	return Milliunits(sign * (v*1000 + f)), nil
}
