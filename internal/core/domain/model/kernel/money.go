package kernel

import (
	"fmt"
	"strconv"
	"strings"

	"okada/internal/pkg/errs"
)

// minorUnitsPerFranc is the number of stored units in one FCFA.
const minorUnitsPerFranc = 100

// Money is a non-negative amount expressed in minor FCFA units
// (250000 is 2,500 FCFA).
type Money struct {
	minor int64
}

// NewMoney validates that the amount is not negative.
func NewMoney(minor int64) (Money, error) {
	if minor < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%d is negative", minor))
	}
	return Money{minor: minor}, nil
}

// Minor returns the amount in minor units.
func (m Money) Minor() int64 {
	return m.minor
}

// Add returns the sum of both amounts.
func (m Money) Add(other Money) Money {
	return Money{minor: m.minor + other.minor}
}

// IsEqual compares amounts.
func (m Money) IsEqual(other Money) bool {
	return m.minor == other.minor
}

// String formats the amount in whole francs with thousands separators,
// e.g. "2,500 FCFA".
func (m Money) String() string {
	francs := strconv.FormatInt(m.minor/minorUnitsPerFranc, 10)

	var b strings.Builder
	for i, r := range francs {
		if i > 0 && (len(francs)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteString(" FCFA")
	return b.String()
}
