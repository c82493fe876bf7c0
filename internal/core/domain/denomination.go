package domain

import (
	"sort"
	"strconv"

	"github.com/shopspring/decimal"
)

// Denomination is the face value of a banknote, in whole currency units.
type Denomination int64

// Denominations is the fixed set of legal-tender face values the system
// tracks. It is the single source of truth shared by payload validation
// and the replay engine.
var Denominations = []Denomination{5, 10, 20, 50, 100, 200, 500}

// String returns the face value as its decimal string, e.g. "50".
func (d Denomination) String() string {
	return strconv.FormatInt(int64(d), 10)
}

// IsValid reports whether d belongs to the fixed denomination set.
func (d Denomination) IsValid() bool {
	for _, known := range Denominations {
		if d == known {
			return true
		}
	}
	return false
}

// ParseDenomination converts a string key (e.g. "20") into a Denomination.
// It returns false when the key is not a member of the fixed set.
func ParseDenomination(s string) (Denomination, bool) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	d := Denomination(v)
	return d, d.IsValid()
}

// BillCountMap maps a denomination to a non-negative bill count. Absent
// keys mean zero; entries that reach zero are removed rather than kept as
// explicit zeroes.
type BillCountMap map[Denomination]int64

// Clone returns an independent copy of the map.
func (m BillCountMap) Clone() BillCountMap {
	out := make(BillCountMap, len(m))
	for d, q := range m {
		out[d] = q
	}
	return out
}

// Total returns the monetary value of the map: sum of face value times count.
func (m BillCountMap) Total() decimal.Decimal {
	total := decimal.Zero
	for d, q := range m {
		total = total.Add(decimal.NewFromInt(int64(d)).Mul(decimal.NewFromInt(q)))
	}
	return total
}

// Validate checks that every key belongs to the fixed denomination set and
// every quantity is non-negative.
func (m BillCountMap) Validate() error {
	for d, q := range m {
		if !d.IsValid() {
			return &InvalidDenominationError{Denomination: d}
		}
		if q < 0 {
			return &NegativeQuantityError{Denomination: d, Quantity: q}
		}
	}
	return nil
}

// Normalized returns a copy with zero and negative entries dropped, keeping
// the key set meaningful for presence checks.
func (m BillCountMap) Normalized() BillCountMap {
	out := make(BillCountMap, len(m))
	for d, q := range m {
		if q > 0 {
			out[d] = q
		}
	}
	return out
}

// SortedDenominations returns the map's keys in ascending face-value order,
// for deterministic iteration in reports and tests.
func (m BillCountMap) SortedDenominations() []Denomination {
	keys := make([]Denomination, 0, len(m))
	for d := range m {
		keys = append(keys, d)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// InvalidDenominationError reports a payload key outside the fixed set.
type InvalidDenominationError struct {
	Denomination Denomination
}

func (e *InvalidDenominationError) Error() string {
	return "unknown denomination " + e.Denomination.String()
}

// NegativeQuantityError reports a negative bill count in a payload.
type NegativeQuantityError struct {
	Denomination Denomination
	Quantity     int64
}

func (e *NegativeQuantityError) Error() string {
	return "negative quantity " + strconv.FormatInt(e.Quantity, 10) + " for denomination " + e.Denomination.String()
}
