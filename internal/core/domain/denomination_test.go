package domain_test

import (
	"testing"
	"time"

	"github.com/cashvault/cashvault_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseDenomination(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  domain.Denomination
		ok    bool
	}{
		{name: "valid member", input: "20", want: 20, ok: true},
		{name: "largest member", input: "500", want: 500, ok: true},
		{name: "not a member", input: "25", ok: false},
		{name: "negative", input: "-5", ok: false},
		{name: "not a number", input: "fifty", ok: false},
		{name: "empty", input: "", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := domain.ParseDenomination(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestBillCountMapTotal(t *testing.T) {
	m := domain.BillCountMap{20: 5, 50: 2}
	assert.True(t, m.Total().Equal(decimal.NewFromInt(200)))

	assert.True(t, domain.BillCountMap{}.Total().IsZero())
}

func TestBillCountMapValidate(t *testing.T) {
	assert.NoError(t, domain.BillCountMap{5: 0, 200: 3}.Validate())
	assert.Error(t, domain.BillCountMap{25: 1}.Validate())
	assert.Error(t, domain.BillCountMap{10: -1}.Validate())
}

func TestBillCountMapClone(t *testing.T) {
	orig := domain.BillCountMap{10: 2}
	clone := orig.Clone()
	clone[10] = 9

	assert.Equal(t, int64(2), orig[10])
}

func TestBillCountMapNormalized(t *testing.T) {
	m := domain.BillCountMap{10: 2, 20: 0, 50: -3}
	assert.Equal(t, domain.BillCountMap{10: 2}, m.Normalized())
}

func TestDayKeyUsesUTC(t *testing.T) {
	paris := time.FixedZone("CET", 2*3600)
	// 00:30 local on March 2nd is still March 1st in UTC.
	at := time.Date(2024, 3, 2, 0, 30, 0, 0, paris)
	assert.Equal(t, "2024-03-01", domain.DayKey(at))
}
