package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/cashvault/cashvault_backend/internal/core/domain"
)

// MarshalBills encodes a bill map as the JSONB payload stored in the
// database: denomination string keys, integer quantities.
func MarshalBills(bills domain.BillCountMap) ([]byte, error) {
	raw := make(map[string]int64, len(bills))
	for d, q := range bills {
		raw[d.String()] = q
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal bill details: %w", err)
	}
	return data, nil
}

// UnmarshalBills decodes a stored JSONB payload back into a bill map.
// Keys outside the fixed denomination set fail, since stored payloads
// were validated at write time.
func UnmarshalBills(data []byte) (domain.BillCountMap, error) {
	if len(data) == 0 {
		return domain.BillCountMap{}, nil
	}
	raw := make(map[string]int64)
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal bill details: %w", err)
	}
	bills := make(domain.BillCountMap, len(raw))
	for key, q := range raw {
		d, ok := domain.ParseDenomination(key)
		if !ok {
			return nil, fmt.Errorf("stored bill details contain unknown denomination %q", key)
		}
		bills[d] = q
	}
	return bills, nil
}
