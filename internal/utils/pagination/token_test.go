package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeToken(t *testing.T) {
	createdAt := time.Date(2024, 5, 15, 14, 30, 45, 123456789, time.UTC)
	transactionID := "7a1f3b6e-1c2d-4e5f-8a9b-0c1d2e3f4a5b"

	token := EncodeToken(createdAt, transactionID)
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedCreatedAt, decodedID, err := DecodeToken(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, createdAt, decodedCreatedAt, "Creation time should match after decode")
	assert.Equal(t, transactionID, decodedID, "Transaction ID should match after decode")

	// Round trip with current time, compared with Equal to ignore monotonic clock
	now := time.Now().UTC()
	nowToken := EncodeToken(now, transactionID)
	decodedNow, _, err := DecodeToken(nowToken)
	assert.NoError(t, err, "Decoding current time should not return an error")
	assert.True(t, now.Equal(decodedNow), "Current time should match after decode")
}

func TestDecodeTokenError(t *testing.T) {
	// Invalid base64
	_, _, err := DecodeToken("this is not base64!")
	assert.Error(t, err, "Should return an error for invalid base64")
	assert.Contains(t, err.Error(), "base64 decode", "Error should mention base64 decoding")

	// Missing separator
	_, _, err = DecodeToken("MjAyMy0wNS0xNVQwMDowMDowMFo=")
	assert.Error(t, err, "Should return an error for invalid token format")
	assert.Contains(t, err.Error(), "split", "Error should mention splitting issue")

	// Invalid timestamp; base64 of "notadate|some-id"
	_, _, err = DecodeToken("bm90YWRhdGV8c29tZS1pZA==")
	assert.Error(t, err, "Should return an error for invalid timestamp format")
	assert.Contains(t, err.Error(), "created_at parse", "Error should mention timestamp parsing issue")

	// Empty transaction ID; base64 of "2023-05-15T00:00:00Z|"
	_, _, err = DecodeToken("MjAyMy0wNS0xNVQwMDowMDowMFp8")
	assert.Error(t, err, "Should return an error for empty ID")
	assert.Contains(t, err.Error(), "empty id", "Error should mention the empty ID")
}
