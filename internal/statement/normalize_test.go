package statement

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

const naira = "₦"

func TestNormalize_CreditRecord(t *testing.T) {
	entries := Normalize([]TransactionRecord{{
		"description": "credit",
		"desc":        "Salary",
		"amount":      json.Number("1000"),
		"created_at":  "2024-01-10T12:00:00Z",
	}}, naira)

	assert.Len(t, entries, 1)
	entry := entries[0]
	assert.Equal(t, naira+"1000", entry["credit"])
	assert.NotContains(t, entry, "debit")
	assert.Equal(t, "salary", entry["desc"])
	assert.Equal(t, "2024-01-10", entry["created_at"])
}

func TestNormalize_DebitRecord(t *testing.T) {
	entries := Normalize([]TransactionRecord{{
		"description": "debit",
		"amount":      json.Number("250.75"),
		"created_at":  "2024-02-01T09:30:00+01:00",
	}}, naira)

	entry := entries[0]
	assert.Equal(t, naira+"250.75", entry["debit"])
	assert.NotContains(t, entry, "credit")
}

func TestNormalize_UnrecognizedCategory(t *testing.T) {
	entries := Normalize([]TransactionRecord{{
		"description": "reversal",
		"amount":      json.Number("10"),
		"created_at":  "2024-02-01T00:00:00Z",
	}}, naira)

	entry := entries[0]
	assert.NotContains(t, entry, "credit")
	assert.NotContains(t, entry, "debit")
}

func TestNormalize_MissingOptionalFields(t *testing.T) {
	// desc, amount, and created_at can all be absent in some payload
	// tiers; the record still normalizes instead of failing the request.
	entries := Normalize([]TransactionRecord{{
		"description": "credit",
	}}, naira)

	entry := entries[0]
	assert.Equal(t, "", entry["desc"])
	assert.Equal(t, "", entry["created_at"])
	assert.Equal(t, naira, entry["credit"])
}

func TestNormalize_PreservesUnknownFields(t *testing.T) {
	entries := Normalize([]TransactionRecord{{
		"description": "credit",
		"amount":      json.Number("5"),
		"created_at":  "2024-03-01T00:00:00Z",
		"reference":   "TXN-123",
	}}, naira)

	assert.Equal(t, "TXN-123", entries[0]["reference"])
}

func TestNormalize_PreservesOrder(t *testing.T) {
	records := []TransactionRecord{
		{"description": "credit", "amount": json.Number("1"), "created_at": "2024-01-01T00:00:00Z"},
		{"description": "debit", "amount": json.Number("2"), "created_at": "2024-01-02T00:00:00Z"},
		{"description": "credit", "amount": json.Number("3"), "created_at": "2024-01-03T00:00:00Z"},
	}

	entries := Normalize(records, naira)

	assert.Len(t, entries, 3)
	assert.Equal(t, naira+"1", entries[0]["credit"])
	assert.Equal(t, naira+"2", entries[1]["debit"])
	assert.Equal(t, naira+"3", entries[2]["credit"])
}

func TestNormalize_NilInput(t *testing.T) {
	entries := Normalize(nil, naira)

	assert.NotNil(t, entries)
	assert.Len(t, entries, 0)
}

func TestNormalize_DateWithoutTimeComponent(t *testing.T) {
	entries := Normalize([]TransactionRecord{{
		"description": "debit",
		"amount":      json.Number("1"),
		"created_at":  "2024-04-05",
	}}, naira)

	assert.Equal(t, "2024-04-05", entries[0]["created_at"])
}

func TestNormalize_DoesNotMutateInput(t *testing.T) {
	record := TransactionRecord{
		"description": "credit",
		"desc":        "Bonus",
		"amount":      json.Number("100"),
		"created_at":  "2024-05-01T10:00:00Z",
	}

	Normalize([]TransactionRecord{record}, naira)

	assert.Equal(t, "Bonus", record["desc"])
	assert.Equal(t, "2024-05-01T10:00:00Z", record["created_at"])
	assert.NotContains(t, record, "credit")
}
