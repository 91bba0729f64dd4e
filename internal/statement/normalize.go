package statement

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

const (
	categoryCredit = "credit"
	categoryDebit  = "debit"
)

// Normalize turns raw transaction records into display-ready entries.
// Order is preserved and no records are filtered out. A nil input is an
// empty history.
func Normalize(records []TransactionRecord, currencySymbol string) []NormalizedEntry {
	entries := make([]NormalizedEntry, 0, len(records))
	for _, record := range records {
		entries = append(entries, normalizeRecord(record, currencySymbol))
	}
	return entries
}

func normalizeRecord(record TransactionRecord, currencySymbol string) NormalizedEntry {
	entry := make(NormalizedEntry, len(record)+2)
	for key, value := range record {
		entry[key] = value
	}

	entry["desc"] = strings.ToLower(stringField(record, "desc"))
	entry["created_at"] = dateOnly(stringField(record, "created_at"))

	// Exactly one of credit/debit is set for a recognized category,
	// neither for anything else. The amount itself is never
	// reformatted, only prefixed.
	switch stringField(record, "description") {
	case categoryCredit:
		entry["credit"] = currencySymbol + amountString(record["amount"])
	case categoryDebit:
		entry["debit"] = currencySymbol + amountString(record["amount"])
	}

	return entry
}

// dateOnly truncates an ISO-8601-ish date-time to calendar-date
// precision: everything from the first "T" on is dropped.
func dateOnly(raw string) string {
	return strings.SplitN(raw, "T", 2)[0]
}

func stringField(record TransactionRecord, key string) string {
	value, ok := record[key].(string)
	if !ok {
		return ""
	}
	return value
}

func amountString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
