package statement

// TransactionRecord is one raw transaction from the inbound payload.
// It is map-backed because the payload carries no guaranteed shape
// beyond the four known fields, and fields this service does not
// recognize still have to reach the template untouched.
type TransactionRecord map[string]any

// NormalizedEntry is a TransactionRecord after display-formatting
// derivation: credit/debit split, date truncation, case-folding.
type NormalizedEntry map[string]any

// StatementData is the "data" object of the inbound payload. Every
// field is optional; missing fields take defaults during assembly.
type StatementData struct {
	UserDetails       map[string]any      `json:"user_details"`
	AccountDetails    map[string]any      `json:"account_details"`
	StartDate         any                 `json:"start_date"`
	EndDate           any                 `json:"end_date"`
	VaultTransactions []TransactionRecord `json:"vault_transactions"`
	FloatTransactions []TransactionRecord `json:"float_transactions"`
	PlansTransactions []TransactionRecord `json:"plans_transactions"`
}

// RenderContext is the full set of named data slots supplied to the
// statement template for one document.
type RenderContext map[string]any
