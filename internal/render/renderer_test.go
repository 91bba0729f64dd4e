package render

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/carson-networks/statement-server/internal/statement"
)

func writeTemplate(t *testing.T, dir, name, source string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(dir, name+templateExtension), []byte(source), 0o644)
	assert.NoError(t, err)
}

func TestRender_BindsContextSlots(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "slots", `{{userDetails.first_name}}|{{accountDetails.account_number}}|{{startDate}}`)

	out, err := NewRenderer(dir).Render("slots", statement.RenderContext{
		"userDetails":    map[string]any{"first_name": "Ada"},
		"accountDetails": map[string]any{"account_number": "0123456789"},
		"startDate":      "2024-01-01",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Ada|0123456789|2024-01-01", out)
}

func TestRender_TemplateNotFound(t *testing.T) {
	_, err := NewRenderer(t.TempDir()).Render("missing", statement.RenderContext{})

	assert.Error(t, err)
	var notFound *TemplateNotFoundError
	assert.ErrorAs(t, err, &notFound)
	assert.Equal(t, "missing", notFound.Name)
}

func TestRender_ParseFailure(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "broken", `{{#each vault}}no closing tag`)

	_, err := NewRenderer(dir).Render("broken", statement.RenderContext{})

	assert.Error(t, err)
	var renderErr *RenderingError
	assert.ErrorAs(t, err, &renderErr)
}

func TestRender_HelpersAvailableInTemplate(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "helpers", `{{round amount}} {{date day}}`)

	out, err := NewRenderer(dir).Render("helpers", statement.RenderContext{
		"amount": json.Number("250"),
		"day":    "2024-03-05T00:00:00Z",
	})

	assert.NoError(t, err)
	assert.Equal(t, "2.5 3/6/2024", out)
}

// TestRender_StatementDocument renders the shipped statement template
// end to end from the assembled context of a minimal payload.
func TestRender_StatementDocument(t *testing.T) {
	data := &statement.StatementData{
		UserDetails:    map[string]any{"first_name": "Ada", "last_name": "Okafor", "email": "ada@example.com"},
		AccountDetails: map[string]any{"account_name": "Main", "account_number": "0123456789", "balance": json.Number("125050")},
		StartDate:      "2024-01-01T00:00:00Z",
		EndDate:        "2024-01-31T00:00:00Z",
		VaultTransactions: []statement.TransactionRecord{{
			"description": "credit",
			"desc":        "Deposit",
			"amount":      json.Number("1000"),
			"created_at":  "2024-01-10T12:00:00Z",
		}},
	}

	renderCtx := statement.Assemble(data, "₦")
	out, err := NewRenderer("../../templates").Render("statement", renderCtx)

	assert.NoError(t, err)
	assert.Contains(t, out, "₦1000", "vault credit keeps the raw amount, currency-prefixed")
	assert.Contains(t, out, "1/11/2024", "transaction date carries the day increment")
	assert.Contains(t, out, "deposit", "note is lower-cased")
	assert.Contains(t, out, "Ada Okafor")
	assert.Contains(t, out, "1250.5", "balance is scaled from minor units")
	assert.Contains(t, out, `class="balance-positive"`, "positive balance takes the ifCond main branch")
	assert.NotContains(t, out, `class="balance-negative"`)
	assert.Contains(t, out, "No float transactions in this period")
	assert.Contains(t, out, "No plan transactions in this period")
}

func TestRender_StatementDocument_EmptyContext(t *testing.T) {
	renderCtx := statement.Assemble(nil, "₦")

	out, err := NewRenderer("../../templates").Render("statement", renderCtx)

	assert.NoError(t, err, "a payload with no data must still render")
	assert.Contains(t, out, "No vault transactions in this period")
}
