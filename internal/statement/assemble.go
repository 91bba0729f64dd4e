package statement

// Assemble builds the rendering context from the inbound payload's data
// object. A nil data object, and any absent field inside it, falls back
// to its default (empty map, empty history, undefined date) so
// rendering never depends on payload completeness. Each transaction
// category is normalized independently.
func Assemble(data *StatementData, currencySymbol string) RenderContext {
	if data == nil {
		data = &StatementData{}
	}

	userDetails := data.UserDetails
	if userDetails == nil {
		userDetails = map[string]any{}
	}

	accountDetails := data.AccountDetails
	if accountDetails == nil {
		accountDetails = map[string]any{}
	}

	return RenderContext{
		"userDetails":    userDetails,
		"accountDetails": accountDetails,
		"startDate":      data.StartDate,
		"endDate":        data.EndDate,
		"vault":          Normalize(data.VaultTransactions, currencySymbol),
		"float":          Normalize(data.FloatTransactions, currencySymbol),
		"plans":          Normalize(data.PlansTransactions, currencySymbol),
	}
}
