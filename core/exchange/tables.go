package exchange

// BeansToDiamonds is the platform's bean to diamond bundle table.
var BeansToDiamonds = []Tier{
	{Cost: 10999, Yield: 3045},
	{Cost: 3999, Yield: 1105},
	{Cost: 999, Yield: 275},
	{Cost: 109, Yield: 29},
	{Cost: 8, Yield: 2},
}

// DefaultTables are the exchange tables known without a tier file, by name.
func DefaultTables() map[string][]Tier {
	return map[string][]Tier{
		"beans_to_diamonds": append([]Tier(nil), BeansToDiamonds...),
	}
}
