package documents

// TaxOption is a selectable sales-tax preset for the invoice form.
type TaxOption struct {
	Label string  `json:"label"`
	Value string  `json:"value"`
	Rate  float64 `json:"rate"`
}

// TaxOptions lists state-level US sales tax presets (2024 rates; local
// taxes vary and are out of scope).
var TaxOptions = []TaxOption{
	{Label: "No Tax (0%)", Value: "none", Rate: 0},
	{Label: "Custom Rate", Value: "custom", Rate: 0},
	{Label: "Alabama (4%)", Value: "AL", Rate: 4},
	{Label: "Alaska (0%)", Value: "AK", Rate: 0},
	{Label: "Arizona (5.6%)", Value: "AZ", Rate: 5.6},
	{Label: "Arkansas (6.5%)", Value: "AR", Rate: 6.5},
	{Label: "California (7.25%)", Value: "CA", Rate: 7.25},
	{Label: "Colorado (2.9%)", Value: "CO", Rate: 2.9},
	{Label: "Connecticut (6.35%)", Value: "CT", Rate: 6.35},
	{Label: "Delaware (0%)", Value: "DE", Rate: 0},
	{Label: "Florida (6%)", Value: "FL", Rate: 6},
	{Label: "Georgia (4%)", Value: "GA", Rate: 4},
	{Label: "Hawaii (4%)", Value: "HI", Rate: 4},
	{Label: "Idaho (6%)", Value: "ID", Rate: 6},
	{Label: "Illinois (6.25%)", Value: "IL", Rate: 6.25},
	{Label: "Indiana (7%)", Value: "IN", Rate: 7},
	{Label: "Iowa (6%)", Value: "IA", Rate: 6},
	{Label: "Kansas (6.5%)", Value: "KS", Rate: 6.5},
	{Label: "Kentucky (6%)", Value: "KY", Rate: 6},
	{Label: "Louisiana (4.45%)", Value: "LA", Rate: 4.45},
	{Label: "Maine (5.5%)", Value: "ME", Rate: 5.5},
	{Label: "Maryland (6%)", Value: "MD", Rate: 6},
	{Label: "Massachusetts (6.25%)", Value: "MA", Rate: 6.25},
	{Label: "Michigan (6%)", Value: "MI", Rate: 6},
	{Label: "Minnesota (6.875%)", Value: "MN", Rate: 6.875},
	{Label: "Mississippi (7%)", Value: "MS", Rate: 7},
	{Label: "Missouri (4.225%)", Value: "MO", Rate: 4.225},
	{Label: "Montana (0%)", Value: "MT", Rate: 0},
	{Label: "Nebraska (5.5%)", Value: "NE", Rate: 5.5},
	{Label: "Nevada (6.85%)", Value: "NV", Rate: 6.85},
	{Label: "New Hampshire (0%)", Value: "NH", Rate: 0},
	{Label: "New Jersey (6.625%)", Value: "NJ", Rate: 6.625},
	{Label: "New Mexico (4.875%)", Value: "NM", Rate: 4.875},
	{Label: "New York (4%)", Value: "NY", Rate: 4},
	{Label: "North Carolina (4.75%)", Value: "NC", Rate: 4.75},
	{Label: "North Dakota (5%)", Value: "ND", Rate: 5},
	{Label: "Ohio (5.75%)", Value: "OH", Rate: 5.75},
	{Label: "Oklahoma (4.5%)", Value: "OK", Rate: 4.5},
	{Label: "Oregon (0%)", Value: "OR", Rate: 0},
	{Label: "Pennsylvania (6%)", Value: "PA", Rate: 6},
	{Label: "Rhode Island (7%)", Value: "RI", Rate: 7},
	{Label: "South Carolina (6%)", Value: "SC", Rate: 6},
	{Label: "South Dakota (4.5%)", Value: "SD", Rate: 4.5},
	{Label: "Tennessee (7%)", Value: "TN", Rate: 7},
	{Label: "Texas (6.25%)", Value: "TX", Rate: 6.25},
	{Label: "Utah (6.1%)", Value: "UT", Rate: 6.1},
	{Label: "Vermont (6%)", Value: "VT", Rate: 6},
	{Label: "Virginia (5.3%)", Value: "VA", Rate: 5.3},
	{Label: "Washington (6.5%)", Value: "WA", Rate: 6.5},
	{Label: "West Virginia (6%)", Value: "WV", Rate: 6},
	{Label: "Wisconsin (5%)", Value: "WI", Rate: 5},
	{Label: "Wyoming (4%)", Value: "WY", Rate: 4},
	{Label: "Washington D.C. (6%)", Value: "DC", Rate: 6},
}

// TaxRateForState returns the preset rate for a state code, or 0 when the
// code is unknown.
func TaxRateForState(value string) float64 {
	for _, opt := range TaxOptions {
		if opt.Value == value {
			return opt.Rate
		}
	}
	return 0
}
