package models

// ConsumptionEntry is computed in memory between the calculator and the
// deduction engine; it is never persisted. Amount is always positive and is
// negated on deduction.
type ConsumptionEntry struct {
	ResourceName string `json:"resource_name"`
	Amount       int    `json:"amount"`
	Note         string `json:"note"`
}
