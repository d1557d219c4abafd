package models

// Totals is the combined aggregate shown on /summary and streamed over /ws/totals.
type Totals struct {
	Energy   EnergyTotals `json:"energy"`
	TotalCO2 float64      `json:"total_co2"`
}
