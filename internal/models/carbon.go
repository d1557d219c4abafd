package models

import "time"

type CarbonRecord struct {
	ID        int       `json:"id" db:"id"`
	Activity  string    `json:"activity" db:"activity"` // electricity | car | flight
	Amount    float64   `json:"amount" db:"amount"`
	Unit      string    `json:"unit" db:"unit"` // kWh | km
	CO2Kg     float64   `json:"co2_kg" db:"co2_kg"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type CarbonOverview struct {
	Records  []CarbonRecord `json:"records"`
	TotalCO2 float64        `json:"total_co2"`
}
