package models

import "time"

// EnergyRecord is a single appliance usage entry. MonthlyKWh is always DailyKWh*30.
type EnergyRecord struct {
	ID         int       `json:"id" db:"id"`
	Appliance  string    `json:"appliance" db:"appliance"`
	Watts      *float64  `json:"watts,omitempty" db:"watts"`
	Hours      *float64  `json:"hours,omitempty" db:"hours"`
	DailyKWh   float64   `json:"daily_kwh" db:"daily_kwh"`
	MonthlyKWh float64   `json:"monthly_kwh" db:"monthly_kwh"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// EnergyTotals are the column sums over every energy record.
type EnergyTotals struct {
	TotalDaily   float64 `json:"total_daily" db:"total_daily"`
	TotalMonthly float64 `json:"total_monthly" db:"total_monthly"`
}

type EnergyOverview struct {
	Records []EnergyRecord `json:"records"`
	Totals  EnergyTotals   `json:"totals"`
}
