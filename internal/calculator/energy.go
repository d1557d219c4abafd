// Package calculator holds the fixed formulas behind the energy and carbon calculators.
package calculator

import "math"

// DaysPerMonth is the projection window used for monthly usage.
const DaysPerMonth = 30

// Round2 rounds half away from zero to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// MonthlyKWh projects daily usage over a month.
func MonthlyKWh(dailyKWh float64) float64 {
	return Round2(dailyKWh * DaysPerMonth)
}

// DailyKWhFromWatts converts an appliance rating and daily run time into kWh per day.
func DailyKWhFromWatts(watts, hoursPerDay float64) float64 {
	return watts * hoursPerDay / 1000
}
