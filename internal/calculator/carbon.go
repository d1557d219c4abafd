package calculator

// Known activities.
const (
	ActivityElectricity = "electricity"
	ActivityCar         = "car"
	ActivityFlight      = "flight"
)

// Units reported alongside an amount.
const (
	UnitKWh = "kWh"
	UnitKm  = "km"
)

// Default emission factors in kg CO2 per unit. The car value has been published as both
// 0.171 and 0.121; deployments set carbon.factors.car to choose deliberately.
const (
	DefaultElectricityFactor = 0.233
	DefaultCarFactor         = 0.171
	DefaultFlightFactor      = 0.255
)

// EmissionFactors maps an activity to kg CO2 per unit.
type EmissionFactors map[string]float64

// DefaultEmissionFactors returns a fresh copy of the built-in table.
func DefaultEmissionFactors() EmissionFactors {
	return EmissionFactors{
		ActivityElectricity: DefaultElectricityFactor,
		ActivityCar:         DefaultCarFactor,
		ActivityFlight:      DefaultFlightFactor,
	}
}

// Factor returns the factor for activity and whether the activity is known.
// Unknown activities yield zero.
func (f EmissionFactors) Factor(activity string) (float64, bool) {
	v, ok := f[activity]
	return v, ok
}

// CO2Kg estimates emissions for amount units of activity.
func (f EmissionFactors) CO2Kg(activity string, amount float64) float64 {
	factor, _ := f.Factor(activity)
	return Round2(amount * factor)
}

// UnitFor reports the unit an activity amount is measured in.
func UnitFor(activity string) string {
	if activity == ActivityElectricity {
		return UnitKWh
	}
	return UnitKm
}
