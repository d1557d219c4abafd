package service

import "strings"

// Form payloads. The `form` tags are read by gin binding, `validate` by the service.

type RegisterParams struct {
	Name     string `form:"name" label:"Name" validate:"required,max=100"`
	Email    string `form:"email" label:"Email" validate:"required,email,max=254"`
	Phone    string `form:"phone" label:"Phone" validate:"required,max=30"`
	Password string `form:"password" label:"Password" validate:"pwd"`
}

func (p *RegisterParams) normalize() {
	p.Name = strings.TrimSpace(p.Name)
	p.Email = normalizeEmail(p.Email)
	p.Phone = strings.TrimSpace(p.Phone)
}

type LoginParams struct {
	Email    string `form:"email" label:"Email" validate:"required"`
	Password string `form:"password" label:"Password" validate:"required"`
}

// EnergyParams takes either DailyKWh or Watts with HoursPerDay; DailyKWh wins.
type EnergyParams struct {
	Appliance   string  `form:"appliance" label:"Appliance" validate:"required,max=100"`
	DailyKWh    float64 `form:"daily_kwh" label:"Daily kWh" validate:"gte=0"`
	Watts       float64 `form:"watts" label:"Watts" validate:"gte=0"`
	HoursPerDay float64 `form:"hours_per_day" label:"Hours per day" validate:"gte=0,lte=24"`
}

type CarbonParams struct {
	Activity string  `form:"activity" label:"Activity" validate:"required,max=50"`
	Amount   float64 `form:"amount" label:"Amount" validate:"gt=0"`
}

type BookingParams struct {
	Service string `form:"service" label:"Service" validate:"required"`
	Date    string `form:"date" label:"Date" validate:"required,datetime=2006-01-02"`
	Time    string `form:"time" label:"Time" validate:"required,datetime=15:04"`
	Notes   string `form:"notes" label:"Notes" validate:"max=1000"`
}

func (p *BookingParams) normalize() {
	p.Service = strings.TrimSpace(p.Service)
	p.Date = strings.TrimSpace(p.Date)
	p.Time = strings.TrimSpace(p.Time)
	p.Notes = strings.TrimSpace(p.Notes)
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
