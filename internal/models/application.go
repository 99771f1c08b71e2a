package models

import "time"

// AggregateType identifies the mechanical assembly the consultation is about.
type AggregateType string

const (
	AggregateEngine        AggregateType = "engine"
	AggregateGearboxManual AggregateType = "gearbox-manual"
	AggregateGearboxAuto   AggregateType = "gearbox-auto"
	AggregateCVT           AggregateType = "cvt"
	AggregatePowerSteering AggregateType = "power-steering"
)

// IsEngine reports whether the engine question branch applies.
func (a AggregateType) IsEngine() bool {
	return a == AggregateEngine
}

// Label returns the keyboard label shown to the user.
func (a AggregateType) Label() string {
	switch a {
	case AggregateEngine:
		return "Engine"
	case AggregateGearboxManual:
		return "Manual gearbox"
	case AggregateGearboxAuto:
		return "Automatic gearbox"
	case AggregateCVT:
		return "CVT"
	case AggregatePowerSteering:
		return "Power steering"
	}
	return string(a)
}

// AggregateLabels lists keyboard labels in presentation order.
func AggregateLabels() []string {
	return []string{
		AggregateEngine.Label(),
		AggregateGearboxManual.Label(),
		AggregateGearboxAuto.Label(),
		AggregateCVT.Label(),
		AggregatePowerSteering.Label(),
	}
}

// ParseAggregateLabel maps a keyboard label back to its aggregate type.
// The match is exact, no normalization.
func ParseAggregateLabel(label string) (AggregateType, bool) {
	for _, a := range []AggregateType{
		AggregateEngine,
		AggregateGearboxManual,
		AggregateGearboxAuto,
		AggregateCVT,
		AggregatePowerSteering,
	} {
		if a.Label() == label {
			return a, true
		}
	}
	return "", false
}

// Answers accumulates validated questionnaire input. Fields that belong to
// the branch that was not taken stay at their zero value.
type Answers struct {
	Aggregate      AggregateType `json:"aggregate"`
	Overheat       string        `json:"overheat,omitempty"`
	NoOil          string        `json:"no_oil,omitempty"`
	Repair         string        `json:"repair,omitempty"`
	Symptoms       string        `json:"symptoms,omitempty"`
	OilConsumption string        `json:"oil_consumption,omitempty"`
	Smoke          string        `json:"smoke,omitempty"`
	EngineVolume   *float64      `json:"engine_volume,omitempty"`
	Cylinders      *int          `json:"cylinders,omitempty"`
	OilVolume      *float64      `json:"oil_volume,omitempty"`
	VehicleInfo    string        `json:"vehicle_info,omitempty"`
	ClientName     string        `json:"client_name,omitempty"`
	ClientContact  string        `json:"client_contact,omitempty"`
}

// Quote is the derived cost breakdown. Immutable once computed.
type Quote struct {
	RVSMilliliters         float64 `json:"rvs_ml"`
	AcceleratorMilliliters float64 `json:"accel_ml"`
	MaterialCostInternal   float64 `json:"material_cost"`
	MaterialPriceToClient  float64 `json:"material_price_client"`
	LaborCost              float64 `json:"work_cost"`
	TotalPriceToClient     float64 `json:"total_price_client"`
	Profit                 float64 `json:"profit"`
}

// Verdict is the eligibility outcome.
type Verdict string

const (
	VerdictEligible       Verdict = "eligible"
	VerdictNotRecommended Verdict = "not-recommended"
)

// Recommendation carries the verdict and the rationale category that
// produced it.
type Recommendation struct {
	Verdict   Verdict `json:"verdict"`
	Rationale string  `json:"rationale"`
}

// ApplicationRecord is the terminal artifact of a completed consultation,
// handed to persistence and operator notification.
type ApplicationRecord struct {
	ID             string         `json:"id"`
	ChatID         int64          `json:"chat_id"`
	Timestamp      time.Time      `json:"timestamp"`
	Answers        Answers        `json:"answers"`
	Quote          *Quote         `json:"quote,omitempty"`
	Recommendation Recommendation `json:"recommendation"`
	PrintableQuote string         `json:"printable_quote,omitempty"`
}
