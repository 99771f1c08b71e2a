// Package pricing derives material dosages, cost breakdown and the
// eligibility verdict from a completed consultation. Everything here is a
// pure function of its inputs; configuration is injected once as Params.
package pricing

import (
	"fmt"

	"nanoconsult/internal/models"
)

// Fixed dosage multipliers for the non-engine path. These are part of the
// dosage rule itself, not tunable dose constants.
const (
	otherRVSDosePerLiterOil   = 5.0
	otherAccelDosePerLiterOil = 2.5
)

// Flat labor price for two-cylinder engines, overriding the per-cylinder
// formula entirely.
const twoCylinderFlatLabor = 3000.0

const defaultCylinderCount = 4

// Params holds every tunable coefficient of the engine. Constructed once
// at startup from configuration and never re-read mid-computation.
type Params struct {
	RVSPricePerML              float64
	AccelPricePerML            float64
	MarkupCoefficient          float64
	RVSDosePerLiterEngine      float64
	AccelDosePerLiterOil       float64
	LaborPerCylinder           float64
	BaseLaborCost              map[models.AggregateType]float64
	HeavyEngineThresholdLiters float64
	HeavyEngineCoefficient     float64
}

// DefaultParams returns the stock coefficient set.
func DefaultParams() Params {
	return Params{
		RVSPricePerML:         70,
		AccelPricePerML:       30,
		MarkupCoefficient:     2.0,
		RVSDosePerLiterEngine: 10.0,
		AccelDosePerLiterOil:  2.5,
		LaborPerCylinder:      1000,
		BaseLaborCost: map[models.AggregateType]float64{
			models.AggregateEngine:        3000,
			models.AggregateGearboxManual: 5000,
			models.AggregateGearboxAuto:   6000,
			models.AggregateCVT:           6500,
			models.AggregatePowerSteering: 3000,
		},
		HeavyEngineThresholdLiters: 8.0,
		HeavyEngineCoefficient:     1.5,
	}
}

// Engine computes quotes with a fixed Params set.
type Engine struct {
	params Params
}

// NewEngine returns a pricing engine bound to params.
func NewEngine(params Params) *Engine {
	return &Engine{params: params}
}

// ComputeQuote turns collected volumes and cylinder count into the full
// cost breakdown. Branch-only inputs are nil when the branch never asked
// for them.
func (e *Engine) ComputeQuote(aggregate models.AggregateType, engineVolume *float64, oilVolume *float64, cylinders *int) (models.Quote, error) {
	baseLabor, ok := e.params.BaseLaborCost[aggregate]
	if !ok {
		return models.Quote{}, fmt.Errorf("pricing: no base labor cost for aggregate %q", aggregate)
	}

	var rvsML, accelML float64
	switch {
	case aggregate.IsEngine() && engineVolume != nil && oilVolume != nil:
		rvsML = *engineVolume * e.params.RVSDosePerLiterEngine
		accelML = *oilVolume * e.params.AccelDosePerLiterOil
	case oilVolume != nil:
		rvsML = *oilVolume * otherRVSDosePerLiterOil
		accelML = *oilVolume * otherAccelDosePerLiterOil
	}

	materialCost := rvsML*e.params.RVSPricePerML + accelML*e.params.AccelPricePerML

	laborCost := baseLabor
	if aggregate.IsEngine() {
		cyl := defaultCylinderCount
		if cylinders != nil {
			cyl = *cylinders
		}
		if cyl == 2 {
			laborCost = twoCylinderFlatLabor
		} else {
			laborCost = baseLabor + e.params.LaborPerCylinder*float64(cyl)
		}
		if engineVolume != nil && *engineVolume >= e.params.HeavyEngineThresholdLiters {
			laborCost *= e.params.HeavyEngineCoefficient
		}
	}

	materialPriceClient := materialCost * e.params.MarkupCoefficient
	totalPriceClient := materialPriceClient + laborCost
	profit := totalPriceClient - (materialCost + laborCost)

	return models.Quote{
		RVSMilliliters:         rvsML,
		AcceleratorMilliliters: accelML,
		MaterialCostInternal:   materialCost,
		MaterialPriceToClient:  materialPriceClient,
		LaborCost:              laborCost,
		TotalPriceToClient:     totalPriceClient,
		Profit:                 profit,
	}, nil
}

// Rationale categories reported with the verdict.
const (
	RationaleClear            = "no-disqualifying-combination"
	RationaleEngineWornOut    = "severe-overheat-high-consumption-blue-smoke"
	RationaleAggregateWornOut = "prolonged-oil-starvation-severe-symptoms"
)

// Recommend applies the conjunctive eligibility rule: every worst-case
// answer of the taken branch must co-occur for a rejection, a single red
// flag is never sufficient.
func Recommend(answers models.Answers) models.Recommendation {
	if answers.Aggregate.IsEngine() {
		if answers.Overheat == models.OverheatSevere &&
			answers.OilConsumption == models.OilConsumptionHigh &&
			answers.Smoke == models.SmokeBlue {
			return models.Recommendation{Verdict: models.VerdictNotRecommended, Rationale: RationaleEngineWornOut}
		}
		return models.Recommendation{Verdict: models.VerdictEligible, Rationale: RationaleClear}
	}
	if answers.NoOil == models.NoOilLong && answers.Symptoms == models.SymptomsSevere {
		return models.Recommendation{Verdict: models.VerdictNotRecommended, Rationale: RationaleAggregateWornOut}
	}
	return models.Recommendation{Verdict: models.VerdictEligible, Rationale: RationaleClear}
}
