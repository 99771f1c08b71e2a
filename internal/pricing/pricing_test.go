package pricing

import (
	"testing"

	"nanoconsult/internal/models"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestComputeQuoteEngineDefaults(t *testing.T) {
	engine := NewEngine(DefaultParams())

	quote, err := engine.ComputeQuote(models.AggregateEngine, floatPtr(1.6), floatPtr(4.0), intPtr(4))
	if err != nil {
		t.Fatalf("compute quote: %v", err)
	}

	if quote.RVSMilliliters != 16.0 {
		t.Errorf("expected 16.0 ml RVS, got %v", quote.RVSMilliliters)
	}
	if quote.AcceleratorMilliliters != 10.0 {
		t.Errorf("expected 10.0 ml accelerator, got %v", quote.AcceleratorMilliliters)
	}
	if quote.MaterialCostInternal != 1420.0 {
		t.Errorf("expected material cost 1420.0, got %v", quote.MaterialCostInternal)
	}
	if quote.MaterialPriceToClient != 2840.0 {
		t.Errorf("expected client material price 2840.0, got %v", quote.MaterialPriceToClient)
	}
	if quote.LaborCost != 7000.0 {
		t.Errorf("expected labor 7000.0, got %v", quote.LaborCost)
	}
	if quote.TotalPriceToClient != 9840.0 {
		t.Errorf("expected total 9840.0, got %v", quote.TotalPriceToClient)
	}
	if quote.Profit != 1420.0 {
		t.Errorf("expected profit 1420.0, got %v", quote.Profit)
	}
}

func TestComputeQuoteInvariants(t *testing.T) {
	engine := NewEngine(DefaultParams())

	quote, err := engine.ComputeQuote(models.AggregateGearboxAuto, nil, floatPtr(8.0), nil)
	if err != nil {
		t.Fatalf("compute quote: %v", err)
	}
	if got := quote.MaterialPriceToClient + quote.LaborCost; got != quote.TotalPriceToClient {
		t.Errorf("total invariant broken: %v + %v != %v", quote.MaterialPriceToClient, quote.LaborCost, quote.TotalPriceToClient)
	}
	if got := quote.TotalPriceToClient - (quote.MaterialCostInternal + quote.LaborCost); got != quote.Profit {
		t.Errorf("profit invariant broken: got %v, want %v", got, quote.Profit)
	}
}

func TestComputeQuoteOtherAggregateFixedMultipliers(t *testing.T) {
	params := DefaultParams()
	// Dose constants must not influence the non-engine path.
	params.RVSDosePerLiterEngine = 99
	params.AccelDosePerLiterOil = 99
	engine := NewEngine(params)

	quote, err := engine.ComputeQuote(models.AggregateGearboxManual, nil, floatPtr(4.0), nil)
	if err != nil {
		t.Fatalf("compute quote: %v", err)
	}
	if quote.RVSMilliliters != 20.0 {
		t.Errorf("expected 20.0 ml RVS (4 * 5), got %v", quote.RVSMilliliters)
	}
	if quote.AcceleratorMilliliters != 10.0 {
		t.Errorf("expected 10.0 ml accelerator (4 * 2.5), got %v", quote.AcceleratorMilliliters)
	}
	if quote.LaborCost != 5000.0 {
		t.Errorf("expected base labor 5000.0, got %v", quote.LaborCost)
	}
}

func TestComputeQuoteAbsentOilVolume(t *testing.T) {
	engine := NewEngine(DefaultParams())

	quote, err := engine.ComputeQuote(models.AggregatePowerSteering, nil, nil, nil)
	if err != nil {
		t.Fatalf("compute quote: %v", err)
	}
	if quote.RVSMilliliters != 0 || quote.AcceleratorMilliliters != 0 {
		t.Errorf("expected zero dosages without oil volume, got %v and %v", quote.RVSMilliliters, quote.AcceleratorMilliliters)
	}
	if quote.MaterialCostInternal != 0 {
		t.Errorf("expected zero material cost, got %v", quote.MaterialCostInternal)
	}
}

func TestComputeQuoteTwoCylinderOverride(t *testing.T) {
	engine := NewEngine(DefaultParams())

	quote, err := engine.ComputeQuote(models.AggregateEngine, floatPtr(1.0), floatPtr(3.0), intPtr(2))
	if err != nil {
		t.Fatalf("compute quote: %v", err)
	}
	if quote.LaborCost != 3000.0 {
		t.Errorf("expected flat 3000.0 labor for two cylinders, got %v", quote.LaborCost)
	}
}

func TestComputeQuoteHeavyEngineMultiplier(t *testing.T) {
	engine := NewEngine(DefaultParams())

	quote, err := engine.ComputeQuote(models.AggregateEngine, floatPtr(9.0), floatPtr(30.0), intPtr(6))
	if err != nil {
		t.Fatalf("compute quote: %v", err)
	}
	// (3000 base + 1000 * 6) * 1.5
	if quote.LaborCost != 13500.0 {
		t.Errorf("expected labor 13500.0 with heavy-engine multiplier, got %v", quote.LaborCost)
	}
}

func TestComputeQuoteThresholdIsInclusive(t *testing.T) {
	engine := NewEngine(DefaultParams())

	quote, err := engine.ComputeQuote(models.AggregateEngine, floatPtr(8.0), floatPtr(20.0), intPtr(4))
	if err != nil {
		t.Fatalf("compute quote: %v", err)
	}
	if quote.LaborCost != 10500.0 {
		t.Errorf("expected multiplier to apply at exactly 8.0 liters, got labor %v", quote.LaborCost)
	}
}

func TestComputeQuoteDefaultsCylinderCount(t *testing.T) {
	engine := NewEngine(DefaultParams())

	quote, err := engine.ComputeQuote(models.AggregateEngine, floatPtr(2.0), floatPtr(4.0), nil)
	if err != nil {
		t.Fatalf("compute quote: %v", err)
	}
	if quote.LaborCost != 7000.0 {
		t.Errorf("expected labor for defaulted 4 cylinders, got %v", quote.LaborCost)
	}
}

func TestComputeQuoteUnknownAggregate(t *testing.T) {
	engine := NewEngine(DefaultParams())

	if _, err := engine.ComputeQuote(models.AggregateType("turbine"), nil, floatPtr(4.0), nil); err == nil {
		t.Fatalf("expected error for aggregate outside the labor table")
	}
}

func TestRecommendEngineConjunction(t *testing.T) {
	worst := models.Answers{
		Aggregate:      models.AggregateEngine,
		Overheat:       models.OverheatSevere,
		OilConsumption: models.OilConsumptionHigh,
		Smoke:          models.SmokeBlue,
	}

	if rec := Recommend(worst); rec.Verdict != models.VerdictNotRecommended {
		t.Fatalf("expected not-recommended for the worst-case combination, got %s", rec.Verdict)
	}

	// Relaxing any single condition must flip the verdict.
	relaxed := []func(a models.Answers) models.Answers{
		func(a models.Answers) models.Answers { a.Overheat = models.OverheatBrief; return a },
		func(a models.Answers) models.Answers { a.OilConsumption = models.OilConsumptionMid; return a },
		func(a models.Answers) models.Answers { a.Smoke = models.SmokeWhite; return a },
	}
	for i, relax := range relaxed {
		if rec := Recommend(relax(worst)); rec.Verdict != models.VerdictEligible {
			t.Errorf("case %d: expected eligible after relaxing one condition, got %s", i, rec.Verdict)
		}
	}
}

func TestRecommendOtherAggregateConjunction(t *testing.T) {
	worst := models.Answers{
		Aggregate: models.AggregateCVT,
		NoOil:     models.NoOilLong,
		Symptoms:  models.SymptomsSevere,
	}

	if rec := Recommend(worst); rec.Verdict != models.VerdictNotRecommended {
		t.Fatalf("expected not-recommended, got %s", rec.Verdict)
	}

	single := worst
	single.Symptoms = models.SymptomsMinor
	if rec := Recommend(single); rec.Verdict != models.VerdictEligible {
		t.Errorf("expected eligible with only one red flag, got %s", rec.Verdict)
	}

	single = worst
	single.NoOil = models.NoOilBriefly
	if rec := Recommend(single); rec.Verdict != models.VerdictEligible {
		t.Errorf("expected eligible with only one red flag, got %s", rec.Verdict)
	}
}

func TestRecommendEngineIgnoresOtherBranchFields(t *testing.T) {
	answers := models.Answers{
		Aggregate: models.AggregateEngine,
		Overheat:  models.OverheatNo,
		// Worst-case fields of the branch that was never taken.
		NoOil:    models.NoOilLong,
		Symptoms: models.SymptomsSevere,
	}
	if rec := Recommend(answers); rec.Verdict != models.VerdictEligible {
		t.Fatalf("engine verdict must only consider engine-branch fields, got %s", rec.Verdict)
	}
}
