package operator

import (
	"strings"
	"testing"
	"time"

	"nanoconsult/internal/models"
)

func TestPrintableQuote(t *testing.T) {
	quote := &models.Quote{
		MaterialPriceToClient: 2840,
		LaborCost:             7000,
		TotalPriceToClient:    9840,
	}

	text := PrintableQuote(quote)
	for _, want := range []string{"Materials: 2840.00 RUB", "Labor: 7000.00 RUB", "TOTAL: 9840.00 RUB"} {
		if !strings.Contains(text, want) {
			t.Errorf("printable quote missing %q:\n%s", want, text)
		}
	}

	if PrintableQuote(nil) != "" {
		t.Errorf("expected empty printable quote without a quote")
	}
}

func TestRenderCardEngineBranch(t *testing.T) {
	ev, oil := 1.6, 4.0
	cyl := 4
	record := models.ApplicationRecord{
		ID:        "abc",
		ChatID:    11,
		Timestamp: time.Now().UTC(),
		Answers: models.Answers{
			Aggregate:      models.AggregateEngine,
			Overheat:       models.OverheatNo,
			Repair:         models.RepairNone,
			OilConsumption: models.OilConsumptionLow,
			Smoke:          models.SmokeNone,
			EngineVolume:   &ev,
			Cylinders:      &cyl,
			OilVolume:      &oil,
			VehicleInfo:    "Toyota Camry 2.4",
			ClientName:     "John Smith",
			ClientContact:  "@johnsmith",
		},
		Quote: &models.Quote{
			RVSMilliliters:         16,
			AcceleratorMilliliters: 10,
			MaterialCostInternal:   1420,
			MaterialPriceToClient:  2840,
			LaborCost:              7000,
			TotalPriceToClient:     9840,
			Profit:                 1420,
		},
		PrintableQuote: "estimate text",
	}

	card := RenderCard(record)
	for _, want := range []string{
		"John Smith",
		"@johnsmith",
		"Assembly: Engine",
		"Toyota Camry 2.4",
		"Overheating: No",
		"Oil consumption: Under 0.5 L / 1000 km",
		"RVS: 16.0 ml",
		"Net profit: 1420.00 RUB",
		"estimate text",
	} {
		if !strings.Contains(card, want) {
			t.Errorf("card missing %q:\n%s", want, card)
		}
	}

	// Fields of the other branch must not leak into the card.
	for _, banned := range []string{"Driven without oil", "Symptoms"} {
		if strings.Contains(card, banned) {
			t.Errorf("engine card must not contain %q", banned)
		}
	}
}

func TestRenderCardOtherBranch(t *testing.T) {
	oil := 8.0
	record := models.ApplicationRecord{
		Answers: models.Answers{
			Aggregate:     models.AggregateGearboxAuto,
			NoOil:         models.NoOilBriefly,
			Symptoms:      models.SymptomsMinor,
			OilVolume:     &oil,
			ClientName:    "Jane Doe",
			ClientContact: "89041234567",
		},
	}

	card := RenderCard(record)
	for _, want := range []string{"Assembly: Automatic gearbox", "Driven without oil: Briefly", "Symptoms: Minor"} {
		if !strings.Contains(card, want) {
			t.Errorf("card missing %q:\n%s", want, card)
		}
	}
	for _, banned := range []string{"Overheating", "Smoke", "Financials"} {
		if strings.Contains(card, banned) {
			t.Errorf("card must not contain %q without the matching data:\n%s", banned, card)
		}
	}
}
