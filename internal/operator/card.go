// Package operator renders application summaries for the human operator
// and delivers them over the notification channels.
package operator

import (
	"fmt"
	"strings"

	"nanoconsult/internal/models"
)

// PrintableQuote builds the client-facing price block: three lines of
// figures wrapped in a fixed preamble and disclaimer. Empty when the
// quote is absent.
func PrintableQuote(q *models.Quote) string {
	if q == nil {
		return ""
	}
	return "Preliminary NANOREM treatment cost estimate:\n\n" +
		fmt.Sprintf("Materials: %.2f RUB\n", q.MaterialPriceToClient) +
		fmt.Sprintf("Labor: %.2f RUB\n", q.LaborCost) +
		fmt.Sprintf("TOTAL: %.2f RUB\n\n", q.TotalPriceToClient) +
		"This estimate is preliminary; the final cost may be adjusted " +
		"after diagnostics and inspection."
}

// RenderCard assembles the fixed-layout operator card: identity,
// assembly, the answers of the branch that was actually taken, material
// quantities and the financial breakdown.
func RenderCard(record models.ApplicationRecord) string {
	a := record.Answers

	lines := []string{
		"📝 New client application",
		"",
		fmt.Sprintf("👤 Name: %s", orDash(a.ClientName)),
		fmt.Sprintf("📞 Contact: %s", orDash(a.ClientContact)),
		fmt.Sprintf("🔧 Assembly: %s", a.Aggregate.Label()),
	}

	if a.VehicleInfo != "" {
		lines = append(lines, fmt.Sprintf("🚗 Vehicle: %s", a.VehicleInfo))
	}

	lines = append(lines, "")

	if a.EngineVolume != nil {
		lines = append(lines, fmt.Sprintf("⚙️ Engine displacement: %v L", *a.EngineVolume))
	}
	if a.OilVolume != nil {
		lines = append(lines, fmt.Sprintf("🛢️ Oil volume: %v L", *a.OilVolume))
	}

	if a.Aggregate.IsEngine() {
		if a.Overheat != "" {
			lines = append(lines, fmt.Sprintf("🌡️ Overheating: %s", a.Overheat))
		}
		if a.Repair != "" {
			lines = append(lines, fmt.Sprintf("🔨 Repair: %s", a.Repair))
		}
		if a.OilConsumption != "" {
			lines = append(lines, fmt.Sprintf("📊 Oil consumption: %s", a.OilConsumption))
		}
		if a.Smoke != "" {
			lines = append(lines, fmt.Sprintf("💨 Smoke: %s", a.Smoke))
		}
	} else {
		if a.NoOil != "" {
			lines = append(lines, fmt.Sprintf("⛽ Driven without oil: %s", a.NoOil))
		}
		if a.Symptoms != "" {
			lines = append(lines, fmt.Sprintf("🔊 Symptoms: %s", a.Symptoms))
		}
	}

	if q := record.Quote; q != nil {
		lines = append(lines,
			"",
			"🧪 Materials:",
			fmt.Sprintf(" • RVS: %.1f ml", q.RVSMilliliters),
			fmt.Sprintf(" • Accelerator: %.1f ml", q.AcceleratorMilliliters),
			"",
			"💰 Financials:",
			fmt.Sprintf(" • Material cost: %.2f RUB", q.MaterialCostInternal),
			fmt.Sprintf(" • Material price to client: %.2f RUB", q.MaterialPriceToClient),
			fmt.Sprintf(" • Labor: %.2f RUB", q.LaborCost),
			fmt.Sprintf(" • TOTAL for client: %.2f RUB", q.TotalPriceToClient),
			fmt.Sprintf(" • Net profit: %.2f RUB", q.Profit),
		)
	}

	if record.PrintableQuote != "" {
		lines = append(lines, "", "📄 Text for the client:", record.PrintableQuote)
	}

	return strings.Join(lines, "\n")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
