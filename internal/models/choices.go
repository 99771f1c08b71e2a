package models

// Enumerated answer literals, exactly as presented on the reply keyboards.
// Validation matches against these verbatim.
const (
	OverheatNo      = "No"
	OverheatBrief   = "Brief overheating"
	OverheatSevere  = "Yes, severe"
	OverheatUnknown = "Don't know"

	NoOilNo      = "No"
	NoOilBriefly = "Briefly"
	NoOilLong    = "Yes, for a long time"
	NoOilUnknown = "Don't know"

	RepairNone     = "No"
	RepairPartial  = "Partial repair"
	RepairOverhaul = "Full overhaul"
	RepairUnknown  = "Don't know"

	SymptomsNone    = "No"
	SymptomsMinor   = "Minor"
	SymptomsSevere  = "Severe"
	SymptomsUnknown = "Don't know"

	OilConsumptionLow  = "Under 0.5 L / 1000 km"
	OilConsumptionMid  = "0.5-1 L / 1000 km"
	OilConsumptionHigh = "Over 1 L / 1000 km"

	SmokeNone  = "None"
	SmokeBlue  = "Blue"
	SmokeWhite = "White"
	SmokeBlack = "Black"
)
