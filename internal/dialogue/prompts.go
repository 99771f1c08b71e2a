package dialogue

import "nanoconsult/internal/models"

// Reply is what a dialogue turn produces: either the next prompt (with
// keyboard choices for enumerated steps) or, on the final turn, a
// completed outcome.
type Reply struct {
	Text    string
	Choices []string
	Outcome *Outcome
}

// Outcome carries the terminal result of a completed consultation.
type Outcome struct {
	Answers        models.Answers
	Quote          *models.Quote
	Recommendation models.Recommendation
}

const greetingText = "Hello!\n" +
	"I am the virtual NANOREM assistant for automotive treatment products.\n" +
	"First, choose the assembly you would like to have treated with NANOREM.\n\n" +
	"Choose an assembly:"

const (
	chooseFromKeyboard = "Please choose one of the options on the keyboard."

	engineIntro = "I will ask a few questions to find out whether NANOREM engine treatment is suitable.\n\n" +
		"Has the engine ever overheated?"
	otherIntro = "I will ask a few questions to find out whether NANOREM treatment is suitable " +
		"for the selected assembly.\n\n" +
		"Have you ever driven without oil, or with a very low oil level, in this assembly?"

	engineRepairQuestion = "Was the engine repaired after the overheating?"
	otherSymptomsQuestion = "Are there any unusual noises, vibrations or jerks in the operation of this assembly?"

	oilConsumptionQuestion = "What is the oil consumption?"
	smokeQuestion          = "Is there smoke from the exhaust pipe?"

	engineVolumeQuestion = "Enter the engine displacement in liters (for example: 1.6)"
	cylindersQuestion    = "Enter the number of cylinders in the engine (for example: 4)"

	engineOilVolumeQuestion = "Enter the oil volume in the engine (for example: 4)"
	otherOilVolumeQuestion  = "Enter the oil volume in the assembly (for example: 4)"

	vehicleInfoQuestion = "Enter the make and model of your vehicle (for example: Toyota Camry 2.4)."
	clientNameQuestion  = "Thank you. Now please enter your full name."
	contactQuestion     = "Enter a phone number or a @username we can reach you at."

	engineVolumeHint = "Please enter a valid engine displacement in liters, for example: 1.6\n" +
		"Allowed range: 0.6 to 20.0 L."
	cylindersHint = "Please enter a realistic cylinder count as digits, from 2 to 16, for example: 4."
	engineOilVolumeHint = "Please enter a valid oil volume in the engine, for example: 4\n" +
		"Allowed range: 2 to 40 L."
	otherOilVolumeHint = "Please enter a valid oil volume in the assembly, for example: 4\n" +
		"Allowed range: 0.3 to 60 L."
	vehicleInfoHint = "Please enter the full make and model, for example: MAN TGS 18.440."
	clientNameHint  = "Please enter your full name (at least 2 characters)."
	contactHint = "Please enter a valid phone number " +
		"(for example: +79041234567 or 89041234567) " +
		"or a valid @username."
)

var (
	overheatChoices       = []string{models.OverheatNo, models.OverheatBrief, models.OverheatSevere, models.OverheatUnknown}
	noOilChoices          = []string{models.NoOilNo, models.NoOilBriefly, models.NoOilLong, models.NoOilUnknown}
	repairChoices         = []string{models.RepairNone, models.RepairPartial, models.RepairOverhaul, models.RepairUnknown}
	symptomsChoices       = []string{models.SymptomsNone, models.SymptomsMinor, models.SymptomsSevere, models.SymptomsUnknown}
	oilConsumptionChoices = []string{models.OilConsumptionLow, models.OilConsumptionMid, models.OilConsumptionHigh}
	smokeChoices          = []string{models.SmokeNone, models.SmokeBlue, models.SmokeWhite, models.SmokeBlack}
)

// Greeting is the /start prompt: greeting text plus the aggregate keyboard.
func Greeting() Reply {
	return Reply{Text: greetingText, Choices: models.AggregateLabels()}
}

// promptFor returns the question for a step on a branch. The overheat and
// repair steps carry branch-specific wording and choice sets; the graph
// shape is identical.
func promptFor(step Step, branch Branch) Reply {
	switch step {
	case StepAggregate:
		return Greeting()
	case StepOverheat:
		if branch == BranchEngine {
			return Reply{Text: engineIntro, Choices: overheatChoices}
		}
		return Reply{Text: otherIntro, Choices: noOilChoices}
	case StepRepair:
		if branch == BranchEngine {
			return Reply{Text: engineRepairQuestion, Choices: repairChoices}
		}
		return Reply{Text: otherSymptomsQuestion, Choices: symptomsChoices}
	case StepOilConsumption:
		return Reply{Text: oilConsumptionQuestion, Choices: oilConsumptionChoices}
	case StepSmoke:
		return Reply{Text: smokeQuestion, Choices: smokeChoices}
	case StepEngineVolume:
		return Reply{Text: engineVolumeQuestion}
	case StepCylinders:
		return Reply{Text: cylindersQuestion}
	case StepOilVolume:
		if branch == BranchEngine {
			return Reply{Text: engineOilVolumeQuestion}
		}
		return Reply{Text: otherOilVolumeQuestion}
	case StepVehicleInfo:
		return Reply{Text: vehicleInfoQuestion}
	case StepClientName:
		return Reply{Text: clientNameQuestion}
	case StepClientContact:
		return Reply{Text: contactQuestion}
	}
	return Reply{}
}

// rejectionFor re-issues the step's prompt with a format hint. Choice
// steps keep their keyboard so the user can simply tap again.
func rejectionFor(step Step, branch Branch) Reply {
	switch step {
	case StepAggregate:
		return Reply{Text: chooseFromKeyboard, Choices: models.AggregateLabels()}
	case StepOverheat:
		if branch == BranchEngine {
			return Reply{Text: chooseFromKeyboard, Choices: overheatChoices}
		}
		return Reply{Text: chooseFromKeyboard, Choices: noOilChoices}
	case StepRepair:
		if branch == BranchEngine {
			return Reply{Text: chooseFromKeyboard, Choices: repairChoices}
		}
		return Reply{Text: chooseFromKeyboard, Choices: symptomsChoices}
	case StepOilConsumption:
		return Reply{Text: chooseFromKeyboard, Choices: oilConsumptionChoices}
	case StepSmoke:
		return Reply{Text: chooseFromKeyboard, Choices: smokeChoices}
	case StepEngineVolume:
		return Reply{Text: engineVolumeHint}
	case StepCylinders:
		return Reply{Text: cylindersHint}
	case StepOilVolume:
		if branch == BranchEngine {
			return Reply{Text: engineOilVolumeHint}
		}
		return Reply{Text: otherOilVolumeHint}
	case StepVehicleInfo:
		return Reply{Text: vehicleInfoHint}
	case StepClientName:
		return Reply{Text: clientNameHint}
	case StepClientContact:
		return Reply{Text: contactHint}
	}
	return Reply{}
}
