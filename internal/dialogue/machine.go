package dialogue

import (
	"go.uber.org/zap"

	"nanoconsult/internal/models"
	"nanoconsult/internal/pricing"
	"nanoconsult/internal/validate"
)

// Validation ranges per step.
const (
	minEngineVolumeLiters = 0.6
	maxEngineVolumeLiters = 20.0

	minCylinders = 2
	maxCylinders = 16

	minEngineOilLiters = 2.0
	maxEngineOilLiters = 40.0
	minOtherOilLiters  = 0.3
	maxOtherOilLiters  = 60.0
)

// Machine advances consultation sessions. It holds no per-session state;
// the session value travels through Advance.
type Machine struct {
	engine *pricing.Engine
	logger *zap.Logger
}

// NewMachine returns a machine backed by the given pricing engine.
func NewMachine(engine *pricing.Engine, logger *zap.Logger) *Machine {
	return &Machine{engine: engine, logger: logger}
}

// Advance validates raw text against the session's current step. On
// rejection the session comes back unchanged with a re-prompt. On
// acceptance the answer is stored, the next step computed from the
// transition table, and either the next prompt or the completed outcome
// is returned.
func (m *Machine) Advance(s Session, raw string) (Session, Reply) {
	branch := branchOf(s.Answers.Aggregate)

	switch s.Step {
	case StepAggregate:
		aggregate, ok := models.ParseAggregateLabel(raw)
		if !ok {
			return s, rejectionFor(s.Step, branch)
		}
		s.Answers.Aggregate = aggregate

	case StepOverheat:
		if branch == BranchEngine {
			value, ok := validate.Choice(raw, overheatChoices)
			if !ok {
				return s, rejectionFor(s.Step, branch)
			}
			s.Answers.Overheat = value
		} else {
			value, ok := validate.Choice(raw, noOilChoices)
			if !ok {
				return s, rejectionFor(s.Step, branch)
			}
			s.Answers.NoOil = value
		}

	case StepRepair:
		if branch == BranchEngine {
			value, ok := validate.Choice(raw, repairChoices)
			if !ok {
				return s, rejectionFor(s.Step, branch)
			}
			s.Answers.Repair = value
		} else {
			value, ok := validate.Choice(raw, symptomsChoices)
			if !ok {
				return s, rejectionFor(s.Step, branch)
			}
			s.Answers.Symptoms = value
		}

	case StepOilConsumption:
		value, ok := validate.Choice(raw, oilConsumptionChoices)
		if !ok {
			return s, rejectionFor(s.Step, branch)
		}
		s.Answers.OilConsumption = value

	case StepSmoke:
		value, ok := validate.Choice(raw, smokeChoices)
		if !ok {
			return s, rejectionFor(s.Step, branch)
		}
		s.Answers.Smoke = value

	case StepEngineVolume:
		value, ok := validate.DecimalInRange(raw, minEngineVolumeLiters, maxEngineVolumeLiters)
		if !ok {
			return s, rejectionFor(s.Step, branch)
		}
		s.Answers.EngineVolume = &value

	case StepCylinders:
		value, ok := validate.IntInRange(raw, minCylinders, maxCylinders)
		if !ok {
			return s, rejectionFor(s.Step, branch)
		}
		s.Answers.Cylinders = &value

	case StepOilVolume:
		min, max := minOtherOilLiters, maxOtherOilLiters
		if branch == BranchEngine {
			min, max = minEngineOilLiters, maxEngineOilLiters
		}
		value, ok := validate.DecimalInRange(raw, min, max)
		if !ok {
			return s, rejectionFor(s.Step, branch)
		}
		s.Answers.OilVolume = &value

	case StepVehicleInfo:
		value, ok := validate.FreeText(raw)
		if !ok {
			return s, rejectionFor(s.Step, branch)
		}
		s.Answers.VehicleInfo = value

	case StepClientName:
		value, ok := validate.FreeText(raw)
		if !ok {
			return s, rejectionFor(s.Step, branch)
		}
		s.Answers.ClientName = value

	case StepClientContact:
		value, ok := validate.Contact(raw)
		if !ok {
			return s, rejectionFor(s.Step, branch)
		}
		s.Answers.ClientContact = value

	default:
		// Completed or unknown: nothing to advance, restart instead.
		return s, Greeting()
	}

	// Branch is known only after the aggregate answer is stored.
	branch = branchOf(s.Answers.Aggregate)
	s.Step = transitions[s.Step][branch]

	if s.Step == StepCompleted {
		return s, m.complete(s)
	}
	return s, promptFor(s.Step, branch)
}

// complete invokes the pricing engine. A computation failure is an
// operational error, never fatal to the dialogue: the outcome is emitted
// with absent quote fields.
func (m *Machine) complete(s Session) Reply {
	var quote *models.Quote
	computed, err := m.engine.ComputeQuote(
		s.Answers.Aggregate,
		s.Answers.EngineVolume,
		s.Answers.OilVolume,
		s.Answers.Cylinders,
	)
	if err != nil {
		m.logger.Error("quote computation failed",
			zap.Int64("chat_id", s.ChatID),
			zap.String("aggregate", string(s.Answers.Aggregate)),
			zap.Error(err))
	} else {
		quote = &computed
	}

	return Reply{Outcome: &Outcome{
		Answers:        s.Answers,
		Quote:          quote,
		Recommendation: pricing.Recommend(s.Answers),
	}}
}
