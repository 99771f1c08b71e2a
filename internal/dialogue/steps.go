// Package dialogue implements the consultation state machine: an explicit
// step enum with an immutable transition table keyed by (step, branch).
package dialogue

import "nanoconsult/internal/models"

// Step is the dialogue state: the question the session is waiting on.
type Step int

const (
	StepAggregate Step = iota
	StepOverheat
	StepRepair
	StepOilConsumption
	StepSmoke
	StepEngineVolume
	StepCylinders
	StepOilVolume
	StepVehicleInfo
	StepClientName
	StepClientContact
	StepCompleted
)

func (s Step) String() string {
	switch s {
	case StepAggregate:
		return "awaiting-aggregate"
	case StepOverheat:
		return "awaiting-overheat-or-no-oil"
	case StepRepair:
		return "awaiting-repair-or-symptoms"
	case StepOilConsumption:
		return "awaiting-oil-consumption"
	case StepSmoke:
		return "awaiting-smoke"
	case StepEngineVolume:
		return "awaiting-engine-volume"
	case StepCylinders:
		return "awaiting-cylinders"
	case StepOilVolume:
		return "awaiting-oil-volume"
	case StepVehicleInfo:
		return "awaiting-vehicle-info"
	case StepClientName:
		return "awaiting-client-name"
	case StepClientContact:
		return "awaiting-client-contact"
	case StepCompleted:
		return "completed"
	}
	return "unknown"
}

// Branch discriminates the two question paths.
type Branch int

const (
	BranchEngine Branch = iota
	BranchOther
)

func branchOf(aggregate models.AggregateType) Branch {
	if aggregate.IsEngine() {
		return BranchEngine
	}
	return BranchOther
}

// transitions is the complete state graph. The engine branch visits the
// oil-consumption, smoke, engine-volume and cylinder steps before oil
// volume; every other aggregate goes from symptoms straight to oil
// volume. Absent entries are unreachable by construction.
var transitions = map[Step]map[Branch]Step{
	StepAggregate:      {BranchEngine: StepOverheat, BranchOther: StepOverheat},
	StepOverheat:       {BranchEngine: StepRepair, BranchOther: StepRepair},
	StepRepair:         {BranchEngine: StepOilConsumption, BranchOther: StepOilVolume},
	StepOilConsumption: {BranchEngine: StepSmoke},
	StepSmoke:          {BranchEngine: StepEngineVolume},
	StepEngineVolume:   {BranchEngine: StepCylinders},
	StepCylinders:      {BranchEngine: StepOilVolume},
	StepOilVolume:      {BranchEngine: StepVehicleInfo, BranchOther: StepVehicleInfo},
	StepVehicleInfo:    {BranchEngine: StepClientName, BranchOther: StepClientName},
	StepClientName:     {BranchEngine: StepClientContact, BranchOther: StepClientContact},
	StepClientContact:  {BranchEngine: StepCompleted, BranchOther: StepCompleted},
}

// Session is one in-progress consultation. Values are replaced, not
// mutated: every accepted answer produces a new Session.
type Session struct {
	ChatID  int64          `json:"chat_id"`
	Step    Step           `json:"step"`
	Answers models.Answers `json:"answers"`
}

// NewSession returns a fresh session at the first question.
func NewSession(chatID int64) Session {
	return Session{ChatID: chatID, Step: StepAggregate}
}
