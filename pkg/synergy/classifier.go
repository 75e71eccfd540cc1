package synergy

// Grade is the business-facing tier for a synergy score.
type Grade string

// Action is the recommended handling for a synergy score.
type Action string

const (
	GradeCore        Grade = "CORE"
	GradeGolden      Grade = "GOLDEN"
	GradeAccelerator Grade = "ACCELERATOR"
	GradeStable      Grade = "STABLE"
	GradeNeutral     Grade = "NEUTRAL"
	GradeFriction    Grade = "FRICTION"
	GradeDrain       Grade = "DRAIN"
	GradeBlackhole   Grade = "BLACKHOLE"
)

const (
	ActionAmplify  Action = "AMPLIFY"
	ActionBoost    Action = "BOOST"
	ActionMaintain Action = "MAINTAIN"
	ActionObserve  Action = "OBSERVE"
	ActionReduce   Action = "REDUCE"
	ActionDelay    Action = "DELAY"
	ActionEject    Action = "EJECT"
)

// Grade and Action are looked up through two separate ordered boundary
// tables over the same thresholds. Evaluation is high-to-low, first
// match wins; anything below the last boundary is BLACKHOLE / EJECT.
// Keeping the tables separate keeps the two label vocabularies
// independently consumable downstream.

type gradeBoundary struct {
	min   float64
	grade Grade
}

type actionBoundary struct {
	min    float64
	action Action
}

var gradeBoundaries = []gradeBoundary{
	{0.9, GradeCore},
	{0.8, GradeGolden},
	{0.6, GradeAccelerator},
	{0.3, GradeStable},
	{0.0, GradeNeutral},
	{-0.3, GradeFriction},
	{-0.7, GradeDrain},
}

var actionBoundaries = []actionBoundary{
	{0.9, ActionAmplify},
	{0.8, ActionAmplify},
	{0.6, ActionBoost},
	{0.3, ActionMaintain},
	{0.0, ActionObserve},
	{-0.3, ActionReduce},
	{-0.7, ActionDelay},
}

// GradeFor returns the grade for a synergy score.
func GradeFor(score float64) Grade {
	for _, b := range gradeBoundaries {
		if score >= b.min {
			return b.grade
		}
	}
	return GradeBlackhole
}

// ActionFor returns the recommended action for a synergy score.
func ActionFor(score float64) Action {
	for _, b := range actionBoundaries {
		if score >= b.min {
			return b.action
		}
	}
	return ActionEject
}
