package rubric

import (
	"errors"
	"fmt"
)

// ErrUnknownRubric is returned by EvaluateSeverity when no severity rule is
// defined for the requested rubric id. Callers must not treat the
// accompanying false verdict as a real evaluation.
var ErrUnknownRubric = errors.New("unknown rubric")

// ItemValue is one recorded response. A nil Level means "not yet assessed",
// which is distinct from a recorded zero. Assistance is only meaningful for
// assistance-gated category B items; nil means the flag was not recorded.
type ItemValue struct {
	Level      *int  `json:"level"`
	Assistance *bool `json:"assistance,omitempty"`
}

// Level returns a set ItemValue without an assistance flag.
func Level(n int) ItemValue { return ItemValue{Level: &n} }

// LevelAssist returns a set ItemValue with an explicit assistance flag.
func LevelAssist(n int, assisted bool) ItemValue {
	return ItemValue{Level: &n, Assistance: &assisted}
}

// ItemValues maps item id to the recorded response. Absent keys are unset.
type ItemValues map[string]ItemValue

// Scores holds the per-category subtotals.
type Scores struct {
	A int `json:"a"`
	B int `json:"b"`
	C int `json:"c"`
}

// ComputeScores derives the category subtotals from raw responses in one pass
// over the catalog.
//
// Category A and C items contribute their Points when the recorded level is
// positive. Category B items contribute the recorded level itself; for
// assistance-gated items the contribution is zeroed unless assistance was
// explicitly recorded as performed. Unset values contribute nothing.
func ComputeScores(c *Catalog, values ItemValues) Scores {
	var s Scores
	for _, it := range c.items {
		v, ok := values[it.ID]
		if !ok || v.Level == nil {
			continue
		}
		switch it.Category {
		case CategoryA:
			if *v.Level > 0 {
				s.A += it.Points
			}
		case CategoryC:
			if *v.Level > 0 {
				s.C += it.Points
			}
		case CategoryB:
			contribution := *v.Level
			if it.HasAssistance && (v.Assistance == nil || !*v.Assistance) {
				contribution = 0
			}
			s.B += contribution
		}
	}
	return s
}

// EvaluateSeverity applies the rubric's severity thresholds to the subtotals.
// For the acute general rubric the patient is severe when A>=2 and B>=3, or
// when C>=1. An unrecognized rubric id is a configuration error: the verdict
// defaults to false and ErrUnknownRubric is returned so the caller can report
// it.
func EvaluateSeverity(rubricID string, s Scores) (bool, error) {
	switch rubricID {
	case RubricAcuteGeneral1:
		return (s.A >= 2 && s.B >= 3) || s.C >= 1, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrUnknownRubric, rubricID)
	}
}

// MissingItems lists definitions whose response is unset, in declaration
// order. An assistance-gated item with a positive level but no recorded
// assistance flag is also reported, since the engine will zero it. This feeds
// the pre-save confirmation gate; the engine itself never rejects incomplete
// input.
func MissingItems(c *Catalog, values ItemValues) []ItemDefinition {
	var missing []ItemDefinition
	for _, it := range c.items {
		v, ok := values[it.ID]
		if !ok || v.Level == nil {
			missing = append(missing, it)
			continue
		}
		if it.HasAssistance && *v.Level > 0 && v.Assistance == nil {
			missing = append(missing, it)
		}
	}
	return missing
}
