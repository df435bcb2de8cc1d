package entities

type ConditionKind string

const (
	KindPest    ConditionKind = "Pest"
	KindDisease ConditionKind = "Disease"
)

// ConditionOption is a selectable pest or disease derived from a crop's
// inspection history. Name is the uniqueness key.
type ConditionOption struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Kind           ConditionKind `json:"kind"`
	Severity       string        `json:"severity"`
	TreatmentAgent string        `json:"treatment_agent"`
	ControlPlan    *ControlPlan  `json:"control_plan,omitempty"`
	Symptoms       string        `json:"symptoms,omitempty"`
}
