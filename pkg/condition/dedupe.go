// Package condition turns a crop's inspection history into a unique list of
// treatable pests and diseases.
package condition

import (
	"errors"
	"fmt"

	"cropcare/entities"
)

var ErrUnknownCondition = errors.New("unknown condition")

// Candidates emits, per record and in input order, a pest option when a pest
// name is present and then a disease option when a disease name is present.
// Both inherit the record's control plan.
func Candidates(records []entities.InspectionRecord) []entities.ConditionOption {
	out := make([]entities.ConditionOption, 0, len(records)*2)
	for i, r := range records {
		if p := r.PestInformation; p.PestName != "" {
			out = append(out, entities.ConditionOption{
				ID:             fmt.Sprintf("pest-%d", i),
				Name:           p.PestName,
				Kind:           entities.KindPest,
				Severity:       p.Severity,
				TreatmentAgent: p.Pesticide,
				ControlPlan:    r.ControlPlan,
			})
		}
		if d := r.DiseaseInformation; d.DiseaseName != "" {
			out = append(out, entities.ConditionOption{
				ID:             fmt.Sprintf("disease-%d", i),
				Name:           d.DiseaseName,
				Kind:           entities.KindDisease,
				Severity:       d.Severity,
				TreatmentAgent: d.Pesticide,
				ControlPlan:    r.ControlPlan,
				Symptoms:       d.Symptoms,
			})
		}
	}
	return out
}

// Unique keeps the first option seen for each name, preserving input order.
// Later duplicates are dropped even when their severity or control plan
// differ. The key is the name alone, so a pest and a disease with the same
// name collide.
func Unique(options []entities.ConditionOption) []entities.ConditionOption {
	seen := make(map[string]struct{}, len(options))
	out := make([]entities.ConditionOption, 0, len(options))
	for _, o := range options {
		if _, ok := seen[o.Name]; ok {
			continue
		}
		seen[o.Name] = struct{}{}
		out = append(out, o)
	}
	return out
}

func Dedupe(records []entities.InspectionRecord) []entities.ConditionOption {
	return Unique(Candidates(records))
}

// Find selects an option by name.
func Find(options []entities.ConditionOption, name string) (entities.ConditionOption, error) {
	for _, o := range options {
		if o.Name == name {
			return o, nil
		}
	}
	return entities.ConditionOption{}, fmt.Errorf("%w: %q", ErrUnknownCondition, name)
}
