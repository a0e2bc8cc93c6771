// Package quiz implements the linear Travel DNA questionnaire.
package quiz

import (
	"errors"
	"fmt"
)

var (
	ErrStepIncomplete = errors.New("quiz: current step is not answered")
	ErrUnknownOption  = errors.New("quiz: option not offered by current step")
	ErrSubmitted      = errors.New("quiz: already submitted")
	ErrNotSubmitted   = errors.New("quiz: not submitted")
)

// TravelDNA is the full set of answers sent to the recommendation service.
type TravelDNA struct {
	Personality string   `json:"personality"`
	Pace        string   `json:"pace"`
	BudgetLevel string   `json:"budget_level"`
	TravelWith  string   `json:"travel_with"`
	DaysRange   string   `json:"days_range"`
	Interests   []string `json:"interests"`
}

func (d TravelDNA) value(f Field) string {
	switch f {
	case FieldPersonality:
		return d.Personality
	case FieldPace:
		return d.Pace
	case FieldBudgetLevel:
		return d.BudgetLevel
	case FieldTravelWith:
		return d.TravelWith
	case FieldDaysRange:
		return d.DaysRange
	}
	return ""
}

func (d *TravelDNA) set(f Field, v string) {
	switch f {
	case FieldPersonality:
		d.Personality = v
	case FieldPace:
		d.Pace = v
	case FieldBudgetLevel:
		d.BudgetLevel = v
	case FieldTravelWith:
		d.TravelWith = v
	case FieldDaysRange:
		d.DaysRange = v
	}
}

func (d TravelDNA) clone() TravelDNA {
	d.Interests = append([]string{}, d.Interests...)
	return d
}

// Machine walks the steps in order. It is not safe for concurrent use.
type Machine struct {
	steps     []Step
	current   int
	answers   TravelDNA
	submitted bool
}

func NewMachine() *Machine {
	return NewMachineWithSteps(Steps(DefaultLocale))
}

func NewMachineWithSteps(steps []Step) *Machine {
	if len(steps) == 0 {
		panic("quiz: machine needs at least one step")
	}
	return &Machine{
		steps:   steps,
		answers: TravelDNA{Interests: []string{}},
	}
}

func (m *Machine) Steps() []Step { return m.steps }
func (m *Machine) CurrentIndex() int { return m.current }
func (m *Machine) CurrentStep() Step { return m.steps[m.current] }
func (m *Machine) IsLastStep() bool { return m.current == len(m.steps)-1 }
func (m *Machine) Submitted() bool { return m.submitted }
func (m *Machine) Answers() TravelDNA { return m.answers.clone() }
func (m *Machine) Progress() (int, int) { return m.current + 1, len(m.steps) }

// Select records value for the active step. Multi-select steps toggle it.
func (m *Machine) Select(value string) error {
	if m.submitted {
		return ErrSubmitted
	}
	step := m.steps[m.current]
	if !step.HasOption(value) {
		return fmt.Errorf("%w: %q for %s", ErrUnknownOption, value, step.Field)
	}

	if step.MultiSelect {
		m.answers.Interests = toggle(m.answers.Interests, value)
		return nil
	}
	m.answers.set(step.Field, value)
	return nil
}

func (m *Machine) IsSelected(value string) bool {
	step := m.steps[m.current]
	if step.MultiSelect {
		return contains(m.answers.Interests, value)
	}
	return m.answers.value(step.Field) == value
}

func (m *Machine) CanAdvance() bool {
	return m.filled(m.steps[m.current])
}

func (m *Machine) filled(step Step) bool {
	if step.MultiSelect {
		return len(m.answers.Interests) > 0
	}
	return m.answers.value(step.Field) != ""
}

// Next advances one step, or submits on the last one. Nothing changes when
// the active step is unanswered.
func (m *Machine) Next() error {
	if m.submitted {
		return ErrSubmitted
	}
	if !m.CanAdvance() {
		return ErrStepIncomplete
	}
	if m.IsLastStep() {
		for _, s := range m.steps {
			if !m.filled(s) {
				return ErrStepIncomplete
			}
		}
		m.submitted = true
		return nil
	}
	m.current++
	return nil
}

func (m *Machine) Back() {
	if m.submitted || m.current == 0 {
		return
	}
	m.current--
}

func (m *Machine) Restart() {
	m.current = 0
	m.answers = TravelDNA{Interests: []string{}}
	m.submitted = false
}

// DNA returns the submitted answers.
func (m *Machine) DNA() (TravelDNA, error) {
	if !m.submitted {
		return TravelDNA{}, ErrNotSubmitted
	}
	return m.answers.clone(), nil
}

func toggle(set []string, v string) []string {
	for i, s := range set {
		if s == v {
			out := make([]string, 0, len(set)-1)
			out = append(out, set[:i]...)
			return append(out, set[i+1:]...)
		}
	}
	return append(append(make([]string, 0, len(set)+1), set...), v)
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
