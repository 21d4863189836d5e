package onboarding

import (
	"errors"
	"fmt"
	"strings"
)

const (
	StepPersonalInfo = iota + 1
	StepRoles
	StepGoals
	StepFrequency
	StepPillars
	StepTone
	StepAdvanced
	StepReview

	TotalSteps = StepReview
)

const (
	MinNameLength = 2
	MinPillars    = 3
)

var (
	ErrStepBlocked = errors.New("current step is incomplete")
	ErrStepAhead   = errors.New("cannot jump ahead of the current step")
	ErrUnknownStep = errors.New("unknown wizard step")
)

type StepInfo struct {
	Number      int
	Title       string
	Description string
}

var Steps = []StepInfo{
	{Number: StepPersonalInfo, Title: "Personal Info", Description: "Tell us about yourself"},
	{Number: StepRoles, Title: "Your Roles", Description: "What hats do you wear?"},
	{Number: StepGoals, Title: "Goals", Description: "What do you want to achieve?"},
	{Number: StepFrequency, Title: "Frequency", Description: "How often will you post?"},
	{Number: StepPillars, Title: "Content Pillars", Description: "Your content themes"},
	{Number: StepTone, Title: "Tone & Voice", Description: "How do you sound?"},
	{Number: StepAdvanced, Title: "Advanced", Description: "Fine-tune your voice"},
	{Number: StepReview, Title: "Review", Description: "Review and submit"},
}

func Step(n int) (StepInfo, bool) {
	if n < 1 || n > TotalSteps {
		return StepInfo{}, false
	}
	return Steps[n-1], true
}

// Progress is the completion percentage shown above the current step.
func (s State) Progress() float64 {
	return float64(s.Step) / float64(TotalSteps) * 100
}

// CanAdvance reports whether step's own fields allow moving past it.
// It reads nothing but the state.
func CanAdvance(s State, step int) bool {
	switch step {
	case StepPersonalInfo:
		return len([]rune(strings.TrimSpace(s.Name))) >= MinNameLength
	case StepRoles:
		return len(s.SelectedRoles) > 0
	case StepGoals:
		return len(s.Goals) > 0
	case StepFrequency:
		return s.PostingFrequency > 0
	case StepPillars:
		n := s.PillarCount()
		return n >= MinPillars && n <= maxPillars
	case StepTone, StepAdvanced, StepReview:
		return true
	default:
		return false
	}
}

func (s State) CanAdvance() bool {
	return CanAdvance(s, s.Step)
}

// Next moves the cursor forward when the current step is complete.
func (s *State) Next() error {
	if s.Step >= TotalSteps {
		return fmt.Errorf("%w: already on the last step", ErrStepBlocked)
	}
	if !s.CanAdvance() {
		info, _ := Step(s.Step)
		return fmt.Errorf("%w: %s", ErrStepBlocked, info.Title)
	}
	s.Step++
	return nil
}

func (s *State) Back() bool {
	if s.Step <= 1 {
		return false
	}
	s.Step--
	return true
}

// JumpTo moves to any step at or before the cursor without revalidating.
func (s *State) JumpTo(step int) error {
	if step < 1 || step > TotalSteps {
		return fmt.Errorf("%w: %d", ErrUnknownStep, step)
	}
	if step > s.Step {
		return fmt.Errorf("%w: %d > %d", ErrStepAhead, step, s.Step)
	}
	s.Step = step
	return nil
}
