package onboarding

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/riskibarqy/content-brain/internal/domain/brandprofile"
)

const maxPillars = brandprofile.MaxPillars

var (
	ErrPillarLimit   = errors.New("maximum pillars selected")
	ErrEmptyPillar   = errors.New("pillar name is empty")
	ErrListLimit     = errors.New("list is full")
	ErrIndexRange    = errors.New("index out of range")
	ErrLastEntry     = errors.New("at least one entry is kept")
	ErrUnknownOption = errors.New("unknown option")
)

// ToggleRole selects or deselects role. Details typed for it are kept.
func (s *State) ToggleRole(role string) {
	if i := slices.Index(s.SelectedRoles, role); i >= 0 {
		s.SelectedRoles = slices.Delete(s.SelectedRoles, i, i+1)
		return
	}
	s.SelectedRoles = append(s.SelectedRoles, role)
}

func (s *State) SetRoleDetail(role string, detail RoleDetail) error {
	if detail.Importance != "" && !detail.Importance.Valid() {
		return fmt.Errorf("%w: %q", brandprofile.ErrInvalidImportance, detail.Importance)
	}
	if s.RoleDetails == nil {
		s.RoleDetails = RoleDetails{}
	}
	s.RoleDetails[role] = detail
	return nil
}

func (s *State) ToggleGoal(goal string) {
	if i := slices.Index(s.Goals, goal); i >= 0 {
		s.Goals = slices.Delete(s.Goals, i, i+1)
		return
	}
	s.Goals = append(s.Goals, goal)
}

func (s *State) SetFrequency(value int) error {
	if !brandprofile.IsFrequencyOption(value) {
		return fmt.Errorf("%w: frequency %d", ErrUnknownOption, value)
	}
	s.PostingFrequency = value
	return nil
}

// TogglePillar flips a preset pillar. Selecting past the merged cap, or a
// name already present as a custom pillar, is a no-op and reports false.
func (s *State) TogglePillar(name string) bool {
	if i := slices.Index(s.ContentPillars, name); i >= 0 {
		s.ContentPillars = slices.Delete(s.ContentPillars, i, i+1)
		return true
	}
	if s.PillarCount() >= maxPillars || slices.Contains(s.CustomPillars, name) {
		return false
	}
	s.ContentPillars = append(s.ContentPillars, name)
	return true
}

func (s *State) AddCustomPillar(raw string) error {
	name := strings.TrimSpace(raw)
	if name == "" {
		return ErrEmptyPillar
	}
	if slices.Contains(s.ContentPillars, name) || slices.Contains(s.CustomPillars, name) {
		return fmt.Errorf("%w: %s", brandprofile.ErrDuplicatePillar, name)
	}
	if s.PillarCount() >= maxPillars {
		return fmt.Errorf("%w: %d", ErrPillarLimit, maxPillars)
	}
	s.CustomPillars = append(s.CustomPillars, name)
	return nil
}

func (s *State) RemoveCustomPillar(name string) {
	s.CustomPillars = slices.DeleteFunc(s.CustomPillars, func(p string) bool { return p == name })
}

func (s *State) SetTone(axis brandprofile.ToneAxis, value int) error {
	if value < brandprofile.ToneMin || value > brandprofile.ToneMax {
		return fmt.Errorf("%w: %s=%d", brandprofile.ErrToneOutOfRange, axis, value)
	}
	tone, ok := s.ToneProfile.With(axis, value)
	if !ok {
		return fmt.Errorf("%w: tone axis %q", ErrUnknownOption, axis)
	}
	s.ToneProfile = tone
	return nil
}

func (s *State) AddAdmiredCreator() error {
	return addSlot(&s.AdmiredCreators, brandprofile.MaxAdmiredCreators)
}

func (s *State) SetAdmiredCreator(i int, value string) error {
	return setSlot(s.AdmiredCreators, i, value)
}

func (s *State) RemoveAdmiredCreator(i int) error {
	return removeSlot(&s.AdmiredCreators, i)
}

func (s *State) SetBelief(i int, value string) error {
	return setSlot(s.Beliefs, i, value)
}

func (s *State) AddPastPost() error {
	return addSlot(&s.PastPosts, brandprofile.MaxPastPosts)
}

func (s *State) SetPastPost(i int, value string) error {
	return setSlot(s.PastPosts, i, value)
}

func (s *State) RemovePastPost(i int) error {
	return removeSlot(&s.PastPosts, i)
}

func addSlot(list *[]string, limit int) error {
	if len(*list) >= limit {
		return fmt.Errorf("%w: max %d", ErrListLimit, limit)
	}
	*list = append(*list, "")
	return nil
}

func setSlot(list []string, i int, value string) error {
	if i < 0 || i >= len(list) {
		return fmt.Errorf("%w: %d", ErrIndexRange, i)
	}
	list[i] = value
	return nil
}

func removeSlot(list *[]string, i int) error {
	if i < 0 || i >= len(*list) {
		return fmt.Errorf("%w: %d", ErrIndexRange, i)
	}
	if len(*list) <= 1 {
		return ErrLastEntry
	}
	*list = slices.Delete(*list, i, i+1)
	return nil
}
