package onboarding

import (
	"maps"
	"slices"

	"github.com/riskibarqy/content-brain/internal/domain/brandprofile"
)

// RoleDetail holds the optional per-role fields collected in the roles step.
// An empty Importance means the user never picked one.
type RoleDetail struct {
	CompanyName  string
	Description  string
	Audience     string
	Offer        string
	WhyItMatters string
	Importance   brandprofile.Importance
}

// RoleDetails is keyed by role name. Entries outlive role deselection so
// re-selecting a role restores what was typed.
type RoleDetails map[string]RoleDetail

// Get returns the detail for role with importance defaulted to medium.
func (r RoleDetails) Get(role string) RoleDetail {
	d := r[role]
	if d.Importance == "" {
		d.Importance = brandprofile.ImportanceMedium
	}
	return d
}

// State is the transient wizard aggregate. Step is the cursor, 1..TotalSteps.
type State struct {
	Step             int
	Name             string
	SelectedRoles    []string
	RoleDetails      RoleDetails
	Goals            []string
	PostingFrequency int
	ContentPillars   []string
	CustomPillars    []string
	ToneProfile      brandprofile.ToneProfile
	AdmiredCreators  []string
	Beliefs          []string
	DontSoundLike    string
	OffLimitTopics   string
	PastPosts        []string
	AdditionalInfo   string
}

const (
	DefaultFrequency = 12
	BeliefSlots      = 3
)

func DefaultTone() brandprofile.ToneProfile {
	return brandprofile.ToneProfile{
		CasualToFormal:       4,
		RawToPolished:        5,
		PunchyToStorytelling: 6,
		BoldToSafe:           4,
	}
}

func NewState() State {
	return State{
		Step:             1,
		RoleDetails:      RoleDetails{},
		PostingFrequency: DefaultFrequency,
		ToneProfile:      DefaultTone(),
		AdmiredCreators:  []string{""},
		Beliefs:          make([]string, BeliefSlots),
		PastPosts:        []string{""},
	}
}

// Clone deep-copies the slices and the detail map.
func (s State) Clone() State {
	out := s
	out.SelectedRoles = slices.Clone(s.SelectedRoles)
	out.RoleDetails = maps.Clone(s.RoleDetails)
	if out.RoleDetails == nil {
		out.RoleDetails = RoleDetails{}
	}
	out.Goals = slices.Clone(s.Goals)
	out.ContentPillars = slices.Clone(s.ContentPillars)
	out.CustomPillars = slices.Clone(s.CustomPillars)
	out.AdmiredCreators = slices.Clone(s.AdmiredCreators)
	out.Beliefs = slices.Clone(s.Beliefs)
	out.PastPosts = slices.Clone(s.PastPosts)
	return out
}

// PillarCount is the merged preset plus custom count.
func (s State) PillarCount() int {
	return len(s.ContentPillars) + len(s.CustomPillars)
}

// AllPillars merges presets in selection order followed by customs in append order.
func (s State) AllPillars() []string {
	out := make([]string, 0, s.PillarCount())
	out = append(out, s.ContentPillars...)
	return append(out, s.CustomPillars...)
}

func (s State) PrimaryRole() string {
	if len(s.SelectedRoles) == 0 {
		return ""
	}
	return s.SelectedRoles[0]
}
