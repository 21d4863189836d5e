package onboarding

import (
	"fmt"
	"strings"

	"github.com/riskibarqy/content-brain/internal/domain/brandprofile"
	"github.com/riskibarqy/content-brain/internal/platform/id"
)

// ProfileName is the display name given to a profile created by the wizard.
func ProfileName(name string) string {
	return strings.TrimSpace(name) + "'s Brand Profile"
}

// BuildDraft assembles the profile creation payload from the wizard state.
func BuildDraft(s State, ids id.Generator) (brandprofile.Draft, error) {
	roles := make([]brandprofile.Role, 0, len(s.SelectedRoles))
	for _, name := range s.SelectedRoles {
		roleID, err := ids.NewID()
		if err != nil {
			return brandprofile.Draft{}, fmt.Errorf("generate role id: %w", err)
		}
		detail := s.RoleDetails.Get(name)
		roles = append(roles, brandprofile.Role{
			ID:           roleID,
			Name:         name,
			CompanyName:  detail.CompanyName,
			Description:  detail.Description,
			Audience:     detail.Audience,
			Offer:        detail.Offer,
			WhyItMatters: detail.WhyItMatters,
			Importance:   detail.Importance,
		})
	}

	return brandprofile.Draft{
		Name:             ProfileName(s.Name),
		Roles:            roles,
		PrimaryRole:      s.PrimaryRole(),
		Goals:            append([]string(nil), s.Goals...),
		PostingFrequency: s.PostingFrequency,
		ContentPillars:   s.AllPillars(),
		ToneProfile:      s.ToneProfile,
		AdmiredCreators:  brandprofile.CompactList(s.AdmiredCreators),
		Beliefs:          brandprofile.CompactList(s.Beliefs),
		DontSoundLike:    brandprofile.SplitList(s.DontSoundLike),
		OffLimitTopics:   brandprofile.SplitList(s.OffLimitTopics),
		PastPosts:        brandprofile.CompactList(s.PastPosts),
		AdditionalInfo:   s.AdditionalInfo,
	}, nil
}
