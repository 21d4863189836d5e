package memory

import (
	"strconv"
	"time"

	"github.com/riskibarqy/content-brain/internal/domain/brandprofile"
	"github.com/riskibarqy/content-brain/internal/domain/post"
	"github.com/riskibarqy/content-brain/internal/domain/user"
)

const (
	SeedUserID    = "1"
	SeedProfileID = "1"
	SeedPostCount = 30
)

var (
	seedPillars = []string{"Founder journey", "Behind-the-scenes", "Expertise / educational", "Opinions / rants"}
	seedHooks   = []string{
		"I almost quit yesterday.",
		"Nobody tells you this about fundraising.",
		"The best decision I made this year.",
		"Stop doing this on LinkedIn.",
		"Here's what 1000 customers taught me.",
	}
)

const (
	seedPostBody  = "This is a sample post body that would contain the full content of the LinkedIn post. It should be engaging, follow the user's tone profile, and provide value to the audience."
	seedCTA       = "Follow for more insights on building startups."
	seedImageIdea = "A simple chart showing growth metrics or a behind-the-scenes photo"
)

func SeedUser() user.User {
	return user.User{ID: SeedUserID, Name: "John Doe", Email: "john@example.com"}
}

func SeedProfiles(now time.Time) []brandprofile.BrandProfile {
	return []brandprofile.BrandProfile{
		{
			ID:     SeedProfileID,
			UserID: SeedUserID,
			Draft: brandprofile.Draft{
				Name: "Tech Founder Brand",
				Roles: []brandprofile.Role{{
					ID:           "1",
					Name:         "SaaS Founder",
					CompanyName:  "TechStartup Inc",
					Description:  "Building the future of productivity",
					Audience:     "Startup founders and tech leaders",
					Offer:        "SaaS productivity tools",
					WhyItMatters: "This is my main focus and passion",
					Importance:   brandprofile.ImportanceHigh,
				}},
				PrimaryRole:      "SaaS Founder",
				Goals:            []string{"Build audience", "Get clients/inbound"},
				PostingFrequency: 12,
				ContentPillars:   append([]string(nil), seedPillars...),
				ToneProfile: brandprofile.ToneProfile{
					CasualToFormal:       3,
					RawToPolished:        4,
					PunchyToStorytelling: 7,
					BoldToSafe:           3,
				},
				AdmiredCreators: []string{"@naval", "@alexhormozi"},
				Beliefs:         []string{"Build in public works", "Community over competition"},
				DontSoundLike:   []string{"Corporate"},
				OffLimitTopics:  []string{"Politics"},
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

// SeedPosts builds the 30 day mock calendar for a profile, starting at start.
func SeedPosts(profileID string, start time.Time) []post.Post {
	out := make([]post.Post, 0, SeedPostCount)
	for i := range SeedPostCount {
		status := post.StatusDraft
		if i < 5 {
			status = post.StatusApproved
		}
		out = append(out, post.Post{
			ID:             strconv.Itoa(i + 1),
			BrandProfileID: profileID,
			Day:            i + 1,
			Date:           start.AddDate(0, 0, i).Format(time.DateOnly),
			Role:           "SaaS Founder",
			Pillar:         seedPillars[i%len(seedPillars)],
			Hook:           seedHooks[i%len(seedHooks)],
			PostBody:       seedPostBody,
			CTA:            seedCTA,
			Hashtags:       []string{"#startup", "#founder", "#saas", "#entrepreneurship"},
			ImageIdea:      seedImageIdea,
			Status:         status,
			CreatedAt:      start,
			UpdatedAt:      start,
		})
	}
	return out
}
