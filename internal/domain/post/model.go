package post

import (
	"cmp"
	"slices"
	"strings"
	"time"
)

// Post is one scheduled content unit of a generated calendar.
type Post struct {
	ID             string
	BrandProfileID string
	Day            int
	Date           string
	Role           string
	Pillar         string
	Hook           string
	PostBody       string
	CTA            string
	Hashtags       []string
	ImageIdea      string
	Status         Status
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Update is a partial post patch. Nil fields are left untouched.
type Update struct {
	Hook      *string
	PostBody  *string
	CTA       *string
	Hashtags  []string
	ImageIdea *string
	Status    *Status
}

func (u Update) IsEmpty() bool {
	return u.Hook == nil && u.PostBody == nil && u.CTA == nil && u.Hashtags == nil && u.ImageIdea == nil && u.Status == nil
}

// Apply returns p with the patch applied. Status is copied as is; callers
// guard transitions with CanTransition first.
func (p Post) Apply(u Update) Post {
	if u.Hook != nil {
		p.Hook = *u.Hook
	}
	if u.PostBody != nil {
		p.PostBody = *u.PostBody
	}
	if u.CTA != nil {
		p.CTA = *u.CTA
	}
	if u.Hashtags != nil {
		p.Hashtags = append([]string(nil), u.Hashtags...)
	}
	if u.ImageIdea != nil {
		p.ImageIdea = *u.ImageIdea
	}
	if u.Status != nil {
		p.Status = *u.Status
	}
	return p
}

// ParseHashtags splits "#a #b" on whitespace.
func ParseHashtags(text string) []string {
	return strings.Fields(text)
}

func FormatHashtags(tags []string) string {
	return strings.Join(tags, " ")
}

// SortByDay orders posts by ascending day, keeping input order on ties.
func SortByDay(posts []Post) {
	slices.SortStableFunc(posts, func(a, b Post) int { return cmp.Compare(a.Day, b.Day) })
}

func CountByStatus(posts []Post, status Status) int {
	n := 0
	for _, p := range posts {
		if p.Status == status {
			n++
		}
	}
	return n
}
