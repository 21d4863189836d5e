package brandprofile

import "time"

type Importance string

const (
	ImportanceHigh   Importance = "high"
	ImportanceMedium Importance = "medium"
	ImportanceLow    Importance = "low"
)

func (i Importance) Valid() bool {
	switch i {
	case ImportanceHigh, ImportanceMedium, ImportanceLow:
		return true
	default:
		return false
	}
}

// Role is one professional persona the user writes from.
type Role struct {
	ID           string
	Name         string
	CompanyName  string
	Description  string
	Audience     string
	Offer        string
	WhyItMatters string
	Importance   Importance
}

// ToneProfile holds four independent sliders in [ToneMin, ToneMax].
type ToneProfile struct {
	CasualToFormal       int
	RawToPolished        int
	PunchyToStorytelling int
	BoldToSafe           int
}

const (
	ToneMin = 0
	ToneMax = 10
)

type ToneAxis string

const (
	ToneCasualToFormal       ToneAxis = "casualToFormal"
	ToneRawToPolished        ToneAxis = "rawToPolished"
	TonePunchyToStorytelling ToneAxis = "punchyToStorytelling"
	ToneBoldToSafe           ToneAxis = "boldToSafe"
)

var ToneAxes = []ToneAxis{ToneCasualToFormal, ToneRawToPolished, TonePunchyToStorytelling, ToneBoldToSafe}

func (t ToneProfile) Get(axis ToneAxis) (int, bool) {
	switch axis {
	case ToneCasualToFormal:
		return t.CasualToFormal, true
	case ToneRawToPolished:
		return t.RawToPolished, true
	case TonePunchyToStorytelling:
		return t.PunchyToStorytelling, true
	case ToneBoldToSafe:
		return t.BoldToSafe, true
	default:
		return 0, false
	}
}

// With returns a copy with one axis set, clamped to the slider range.
func (t ToneProfile) With(axis ToneAxis, value int) (ToneProfile, bool) {
	value = min(max(value, ToneMin), ToneMax)
	switch axis {
	case ToneCasualToFormal:
		t.CasualToFormal = value
	case ToneRawToPolished:
		t.RawToPolished = value
	case TonePunchyToStorytelling:
		t.PunchyToStorytelling = value
	case ToneBoldToSafe:
		t.BoldToSafe = value
	default:
		return t, false
	}
	return t, true
}

// Draft is the writable field set of a brand profile, used for create and update.
type Draft struct {
	Name             string
	Roles            []Role
	PrimaryRole      string
	Goals            []string
	PostingFrequency int
	ContentPillars   []string
	ToneProfile      ToneProfile
	AdmiredCreators  []string
	Beliefs          []string
	DontSoundLike    []string
	OffLimitTopics   []string
	PastPosts        []string
	AdditionalInfo   string
}

// BrandProfile is a user's saved content brain.
type BrandProfile struct {
	ID     string
	UserID string
	Draft
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (p BrandProfile) RoleNames() []string {
	out := make([]string, 0, len(p.Roles))
	for _, role := range p.Roles {
		out = append(out, role.Name)
	}
	return out
}
