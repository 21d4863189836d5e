package contentapi

import (
	"bytes"
	"strconv"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/content-brain/internal/domain/brandprofile"
	"github.com/riskibarqy/content-brain/internal/domain/pillar"
	"github.com/riskibarqy/content-brain/internal/domain/post"
	"github.com/riskibarqy/content-brain/internal/domain/user"
)

// flexID accepts ids sent either as JSON strings or numbers.
type flexID string

func (f *flexID) UnmarshalJSON(raw []byte) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		*f = ""
		return nil
	}
	if raw[0] == '"' {
		unquoted, err := strconv.Unquote(string(raw))
		if err != nil {
			return crerr.Wrap(err, "decode id")
		}
		*f = flexID(unquoted)
		return nil
	}
	if _, err := strconv.ParseFloat(string(raw), 64); err != nil {
		return crerr.Newf("id %s is neither string nor number", raw)
	}
	*f = flexID(raw)
	return nil
}

func parseTime(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02 15:04:05", time.DateOnly} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}

type userDTO struct {
	ID        flexID `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

func (d userDTO) toDomain() user.User {
	return user.User{
		ID:        string(d.ID),
		Name:      d.Name,
		Email:     d.Email,
		CreatedAt: parseTime(d.CreatedAt),
	}
}

type roleDTO struct {
	ID           flexID `json:"id"`
	Name         string `json:"name"`
	CompanyName  string `json:"companyName,omitempty"`
	Description  string `json:"description"`
	Audience     string `json:"audience"`
	Offer        string `json:"offer"`
	WhyItMatters string `json:"whyItMatters"`
	Importance   string `json:"importance"`
}

type toneDTO struct {
	CasualToFormal       int `json:"casualToFormal"`
	RawToPolished        int `json:"rawToPolished"`
	PunchyToStorytelling int `json:"punchyToStorytelling"`
	BoldToSafe           int `json:"boldToSafe"`
}

type brandProfileDTO struct {
	ID               flexID    `json:"id,omitempty"`
	UserID           flexID    `json:"user_id,omitempty"`
	Name             string    `json:"name"`
	Roles            []roleDTO `json:"roles"`
	PrimaryRole      string    `json:"primaryRole"`
	Goals            []string  `json:"goals"`
	PostingFrequency int       `json:"postingFrequency"`
	ContentPillars   []string  `json:"contentPillars"`
	ToneProfile      toneDTO   `json:"toneProfile"`
	AdmiredCreators  []string  `json:"admiredCreators"`
	Beliefs          []string  `json:"beliefs"`
	DontSoundLike    []string  `json:"dontSoundLike"`
	OffLimitTopics   []string  `json:"offLimitTopics"`
	PastPosts        []string  `json:"pastPosts"`
	AdditionalInfo   string    `json:"additionalInfo"`
	CreatedAt        string    `json:"created_at,omitempty"`
	UpdatedAt        string    `json:"updated_at,omitempty"`
}

func draftToDTO(d brandprofile.Draft) brandProfileDTO {
	roles := make([]roleDTO, 0, len(d.Roles))
	for _, r := range d.Roles {
		roles = append(roles, roleDTO{
			ID:           flexID(r.ID),
			Name:         r.Name,
			CompanyName:  r.CompanyName,
			Description:  r.Description,
			Audience:     r.Audience,
			Offer:        r.Offer,
			WhyItMatters: r.WhyItMatters,
			Importance:   string(r.Importance),
		})
	}
	return brandProfileDTO{
		Name:             d.Name,
		Roles:            roles,
		PrimaryRole:      d.PrimaryRole,
		Goals:            nonNil(d.Goals),
		PostingFrequency: d.PostingFrequency,
		ContentPillars:   nonNil(d.ContentPillars),
		ToneProfile: toneDTO{
			CasualToFormal:       d.ToneProfile.CasualToFormal,
			RawToPolished:        d.ToneProfile.RawToPolished,
			PunchyToStorytelling: d.ToneProfile.PunchyToStorytelling,
			BoldToSafe:           d.ToneProfile.BoldToSafe,
		},
		AdmiredCreators: nonNil(d.AdmiredCreators),
		Beliefs:         nonNil(d.Beliefs),
		DontSoundLike:   nonNil(d.DontSoundLike),
		OffLimitTopics:  nonNil(d.OffLimitTopics),
		PastPosts:       nonNil(d.PastPosts),
		AdditionalInfo:  d.AdditionalInfo,
	}
}

func (d brandProfileDTO) toDomain() brandprofile.BrandProfile {
	roles := make([]brandprofile.Role, 0, len(d.Roles))
	for _, r := range d.Roles {
		roles = append(roles, brandprofile.Role{
			ID:           string(r.ID),
			Name:         r.Name,
			CompanyName:  r.CompanyName,
			Description:  r.Description,
			Audience:     r.Audience,
			Offer:        r.Offer,
			WhyItMatters: r.WhyItMatters,
			Importance:   brandprofile.Importance(r.Importance),
		})
	}
	return brandprofile.BrandProfile{
		ID:     string(d.ID),
		UserID: string(d.UserID),
		Draft: brandprofile.Draft{
			Name:             d.Name,
			Roles:            roles,
			PrimaryRole:      d.PrimaryRole,
			Goals:            d.Goals,
			PostingFrequency: d.PostingFrequency,
			ContentPillars:   d.ContentPillars,
			ToneProfile: brandprofile.ToneProfile{
				CasualToFormal:       d.ToneProfile.CasualToFormal,
				RawToPolished:        d.ToneProfile.RawToPolished,
				PunchyToStorytelling: d.ToneProfile.PunchyToStorytelling,
				BoldToSafe:           d.ToneProfile.BoldToSafe,
			},
			AdmiredCreators: d.AdmiredCreators,
			Beliefs:         d.Beliefs,
			DontSoundLike:   d.DontSoundLike,
			OffLimitTopics:  d.OffLimitTopics,
			PastPosts:       d.PastPosts,
			AdditionalInfo:  d.AdditionalInfo,
		},
		CreatedAt: parseTime(d.CreatedAt),
		UpdatedAt: parseTime(d.UpdatedAt),
	}
}

type pillarDTO struct {
	ID             flexID `json:"id"`
	Name           string `json:"name"`
	PillarName     string `json:"pillar_name"`
	BrandProfileID flexID `json:"brand_profile_id"`
}

func (d pillarDTO) toDomain() pillar.Pillar {
	name := d.Name
	if name == "" {
		name = d.PillarName
	}
	return pillar.Pillar{ID: string(d.ID), Name: name, BrandProfileID: string(d.BrandProfileID)}
}

type postDTO struct {
	ID             flexID   `json:"id"`
	BrandProfileID flexID   `json:"brand_profile_id"`
	Day            int      `json:"day"`
	Date           string   `json:"date"`
	Role           string   `json:"role"`
	Pillar         string   `json:"pillar"`
	Hook           string   `json:"hook"`
	PostBody       string   `json:"post_body"`
	CTA            string   `json:"cta"`
	Hashtags       []string `json:"hashtags"`
	ImageIdea      string   `json:"image_idea"`
	Status         string   `json:"status"`
	CreatedAt      string   `json:"created_at"`
	UpdatedAt      string   `json:"updated_at"`
}

func (d postDTO) toDomain() post.Post {
	status, err := post.ParseStatus(d.Status)
	if err != nil {
		status = post.StatusDraft
	}
	return post.Post{
		ID:             string(d.ID),
		BrandProfileID: string(d.BrandProfileID),
		Day:            d.Day,
		Date:           d.Date,
		Role:           d.Role,
		Pillar:         d.Pillar,
		Hook:           d.Hook,
		PostBody:       d.PostBody,
		CTA:            d.CTA,
		Hashtags:       d.Hashtags,
		ImageIdea:      d.ImageIdea,
		Status:         status,
		CreatedAt:      parseTime(d.CreatedAt),
		UpdatedAt:      parseTime(d.UpdatedAt),
	}
}

func postsToDomain(items []postDTO) []post.Post {
	out := make([]post.Post, 0, len(items))
	for _, item := range items {
		out = append(out, item.toDomain())
	}
	return out
}

// postUpdateDTO only carries the fields being changed.
type postUpdateDTO struct {
	Hook      *string   `json:"hook,omitempty"`
	PostBody  *string   `json:"post_body,omitempty"`
	CTA       *string   `json:"cta,omitempty"`
	Hashtags  *[]string `json:"hashtags,omitempty"`
	ImageIdea *string   `json:"image_idea,omitempty"`
	Status    *string   `json:"status,omitempty"`
}

func updateToDTO(u post.Update) postUpdateDTO {
	out := postUpdateDTO{
		Hook:      u.Hook,
		PostBody:  u.PostBody,
		CTA:       u.CTA,
		ImageIdea: u.ImageIdea,
	}
	if u.Hashtags != nil {
		tags := u.Hashtags
		out.Hashtags = &tags
	}
	if u.Status != nil {
		s := string(*u.Status)
		out.Status = &s
	}
	return out
}

type messageResponse struct {
	Message string `json:"message"`
}

func nonNil(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
