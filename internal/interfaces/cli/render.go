package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/valyala/bytebufferpool"

	"github.com/riskibarqy/content-brain/internal/domain/brandprofile"
	"github.com/riskibarqy/content-brain/internal/domain/onboarding"
	"github.com/riskibarqy/content-brain/internal/domain/pillar"
	"github.com/riskibarqy/content-brain/internal/domain/post"
	"github.com/riskibarqy/content-brain/internal/usecase"
)

const cardWidth = 60

// card collects one block of output and writes it in a single call.
type card struct {
	buf *bytebufferpool.ByteBuffer
}

func newCard() *card {
	return &card{buf: bytebufferpool.Get()}
}

func (c *card) line(format string, args ...any) {
	_, _ = fmt.Fprintf(c.buf, format, args...)
	_ = c.buf.WriteByte('\n')
}

func (c *card) field(label, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	c.line("  %-14s %s", label+":", value)
}

func (c *card) rule() {
	c.line("%s", strings.Repeat("-", cardWidth))
}

func (c *card) flush(w io.Writer) {
	_, _ = w.Write(c.buf.B)
	bytebufferpool.Put(c.buf)
	c.buf = nil
}

func renderDashboard(w io.Writer, dash usecase.Dashboard) {
	c := newCard()
	if dash.Offline {
		c.line("(offline: showing sample data)")
	}
	if len(dash.Cards) == 0 {
		c.line("No brand profiles yet. Run `contentbrain onboarding` to create one.")
		c.flush(w)
		return
	}
	for _, pc := range dash.Cards {
		p := pc.Profile
		c.rule()
		c.line("[%s] %s", p.ID, p.Name)
		c.field("Primary role", p.PrimaryRole)
		c.field("Frequency", frequencyLabel(p.PostingFrequency))
		c.field("Pillars", strings.Join(p.ContentPillars, ", "))
		if pc.HasCalendar {
			c.field("Calendar", strconv.Itoa(pc.PostCount)+" posts")
		} else {
			c.field("Calendar", "not generated")
		}
	}
	c.rule()
	c.flush(w)
}

func frequencyLabel(value int) string {
	for _, opt := range brandprofile.FrequencyOptions {
		if opt.Value == value {
			return opt.Label + " (" + opt.Description + ")"
		}
	}
	if value == 0 {
		return ""
	}
	return strconv.Itoa(value) + "/month"
}

func renderCalendar(w io.Writer, view *usecase.CalendarView) {
	posts := view.Posts()
	c := newCard()
	if view.Offline() {
		c.line("(offline: showing sample calendar)")
	}
	c.line("Calendar for profile %s: %d posts, %d approved", view.ProfileID(), len(posts), view.ApprovedCount())
	c.rule()
	for _, p := range posts {
		c.line("%-4s day %-3d %-10s %-9s %-24s %s", p.ID, p.Day, p.Date, p.Status, truncate(p.Pillar, 24), truncate(p.Hook, 40))
	}
	c.flush(w)
}

func renderPost(w io.Writer, p post.Post) {
	c := newCard()
	c.rule()
	c.line("Post %s, day %d (%s)", p.ID, p.Day, p.Status)
	c.field("Date", p.Date)
	c.field("Role", p.Role)
	c.field("Pillar", p.Pillar)
	c.field("Hook", p.Hook)
	c.field("CTA", p.CTA)
	c.field("Hashtags", post.FormatHashtags(p.Hashtags))
	c.field("Image idea", p.ImageIdea)
	c.line("")
	c.line("%s", p.PostBody)
	c.rule()
	c.flush(w)
}

func renderCandidates(w io.Writer, kind post.AssistKind, options []string) {
	c := newCard()
	c.line("%s suggestions:", kind)
	for i, opt := range options {
		c.line("  %d. %s", i+1, opt)
	}
	c.flush(w)
}

func renderPillars(w io.Writer, profileID string, pillars []pillar.Pillar) {
	c := newCard()
	c.line("Content pillars for profile %s:", profileID)
	if len(pillars) == 0 {
		c.line("  (none)")
	}
	for _, p := range pillars {
		c.line("  [%s] %s", p.ID, p.Name)
	}
	c.flush(w)
}

func renderDraft(w io.Writer, d brandprofile.Draft) {
	c := newCard()
	c.rule()
	c.line("%s", d.Name)
	c.field("Roles", strings.Join(roleNames(d.Roles), ", "))
	c.field("Primary role", d.PrimaryRole)
	c.field("Goals", strings.Join(d.Goals, ", "))
	c.field("Frequency", frequencyLabel(d.PostingFrequency))
	c.field("Pillars", strings.Join(d.ContentPillars, ", "))
	c.field("Tone", toneLine(d.ToneProfile))
	c.field("Admired", strings.Join(d.AdmiredCreators, ", "))
	c.field("Beliefs", strings.Join(d.Beliefs, "; "))
	c.field("Avoid", strings.Join(d.DontSoundLike, ", "))
	c.field("Off limits", strings.Join(d.OffLimitTopics, ", "))
	c.field("Additional", d.AdditionalInfo)
	c.rule()
	c.flush(w)
}

func renderProfileForm(w io.Writer, profileID string, f usecase.ProfileForm) {
	c := newCard()
	c.rule()
	c.line("Editing profile %s", profileID)
	c.field("Name", f.Name)
	c.field("Goals", strings.Join(f.Goals, ", "))
	c.field("Frequency", frequencyLabel(f.PostingFrequency))
	c.field("Pillars", strings.Join(f.Pillars, ", "))
	c.field("Tone", toneLine(f.ToneProfile))
	c.field("Admired", strings.Join(f.AdmiredCreators, ", "))
	c.field("Beliefs", strings.Join(brandprofile.CompactList(f.Beliefs), "; "))
	c.field("Avoid", f.DontSoundLike)
	c.field("Off limits", f.OffLimitTopics)
	c.field("Additional", f.AdditionalInfo)
	c.rule()
	c.flush(w)
}

func renderStep(w io.Writer, s onboarding.State) {
	info, _ := onboarding.Step(s.Step)
	c := newCard()
	c.line("")
	c.line("Step %d of %d (%.0f%%): %s", s.Step, onboarding.TotalSteps, s.Progress(), info.Title)
	c.line("%s", info.Description)
	c.flush(w)
}

func renderRequirements(w io.Writer, reqs []usecase.Requirement) {
	c := newCard()
	for _, r := range reqs {
		mark := " "
		if r.Met {
			mark = "x"
		}
		c.line("  [%s] %s", mark, r.Text)
	}
	c.flush(w)
}

func toneLine(t brandprofile.ToneProfile) string {
	parts := make([]string, 0, len(brandprofile.ToneAxes))
	for _, axis := range brandprofile.ToneAxes {
		v, _ := t.Get(axis)
		parts = append(parts, fmt.Sprintf("%s=%d", axis, v))
	}
	return strings.Join(parts, " ")
}

func roleNames(roles []brandprofile.Role) []string {
	out := make([]string, 0, len(roles))
	for _, r := range roles {
		out = append(out, r.Name)
	}
	return out
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
