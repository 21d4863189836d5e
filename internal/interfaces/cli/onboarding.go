package cli

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/riskibarqy/content-brain/internal/domain/brandprofile"
	"github.com/riskibarqy/content-brain/internal/domain/onboarding"
	"github.com/riskibarqy/content-brain/internal/usecase"
)

func runOnboarding(ctx context.Context, r *Runner, args []string) error {
	if err := parse(r.flags("onboarding"), args); err != nil {
		return err
	}
	if _, err := r.enter(ctx, usecase.RouteOnboarding); err != nil {
		return err
	}

	w := r.svc.Onboarding.Start()
	for {
		state := w.State()
		renderStep(r.stdout, state)

		if state.Step == onboarding.StepReview {
			return r.review(ctx, w)
		}
		if err := r.askStep(w, state); err != nil {
			return err
		}
		if err := w.Next(); err != nil {
			_, _ = fmt.Fprintf(r.stdout, "  %s\n", stepHint(state.Step))
		}
	}
}

func (r *Runner) review(ctx context.Context, w *usecase.Wizard) error {
	draft, err := w.Preview()
	if err != nil {
		return err
	}
	renderDraft(r.stdout, draft)

	ok, err := r.prompt.Confirm("Create this brand profile?")
	if err != nil {
		return err
	}
	if !ok {
		_, _ = fmt.Fprintln(r.stdout, "Cancelled. Nothing was saved.")
		return nil
	}
	result, err := w.Submit(ctx)
	if err != nil {
		_, _ = fmt.Fprintf(r.stdout, "Next: contentbrain %s\n", routeCommand(result.Redirect))
		return fmt.Errorf("%w: %w", errReported, err)
	}
	_, _ = fmt.Fprintf(r.stdout, "Created [%s] %s. Next: contentbrain generate --profile %s\n",
		result.Profile.ID, result.Profile.Name, result.Profile.ID)
	return nil
}

func (r *Runner) askStep(w *usecase.Wizard, state onboarding.State) error {
	switch state.Step {
	case onboarding.StepPersonalInfo:
		name, err := r.prompt.Ask("Your name", state.Name)
		if err != nil {
			return err
		}
		return w.Update(func(s *onboarding.State) error {
			s.Name = name
			return nil
		})

	case onboarding.StepRoles:
		picked, err := r.prompt.Choose("Toggle roles (e.g. 1,3)", brandprofile.RoleOptions, func(o string) bool {
			return slices.Contains(state.SelectedRoles, o)
		})
		if err != nil {
			return err
		}
		_ = w.Update(func(s *onboarding.State) error {
			for _, i := range picked {
				s.ToggleRole(brandprofile.RoleOptions[i-1])
			}
			return nil
		})
		return r.askRoleDetails(w)

	case onboarding.StepGoals:
		picked, err := r.prompt.Choose("Toggle goals", brandprofile.GoalOptions, func(o string) bool {
			return slices.Contains(state.Goals, o)
		})
		if err != nil {
			return err
		}
		return w.Update(func(s *onboarding.State) error {
			for _, i := range picked {
				s.ToggleGoal(brandprofile.GoalOptions[i-1])
			}
			return nil
		})

	case onboarding.StepFrequency:
		for _, opt := range brandprofile.FrequencyOptions {
			_, _ = fmt.Fprintf(r.stdout, "  %2d  %s (%s)\n", opt.Value, opt.Label, opt.Description)
		}
		v, err := r.prompt.AskInt("Posts per month", state.PostingFrequency)
		if err != nil {
			return err
		}
		if err := w.Update(func(s *onboarding.State) error { return s.SetFrequency(v) }); err != nil {
			_, _ = fmt.Fprintf(r.stdout, "  %d is not one of the options\n", v)
		}
		return nil

	case onboarding.StepPillars:
		return r.askPillars(w, state)

	case onboarding.StepTone:
		for _, axis := range brandprofile.ToneAxes {
			cur, _ := state.ToneProfile.Get(axis)
			v, err := r.prompt.AskInt(fmt.Sprintf("%s (%d-%d)", axis, brandprofile.ToneMin, brandprofile.ToneMax), cur)
			if err != nil {
				return err
			}
			if err := w.Update(func(s *onboarding.State) error { return s.SetTone(axis, v) }); err != nil {
				_, _ = fmt.Fprintf(r.stdout, "  keeping %s=%d\n", axis, cur)
			}
		}
		return nil

	case onboarding.StepAdvanced:
		return r.askAdvanced(w, state)
	}
	return nil
}

func (r *Runner) askRoleDetails(w *usecase.Wizard) error {
	state := w.State()
	for _, role := range state.SelectedRoles {
		detail := state.RoleDetails.Get(role)
		company, err := r.prompt.Ask(role+": company or project", detail.CompanyName)
		if err != nil {
			return err
		}
		audience, err := r.prompt.Ask(role+": audience", detail.Audience)
		if err != nil {
			return err
		}
		importance, err := r.prompt.Ask(role+": importance (high/medium/low)", string(detail.Importance))
		if err != nil {
			return err
		}
		detail.CompanyName = company
		detail.Audience = audience
		detail.Importance = brandprofile.Importance(strings.ToLower(importance))
		if err := w.Update(func(s *onboarding.State) error { return s.SetRoleDetail(role, detail) }); err != nil {
			_, _ = fmt.Fprintf(r.stdout, "  %q is not an importance, keeping the previous details\n", importance)
		}
	}
	return nil
}

func (r *Runner) askPillars(w *usecase.Wizard, state onboarding.State) error {
	picked, err := r.prompt.Choose("Toggle pillars", brandprofile.PillarOptions, func(o string) bool {
		return slices.Contains(state.ContentPillars, o)
	})
	if err != nil {
		return err
	}
	_ = w.Update(func(s *onboarding.State) error {
		for _, i := range picked {
			if !s.TogglePillar(brandprofile.PillarOptions[i-1]) {
				_, _ = fmt.Fprintf(r.stdout, "  Maximum %d pillars\n", brandprofile.MaxPillars)
			}
		}
		return nil
	})

	for w.State().PillarCount() < brandprofile.MaxPillars {
		custom, err := r.prompt.Ask("Custom pillar (blank to continue)", "")
		if err != nil {
			return err
		}
		if custom == "" {
			break
		}
		if err := w.Update(func(s *onboarding.State) error { return s.AddCustomPillar(custom) }); err != nil {
			_, _ = fmt.Fprintf(r.stdout, "  %v\n", err)
		}
	}
	_, _ = fmt.Fprintf(r.stdout, "  %d of %d-%d pillars selected\n", w.State().PillarCount(), onboarding.MinPillars, brandprofile.MaxPillars)
	return nil
}

func (r *Runner) askAdvanced(w *usecase.Wizard, state onboarding.State) error {
	creators, err := r.prompt.Ask("Creators you admire (comma separated)", brandprofile.JoinList(brandprofile.CompactList(state.AdmiredCreators)))
	if err != nil {
		return err
	}
	beliefs := slices.Clone(state.Beliefs)
	for i := range beliefs {
		if beliefs[i], err = r.prompt.Ask("Belief "+strconv.Itoa(i+1), beliefs[i]); err != nil {
			return err
		}
	}
	avoid, err := r.prompt.Ask("Don't sound like", state.DontSoundLike)
	if err != nil {
		return err
	}
	offLimits, err := r.prompt.Ask("Off-limit topics", state.OffLimitTopics)
	if err != nil {
		return err
	}
	pastPost, err := r.prompt.Ask("Paste a past post (optional)", state.PastPosts[0])
	if err != nil {
		return err
	}
	additional, err := r.prompt.Ask("Anything else", state.AdditionalInfo)
	if err != nil {
		return err
	}

	return w.Update(func(s *onboarding.State) error {
		list := brandprofile.SplitList(creators)
		if len(list) > brandprofile.MaxAdmiredCreators {
			list = list[:brandprofile.MaxAdmiredCreators]
		}
		if len(list) == 0 {
			list = []string{""}
		}
		s.AdmiredCreators = list
		for i, b := range beliefs {
			if err := s.SetBelief(i, b); err != nil {
				return err
			}
		}
		s.DontSoundLike = avoid
		s.OffLimitTopics = offLimits
		s.PastPosts[0] = pastPost
		s.AdditionalInfo = additional
		return nil
	})
}

func stepHint(step int) string {
	switch step {
	case onboarding.StepPersonalInfo:
		return fmt.Sprintf("Please enter a name of at least %d characters.", onboarding.MinNameLength)
	case onboarding.StepRoles:
		return "Pick at least one role."
	case onboarding.StepGoals:
		return "Pick at least one goal."
	case onboarding.StepFrequency:
		return "Pick a posting frequency."
	case onboarding.StepPillars:
		return fmt.Sprintf("Pick between %d and %d pillars.", onboarding.MinPillars, brandprofile.MaxPillars)
	default:
		return "This step is incomplete."
	}
}
