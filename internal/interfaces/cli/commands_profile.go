package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/riskibarqy/content-brain/internal/domain/brandprofile"
	"github.com/riskibarqy/content-brain/internal/usecase"
)

func runPillars(ctx context.Context, r *Runner, args []string) error {
	fs := r.flags("pillars")
	profileID := fs.String("profile", "", "brand profile id")
	if err := parse(fs, args); err != nil {
		return err
	}
	if err := required("profile", *profileID); err != nil {
		return err
	}
	if _, err := r.enter(ctx, usecase.ProfileEditRoute(*profileID)); err != nil {
		return err
	}

	pillars, err := r.svc.Pillars.List(ctx, *profileID)
	if err != nil {
		return err
	}
	renderPillars(r.stdout, *profileID, pillars)
	return nil
}

func runAddPillar(ctx context.Context, r *Runner, args []string) error {
	fs := r.flags("add-pillar")
	profileID := fs.String("profile", "", "brand profile id")
	name := fs.String("name", "", "pillar name")
	if err := parse(fs, args); err != nil {
		return err
	}
	if err := required("profile", *profileID); err != nil {
		return err
	}
	if _, err := r.enter(ctx, usecase.ProfileEditRoute(*profileID)); err != nil {
		return err
	}

	var err error
	if *name, err = r.value(*name, "Pillar name"); err != nil {
		return err
	}
	created, err := r.svc.Pillars.Create(ctx, *profileID, *name)
	if err != nil {
		return fmt.Errorf("%w: %w", errReported, err)
	}
	_, _ = fmt.Fprintf(r.stdout, "[%s] %s\n", created.ID, created.Name)
	return nil
}

func runDeletePillar(ctx context.Context, r *Runner, args []string) error {
	fs := r.flags("delete-pillar")
	profileID := fs.String("profile", "", "brand profile id")
	pillarID := fs.String("pillar", "", "pillar id")
	if err := parse(fs, args); err != nil {
		return err
	}
	if err := required("profile", *profileID); err != nil {
		return err
	}
	if err := required("pillar", *pillarID); err != nil {
		return err
	}
	if _, err := r.enter(ctx, usecase.ProfileEditRoute(*profileID)); err != nil {
		return err
	}

	if err := r.svc.Pillars.Delete(ctx, *profileID, *pillarID); err != nil {
		return fmt.Errorf("%w: %w", errReported, err)
	}
	return nil
}

func runEditProfile(ctx context.Context, r *Runner, args []string) error {
	fs := r.flags("edit-profile")
	profileID := fs.String("profile", "", "brand profile id")
	name := fs.String("name", "", "profile name")
	additional := fs.String("additional-info", "", "anything else the AI should know")
	frequency := fs.Int("frequency", 0, "posts per month: 3, 8, 12, 20 or 30")
	dontSoundLike := fs.String("dont-sound-like", "", "comma separated styles to avoid")
	offLimits := fs.String("off-limits", "", "comma separated topics to avoid")
	addPillar := fs.String("add-pillar", "", "add a custom pillar")
	addCreator := fs.String("add-creator", "", "add an admired creator")
	removeCreator := fs.Int("remove-creator", 0, "remove admired creator N")
	del := fs.Bool("delete", false, "delete the profile instead of editing it")
	var goals, pillars, tones, beliefs stringList
	fs.Var(&goals, "goal", "toggle a goal (repeatable)")
	fs.Var(&pillars, "pillar", "toggle a preset pillar (repeatable)")
	fs.Var(&tones, "tone", "set a tone slider as axis=value, e.g. boldToSafe=3 (repeatable)")
	fs.Var(&beliefs, "belief", "set belief N as N=text (repeatable)")
	if err := parse(fs, args); err != nil {
		return err
	}
	if err := required("profile", *profileID); err != nil {
		return err
	}
	if _, err := r.enter(ctx, usecase.ProfileEditRoute(*profileID)); err != nil {
		return err
	}

	edit, err := r.svc.ProfileEditor.Open(ctx, *profileID)
	if err != nil {
		return err
	}

	if *del {
		next, err := edit.Delete(ctx)
		if err != nil {
			return fmt.Errorf("%w: %w", errReported, err)
		}
		_, _ = fmt.Fprintf(r.stdout, "Next: contentbrain %s\n", routeCommand(next))
		return nil
	}

	set := visited(fs)
	if len(set) == 1 {
		renderProfileForm(r.stdout, edit.ProfileID(), edit.Form())
		return nil
	}

	edit.Update(func(f *usecase.ProfileForm) {
		if set["name"] {
			f.Name = *name
		}
		if set["additional-info"] {
			f.AdditionalInfo = *additional
		}
		if set["dont-sound-like"] {
			f.DontSoundLike = *dontSoundLike
		}
		if set["off-limits"] {
			f.OffLimitTopics = *offLimits
		}
	})
	for _, g := range goals {
		edit.ToggleGoal(g)
	}
	for _, p := range pillars {
		edit.TogglePillar(ctx, p)
	}
	if set["add-pillar"] && !edit.AddCustomPillar(*addPillar) {
		return usagef(fmt.Sprintf("cannot add pillar %q: blank, duplicate or already at %d pillars", *addPillar, brandprofile.MaxPillars))
	}
	if set["add-creator"] && !edit.AddCreator(*addCreator) {
		return usagef(fmt.Sprintf("cannot add creator %q: blank or already at %d creators", *addCreator, brandprofile.MaxAdmiredCreators))
	}
	if set["remove-creator"] && !edit.RemoveCreator(*removeCreator-1) {
		return usagef(fmt.Sprintf("no admired creator %d", *removeCreator))
	}
	if set["frequency"] {
		if err := edit.SetFrequency(*frequency); err != nil {
			return err
		}
	}
	for _, raw := range tones {
		axis, value, err := splitAssignment(raw)
		if err != nil {
			return err
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			return usagef(fmt.Sprintf("tone %s: %q is not a number", axis, value))
		}
		if err := edit.SetTone(brandprofile.ToneAxis(axis), n); err != nil {
			return err
		}
	}
	for _, raw := range beliefs {
		idx, value, err := splitAssignment(raw)
		if err != nil {
			return err
		}
		n, err := strconv.Atoi(idx)
		if err != nil {
			return usagef(fmt.Sprintf("belief index %q is not a number", idx))
		}
		if err := edit.SetBelief(n-1, value); err != nil {
			return err
		}
	}

	saved, next, err := edit.Save(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", errReported, err)
	}
	renderProfileForm(r.stdout, saved.ID, edit.Form())
	_, _ = fmt.Fprintf(r.stdout, "Next: contentbrain %s\n", routeCommand(next))
	return nil
}

func splitAssignment(raw string) (string, string, error) {
	key, value, ok := strings.Cut(raw, "=")
	if !ok || strings.TrimSpace(key) == "" {
		return "", "", usagef(fmt.Sprintf("expected key=value, got %q", raw))
	}
	return strings.TrimSpace(key), strings.TrimSpace(value), nil
}
