package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/content-brain/internal/domain/post"
	"github.com/riskibarqy/content-brain/internal/usecase"
)

// openCalendar runs the guard for the calendar page and loads it.
func (r *Runner) openCalendar(ctx context.Context, profileID string) (*usecase.CalendarView, error) {
	if err := required("profile", profileID); err != nil {
		return nil, err
	}
	if _, err := r.enter(ctx, usecase.CalendarRoute(profileID)); err != nil {
		return nil, err
	}
	return r.svc.Calendar.Open(ctx, profileID)
}

func (r *Runner) openPost(ctx context.Context, profileID, postID string) (*usecase.CalendarView, error) {
	if err := required("post", postID); err != nil {
		return nil, err
	}
	view, err := r.openCalendar(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if err := view.Select(postID); err != nil {
		return nil, err
	}
	return view, nil
}

func runCalendar(ctx context.Context, r *Runner, args []string) error {
	fs := r.flags("calendar")
	profileID := fs.String("profile", "", "brand profile id")
	postID := fs.String("post", "", "show one post in full")
	if err := parse(fs, args); err != nil {
		return err
	}

	view, err := r.openCalendar(ctx, *profileID)
	if err != nil {
		return err
	}
	if *postID == "" {
		renderCalendar(r.stdout, view)
		return nil
	}
	p, ok := view.Find(*postID)
	if !ok {
		return fmt.Errorf("%w: post %s", usecase.ErrNotFound, *postID)
	}
	renderPost(r.stdout, p)
	return nil
}

func runApprove(ctx context.Context, r *Runner, args []string) error {
	fs := r.flags("approve")
	profileID := fs.String("profile", "", "brand profile id")
	postID := fs.String("post", "", "post id")
	if err := parse(fs, args); err != nil {
		return err
	}
	if err := required("post", *postID); err != nil {
		return err
	}

	view, err := r.openCalendar(ctx, *profileID)
	if err != nil {
		return err
	}
	if err := view.Approve(ctx, *postID); err != nil {
		return fmt.Errorf("%w: %w", errReported, err)
	}
	_, _ = fmt.Fprintf(r.stdout, "%d of %d posts approved\n", view.ApprovedCount(), len(view.Posts()))
	return nil
}

func runApproveAll(ctx context.Context, r *Runner, args []string) error {
	fs := r.flags("approve-all")
	profileID := fs.String("profile", "", "brand profile id")
	if err := parse(fs, args); err != nil {
		return err
	}

	view, err := r.openCalendar(ctx, *profileID)
	if err != nil {
		return err
	}
	result, err := view.ApproveAll(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", errReported, err)
	}
	_, _ = fmt.Fprintf(r.stdout, "approved %d, failed %d\n", result.Approved, result.Failed)
	return nil
}

func runEdit(ctx context.Context, r *Runner, args []string) error {
	fs := r.flags("edit")
	profileID := fs.String("profile", "", "brand profile id")
	postID := fs.String("post", "", "post id")
	hook := fs.String("hook", "", "new hook")
	body := fs.String("body", "", "new post body")
	cta := fs.String("cta", "", "new call to action")
	hashtags := fs.String("hashtags", "", "space separated hashtags")
	imageIdea := fs.String("image-idea", "", "new image idea")
	if err := parse(fs, args); err != nil {
		return err
	}
	set := visited(fs)
	if !set["hook"] && !set["body"] && !set["cta"] && !set["hashtags"] && !set["image-idea"] {
		return usagef("nothing to change: pass at least one of --hook, --body, --cta, --hashtags, --image-idea")
	}

	view, err := r.openPost(ctx, *profileID, *postID)
	if err != nil {
		return err
	}
	if err := view.Edit(func(u *post.Update) {
		if set["hook"] {
			u.Hook = hook
		}
		if set["body"] {
			u.PostBody = body
		}
		if set["cta"] {
			u.CTA = cta
		}
		if set["hashtags"] {
			u.Hashtags = post.ParseHashtags(*hashtags)
		}
		if set["image-idea"] {
			u.ImageIdea = imageIdea
		}
	}); err != nil {
		return err
	}

	saved, err := view.SaveEdit(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", errReported, err)
	}
	renderPost(r.stdout, saved)
	return nil
}

func runRegenerate(ctx context.Context, r *Runner, args []string) error {
	fs := r.flags("regenerate")
	profileID := fs.String("profile", "", "brand profile id")
	postID := fs.String("post", "", "post id")
	if err := parse(fs, args); err != nil {
		return err
	}

	view, err := r.openPost(ctx, *profileID, *postID)
	if err != nil {
		return err
	}
	fresh, err := view.Regenerate(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", errReported, err)
	}
	renderPost(r.stdout, fresh)
	return nil
}

func runOptimize(ctx context.Context, r *Runner, args []string) error {
	fs := r.flags("optimize")
	profileID := fs.String("profile", "", "brand profile id")
	postID := fs.String("post", "", "post id")
	rawKind := fs.String("kind", "", "one of "+assistKindList())
	style := fs.String("style", "", "style for transform-style: "+strings.Join(post.Styles, ", "))
	apply := fs.Int("apply", 0, "apply suggestion N and save the post")
	if err := parse(fs, args); err != nil {
		return err
	}
	kind, err := post.ParseAssistKind(*rawKind)
	if err != nil {
		return usagef(err.Error())
	}

	view, err := r.openPost(ctx, *profileID, *postID)
	if err != nil {
		return err
	}
	options, err := view.Optimize(ctx, kind, *style)
	if err != nil {
		return fmt.Errorf("%w: %w", errReported, err)
	}
	renderCandidates(r.stdout, kind, options)
	if *apply == 0 {
		return nil
	}

	if err := view.ApplyCandidate(kind, *apply-1); err != nil {
		return err
	}
	saved, err := view.SaveEdit(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", errReported, err)
	}
	renderPost(r.stdout, saved)
	return nil
}

func runDeletePost(ctx context.Context, r *Runner, args []string) error {
	fs := r.flags("delete-post")
	profileID := fs.String("profile", "", "brand profile id")
	postID := fs.String("post", "", "post id")
	if err := parse(fs, args); err != nil {
		return err
	}
	if err := required("post", *postID); err != nil {
		return err
	}

	view, err := r.openCalendar(ctx, *profileID)
	if err != nil {
		return err
	}
	if err := view.Delete(ctx, *postID); err != nil {
		return fmt.Errorf("%w: %w", errReported, err)
	}
	_, _ = fmt.Fprintf(r.stdout, "%d posts left\n", len(view.Posts()))
	return nil
}

func assistKindList() string {
	names := make([]string, 0, len(post.AssistKinds))
	for _, k := range post.AssistKinds {
		names = append(names, string(k))
	}
	return strings.Join(names, ", ")
}
