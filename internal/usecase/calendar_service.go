package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/panjf2000/ants/v2"

	"github.com/riskibarqy/content-brain/internal/domain/post"
	"github.com/riskibarqy/content-brain/internal/platform/cache"
	"github.com/riskibarqy/content-brain/internal/platform/logging"
)

const defaultBatchWorkers = 4

type CalendarService struct {
	posts     post.Repository
	assistant post.Assistant
	fallback  *MockFallback
	notifier  Notifier
	store     *cache.Store
	logger    *logging.Logger
	workers   int
}

func NewCalendarService(
	posts post.Repository,
	assistant post.Assistant,
	fallback *MockFallback,
	notifier Notifier,
	store *cache.Store,
	logger *logging.Logger,
	workers int,
) *CalendarService {
	if store == nil {
		store = cache.NewDisabled()
	}
	if workers <= 0 {
		workers = defaultBatchWorkers
	}
	return &CalendarService{
		posts:     posts,
		assistant: assistant,
		fallback:  fallback,
		notifier:  notifierOrNop(notifier),
		store:     store,
		logger:    logging.OrDefault(logger).With("component", "calendar"),
		workers:   workers,
	}
}

// Open loads the calendar of a profile ordered by day. When the API is
// unreachable and the fallback is on, the view works on mock posts.
func (s *CalendarService) Open(ctx context.Context, profileID string) (*CalendarView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CalendarService.Open")
	defer span.End()

	if profileID == "" {
		return nil, fmt.Errorf("%w: profile id is required", ErrInvalidInput)
	}

	repo := s.posts
	offline := false
	posts, err := cache.Load(ctx, s.store, postListKey(profileID), func(ctx context.Context) ([]post.Post, error) {
		return s.posts.ListByProfile(ctx, profileID)
	})
	if err != nil {
		if !IsUnreachable(err) || s.fallback == nil {
			recordSpanError(span, err)
			return nil, fmt.Errorf("list posts: %w", err)
		}
		s.logger.WarnContext(ctx, "post listing unreachable, using mock data", "brand_profile_id", profileID, "error", err)
		repo = s.fallback.Posts
		offline = true
		posts, err = repo.ListByProfile(ctx, profileID)
		if err != nil {
			return nil, fmt.Errorf("list mock posts: %w", err)
		}
	}

	posts = slices.Clone(posts)
	post.SortByDay(posts)
	return &CalendarView{
		svc:        s,
		repo:       repo,
		profileID:  profileID,
		offline:    offline,
		posts:      posts,
		candidates: make(map[post.AssistKind][]string),
	}, nil
}

// CalendarView is the in-memory post list of one calendar plus its editor.
// Remote calls run without holding the lock; the last response wins.
type CalendarView struct {
	svc       *CalendarService
	repo      post.Repository
	profileID string
	offline   bool

	mu           sync.Mutex
	posts        []post.Post
	selected     *post.Post
	buffer       post.Update
	regenerating bool
	optimizing   post.AssistKind
	candidates   map[post.AssistKind][]string
}

func (v *CalendarView) ProfileID() string { return v.profileID }

func (v *CalendarView) Offline() bool { return v.offline }

func (v *CalendarView) Posts() []post.Post {
	v.mu.Lock()
	defer v.mu.Unlock()
	return slices.Clone(v.posts)
}

func (v *CalendarView) ApprovedCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return post.CountByStatus(v.posts, post.StatusApproved)
}

func (v *CalendarView) Find(postID string) (post.Post, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	i := v.indexOf(postID)
	if i < 0 {
		return post.Post{}, false
	}
	return v.posts[i], true
}

// Select opens the editor on a post with a buffer holding its editable fields.
func (v *CalendarView) Select(postID string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	i := v.indexOf(postID)
	if i < 0 {
		return fmt.Errorf("%w: post %s", ErrNotFound, postID)
	}
	selected := v.posts[i]
	v.selected = &selected
	v.buffer = bufferFor(selected)
	clear(v.candidates)
	return nil
}

func (v *CalendarView) CloseEditor() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.closeEditorLocked()
}

// Selected returns the post under edit with the buffer applied.
func (v *CalendarView) Selected() (post.Post, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.selected == nil {
		return post.Post{}, false
	}
	return v.selected.Apply(v.buffer), true
}

func (v *CalendarView) Buffer() post.Update {
	v.mu.Lock()
	defer v.mu.Unlock()
	return cloneUpdate(v.buffer)
}

// Edit mutates the open edit buffer. Nothing is persisted until SaveEdit.
func (v *CalendarView) Edit(fn func(*post.Update)) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.selected == nil {
		return fmt.Errorf("%w: no post is open for editing", ErrInvalidInput)
	}
	fn(&v.buffer)
	v.buffer.Status = nil
	return nil
}

func (v *CalendarView) IsRegenerating() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.regenerating
}

func (v *CalendarView) Optimizing() post.AssistKind {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.optimizing
}

// Approve marks a post approved locally, then persists it. The local change
// is rolled back when the update call fails.
func (v *CalendarView) Approve(ctx context.Context, postID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.CalendarView.Approve")
	defer span.End()

	previous, err := v.markApproved(postID)
	if err != nil {
		v.svc.notifier.Notify(ctx, failureToast("Approve Failed", MessageOr(err, "This post can no longer be approved.")))
		return err
	}
	if previous.Status == post.StatusApproved {
		return nil
	}

	saved, err := v.persistStatus(ctx, postID, post.StatusApproved)
	if err != nil {
		recordSpanError(span, err)
		v.rollback(previous)
		v.svc.logger.WarnContext(ctx, "approve post failed, rolled back", "post_id", postID, "error", err)
		v.svc.notifier.Notify(ctx, failureToast("Approve Failed", MessageOr(err, "Could not approve post. Please try again.")))
		return err
	}

	v.replace(saved, false)
	v.svc.notifier.Notify(ctx, toast("Post Approved", "Ready for scheduling!"))
	return nil
}

type ApproveAllResult struct {
	Approved int
	Failed   int
}

// ApproveAll approves every draft with a bounded worker pool. Each post is
// rolled back on its own when its update fails.
func (v *CalendarView) ApproveAll(ctx context.Context) (ApproveAllResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CalendarView.ApproveAll")
	defer span.End()

	v.mu.Lock()
	drafts := make([]post.Post, 0, len(v.posts))
	for i := range v.posts {
		if v.posts[i].Status != post.StatusDraft {
			continue
		}
		drafts = append(drafts, v.posts[i])
		v.posts[i].Status = post.StatusApproved
	}
	v.mu.Unlock()

	if len(drafts) == 0 {
		v.svc.notifier.Notify(ctx, toast("Nothing to approve", "Every post is already approved."))
		return ApproveAllResult{}, nil
	}

	pool, err := ants.NewPool(min(v.svc.workers, len(drafts)))
	if err != nil {
		for _, p := range drafts {
			v.rollback(p)
		}
		return ApproveAllResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var approved, failed atomic.Int32
	var workers sync.WaitGroup
	var causesMu sync.Mutex
	var causes []error
	addCause := func(err error) {
		causesMu.Lock()
		causes = append(causes, err)
		causesMu.Unlock()
	}
	for _, draft := range drafts {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			saved, err := v.persistStatus(ctx, draft.ID, post.StatusApproved)
			if err != nil {
				failed.Add(1)
				addCause(fmt.Errorf("post %s: %w", draft.ID, err))
				v.rollback(draft)
				v.svc.logger.WarnContext(ctx, "approve post in batch failed", "post_id", draft.ID, "error", err)
				return
			}
			approved.Add(1)
			v.replace(saved, false)
		}); err != nil {
			workers.Done()
			failed.Add(1)
			addCause(fmt.Errorf("post %s: submit approve: %w", draft.ID, err))
			v.rollback(draft)
		}
	}
	workers.Wait()

	result := ApproveAllResult{Approved: int(approved.Load()), Failed: int(failed.Load())}
	if result.Failed > 0 {
		v.svc.notifier.Notify(ctx, failureToast("Some posts were not approved",
			fmt.Sprintf("%d approved, %d failed. Please try again.", result.Approved, result.Failed)))
		return result, fmt.Errorf("%d of %d posts failed to approve: %w", result.Failed, len(drafts), errors.Join(causes...))
	}

	v.svc.notifier.Notify(ctx, toast("All Posts Approved", fmt.Sprintf("%d posts are ready for scheduling.", result.Approved)))
	return result, nil
}

// SaveEdit persists the edit buffer. On failure the editor stays open with
// the buffer intact.
func (v *CalendarView) SaveEdit(ctx context.Context) (post.Post, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CalendarView.SaveEdit")
	defer span.End()

	v.mu.Lock()
	if v.selected == nil {
		v.mu.Unlock()
		return post.Post{}, fmt.Errorf("%w: no post is open for editing", ErrInvalidInput)
	}
	postID := v.selected.ID
	update := cloneUpdate(v.buffer)
	v.mu.Unlock()

	saved, err := v.repo.Update(ctx, postID, update)
	if err != nil {
		recordSpanError(span, err)
		v.svc.logger.WarnContext(ctx, "save post failed", "post_id", postID, "error", err)
		v.svc.notifier.Notify(ctx, failureToast("Update Failed", MessageOr(err, "Could not save changes. Please try again.")))
		return post.Post{}, fmt.Errorf("update post: %w", err)
	}

	v.replace(saved, true)
	v.svc.store.Invalidate(ctx, postListKey(v.profileID))
	v.svc.notifier.Notify(ctx, toast("Post Updated", "Your changes have been saved."))
	return saved, nil
}

// Regenerate replaces the open post's content with a fresh AI version and
// reloads the buffer from it. Id, day and pillar are kept.
func (v *CalendarView) Regenerate(ctx context.Context) (post.Post, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CalendarView.Regenerate")
	defer span.End()

	v.mu.Lock()
	if v.selected == nil {
		v.mu.Unlock()
		return post.Post{}, fmt.Errorf("%w: no post is open for editing", ErrInvalidInput)
	}
	if v.regenerating {
		v.mu.Unlock()
		return post.Post{}, ErrBusy
	}
	v.regenerating = true
	original := *v.selected
	v.mu.Unlock()

	defer func() {
		v.mu.Lock()
		v.regenerating = false
		v.mu.Unlock()
	}()

	fresh, err := v.repo.Regenerate(ctx, original.ID, original.Pillar)
	if err != nil {
		recordSpanError(span, err)
		v.svc.notifier.Notify(ctx, failureToast("Regeneration Failed", MessageOr(err, "Could not regenerate post. Please try again.")))
		return post.Post{}, fmt.Errorf("regenerate post: %w", err)
	}
	fresh.ID = original.ID
	fresh.BrandProfileID = original.BrandProfileID
	fresh.Day = original.Day
	fresh.Pillar = original.Pillar

	v.mu.Lock()
	if i := v.indexOf(fresh.ID); i >= 0 {
		v.posts[i] = fresh
	}
	if v.selected != nil && v.selected.ID == fresh.ID {
		selected := fresh
		v.selected = &selected
		v.buffer = bufferFor(fresh)
	}
	v.mu.Unlock()

	v.svc.store.Invalidate(ctx, postListKey(v.profileID))
	v.svc.notifier.Notify(ctx, toast("Post Regenerated!", "Fresh content generated with AI."))
	return fresh, nil
}

// Optimize asks the assistant for candidates of one kind. Only one kind runs
// at a time; results are kept until the editor closes or another post opens.
func (v *CalendarView) Optimize(ctx context.Context, kind post.AssistKind, style string) ([]string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CalendarView.Optimize")
	defer span.End()

	if _, err := post.ParseAssistKind(string(kind)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if kind == post.AssistTransformStyle && !slices.Contains(post.Styles, style) {
		return nil, fmt.Errorf("%w: unknown style %q", ErrInvalidInput, style)
	}
	if v.svc.assistant == nil {
		return nil, fmt.Errorf("%w: AI assist is not configured", ErrDependencyUnavailable)
	}

	v.mu.Lock()
	if v.selected == nil {
		v.mu.Unlock()
		return nil, fmt.Errorf("%w: no post is open for editing", ErrInvalidInput)
	}
	if v.optimizing != "" {
		v.mu.Unlock()
		return nil, fmt.Errorf("%w: %s is still running", ErrBusy, v.optimizing)
	}
	v.optimizing = kind
	current := v.selected.Apply(v.buffer)
	v.mu.Unlock()

	defer func() {
		v.mu.Lock()
		v.optimizing = ""
		v.mu.Unlock()
	}()

	req := post.AssistRequest{
		BrandProfileID: v.profileID,
		Role:           current.Role,
		PostBody:       current.PostBody,
	}
	if kind == post.AssistTransformStyle {
		req.Style = style
	}

	options, err := v.svc.assistant.Assist(ctx, kind, req)
	if err != nil {
		recordSpanError(span, err)
		v.svc.notifier.Notify(ctx, failureToast("Optimization Failed", MessageOr(err, assistFailureMessage(kind))))
		return nil, fmt.Errorf("assist %s: %w", kind, err)
	}

	v.mu.Lock()
	v.candidates[kind] = slices.Clone(options)
	v.mu.Unlock()
	return options, nil
}

func (v *CalendarView) Candidates(kind post.AssistKind) []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return slices.Clone(v.candidates[kind])
}

// ApplyCandidate copies one candidate into the edit buffer.
func (v *CalendarView) ApplyCandidate(kind post.AssistKind, index int) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.selected == nil {
		return fmt.Errorf("%w: no post is open for editing", ErrInvalidInput)
	}
	options := v.candidates[kind]
	if index < 0 || index >= len(options) {
		return fmt.Errorf("%w: no %s candidate at %d", ErrInvalidInput, kind, index)
	}
	buffer, err := post.ApplyCandidate(v.buffer, kind, options[index])
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	v.buffer = buffer
	return nil
}

func (v *CalendarView) Delete(ctx context.Context, postID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.CalendarView.Delete")
	defer span.End()

	if err := v.repo.Delete(ctx, postID); err != nil {
		recordSpanError(span, err)
		v.svc.notifier.Notify(ctx, failureToast("Error", MessageOr(err, "Failed to delete post")))
		return fmt.Errorf("delete post: %w", err)
	}

	v.mu.Lock()
	if i := v.indexOf(postID); i >= 0 {
		v.posts = slices.Delete(v.posts, i, i+1)
	}
	if v.selected != nil && v.selected.ID == postID {
		v.closeEditorLocked()
	}
	v.mu.Unlock()

	v.svc.store.Invalidate(ctx, postListKey(v.profileID))
	v.svc.notifier.Notify(ctx, toast("Post deleted", "The post has been removed."))
	return nil
}

func (v *CalendarView) markApproved(postID string) (post.Post, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	i := v.indexOf(postID)
	if i < 0 {
		return post.Post{}, fmt.Errorf("%w: post %s", ErrNotFound, postID)
	}
	previous := v.posts[i]
	next, err := previous.Status.Transition(post.StatusApproved)
	if err != nil {
		return post.Post{}, err
	}
	v.posts[i].Status = next
	if v.selected != nil && v.selected.ID == postID {
		v.selected.Status = next
	}
	return previous, nil
}

func (v *CalendarView) persistStatus(ctx context.Context, postID string, status post.Status) (post.Post, error) {
	saved, err := v.repo.Update(ctx, postID, post.Update{Status: &status})
	if err != nil {
		return post.Post{}, fmt.Errorf("update post status: %w", err)
	}
	v.svc.store.Invalidate(ctx, postListKey(v.profileID))
	return saved, nil
}

func (v *CalendarView) rollback(previous post.Post) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if i := v.indexOf(previous.ID); i >= 0 {
		v.posts[i].Status = previous.Status
	}
	if v.selected != nil && v.selected.ID == previous.ID {
		v.selected.Status = previous.Status
	}
}

// replace swaps in a saved post. closeEditor closes the editor when it is open on it.
func (v *CalendarView) replace(saved post.Post, closeEditor bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if i := v.indexOf(saved.ID); i >= 0 {
		v.posts[i] = saved
	}
	if v.selected == nil || v.selected.ID != saved.ID {
		return
	}
	if closeEditor {
		v.closeEditorLocked()
		return
	}
	v.selected.Status = saved.Status
}

func (v *CalendarView) closeEditorLocked() {
	v.selected = nil
	v.buffer = post.Update{}
	clear(v.candidates)
}

func (v *CalendarView) indexOf(postID string) int {
	return slices.IndexFunc(v.posts, func(p post.Post) bool { return p.ID == postID })
}

func bufferFor(p post.Post) post.Update {
	hook, body, cta, idea := p.Hook, p.PostBody, p.CTA, p.ImageIdea
	hashtags := slices.Clone(p.Hashtags)
	if hashtags == nil {
		hashtags = []string{}
	}
	return post.Update{
		Hook:      &hook,
		PostBody:  &body,
		CTA:       &cta,
		Hashtags:  hashtags,
		ImageIdea: &idea,
	}
}

func cloneUpdate(u post.Update) post.Update {
	out := post.Update{
		Hook:      clonePtr(u.Hook),
		PostBody:  clonePtr(u.PostBody),
		CTA:       clonePtr(u.CTA),
		ImageIdea: clonePtr(u.ImageIdea),
		Status:    clonePtr(u.Status),
	}
	if u.Hashtags != nil {
		out.Hashtags = slices.Clone(u.Hashtags)
	}
	return out
}

func clonePtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func assistFailureMessage(kind post.AssistKind) string {
	switch kind {
	case post.AssistHooks:
		return "Could not optimize hooks. Please try again."
	case post.AssistCTAs:
		return "Could not generate CTAs. Please try again."
	case post.AssistHashtags:
		return "Could not generate hashtags. Please try again."
	case post.AssistImageIdea:
		return "Could not generate an image idea. Please try again."
	default:
		return "Could not transform the post style. Please try again."
	}
}
