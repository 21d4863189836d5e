package post

import (
	"errors"
	"reflect"
	"testing"
)

func TestStatus_CanTransition(t *testing.T) {
	tests := []struct {
		from, to Status
		want     bool
	}{
		{StatusDraft, StatusDraft, true},
		{StatusDraft, StatusApproved, true},
		{StatusDraft, StatusPublished, true},
		{StatusApproved, StatusScheduled, true},
		{StatusScheduled, StatusPublished, true},
		{StatusApproved, StatusDraft, false},
		{StatusPublished, StatusDraft, false},
		{StatusPublished, StatusScheduled, false},
		{StatusDraft, "archived", false},
	}
	for _, tc := range tests {
		if got := tc.from.CanTransition(tc.to); got != tc.want {
			t.Fatalf("%s -> %s: got %v want %v", tc.from, tc.to, got, tc.want)
		}
	}

	if _, err := StatusPublished.Transition(StatusDraft); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestPost_ApplyKeepsUntouchedFields(t *testing.T) {
	original := Post{
		ID:       "7",
		Day:      7,
		Pillar:   "Founder journey",
		Hook:     "old hook",
		Hashtags: []string{"#startup", "#saas"},
		Status:   StatusDraft,
	}

	hook := "new hook"
	updated := original.Apply(Update{Hook: &hook})
	if updated.Hook != "new hook" {
		t.Fatalf("expected hook update, got %q", updated.Hook)
	}
	if !reflect.DeepEqual(updated.Hashtags, original.Hashtags) {
		t.Fatalf("expected hashtags preserved, got %v", updated.Hashtags)
	}

	updated = original.Apply(Update{Hashtags: ParseHashtags("#a #b")})
	if !reflect.DeepEqual(updated.Hashtags, []string{"#a", "#b"}) {
		t.Fatalf("unexpected hashtags: %v", updated.Hashtags)
	}
	if updated.Day != 7 || updated.Pillar != "Founder journey" {
		t.Fatalf("expected day and pillar preserved, got %d %q", updated.Day, updated.Pillar)
	}
}

func TestParseHashtags_CollapsesWhitespace(t *testing.T) {
	got := ParseHashtags("  #a   #b ")
	if !reflect.DeepEqual(got, []string{"#a", "#b"}) {
		t.Fatalf("unexpected hashtags: %v", got)
	}
	if FormatHashtags(got) != "#a #b" {
		t.Fatalf("unexpected format: %q", FormatHashtags(got))
	}
}

func TestApplyCandidate(t *testing.T) {
	buf, err := ApplyCandidate(Update{}, AssistHashtags, "#growth #b2b")
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if !reflect.DeepEqual(buf.Hashtags, []string{"#growth", "#b2b"}) {
		t.Fatalf("unexpected hashtags: %v", buf.Hashtags)
	}

	buf, _ = ApplyCandidate(buf, AssistTransformStyle, "rewritten body")
	if buf.PostBody == nil || *buf.PostBody != "rewritten body" {
		t.Fatalf("expected post body replaced")
	}
	if _, err := ApplyCandidate(buf, "poem", "x"); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
}

func TestSortByDay(t *testing.T) {
	posts := []Post{{ID: "c", Day: 3}, {ID: "a", Day: 1}, {ID: "b", Day: 2}}
	SortByDay(posts)
	if posts[0].ID != "a" || posts[2].ID != "c" {
		t.Fatalf("unexpected order: %+v", posts)
	}
	if CountByStatus([]Post{{Status: StatusApproved}, {Status: StatusDraft}}, StatusApproved) != 1 {
		t.Fatalf("unexpected approved count")
	}
}
