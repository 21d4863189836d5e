package brandprofile

import (
	"errors"
	"reflect"
	"testing"
)

func validDraft() Draft {
	return Draft{
		Name:             "Ada's Brand Profile",
		Roles:            []Role{{ID: "r1", Name: "SaaS Founder", Importance: ImportanceHigh}},
		PrimaryRole:      "SaaS Founder",
		Goals:            []string{"Build audience"},
		PostingFrequency: 12,
		ContentPillars:   []string{"Founder journey", "Wins & losses", "AI & Automation"},
		ToneProfile:      ToneProfile{CasualToFormal: 4, RawToPolished: 5, PunchyToStorytelling: 6, BoldToSafe: 4},
	}
}

func TestValidateDraft(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Draft)
		targetErr error
	}{
		{name: "valid draft", mutate: func(*Draft) {}},
		{name: "blank name", mutate: func(d *Draft) { d.Name = "  " }, targetErr: ErrNameRequired},
		{name: "primary role not in roles", mutate: func(d *Draft) { d.PrimaryRole = "Investor" }, targetErr: ErrPrimaryRoleMismatch},
		{name: "no roles skips primary check", mutate: func(d *Draft) { d.Roles = nil; d.PrimaryRole = "" }},
		{name: "bad importance", mutate: func(d *Draft) { d.Roles[0].Importance = "urgent" }, targetErr: ErrInvalidImportance},
		{name: "unsupported frequency", mutate: func(d *Draft) { d.PostingFrequency = 7 }, targetErr: ErrInvalidFrequency},
		{name: "no pillars", mutate: func(d *Draft) { d.ContentPillars = nil }, targetErr: ErrPillarCount},
		{
			name: "six pillars",
			mutate: func(d *Draft) {
				d.ContentPillars = []string{"a", "b", "c", "d", "e", "f"}
			},
			targetErr: ErrPillarCount,
		},
		{
			name: "duplicate pillar across preset and custom",
			mutate: func(d *Draft) {
				d.ContentPillars = []string{"Founder journey", "Founder journey"}
			},
			targetErr: ErrDuplicatePillar,
		},
		{name: "tone above max", mutate: func(d *Draft) { d.ToneProfile.BoldToSafe = 11 }, targetErr: ErrToneOutOfRange},
		{
			name: "too many admired creators",
			mutate: func(d *Draft) {
				d.AdmiredCreators = []string{"a", "b", "c", "d", "e", "f"}
			},
			targetErr: ErrTooManyEntries,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := validDraft()
			tc.mutate(&d)
			err := ValidateDraft(d)
			if tc.targetErr == nil {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tc.targetErr) {
				t.Fatalf("expected %v, got %v", tc.targetErr, err)
			}
		})
	}
}

func TestSplitList(t *testing.T) {
	got := SplitList("corporate, guru-ish,  ")
	want := []string{"corporate", "guru-ish"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if got := SplitList(""); len(got) != 0 {
		t.Fatalf("expected empty list, got %v", got)
	}
	if joined := JoinList(want); joined != "corporate, guru-ish" {
		t.Fatalf("unexpected join: %q", joined)
	}
}

func TestToneProfile_WithClamps(t *testing.T) {
	tone, ok := ToneProfile{}.With(ToneRawToPolished, 14)
	if !ok || tone.RawToPolished != ToneMax {
		t.Fatalf("expected clamp to %d, got %+v ok=%v", ToneMax, tone, ok)
	}
	if _, ok := tone.With("loudness", 3); ok {
		t.Fatalf("expected unknown axis to be rejected")
	}
}

func TestOptions(t *testing.T) {
	if !IsFrequencyOption(12) || IsFrequencyOption(10) {
		t.Fatalf("unexpected frequency option check")
	}
	if !IsRoleOption(RoleOther) || !IsPresetPillar("Wins & losses") || !IsGoalOption("Document journey") {
		t.Fatalf("expected catalogue lookups to succeed")
	}
}
