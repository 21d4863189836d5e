package brandprofile

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNameRequired        = errors.New("profile name is required")
	ErrPrimaryRoleMismatch = errors.New("primary role must be one of the profile roles")
	ErrInvalidFrequency    = errors.New("posting frequency is not a supported option")
	ErrPillarCount         = errors.New("content pillar count out of range")
	ErrDuplicatePillar     = errors.New("duplicate content pillar")
	ErrToneOutOfRange      = errors.New("tone slider out of range")
	ErrInvalidImportance   = errors.New("invalid role importance")
	ErrTooManyEntries      = errors.New("too many entries")
)

// ValidateDraft checks the invariants a profile must hold before it is sent.
func ValidateDraft(d Draft) error {
	if strings.TrimSpace(d.Name) == "" {
		return ErrNameRequired
	}

	if len(d.Roles) > 0 {
		found := false
		for _, role := range d.Roles {
			if role.Name == "" {
				return fmt.Errorf("role name is required")
			}
			if !role.Importance.Valid() {
				return fmt.Errorf("%w: %q for role %s", ErrInvalidImportance, role.Importance, role.Name)
			}
			if role.Name == d.PrimaryRole {
				found = true
			}
		}
		if !found {
			return fmt.Errorf("%w: %q", ErrPrimaryRoleMismatch, d.PrimaryRole)
		}
	}

	if !IsFrequencyOption(d.PostingFrequency) {
		return fmt.Errorf("%w: %d", ErrInvalidFrequency, d.PostingFrequency)
	}

	if n := len(d.ContentPillars); n < 1 || n > MaxPillars {
		return fmt.Errorf("%w: got %d, want 1..%d", ErrPillarCount, n, MaxPillars)
	}
	if dup, ok := firstDuplicate(d.ContentPillars); ok {
		return fmt.Errorf("%w: %s", ErrDuplicatePillar, dup)
	}

	for _, axis := range ToneAxes {
		v, _ := d.ToneProfile.Get(axis)
		if v < ToneMin || v > ToneMax {
			return fmt.Errorf("%w: %s=%d", ErrToneOutOfRange, axis, v)
		}
	}

	if len(d.AdmiredCreators) > MaxAdmiredCreators {
		return fmt.Errorf("%w: admired creators max %d", ErrTooManyEntries, MaxAdmiredCreators)
	}
	if len(d.PastPosts) > MaxPastPosts {
		return fmt.Errorf("%w: past posts max %d", ErrTooManyEntries, MaxPastPosts)
	}

	return nil
}

// SplitList turns "a, b,  " into ["a", "b"].
func SplitList(raw string) []string {
	return CompactList(strings.Split(raw, ","))
}

// JoinList is the inverse of SplitList for edit buffers.
func JoinList(values []string) string {
	return strings.Join(values, ", ")
}

// CompactList trims entries and drops blanks.
func CompactList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if item := strings.TrimSpace(v); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func firstDuplicate(values []string) (string, bool) {
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			return v, true
		}
		seen[v] = struct{}{}
	}
	return "", false
}
