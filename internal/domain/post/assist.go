package post

import "fmt"

// AssistKind names one AI optimize operation over a post buffer.
type AssistKind string

const (
	AssistHooks          AssistKind = "hooks"
	AssistCTAs           AssistKind = "ctas"
	AssistHashtags       AssistKind = "hashtags"
	AssistImageIdea      AssistKind = "image-idea"
	AssistTransformStyle AssistKind = "transform-style"
)

var AssistKinds = []AssistKind{AssistHooks, AssistCTAs, AssistHashtags, AssistImageIdea, AssistTransformStyle}

func ParseAssistKind(raw string) (AssistKind, error) {
	for _, kind := range AssistKinds {
		if string(kind) == raw {
			return kind, nil
		}
	}
	return "", fmt.Errorf("unknown assist kind %q", raw)
}

// Styles accepted by the transform-style endpoint.
var Styles = []string{"storytelling", "listicle", "contrarian", "educational", "punchy"}

type AssistRequest struct {
	BrandProfileID string
	Role           string
	PostBody       string
	Style          string
}

// ApplyCandidate writes an assist candidate into the matching buffer field.
func ApplyCandidate(buf Update, kind AssistKind, candidate string) (Update, error) {
	switch kind {
	case AssistHooks:
		buf.Hook = &candidate
	case AssistCTAs:
		buf.CTA = &candidate
	case AssistHashtags:
		buf.Hashtags = ParseHashtags(candidate)
	case AssistImageIdea:
		buf.ImageIdea = &candidate
	case AssistTransformStyle:
		buf.PostBody = &candidate
	default:
		return buf, fmt.Errorf("unknown assist kind %q", kind)
	}
	return buf, nil
}
