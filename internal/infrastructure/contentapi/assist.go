package contentapi

import (
	"context"
	"net/http"

	"github.com/riskibarqy/content-brain/internal/domain/post"
	"github.com/riskibarqy/content-brain/internal/usecase"
)

// Assistant implements post.Assistant over the /ai endpoints.
type Assistant struct {
	client *Client
}

func NewAssistant(client *Client) *Assistant {
	return &Assistant{client: client}
}

type assistRequest struct {
	BrandProfileID int64  `json:"brand_profile_id"`
	Role           string `json:"role"`
	PostBody       string `json:"post_body"`
	Style          string `json:"style,omitempty"`
}

type assistResponse struct {
	Options []string `json:"options"`
}

func (a *Assistant) Assist(ctx context.Context, kind post.AssistKind, req post.AssistRequest) ([]string, error) {
	if _, err := post.ParseAssistKind(string(kind)); err != nil {
		return nil, &usecase.RequestError{Status: http.StatusBadRequest, Err: err}
	}
	numeric, err := numericID(req.BrandProfileID)
	if err != nil {
		return nil, &usecase.RequestError{Status: http.StatusBadRequest, Err: err}
	}

	var resp assistResponse
	body := assistRequest{BrandProfileID: numeric, Role: req.Role, PostBody: req.PostBody, Style: req.Style}
	if err := a.client.do(ctx, http.MethodPost, "/ai/"+string(kind), body, &resp); err != nil {
		return nil, err
	}
	return resp.Options, nil
}
