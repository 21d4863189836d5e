package contentapi

import (
	"context"
	"net/http"

	"github.com/riskibarqy/content-brain/internal/domain/post"
	"github.com/riskibarqy/content-brain/internal/usecase"
)

type PostRepository struct {
	client *Client
}

func NewPostRepository(client *Client) *PostRepository {
	return &PostRepository{client: client}
}

type postsResponse struct {
	Posts []postDTO `json:"posts"`
}

type postResponse struct {
	Post    postDTO `json:"post"`
	Message string  `json:"message"`
}

type generateRequest struct {
	BrandProfileID int64 `json:"brand_profile_id"`
	Regenerate     bool  `json:"regenerate"`
}

type regenerateRequest struct {
	Pillar string `json:"pillar,omitempty"`
}

func (r *PostRepository) ListByProfile(ctx context.Context, profileID string) ([]post.Post, error) {
	var resp postsResponse
	if err := r.client.do(ctx, http.MethodGet, "/posts/profile/"+escape(profileID), nil, &resp); err != nil {
		return nil, err
	}
	return postsToDomain(resp.Posts), nil
}

func (r *PostRepository) Update(ctx context.Context, postID string, update post.Update) (post.Post, error) {
	var resp postResponse
	if err := r.client.do(ctx, http.MethodPut, "/posts/"+escape(postID), updateToDTO(update), &resp); err != nil {
		return post.Post{}, err
	}
	return resp.Post.toDomain(), nil
}

func (r *PostRepository) Delete(ctx context.Context, postID string) error {
	return r.client.do(ctx, http.MethodDelete, "/posts/"+escape(postID), nil, &messageResponse{})
}

func (r *PostRepository) Regenerate(ctx context.Context, postID, pillar string) (post.Post, error) {
	var resp postResponse
	if err := r.client.do(ctx, http.MethodPost, "/posts/"+escape(postID)+"/regenerate", regenerateRequest{Pillar: pillar}, &resp); err != nil {
		return post.Post{}, err
	}
	return resp.Post.toDomain(), nil
}

func (r *PostRepository) GenerateCalendar(ctx context.Context, profileID string, regenerate bool) ([]post.Post, error) {
	numeric, err := numericID(profileID)
	if err != nil {
		return nil, &usecase.RequestError{Status: http.StatusBadRequest, Err: err}
	}

	var resp postsResponse
	if err := r.client.do(ctx, http.MethodPost, "/generate/calendar", generateRequest{BrandProfileID: numeric, Regenerate: regenerate}, &resp); err != nil {
		return nil, err
	}
	return postsToDomain(resp.Posts), nil
}
