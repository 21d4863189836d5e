package post

import "context"

// Repository describes calendar persistence needs from use cases.
type Repository interface {
	ListByProfile(ctx context.Context, profileID string) ([]Post, error)
	Update(ctx context.Context, postID string, update Update) (Post, error)
	Delete(ctx context.Context, postID string) error
	Regenerate(ctx context.Context, postID, pillar string) (Post, error)
	GenerateCalendar(ctx context.Context, profileID string, regenerate bool) ([]Post, error)
}

// Assistant returns candidate rewrites for one part of a post.
type Assistant interface {
	Assist(ctx context.Context, kind AssistKind, req AssistRequest) ([]string, error)
}
