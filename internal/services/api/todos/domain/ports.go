package domain

import "context"

// ServicePort is consumed by handlers and by the seed command
type ServicePort interface {
	Get(ctx context.Context, id int32) (Todo, error)
	List(ctx context.Context, q ListQuery) (Page, error)
	Create(ctx context.Context, title, content string) (Todo, error)
	Update(ctx context.Context, id int32, title, content string) (Todo, error)
	Delete(ctx context.Context, id int32) error
}

// ImportPort stores many drafts at once for the seed command
type ImportPort interface {
	Import(ctx context.Context, drafts []Draft) ([]Todo, error)
}
