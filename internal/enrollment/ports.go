package enrollment

import "context"

// TemplateStore persists enrolled templates keyed by user ID.
//
// Save replaces any existing template for the same user atomically
// (last-write-wins). Get and Delete return ErrTemplateNotFound when the user
// has no template.
type TemplateStore interface {
	Get(ctx context.Context, userID string) (*Template, error)
	Save(ctx context.Context, tpl *Template) error
	Delete(ctx context.Context, userID string) error
	Close() error
}

// Transcriber converts a voice sample to text.
type Transcriber interface {
	Transcribe(ctx context.Context, sample []byte) (string, error)
}
