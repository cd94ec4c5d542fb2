package enrollment

import "errors"

var (
	// ErrNotEnrolled is returned when a user has no template. Clients should
	// prompt the user to set up voice authentication first.
	ErrNotEnrolled = errors.New("voice authentication is not set up for this user")
	// ErrInvalidInput is returned when a payload cannot be decoded at all.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidUserID is returned for empty user identifiers.
	ErrInvalidUserID = errors.New("invalid user id")
	// ErrTemplateNotFound is returned by TemplateStore implementations when
	// no template exists for a user.
	ErrTemplateNotFound = errors.New("template not found")
)
