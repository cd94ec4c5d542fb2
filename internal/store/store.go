// Package store provides TemplateStore backends for enrolled voice templates.
package store

import (
	"errors"

	"github.com/Raikerian/go-voice-auth/internal/enrollment"
)

// ErrNotFound is returned when a user has no stored template.
var ErrNotFound = enrollment.ErrTemplateNotFound

var errInvalidTemplate = errors.New("store: template must have a user id")

// KeyPrefix namespaces template keys in key-value backends.
const KeyPrefix = "voice:template:"

// TemplateKey returns the key-value key for userID's template.
func TemplateKey(userID string) []byte {
	return []byte(KeyPrefix + userID)
}

var (
	_ enrollment.TemplateStore = (*Memory)(nil)
	_ enrollment.TemplateStore = (*Badger)(nil)
	_ enrollment.TemplateStore = (*Mongo)(nil)
)
