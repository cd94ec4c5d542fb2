package store

import (
	"context"
	"errors"
	"fmt"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/Raikerian/go-voice-auth/internal/enrollment"
)

// Badger is a TemplateStore backed by an embedded BadgerDB. Templates are
// msgpack-encoded under TemplateKey(userID).
type Badger struct {
	db *badger.DB
}

// BadgerOptions configures the Badger store.
type BadgerOptions struct {
	// Dir is the data directory. Required unless InMemory is set.
	Dir string
	// InMemory keeps all data in memory, for tests.
	InMemory bool
	// Logger receives badger's own log output. Nil silences it.
	Logger badger.Logger
}

// NewBadger opens a Badger store.
func NewBadger(opts BadgerOptions) (*Badger, error) {
	if !opts.InMemory && opts.Dir == "" {
		return nil, errors.New("store: badger dir is required for on-disk mode")
	}

	dbOpts := badger.DefaultOptions(opts.Dir)
	if opts.InMemory {
		dbOpts = badger.DefaultOptions("").WithInMemory(true)
	}
	dbOpts = dbOpts.WithLogger(opts.Logger)

	db, err := badger.Open(dbOpts)
	if err != nil {
		return nil, fmt.Errorf("store: open badger: %w", err)
	}
	return &Badger{db: db}, nil
}

func (b *Badger) Get(_ context.Context, userID string) (*enrollment.Template, error) {
	var val []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(TemplateKey(userID))
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var tpl enrollment.Template
	if err := msgpack.Unmarshal(val, &tpl); err != nil {
		return nil, fmt.Errorf("store: decode template for %q: %w", userID, err)
	}
	tpl.CreatedAt = tpl.CreatedAt.UTC()
	return &tpl, nil
}

func (b *Badger) Save(_ context.Context, tpl *enrollment.Template) error {
	if tpl == nil || tpl.UserID == "" {
		return errInvalidTemplate
	}
	val, err := msgpack.Marshal(tpl)
	if err != nil {
		return fmt.Errorf("store: encode template: %w", err)
	}
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Set(TemplateKey(tpl.UserID), val)
	})
}

func (b *Badger) Delete(_ context.Context, userID string) error {
	key := TemplateKey(userID)
	err := b.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(key); err != nil {
			return err
		}
		return txn.Delete(key)
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return ErrNotFound
	}
	return err
}

func (b *Badger) Close() error {
	return b.db.Close()
}
