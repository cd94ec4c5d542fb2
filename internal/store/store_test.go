package store_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/Raikerian/go-voice-auth/internal/enrollment"
	"github.com/Raikerian/go-voice-auth/internal/store"
	pkginfra "github.com/Raikerian/go-voice-auth/pkg/infrastructure"
	"github.com/Raikerian/go-voice-auth/pkg/voiceprint"
)

func sampleTemplate(userID string, fill byte) *enrollment.Template {
	sample := make([]byte, 2000)
	for i := range sample {
		sample[i] = fill + byte(i%7)
	}
	return &enrollment.Template{
		ID:         fmt.Sprintf("tpl-%s-%d", userID, fill),
		UserID:     userID,
		Features:   voiceprint.Extract(sample),
		Transcript: "my voice is my passport",
		Mode:       enrollment.ModeSetup,
		CreatedAt:  time.Date(2026, 3, 14, 15, 9, 26, 535000000, time.UTC),
	}
}

func newBadger(t *testing.T) *store.Badger {
	t.Helper()
	b, err := store.NewBadger(store.BadgerOptions{
		InMemory: true,
		Logger:   pkginfra.NewBadgerLogger(zaptest.NewLogger(t)),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = b.Close() })
	return b
}

func backends(t *testing.T) map[string]enrollment.TemplateStore {
	return map[string]enrollment.TemplateStore{
		"memory": store.NewMemory(),
		"badger": newBadger(t),
	}
}

func TestTemplateStore_Contract(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, err := s.Get(ctx, "alice")
			assert.ErrorIs(t, err, store.ErrNotFound)
			assert.ErrorIs(t, err, enrollment.ErrTemplateNotFound)

			first := sampleTemplate("alice", 10)
			require.NoError(t, s.Save(ctx, first))

			got, err := s.Get(ctx, "alice")
			require.NoError(t, err)
			assert.Equal(t, first, got)

			// Re-enrollment replaces the whole record.
			second := sampleTemplate("alice", 90)
			second.Transcript = ""
			require.NoError(t, s.Save(ctx, second))

			got, err = s.Get(ctx, "alice")
			require.NoError(t, err)
			assert.Equal(t, second, got)
			assert.NotEqual(t, first.Fingerprint, got.Fingerprint)

			require.NoError(t, s.Delete(ctx, "alice"))
			_, err = s.Get(ctx, "alice")
			assert.ErrorIs(t, err, store.ErrNotFound)

			assert.ErrorIs(t, s.Delete(ctx, "alice"), store.ErrNotFound)
		})
	}
}

func TestTemplateStore_Isolation(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			require.NoError(t, s.Save(ctx, sampleTemplate("alice", 10)))
			require.NoError(t, s.Save(ctx, sampleTemplate("bob", 50)))

			// A user whose id extends another's must not collide.
			_, err := s.Get(ctx, "ali")
			assert.ErrorIs(t, err, store.ErrNotFound)

			require.NoError(t, s.Delete(ctx, "alice"))
			got, err := s.Get(ctx, "bob")
			require.NoError(t, err)
			assert.Equal(t, "bob", got.UserID)
		})
	}
}

func TestTemplateStore_ReturnsCopies(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			tpl := sampleTemplate("alice", 10)
			require.NoError(t, s.Save(ctx, tpl))

			tpl.Transcript = "mutated after save"
			got, err := s.Get(ctx, "alice")
			require.NoError(t, err)
			assert.Equal(t, "my voice is my passport", got.Transcript)

			got.Energy = -1
			again, err := s.Get(ctx, "alice")
			require.NoError(t, err)
			assert.NotEqual(t, -1.0, again.Energy)
		})
	}
}

func TestTemplateStore_RejectsAnonymousTemplate(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, s.Save(context.Background(), &enrollment.Template{}))
			assert.Error(t, s.Save(context.Background(), nil))
		})
	}
}

func TestTemplateStore_ConcurrentWriters(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			var wg sync.WaitGroup
			for i := range 16 {
				wg.Add(1)
				go func(fill byte) {
					defer wg.Done()
					assert.NoError(t, s.Save(ctx, sampleTemplate("alice", fill)))
					_, err := s.Get(ctx, "alice")
					assert.NoError(t, err)
				}(byte(i * 10))
			}
			wg.Wait()

			// Last write wins: whichever template is stored is one of the
			// complete records that was written.
			got, err := s.Get(ctx, "alice")
			require.NoError(t, err)
			var fill byte
			_, err = fmt.Sscanf(got.ID, "tpl-alice-%d", &fill)
			require.NoError(t, err)
			assert.Equal(t, sampleTemplate("alice", fill), got)
		})
	}
}

func TestTemplateKey(t *testing.T) {
	assert.Equal(t, []byte("voice:template:alice"), store.TemplateKey("alice"))
}

func TestNewBadger_RequiresDir(t *testing.T) {
	_, err := store.NewBadger(store.BadgerOptions{})
	assert.Error(t, err)
}

func TestMemory_Len(t *testing.T) {
	m := store.NewMemory()
	require.NoError(t, m.Save(context.Background(), sampleTemplate("alice", 1)))
	require.NoError(t, m.Save(context.Background(), sampleTemplate("alice", 2)))
	require.NoError(t, m.Save(context.Background(), sampleTemplate("bob", 3)))
	assert.Equal(t, 2, m.Len())
}
