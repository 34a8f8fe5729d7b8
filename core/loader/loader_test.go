package loader

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type stubFeature struct {
	name    string
	enabled bool
	err     error
	loaded  bool
}

func (s *stubFeature) Name() string    { return s.name }
func (s *stubFeature) IsEnabled() bool { return s.enabled }
func (s *stubFeature) Load(app fiber.Router) error {
	s.loaded = true
	return s.err
}

func TestManager_LoadAll(t *testing.T) {
	t.Run("SkipsDisabled", func(t *testing.T) {
		on := &stubFeature{name: "catalog", enabled: true}
		off := &stubFeature{name: "legacy"}

		mgr := NewManager()
		mgr.Register(on)
		mgr.Register(off)

		assert.NoError(t, mgr.LoadAll(fiber.New()))
		assert.True(t, on.loaded)
		assert.False(t, off.loaded)
		assert.Len(t, mgr.Features(), 2)
	})

	t.Run("StopsOnError", func(t *testing.T) {
		broken := &stubFeature{name: "catalog", enabled: true, err: assert.AnError}
		next := &stubFeature{name: "other", enabled: true}

		mgr := NewManager()
		mgr.Register(broken)
		mgr.Register(next)

		err := mgr.LoadAll(fiber.New())
		assert.ErrorIs(t, err, assert.AnError)
		assert.ErrorContains(t, err, "catalog")
		assert.False(t, next.loaded)
	})
}
