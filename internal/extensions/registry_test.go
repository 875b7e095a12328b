package extensions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aksara-labs/lexitree-cli/internal/core/domain"
)

func TestRegistry_BuildUnknown(t *testing.T) {
	r := NewRegistry()

	ext, err := r.Build("nope", nil)

	assert.Nil(t, ext)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegistry_RegisterAndBuild(t *testing.T) {
	r := NewRegistry()
	r.Register("echo", func(options map[string]any) (domain.Extension, error) {
		return Spec{ID: "echo", Options: options}, nil
	})

	require.True(t, r.Has("echo"))
	assert.False(t, r.Has("other"))

	ext, err := r.Build("echo", map[string]any{"upper": true})

	require.NoError(t, err)
	assert.Equal(t, "echo", ext.Info().ID)
	assert.Equal(t, true, ext.Info().Options["upper"])
}

func TestRegistry_RegisterReplaces(t *testing.T) {
	r := NewRegistry()
	r.Register("echo", func(map[string]any) (domain.Extension, error) {
		return Spec{ID: "echo", Name: "first"}, nil
	})
	r.Register("echo", func(map[string]any) (domain.Extension, error) {
		return Spec{ID: "echo", Name: "second"}, nil
	})

	ext, err := r.Build("echo", nil)

	require.NoError(t, err)
	assert.Equal(t, "second", ext.Info().Name)
}

func TestRegistry_IDsSorted(t *testing.T) {
	r := NewRegistry()
	noop := func(map[string]any) (domain.Extension, error) {
		return Spec{ID: "noop"}, nil
	}
	r.Register("zeta", noop)
	r.Register("alpha", noop)
	r.Register("mid", noop)

	assert.Equal(t, []string{"alpha", "mid", "zeta"}, r.IDs())
}

func TestRegistry_IDsEmpty(t *testing.T) {
	assert.Empty(t, NewRegistry().IDs())
}
