package i3blocks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionAccessors(t *testing.T) {
	t.Parallel()

	s := Section{"name": "cpu", "interval": "1", "label": ""}

	assert.Equal(t, "cpu", s.Name())

	v, found := s.Get("interval")
	assert.True(t, found)
	assert.Equal(t, "1", v)

	_, found = s.Get("missing")
	assert.False(t, found)

	assert.True(t, s.IsSet("label"))
	assert.False(t, s.IsSet("missing"))
}

func TestHandlerFunc(t *testing.T) {
	t.Parallel()

	var got Section
	h := HandlerFunc(func(s Section, dir string) error {
		got = s

		return nil
	})

	require.NoError(t, h.HandleSection(Section{"name": "a"}, "/tmp"))
	assert.Equal(t, "a", got.Name())
}

func TestFilterHandler(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	h, err := FilterHandler("cpu*", rec)
	require.NoError(t, err)

	require.NoError(t, mergeInput(t, "[cpu_usage]\n[memory]\n[cpu_temp]\n", h))

	assert.Equal(t, []string{"cpu_usage", "cpu_temp"}, rec.names())
}

func TestFilterHandlerBadPattern(t *testing.T) {
	t.Parallel()

	_, err := FilterHandler("[", &recorder{})
	require.Error(t, err)
}

func TestFilterHandlerErrorPropagates(t *testing.T) {
	t.Parallel()

	rec := &recorder{failAfter: 1}
	h, err := FilterHandler("*", rec)
	require.NoError(t, err)

	err = mergeInput(t, "[a]\n[b]\n", h)
	require.Error(t, err)
	assert.Equal(t, []string{"a"}, rec.names())
}
