package assets

import (
	"context"
	"testing"

	"github.com/defvs/touhosu/shared/conversion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBundledBeatmapsConvert(t *testing.T) {
	names := BeatmapNames()
	require.Contains(t, names, DefaultBeatmap)

	c := conversion.New()
	for _, name := range names {
		b, err := LoadBeatmap(name)
		require.NoError(t, err, name)
		require.NoError(t, conversion.CanConvert(b), name)

		out, err := c.Convert(context.Background(), b)
		require.NoError(t, err, name)
		assert.NotEmpty(t, out, name)
	}
}

func TestLoadBeatmapMissing(t *testing.T) {
	_, err := LoadBeatmap("missing")
	assert.Error(t, err)
}
