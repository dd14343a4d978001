package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"

	"github.com/defvs/touhosu/shared/beatmapdata"
	"github.com/defvs/touhosu/shared/hitobject"
)

var (
	//go:embed beatmaps/*.yaml
	beatmapFS embed.FS
)

// DefaultBeatmap is played when no path is given on the command line.
const DefaultBeatmap = "demo"

// BeatmapNames lists the bundled beatmaps, sorted.
func BeatmapNames() []string {
	entries, err := fs.ReadDir(beatmapFS, "beatmaps")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() && path.Ext(entry.Name()) == ".yaml" {
			names = append(names, entry.Name()[:len(entry.Name())-len(".yaml")])
		}
	}
	sort.Strings(names)
	return names
}

// LoadBeatmap reads a bundled beatmap by name.
func LoadBeatmap(name string) (*hitobject.Beatmap, error) {
	return beatmapdata.Load(beatmapFS, path.Join("beatmaps", name+".yaml"))
}

// MustLoadBeatmap panics if the bundled beatmap cannot be read.
func MustLoadBeatmap(name string) *hitobject.Beatmap {
	b, err := LoadBeatmap(name)
	if err != nil {
		panic(fmt.Sprintf("Failed to load beatmap %s: %v", name, err))
	}
	return b
}
