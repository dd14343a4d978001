package beatmapdata

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"sort"

	"github.com/defvs/touhosu/shared/hitobject"
	"github.com/defvs/touhosu/shared/timing"
	"github.com/yohamta/donburi/features/math"
	"gopkg.in/yaml.v3"
)

// ErrInvalidHitObject is returned for hit objects whose shape cannot be
// resolved.
var ErrInvalidHitObject = errors.New("invalid hit object")

// Load reads a beatmap from fsys. It takes an fs.FS so callers can pass an
// embed.FS or os.DirFS.
func Load(fsys fs.FS, path string) (*hitobject.Beatmap, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open beatmap %s: %w", path, err)
	}
	defer f.Close()

	b, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("load beatmap %s: %w", path, err)
	}
	return b, nil
}

// Parse decodes a single beatmap document.
func Parse(r io.Reader) (*hitobject.Beatmap, error) {
	var file File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("decode beatmap: %w", err)
	}
	return file.Beatmap()
}

// Beatmap resolves the document into the conversion input. Hit objects are
// sorted by time; ties keep document order.
func (f *File) Beatmap() (*hitobject.Beatmap, error) {
	b := &hitobject.Beatmap{
		Title:      f.Title,
		Difficulty: hitobject.DefaultDifficulty(),
	}
	if f.Difficulty != nil {
		b.Difficulty = hitobject.Difficulty{
			SliderMultiplier: f.Difficulty.SliderMultiplier,
			SliderTickRate:   f.Difficulty.SliderTickRate,
		}
	}

	for _, tp := range f.TimingPoints {
		if tp.BeatLength <= 0 {
			return nil, fmt.Errorf("timing point at %.0fms: beat length must be positive", tp.Time)
		}
		b.ControlPoints.AddTimingPoint(timing.TimingPoint{Time: tp.Time, BeatLength: tp.BeatLength})
	}
	for _, dp := range f.DifficultyPoints {
		b.ControlPoints.AddDifficultyPoint(timing.DifficultyPoint{Time: dp.Time, SpeedMultiplier: dp.SpeedMultiplier})
	}

	b.HitObjects = make([]hitobject.HitObject, 0, len(f.HitObjects))
	for i, h := range f.HitObjects {
		obj, err := h.resolve()
		if err != nil {
			return nil, fmt.Errorf("hit object %d: %w", i, err)
		}
		b.HitObjects = append(b.HitObjects, obj)
	}

	sort.SliceStable(b.HitObjects, func(i, j int) bool {
		return b.HitObjects[i].StartTime < b.HitObjects[j].StartTime
	})
	return b, nil
}

func (h HitObjectData) resolve() (hitobject.HitObject, error) {
	obj := hitobject.HitObject{
		Kind:        hitobject.Circle,
		StartTime:   h.Time,
		NewCombo:    h.NewCombo,
		ComboOffset: h.ComboOffset,
	}
	if h.Position != nil {
		obj.Position = &math.Vec2{X: h.Position[0], Y: h.Position[1]}
	}
	for _, s := range h.Samples {
		obj.Samples = append(obj.Samples, hitobject.Sample{Name: s.Name, Bank: s.Bank, Volume: s.Volume})
	}

	shapes := 0
	if h.Slider != nil {
		shapes++
		if h.Slider.Repeats < 0 {
			return obj, fmt.Errorf("%w: negative repeat count", ErrInvalidHitObject)
		}
		if len(h.Slider.Points) == 0 {
			return obj, fmt.Errorf("%w: slider without points", ErrInvalidHitObject)
		}
		points := make([]math.Vec2, len(h.Slider.Points))
		for i, p := range h.Slider.Points {
			points[i] = math.Vec2{X: p[0], Y: p[1]}
		}
		obj.Kind = hitobject.Slider
		obj.Slider = &hitobject.SliderData{
			Path:                 hitobject.NewLinearPath(points, h.Slider.Distance),
			RepeatCount:          h.Slider.Repeats,
			Duration:             h.Slider.Duration,
			LegacyLastTickOffset: h.Slider.LegacyLastTickOffset,
		}
	}
	if h.Spinner != nil {
		shapes++
		if h.Spinner.Duration < 0 {
			return obj, fmt.Errorf("%w: negative spinner duration", ErrInvalidHitObject)
		}
		obj.Kind = hitobject.Spinner
		obj.Spinner = &hitobject.SpinnerData{Duration: h.Spinner.Duration}
	}
	if h.Explosion != nil {
		shapes++
		obj.Kind = hitobject.ShapedExplosion
		obj.Explosion = &hitobject.ExplosionData{
			SideCount:     h.Explosion.Sides,
			PointsPerSide: h.Explosion.PointsPerSide,
			AngleOffset:   h.Explosion.AngleOffset,
		}
	}
	if shapes > 1 {
		return obj, fmt.Errorf("%w: %d shapes at %.0fms", ErrInvalidHitObject, shapes, h.Time)
	}
	return obj, nil
}
