// Package beatmapdata reads beatmaps from YAML documents. Shape payloads are
// resolved into hitobject kinds here, once, so nothing downstream inspects
// raw input shapes.
package beatmapdata

// File is the on-disk layout of a beatmap.
type File struct {
	Title            string            `yaml:"title"`
	Difficulty       *DifficultyData   `yaml:"difficulty"`
	TimingPoints     []TimingPointData `yaml:"timing_points"`
	DifficultyPoints []SpeedPointData  `yaml:"difficulty_points"`
	HitObjects       []HitObjectData   `yaml:"hit_objects"`
}

// DifficultyData holds beatmap-wide slider values.
type DifficultyData struct {
	SliderMultiplier float64 `yaml:"slider_multiplier"`
	SliderTickRate   float64 `yaml:"slider_tick_rate"`
}

// TimingPointData is a beat length change.
type TimingPointData struct {
	Time       float64 `yaml:"time"`
	BeatLength float64 `yaml:"beat_length"`
}

// SpeedPointData is a slider speed change.
type SpeedPointData struct {
	Time            float64 `yaml:"time"`
	SpeedMultiplier float64 `yaml:"speed_multiplier"`
}

// HitObjectData is one hit object. At most one of Slider, Spinner and
// Explosion may be set; none means a circle.
type HitObjectData struct {
	Time        float64      `yaml:"time"`
	Position    *[2]float64  `yaml:"position"`
	NewCombo    bool         `yaml:"new_combo"`
	ComboOffset int          `yaml:"combo_offset"`
	Samples     []SampleData `yaml:"samples"`

	Slider    *SliderShape    `yaml:"slider"`
	Spinner   *SpinnerShape   `yaml:"spinner"`
	Explosion *ExplosionShape `yaml:"explosion"`
}

// SampleData is an audio sample reference.
type SampleData struct {
	Name   string `yaml:"name"`
	Bank   string `yaml:"bank"`
	Volume int    `yaml:"volume"`
}

// SliderShape is a polyline relative to the hit object position.
type SliderShape struct {
	Points               [][2]float64 `yaml:"points"`
	Distance             float64      `yaml:"distance"`
	Repeats              int          `yaml:"repeats"`
	Duration             float64      `yaml:"duration"`
	LegacyLastTickOffset float64      `yaml:"legacy_last_tick_offset"`
}

// SpinnerShape is a sustained spin.
type SpinnerShape struct {
	Duration float64 `yaml:"duration"`
}

// ExplosionShape is a polygonal burst.
type ExplosionShape struct {
	Sides         int     `yaml:"sides"`
	PointsPerSide int     `yaml:"points_per_side"`
	AngleOffset   float64 `yaml:"angle_offset"`
}
