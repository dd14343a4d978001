package gameconfig

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// overrides mirrors the global sections so a document only has to name the
// values it changes.
type overrides struct {
	Arena      ArenaConfig      `yaml:"arena"`
	Player     PlayerConfig     `yaml:"player"`
	Pattern    PatternConfig    `yaml:"pattern"`
	Conversion ConversionConfig `yaml:"conversion"`
	Motion     MotionConfig     `yaml:"motion"`
}

// LoadOverrides decodes a YAML document over the current global configuration.
// Unknown keys are rejected. An empty document leaves everything untouched.
// Globals are only replaced once the whole document decoded successfully.
func LoadOverrides(r io.Reader) error {
	o := overrides{
		Arena:      Arena,
		Player:     Player,
		Pattern:    Pattern,
		Conversion: Conversion,
		Motion:     Motion,
	}

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&o); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decode config overrides: %w", err)
	}

	Arena = o.Arena
	Player = o.Player
	Pattern = o.Pattern
	Conversion = o.Conversion
	Motion = o.Motion
	return nil
}

// Reset restores every section to its defaults.
func Reset() {
	Arena = DefaultArena()
	Player = DefaultPlayer()
	Pattern = DefaultPattern()
	Conversion = DefaultConversion()
	Motion = DefaultMotion()
}
