package projectile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi/features/math"
)

func TestKindTraits(t *testing.T) {
	tests := []struct {
		kind     Kind
		tracks   bool
		hasSpeed bool
		sound    bool
	}{
		{MovingBullet, true, false, false},
		{TickBullet, true, false, false},
		{SliderPartBullet, false, false, false},
		{AngledProjectile, false, false, false},
		{ConstantMovingProjectile, false, true, false},
		{SoundMarker, false, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.tracks, tt.kind.Tracks())
			assert.Equal(t, tt.hasSpeed, tt.kind.HasSpeed())
			assert.Equal(t, tt.sound, tt.kind.IsSound())
		})
	}
	assert.Equal(t, "unknown", Kind(42).String())
}

func TestTravel(t *testing.T) {
	pos := math.Vec2{X: 1, Y: 2}

	angled := NewAngledProjectile(0, pos, 90, 0.7)
	moving := NewConstantMovingProjectile(0, pos, 90, 2.5)
	bullet := NewMovingBullet(0, pos, 90)
	part := NewSliderPartBullet(0, pos)

	assert.Equal(t, 0.7, angled.Travel())
	assert.Equal(t, 2.5, moving.Travel())
	assert.Equal(t, 1.0, bullet.Travel())
	assert.Zero(t, part.Travel())
}
