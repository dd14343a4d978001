package systems

import (
	"fmt"

	"github.com/defvs/touhosu/arena"
	"github.com/defvs/touhosu/components"
	cfg "github.com/defvs/touhosu/config"
	"github.com/defvs/touhosu/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// NewDrawHUD renders the side panel: song time, lives, hits and counters.
func NewDrawHUD(title string) func(*ecs.ECS, *ebiten.Image) {
	return func(ecs *ecs.ECS, screen *ebiten.Image) {
		playerEntry, ok := components.Player.First(ecs.World)
		if !ok {
			return
		}
		clockEntry, ok := components.SongClock.First(ecs.World)
		if !ok {
			return
		}
		lives := components.Lives.Get(playerEntry)
		pd := components.Player.Get(playerEntry)
		clock := components.SongClock.Get(clockEntry)

		x := int(cfg.HUD.X)
		y := cfg.HUD.Y
		text.Draw(screen, title, fonts.Title.Get(), x, int(y), cfg.HUD.TitleColor)
		y += cfg.HUD.LineHeight * 1.5

		lines := []string{
			fmt.Sprintf("Time     %6.1fs", clock.Time/1000),
			fmt.Sprintf("Lives    %d / %d", lives.Lives, lives.MaxLives),
			fmt.Sprintf("Hits     %d", pd.Hits),
			fmt.Sprintf("Bullets  %d", arena.ActiveProjectiles(ecs.World)),
			fmt.Sprintf("Queued   %d", len(clock.Queue)-clock.Next),
			fmt.Sprintf("Samples  %d", clock.Played),
			fmt.Sprintf("State    %s", pd.Sim.State()),
		}
		if pd.Sim.Focused() {
			lines = append(lines, "FOCUS")
		}
		for _, line := range lines {
			text.Draw(screen, line, fonts.Regular.Get(), x, int(y), cfg.HUD.TextColor)
			y += cfg.HUD.LineHeight
		}

		hint := "Arrows: Move  Shift: Focus  Z: Shoot  Esc: Pause"
		text.Draw(screen, hint, fonts.Small.Get(), 12, screen.Bounds().Dy()-12, cfg.HUD.TextColor)
	}
}
