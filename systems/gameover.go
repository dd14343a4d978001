package systems

import (
	"fmt"

	"github.com/defvs/touhosu/components"
	cfg "github.com/defvs/touhosu/config"
	"github.com/defvs/touhosu/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	resultsRetry = iota
	resultsMenu
)

// NewUpdateResults creates the results screen system with scene transition capability
func NewUpdateResults(sceneChanger SceneChanger, createArenaScene func() interface{}, createMenuScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		result := GetResult(e)
		if result == nil {
			return
		}
		input := getOrCreateInput(e)

		// Navigate menu with wrap-around using modulo arithmetic
		numOptions := len(cfg.Results.MenuOptions)
		if GetAction(input, cfg.ActionMoveUp).JustPressed {
			result.SelectedIndex = (result.SelectedIndex - 1 + numOptions) % numOptions
		}
		if GetAction(input, cfg.ActionMoveDown).JustPressed {
			result.SelectedIndex = (result.SelectedIndex + 1) % numOptions
		}

		if GetAction(input, cfg.ActionShoot).JustPressed {
			switch result.SelectedIndex {
			case resultsRetry:
				sceneChanger.ChangeScene(createArenaScene())
			case resultsMenu:
				sceneChanger.ChangeScene(createMenuScene())
			}
		}
	}
}

// DrawResults renders the end-of-song screen
func DrawResults(e *ecs.ECS, screen *ebiten.Image) {
	result := GetResult(e)
	if result == nil {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Results.BackgroundColor, false)

	title, titleColor := "CLEARED", cfg.Results.ClearedColor
	if !result.Cleared {
		title, titleColor = "YOU DIED", cfg.Results.FailedColor
	}
	titleWidth := len(title) * 16
	text.Draw(screen, title, fonts.Title.Get(), int((width-float64(titleWidth))/2), int(cfg.Results.TitleY), titleColor)

	stats := []string{
		result.Beatmap,
		fmt.Sprintf("Time %.1fs", result.Time/1000),
		fmt.Sprintf("Hits %d   Lives %d", result.Hits, result.Lives),
	}
	for i, line := range stats {
		lineWidth := len(line) * 8
		y := cfg.Results.StatsY + float64(i)*cfg.Results.MenuItemHeight
		text.Draw(screen, line, fonts.Regular.Get(), int((width-float64(lineWidth))/2), int(y), cfg.Results.TextColorNormal)
	}

	for i, option := range cfg.Results.MenuOptions {
		y := cfg.Results.MenuStartY + float64(i)*(cfg.Results.MenuItemHeight+cfg.Results.MenuItemGap)

		textColor := cfg.Results.TextColorNormal
		if i == result.SelectedIndex {
			textColor = cfg.Results.TextColorSelected
		}

		textWidth := len(option) * 8
		x := int((width - float64(textWidth)) / 2)
		text.Draw(screen, option, fonts.Regular.Get(), x, int(y)+int(cfg.Results.MenuItemHeight), textColor)
	}
}

// GetResult returns the singleton Result component, or nil before it is set.
func GetResult(e *ecs.ECS) *components.ResultData {
	ent, ok := components.Result.First(e.World)
	if !ok {
		return nil
	}
	return components.Result.Get(ent)
}
