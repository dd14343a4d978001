package scenes

import (
	"context"
	"log"
	"sync"

	"github.com/defvs/touhosu/arena"
	"github.com/defvs/touhosu/assets"
	"github.com/defvs/touhosu/components"
	cfg "github.com/defvs/touhosu/config"
	"github.com/defvs/touhosu/shared/conversion"
	"github.com/defvs/touhosu/shared/hitobject"
	"github.com/defvs/touhosu/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// ArenaScene plays one beatmap
type ArenaScene struct {
	ecs          *ecs.ECS
	arena        *arena.Arena
	sceneChanger SceneChanger
	beatmap      *hitobject.Beatmap
	once         sync.Once
}

// NewArenaScene creates a scene that converts and plays beatmap
func NewArenaScene(sc SceneChanger, beatmap *hitobject.Beatmap) *ArenaScene {
	return &ArenaScene{sceneChanger: sc, beatmap: beatmap}
}

// NewBundledArenaScene loads a bundled beatmap by name, falling back to the
// menu when it cannot be read.
func NewBundledArenaScene(sc SceneChanger, name string) interface{} {
	b, err := assets.LoadBeatmap(name)
	if err != nil {
		log.Printf("Warning: Could not load beatmap %s: %v", name, err)
		return NewMenuScene(sc)
	}
	return NewArenaScene(sc, b)
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	if as.ecs == nil {
		return
	}
	as.ecs.Update()

	input, ok := components.Input.First(as.ecs.World)
	if ok && components.Input.Get(input).Action(cfg.ActionRestart).JustPressed {
		as.sceneChanger.ChangeScene(as.restart())
		return
	}

	sim := as.arena.Player()
	dead := !sim.Alive() && sim.Opacity() <= 0
	if as.arena.Finished() || dead {
		as.sceneChanger.ChangeScene(NewResultsScene(as.sceneChanger, as.result(), as.restart))
	}
}

func (as *ArenaScene) restart() interface{} {
	return NewArenaScene(as.sceneChanger, as.beatmap)
}

func (as *ArenaScene) result() components.ResultData {
	return components.ResultData{
		Beatmap: as.beatmap.Title,
		Cleared: as.arena.Player().Alive(),
		Hits:    components.Player.Get(as.arena.PlayerEntry()).Hits,
		Lives:   as.arena.Lives(),
		Time:    as.arena.Time(),
	}
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Colors.Background)

	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
}

func (as *ArenaScene) configure() {
	logger := as.sceneChanger.Logger()

	converter := conversion.New(conversion.WithLogger(logger))
	queue, err := converter.Convert(context.Background(), as.beatmap)
	if err != nil {
		log.Printf("Warning: Could not convert beatmap %s: %v", as.beatmap.Title, err)
		as.sceneChanger.ChangeScene(NewMenuScene(as.sceneChanger))
		return
	}

	as.arena = arena.New(queue, arena.WithLogger(logger))
	as.ecs = ecs.NewECS(as.arena.World())

	// Movement keys are not latched: the player sim needs every release
	// paired with a press.
	systems.LatchInput(as.ecs, cfg.ActionRestart, cfg.ActionPause, cfg.ActionDebug)

	// Systems that always run
	as.ecs.AddSystem(systems.UpdateInput)
	as.ecs.AddSystem(systems.UpdatePause)
	as.ecs.AddSystem(systems.UpdateDebug)
	as.ecs.AddSystem(systems.UpdatePlayerInput)

	// The song clock, player, projectiles and collisions stop while paused
	as.ecs.AddSystem(systems.WithGameplayChecks(systems.NewUpdateArena(as.arena)))

	// Add renderers
	as.ecs.AddRenderer(cfg.Default, systems.DrawArena)
	as.ecs.AddRenderer(cfg.Default, systems.DrawProjectiles)
	as.ecs.AddRenderer(cfg.Default, systems.DrawShots)
	as.ecs.AddRenderer(cfg.Default, systems.DrawPlayer)
	as.ecs.AddRenderer(cfg.Default, systems.NewDrawHUD(as.beatmap.Title))
	as.ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	as.ecs.AddRenderer(cfg.Default, systems.DrawPause)
}
