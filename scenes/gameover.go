package scenes

import (
	"image/color"
	"sync"

	"github.com/defvs/touhosu/components"
	cfg "github.com/defvs/touhosu/config"
	"github.com/defvs/touhosu/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ResultsScene shows how a session ended
type ResultsScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	result       components.ResultData
	retry        func() interface{}
	once         sync.Once
}

// NewResultsScene creates a results scene. retry builds a fresh session of
// the same beatmap.
func NewResultsScene(sc SceneChanger, result components.ResultData, retry func() interface{}) *ResultsScene {
	return &ResultsScene{sceneChanger: sc, result: result, retry: retry}
}

func (rs *ResultsScene) Update() {
	rs.once.Do(rs.configure)
	rs.ecs.Update()
}

func (rs *ResultsScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if rs.ecs == nil {
		return
	}
	rs.ecs.Draw(screen)
}

func (rs *ResultsScene) configure() {
	rs.ecs = ecs.NewECS(donburi.NewWorld())

	ent := rs.ecs.World.Entry(rs.ecs.World.Create(components.Result))
	components.Result.SetValue(ent, rs.result)

	createMenuScene := func() interface{} {
		return NewMenuScene(rs.sceneChanger)
	}

	systems.LatchInput(rs.ecs)
	rs.ecs.AddSystem(systems.UpdateInput)
	rs.ecs.AddSystem(systems.NewUpdateResults(rs.sceneChanger, rs.retry, createMenuScene))

	rs.ecs.AddRenderer(cfg.Default, systems.DrawResults)
}
