package main

import (
	"flag"
	"image"
	"log"
	"os"

	"github.com/defvs/touhosu/config"
	"github.com/defvs/touhosu/fonts"
	"github.com/defvs/touhosu/scenes"
	"github.com/defvs/touhosu/shared/beatmapdata"
	"github.com/defvs/touhosu/shared/gameconfig"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
	logger *zap.SugaredLogger
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

// Logger is shared by every scene
func (g *Game) Logger() *zap.SugaredLogger {
	return g.logger
}

func NewGame(logger *zap.SugaredLogger) *Game {
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	g := &Game{
		bounds: image.Rectangle{},
		logger: logger,
	}

	if config.Debug.BeatmapPath != "" {
		b, err := beatmapdata.Load(os.DirFS("."), config.Debug.BeatmapPath)
		if err != nil {
			log.Fatalf("Failed to load beatmap: %v", err)
		}
		g.scene = scenes.NewArenaScene(g, b)
	} else {
		g.scene = scenes.NewMenuScene(g)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	flag.StringVar(&config.Debug.BeatmapPath, "beatmap", "", "Beatmap YAML to play, relative to the working directory (skips the menu)")
	flag.StringVar(&config.Debug.ConfigPath, "config", "", "YAML file overriding gameplay tunables")
	flag.BoolVar(&config.Debug.ShowHitboxes, "hitboxes", false, "Show collision boxes")
	verbose := flag.Bool("v", false, "Verbose logging")
	flag.Parse()

	zl, err := newLogger(*verbose)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zl.Sync() //nolint:errcheck

	if config.Debug.ConfigPath != "" {
		f, err := os.Open(config.Debug.ConfigPath)
		if err != nil {
			log.Fatalf("Failed to open config: %v", err)
		}
		err = gameconfig.LoadOverrides(f)
		f.Close()
		if err != nil {
			log.Fatalf("Failed to apply config: %v", err)
		}
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("touhosu")

	if err := ebiten.RunGame(NewGame(zl.Sugar())); err != nil {
		log.Fatal(err)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
