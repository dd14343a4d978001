// Command convert turns beatmap YAML files into projectile streams and prints
// a summary per beatmap. With -simulate it also plays each stream against an
// idle player and reports how many hits it took.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/defvs/touhosu/arena"
	"github.com/defvs/touhosu/shared/beatmapdata"
	"github.com/defvs/touhosu/shared/conversion"
	"github.com/defvs/touhosu/shared/gameconfig"
	"github.com/defvs/touhosu/shared/hitobject"
	"github.com/defvs/touhosu/shared/projectile"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "YAML file overriding gameplay tunables")
	simulate := flag.Bool("simulate", false, "Play each stream against an idle player")
	tick := flag.Float64("tick", 1000.0/60, "Simulation step in milliseconds")
	flag.Parse()

	if flag.NArg() == 0 {
		log.Fatalf("usage: convert [-config file] [-simulate] beatmap.yaml...")
	}

	zl, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zl.Sync() //nolint:errcheck
	logger := zl.Sugar()

	if *configPath != "" {
		f, err := os.Open(*configPath)
		if err != nil {
			log.Fatalf("Failed to open config: %v", err)
		}
		err = gameconfig.LoadOverrides(f)
		f.Close()
		if err != nil {
			log.Fatalf("Failed to apply config: %v", err)
		}
	}

	beatmaps := make([]*hitobject.Beatmap, 0, flag.NArg())
	for _, path := range flag.Args() {
		b, err := beatmapdata.Load(os.DirFS("."), path)
		if err != nil {
			log.Fatalf("Failed to load beatmap: %v", err)
		}
		if err := conversion.CanConvert(b); err != nil {
			log.Fatalf("Cannot convert %s: %v", path, err)
		}
		beatmaps = append(beatmaps, b)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	converter := conversion.New(conversion.WithLogger(logger))
	results, err := conversion.ConvertAll(ctx, converter, beatmaps)
	if err != nil {
		log.Fatalf("Conversion failed: %v", err)
	}

	for i, out := range results {
		printSummary(beatmaps[i].Title, out)
		if *simulate {
			runIdle(out, *tick, logger)
		}
	}
}

func printSummary(title string, out []projectile.Projectile) {
	counts := map[projectile.Kind]int{}
	var end float64
	for _, p := range out {
		counts[p.Kind]++
		if p.StartTime > end {
			end = p.StartTime
		}
	}

	fmt.Printf("%s: %d entities, last at %.0fms\n", title, len(out), end)
	for k := projectile.MovingBullet; k <= projectile.SoundMarker; k++ {
		if counts[k] > 0 {
			fmt.Printf("  %-28s %d\n", k, counts[k])
		}
	}
}

// runIdle plays the stream with no input until it finishes or the player dies.
func runIdle(out []projectile.Projectile, tick float64, logger *zap.SugaredLogger) {
	a := arena.New(out, arena.WithLogger(logger))
	for !a.Finished() && a.Player().Alive() {
		a.Update(tick)
	}
	fmt.Printf("  idle run: %.1fs, lives left %d\n", a.Time()/1000, a.Lives())
}
