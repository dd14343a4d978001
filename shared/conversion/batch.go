package conversion

import (
	"context"

	"github.com/defvs/touhosu/shared/hitobject"
	"github.com/defvs/touhosu/shared/projectile"
	"golang.org/x/sync/errgroup"
)

// ConvertAll converts several beatmaps concurrently, each in its own run.
// Results keep the order of beatmaps. The first failure cancels the others.
func ConvertAll(ctx context.Context, c *Converter, beatmaps []*hitobject.Beatmap) ([][]projectile.Projectile, error) {
	results := make([][]projectile.Projectile, len(beatmaps))

	g, ctx := errgroup.WithContext(ctx)
	for i, b := range beatmaps {
		g.Go(func() error {
			out, err := c.Convert(ctx, b)
			if err != nil {
				return err
			}
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
