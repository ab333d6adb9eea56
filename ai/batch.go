package ai

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/gopherd/landlord/poker"
)

// 并发地对多手牌做主动出牌拆牌, 结果与输入一一对应
func DecomposeBatch(ctx context.Context, hands []poker.Cards, opts Options) ([]PlayHand, error) {
	results := make([]PlayHand, len(hands))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.parallelism())
	for i := range hands {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = DecomposeForLead(hands[i], opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
