package degiro

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// batchFetch partitions ids into contiguous chunks of at most size, fetches
// every chunk concurrently through fetchOne, and merges the partial maps.
// Chunks partition disjoint key ranges, so merge order cannot matter. The
// first failing chunk cancels the rest and fails the whole call; no partial
// result is ever returned alongside an error.
func batchFetch(ctx context.Context, ids []string, size int, fetchOne func(ctx context.Context, batch []string) (ProductMap, error)) (ProductMap, error) {
	chunks := chunkIDs(ids, size)

	partials := make([]ProductMap, len(chunks))
	g, gctx := errgroup.WithContext(ctx)
	for i, chunk := range chunks {
		i, chunk := i, chunk
		g.Go(func() error {
			partial, err := fetchOne(gctx, chunk)
			if err != nil {
				return err
			}
			partials[i] = partial
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := make(ProductMap)
	for _, partial := range partials {
		for id, product := range partial {
			merged[id] = product
		}
	}
	return merged, nil
}

// chunkIDs splits ids into contiguous chunks of at most size. The last chunk
// may be smaller; an empty input yields zero chunks.
func chunkIDs(ids []string, size int) [][]string {
	var chunks [][]string
	for start := 0; start < len(ids); start += size {
		end := start + size
		if end > len(ids) {
			end = len(ids)
		}
		chunks = append(chunks, ids[start:end])
	}
	return chunks
}
