package degiro

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
)

func makeIDs(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("%d", i+1)
	}
	return ids
}

// echoFetch returns a map keyed by every requested id and records chunk sizes.
type echoFetch struct {
	mu     sync.Mutex
	chunks [][]string
}

func (e *echoFetch) fetch(_ context.Context, batch []string) (ProductMap, error) {
	e.mu.Lock()
	e.chunks = append(e.chunks, batch)
	e.mu.Unlock()

	partial := make(ProductMap, len(batch))
	for _, id := range batch {
		partial[id] = json.RawMessage(`{"id":"` + id + `"}`)
	}
	return partial, nil
}

func TestBatchFetch(t *testing.T) {
	t.Run("splits 120 ids into chunks of 50, 50 and 20", func(t *testing.T) {
		fetcher := &echoFetch{}

		merged, err := batchFetch(context.Background(), makeIDs(120), 50, fetcher.fetch)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		if len(fetcher.chunks) != 3 {
			t.Fatalf("Expected 3 chunk requests, got %d", len(fetcher.chunks))
		}

		sizes := make(map[int]int)
		for _, chunk := range fetcher.chunks {
			sizes[len(chunk)]++
		}
		if sizes[50] != 2 || sizes[20] != 1 {
			t.Errorf("Expected chunk sizes [50 50 20], got %v", sizes)
		}

		if len(merged) != 120 {
			t.Errorf("Expected 120 merged products, got %d", len(merged))
		}
		for _, id := range makeIDs(120) {
			if _, ok := merged[id]; !ok {
				t.Errorf("Expected merged map to contain id %s", id)
			}
		}
	})

	t.Run("issues ceil(N/size) chunk requests", func(t *testing.T) {
		for _, tc := range []struct {
			n, size, want int
		}{
			{1, 50, 1},
			{50, 50, 1},
			{51, 50, 2},
			{100, 50, 2},
			{101, 50, 3},
		} {
			fetcher := &echoFetch{}
			if _, err := batchFetch(context.Background(), makeIDs(tc.n), tc.size, fetcher.fetch); err != nil {
				t.Fatalf("Unexpected error for n=%d: %v", tc.n, err)
			}
			if len(fetcher.chunks) != tc.want {
				t.Errorf("n=%d size=%d: expected %d chunks, got %d", tc.n, tc.size, tc.want, len(fetcher.chunks))
			}
		}
	})

	t.Run("returns empty map and no requests for empty input", func(t *testing.T) {
		fetcher := &echoFetch{}

		merged, err := batchFetch(context.Background(), nil, 50, fetcher.fetch)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if len(fetcher.chunks) != 0 {
			t.Errorf("Expected 0 chunk requests, got %d", len(fetcher.chunks))
		}
		if len(merged) != 0 {
			t.Errorf("Expected empty merged map, got %d entries", len(merged))
		}
	})

	t.Run("fails the whole call when one chunk fails", func(t *testing.T) {
		fetchErr := errors.New("chunk exploded")
		calls := 0
		var mu sync.Mutex

		merged, err := batchFetch(context.Background(), makeIDs(120), 50, func(_ context.Context, batch []string) (ProductMap, error) {
			mu.Lock()
			calls++
			mu.Unlock()
			if batch[0] == "51" {
				return nil, fetchErr
			}
			partial := make(ProductMap)
			for _, id := range batch {
				partial[id] = json.RawMessage(`{}`)
			}
			return partial, nil
		})

		if !errors.Is(err, fetchErr) {
			t.Fatalf("Expected chunk error to propagate, got %v", err)
		}
		if merged != nil {
			t.Errorf("Expected no partial result on error, got %d entries", len(merged))
		}
	})

	t.Run("merges ids the broker returned without being asked", func(t *testing.T) {
		merged, err := batchFetch(context.Background(), makeIDs(2), 1, func(_ context.Context, batch []string) (ProductMap, error) {
			partial := ProductMap{batch[0]: json.RawMessage(`{}`)}
			if batch[0] == "1" {
				partial["surprise"] = json.RawMessage(`{}`)
			}
			return partial, nil
		})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if len(merged) != 3 {
			t.Errorf("Expected 3 entries including the unrequested id, got %d", len(merged))
		}
		if _, ok := merged["surprise"]; !ok {
			t.Error("Expected unrequested id to survive the merge")
		}
	})
}

func TestChunkIDs(t *testing.T) {
	t.Run("last chunk may be smaller", func(t *testing.T) {
		chunks := chunkIDs(makeIDs(7), 3)
		if len(chunks) != 3 {
			t.Fatalf("Expected 3 chunks, got %d", len(chunks))
		}
		if len(chunks[2]) != 1 {
			t.Errorf("Expected last chunk of size 1, got %d", len(chunks[2]))
		}
	})

	t.Run("chunks are contiguous and preserve order", func(t *testing.T) {
		chunks := chunkIDs([]string{"a", "b", "c", "d"}, 2)
		if chunks[0][0] != "a" || chunks[0][1] != "b" || chunks[1][0] != "c" || chunks[1][1] != "d" {
			t.Errorf("Expected contiguous chunks [[a b] [c d]], got %v", chunks)
		}
	})

	t.Run("empty input yields zero chunks", func(t *testing.T) {
		if chunks := chunkIDs(nil, 50); len(chunks) != 0 {
			t.Errorf("Expected 0 chunks, got %d", len(chunks))
		}
	})
}
