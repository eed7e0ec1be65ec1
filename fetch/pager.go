// Package fetch implements the request-until-exhausted loops against the video platform API.
package fetch

import (
	"context"
	"fmt"

	"github.com/researchaccelerator-hub/video-insights/model/youtube"
	"github.com/rs/zerolog"
)

// PageFunc performs one page request. An empty token requests the first page.
type PageFunc[T any] func(ctx context.Context, pageToken string) (youtube.Page[T], error)

// BatchFunc performs one request for a chunk of identifiers.
type BatchFunc[T any] func(ctx context.Context, ids []string) ([]T, error)

// Fetcher runs paged and chunked requests, recording every call in a ledger.
type Fetcher struct {
	logger zerolog.Logger
	ledger *Ledger
}

// NewFetcher creates a fetcher. A nil ledger disables call accounting.
func NewFetcher(logger zerolog.Logger, ledger *Ledger) *Fetcher {
	return &Fetcher{logger: logger, ledger: ledger}
}

// Ledger returns the ledger calls are recorded in.
func (f *Fetcher) Ledger() *Ledger { return f.ledger }

// FetchAll requests pages until the continuation token is absent or empty and
// returns the concatenation of every page in order. A positive maxItems stops
// the loop once that many items were collected and truncates the result.
func FetchAll[T any](ctx context.Context, f *Fetcher, kind string, maxItems int, page PageFunc[T]) ([]T, error) {
	var (
		items []T
		token string
		pages int
	)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		f.ledger.Record(kind)
		p, err := page(ctx, token)
		pages++
		if err != nil {
			return nil, fmt.Errorf("%s page %d: %w", kind, pages, err)
		}
		items = append(items, p.Items...)

		f.logger.Debug().
			Str("call", kind).
			Int("page", pages).
			Int("items", len(p.Items)).
			Bool("has_next", p.HasNext()).
			Msg("Fetched page")

		if maxItems > 0 && len(items) >= maxItems {
			items = items[:maxItems]
			break
		}
		if !p.HasNext() {
			break
		}
		token = *p.NextPageToken
	}

	f.logger.Debug().Str("call", kind).Int("pages", pages).Int("items", len(items)).Msg("Paged fetch complete")
	return items, nil
}

// FetchChunked splits ids into consecutive chunks of at most chunkSize, issues
// one request per chunk and concatenates the results in chunk order.
func FetchChunked[T any](ctx context.Context, f *Fetcher, kind string, ids []string, chunkSize int, batch BatchFunc[T]) ([]T, error) {
	chunks := ChunkIDs(ids, chunkSize)
	var items []T
	for i, chunk := range chunks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		f.ledger.Record(kind)
		res, err := batch(ctx, chunk)
		if err != nil {
			return nil, fmt.Errorf("%s chunk %d/%d: %w", kind, i+1, len(chunks), err)
		}
		items = append(items, res...)
	}

	if len(chunks) > 0 {
		f.logger.Debug().Str("call", kind).Int("chunks", len(chunks)).Int("ids", len(ids)).Int("items", len(items)).Msg("Chunked fetch complete")
	}
	return items, nil
}

// ChunkIDs partitions ids into consecutive chunks of at most size elements.
// A non-positive size yields a single chunk.
func ChunkIDs(ids []string, size int) [][]string {
	if len(ids) == 0 {
		return nil
	}
	if size <= 0 {
		size = len(ids)
	}
	chunks := make([][]string, 0, (len(ids)+size-1)/size)
	for start := 0; start < len(ids); start += size {
		end := min(start+size, len(ids))
		chunks = append(chunks, ids[start:end])
	}
	return chunks
}
