package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/coregx/horspool"
)

const stdinName = "-"

type result struct {
	name    string
	matched bool
}

// search checks every input against p using up to jobs goroutines. All
// workers share the one compiled pattern. Results keep the input order.
func search(ctx context.Context, logger *slog.Logger, p *horspool.Pattern, inputs []string, stdin io.Reader, jobs int) ([]result, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	results := make([]result, len(inputs))
	readStdin := sync.OnceValues(func() ([]byte, error) {
		return io.ReadAll(stdin)
	})

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, name := range inputs {
		i, name := i, name
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			var data []byte
			var err error
			if name == stdinName {
				data, err = readStdin()
			} else {
				data, err = os.ReadFile(name)
			}
			if err != nil {
				return fmt.Errorf("reading %s: %w", name, err)
			}

			matched := p.Contains(data)
			logger.Debug("searched input", "name", name, "size", len(data), "matched", matched)
			results[i] = result{name: name, matched: matched}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
