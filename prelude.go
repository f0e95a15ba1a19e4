package main

import (
	"context"
	"embed"
	"fmt"
	"os"
	"path"

	"golang.org/x/sync/errgroup"
)

//go:embed prelude/*.fs
var preludeFS embed.FS

// preludeFiles are loaded in order at startup.
var preludeFiles = []string{
	"prelude/constants.fs",
	"prelude/definitions.fs",
}

// source is one whole program text, processed in a single Exec.
type source struct {
	name string
	text string
}

func preludeSources() ([]source, error) {
	srcs := make([]source, len(preludeFiles))
	for i, name := range preludeFiles {
		data, err := preludeFS.ReadFile(name)
		if err != nil {
			return nil, err
		}
		srcs[i] = source{name: path.Base(name), text: string(data)}
	}
	return srcs, nil
}

// readSources reads the named files concurrently, keeping their order.
func readSources(ctx context.Context, names []string) ([]source, error) {
	srcs := make([]source, len(names))
	eg, ctx := errgroup.WithContext(ctx)
	for i, name := range names {
		i, name := i, name
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(name)
			if err != nil {
				return fmt.Errorf("problem loading %v: %w", name, err)
			}
			srcs[i] = source{name: name, text: string(data)}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return srcs, nil
}

// load processes each source whole, in order, continuing past failures; each
// failure is returned prefixed with its source name.
func (e *Engine) load(ctx context.Context, srcs []source) (errs []error) {
	for _, src := range srcs {
		if err := e.Exec(ctx, src.text); err != nil {
			errs = append(errs, fmt.Errorf("%v: %w", src.name, err))
		}
		if ctx.Err() != nil {
			break
		}
	}
	return errs
}
