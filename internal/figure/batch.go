package figure

import (
	"context"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/san-kum/graphinglib/internal/config"
	"github.com/san-kum/graphinglib/internal/functions"
	"github.com/san-kum/graphinglib/internal/storage"
)

// Result reports the outcome of rendering one figure file.
type Result struct {
	Config string
	Output string
	Err    error
}

// Batch renders several figure files concurrently.
type Batch struct {
	Registry *functions.Registry
	Store    *storage.Store
	Workers  int
	// Override, when set, adjusts each loaded description before it is built.
	Override func(*config.Figure)
}

// outputFor names the image written for a description without an output.
func outputFor(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".png"
}

// Render builds and saves every path. Results keep the order of paths. Paths
// not yet started when ctx is cancelled report ctx.Err().
func (b *Batch) Render(ctx context.Context, paths []string) []Result {
	workers := b.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	reg := b.Registry
	if reg == nil {
		reg = functions.NewRegistry()
	}

	results := make([]Result, len(paths))
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for i, path := range paths {
		results[i].Config = path
		select {
		case <-ctx.Done():
			results[i].Err = ctx.Err()
			continue
		case sem <- struct{}{}:
		}

		wg.Add(1)
		go func(idx int, path string) {
			defer wg.Done()
			defer func() { <-sem }()
			results[idx].Output, results[idx].Err = b.renderOne(ctx, reg, path)
		}(i, path)
	}
	wg.Wait()
	return results
}

func (b *Batch) renderOne(ctx context.Context, reg *functions.Registry, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return "", err
	}
	if b.Override != nil {
		b.Override(cfg)
	}
	out := cfg.Output
	if out == "" {
		out = outputFor(path)
	}
	f, err := Build(cfg, reg, b.Store)
	if err != nil {
		return "", err
	}
	return out, f.Save(out)
}
