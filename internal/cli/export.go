package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pinboard/pkg/boardfile"
	"github.com/matzehuels/pinboard/pkg/cache"
	"github.com/matzehuels/pinboard/pkg/export"
)

const (
	formatSVG = "svg"
	formatDOT = "dot"
)

// exportOpts holds the command-line flags for the export command.
type exportOpts struct {
	output   string // output file path; derived from the board file when empty
	format   string // output format: "svg" or "dot"
	detailed bool   // include position and size in note labels
	noCache  bool   // skip the rendered-export cache
}

// newExportCmd creates the export command for rendering board diagrams.
// Rendered SVGs are cached by content hash under the user cache directory,
// so re-exporting an unchanged board is instant.
func newExportCmd() *cobra.Command {
	opts := exportOpts{format: formatSVG}

	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Render a board as a DOT or SVG diagram",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.format != formatSVG && opts.format != formatDOT {
				return fmt.Errorf("unknown format %q (want svg or dot)", opts.format)
			}
			return runExport(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (defaults to the board file name)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg (default), dot")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include position and size in note labels")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "always re-render, skipping the export cache")

	return cmd
}

func runExport(ctx context.Context, path string, opts *exportOpts) error {
	logger := loggerFromContext(ctx)

	def, err := boardfile.Load(path)
	if err != nil {
		return err
	}
	_, notes := boardfile.Build(def)
	logger.Debug("board loaded", "path", path, "notes", len(notes))

	dot := export.ToDOT(notes, export.Options{Detailed: opts.detailed})

	out := opts.output
	if out == "" {
		out = strings.TrimSuffix(path, filepath.Ext(path)) + "." + opts.format
	}

	var data []byte
	cached := false
	switch opts.format {
	case formatDOT:
		data = []byte(dot)
	case formatSVG:
		data, cached, err = renderCached(ctx, dot, opts.noCache)
		if err != nil {
			return err
		}
	}

	if err := os.WriteFile(out, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}

	printSuccess("Exported %s", def.Title)
	printFile(out)
	printStats(len(notes), 0, 0, cached)

	return nil
}

// renderCached renders DOT to SVG through the export cache. Cache failures
// degrade to rendering without caching rather than failing the export.
func renderCached(ctx context.Context, dot string, noCache bool) (data []byte, cached bool, err error) {
	logger := loggerFromContext(ctx)

	c := openCache(ctx, noCache)
	defer c.Close()

	key := cache.NewDefaultKeyer().ExportKey(dot, formatSVG)
	if data, hit, err := c.Get(ctx, key); err == nil && hit {
		logger.Debug("export cache hit", "key", key)
		return data, true, nil
	}

	p := newProgress(logger)
	data, err = export.RenderSVG(ctx, dot)
	if err != nil {
		return nil, false, err
	}
	p.done("Rendered board")

	if err := c.Set(ctx, key, data, 0); err != nil {
		logger.Warn("export cache write failed", "err", err)
	}
	return data, false, nil
}

// openCache returns the rendered-export cache, or a null cache when caching
// is disabled or no cache directory is available.
func openCache(ctx context.Context, noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}

	base, err := os.UserCacheDir()
	if err != nil {
		return cache.NewNullCache()
	}
	c, err := cache.NewFileCache(filepath.Join(base, "pinboard"))
	if err != nil {
		loggerFromContext(ctx).Warn("export cache unavailable", "err", err)
		return cache.NewNullCache()
	}
	return c
}
