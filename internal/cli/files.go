package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/bjaus/pretty"
	"github.com/bjaus/pretty/internal/decode"
)

// runFiles renders every path with at most s.Jobs files in flight. Each
// worker owns its Renderer. Output follows argument order, with a "# path"
// header before each file when there is more than one.
func runFiles(ctx context.Context, w io.Writer, paths []string, s Settings) error {
	if ctx == nil {
		ctx = context.Background()
	}
	results := make([]string, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.Jobs)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out, err := renderFile(path, s)
			if err != nil {
				return err
			}
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, path := range paths {
		if len(paths) > 1 {
			if _, err := fmt.Fprintf(w, "# %s\n", path); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, results[i]); err != nil {
			return err
		}
	}
	return nil
}

func renderFile(path string, s Settings) (string, error) {
	format, err := formatFor(path, s.Format)
	if err != nil {
		return "", err
	}
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	docs, err := decode.Decode(f, format)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	log.Debug().Str("path", path).Str("format", format.String()).Int("documents", len(docs)).Msg("decoded file")

	var b strings.Builder
	if err := pretty.WriteIter(&b, slices.Values(docs), rendererOptions(s, path)...); err != nil {
		return "", err
	}
	return b.String(), nil
}

func formatFor(path, override string) (decode.Format, error) {
	if override != "" {
		return decode.ParseFormat(override)
	}
	return decode.Detect(path)
}
