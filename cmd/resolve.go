package cmd

import (
	"errors"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"screenwave/internal/history"
	"screenwave/internal/httputil"
	"screenwave/internal/media"
	"screenwave/internal/player"
	"screenwave/internal/ui"
)

// resolveRun is the default command: screenwave <url...>
func resolveRun(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}

	urls := make([]string, len(args))
	for i, arg := range args {
		u := withScheme(arg)
		if err := httputil.ValidateURL(u); err != nil {
			return fmt.Errorf("%s: %w", arg, err)
		}
		urls[i] = u
	}

	if (flagPick || flagPlay) && len(urls) > 1 {
		return fmt.Errorf("--pick and --play take a single URL")
	}

	results, failed, err := resolveURLs(cmd.Context(), urls)
	if err != nil {
		return err
	}
	if err := handleResults(cmd.OutOrStdout(), results); err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d URLs failed", failed, len(urls))
	}
	return nil
}

// withScheme adds http:// to scheme-less arguments such as
// "cinemassacre.com/2012/11/10/avgn-the-movie-trailer/".
func withScheme(arg string) string {
	if strings.Contains(arg, "://") {
		return arg
	}
	return "http://" + arg
}

// resolveURLs resolves every URL and returns the successful results in
// input order. A single URL's error is returned as is; in a batch, failures
// are reported on stderr and counted.
func resolveURLs(ctx context.Context, urls []string) ([]*media.VideoResult, int, error) {
	r := newResolver()

	if len(urls) == 1 {
		res, err := r.Resolve(ctx, urls[0])
		if err != nil {
			return nil, 0, err
		}
		return []*media.VideoResult{res}, 0, nil
	}

	debugf("resolving %d URLs with %d workers", len(urls), cfg.Workers)

	var (
		results []*media.VideoResult
		failed  int
	)
	for _, o := range r.ResolveAll(ctx, urls, cfg.Workers) {
		if o.Err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", o.URL, o.Err)
			failed++
			continue
		}
		results = append(results, o.Result)
	}
	return results, failed, nil
}

// handleResults records, saves, plays or prints resolved videos.
func handleResults(w io.Writer, results []*media.VideoResult) error {
	if len(results) == 0 {
		return nil
	}

	recordHistory(results)

	if cfg.InfoDir != "" {
		dir, err := cfg.ExpandInfoDir()
		if err != nil {
			return fmt.Errorf("resolving info dir: %w", err)
		}
		for _, res := range results {
			path, err := writeInfo(dir, res)
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "Wrote: %s\n", path)
		}
	}

	if flagPick || flagPlay {
		return pickAndPlay(w, results[0])
	}

	return printResults(w, results)
}

func recordHistory(results []*media.VideoResult) {
	if !cfg.History {
		return
	}

	store, err := history.OpenDefault()
	if err != nil {
		debugf("opening history failed: %v", err)
		return
	}
	defer store.Close()

	now := time.Now()
	for _, res := range results {
		if err := store.Record(history.Entry(res, now)); err != nil {
			debugf("saving history failed: %v", err)
		}
	}
}

var titleSeparators = strings.NewReplacer("/", "_", "\\", "_")

// writeInfo saves a result as <title>.info.json inside dir.
func writeInfo(dir string, res *media.VideoResult) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating info dir: %w", err)
	}

	// Titles like "AC/DC" are names, not paths.
	name := titleSeparators.Replace(res.Title) + ".info.json"
	path, err := httputil.SafeOutputPath(dir, name)
	if err != nil {
		return "", fmt.Errorf("info path for %s: %w", res.ID, err)
	}

	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding %s: %w", res.ID, err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

// pickAndPlay chooses a format (interactively with --pick, otherwise the
// best) and either plays it or prints its URL.
func pickAndPlay(w io.Writer, res *media.VideoResult) error {
	format := res.Formats[0]

	if flagPick && len(res.Formats) > 1 {
		labels := lo.Map(res.Formats, func(f media.FormatVariant, _ int) string {
			return ui.FormatLabel(f)
		})
		idx, err := ui.Select(res.Title, labels)
		if errors.Is(err, ui.ErrCancelled) {
			return nil
		}
		if err != nil {
			return err
		}
		format = res.Formats[idx]
	}
	debugf("format: %s (%s)", format.FormatID, format.URL)

	if !flagPlay {
		_, err := fmt.Fprintln(w, format.URL)
		return err
	}

	p := player.New(cfg.Player)
	if !p.Available() {
		return fmt.Errorf("player %q not found in PATH", cfg.Player)
	}
	if err := p.Play(format, res.Title); err != nil {
		return fmt.Errorf("playback failed: %w", err)
	}
	return nil
}

func printResults(w io.Writer, results []*media.VideoResult) error {
	if cfg.Output == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if len(results) == 1 {
			return enc.Encode(results[0])
		}
		return enc.Encode(results)
	}

	styled := false
	if f, ok := w.(*os.File); ok {
		styled = ui.Styled(f)
	}
	for _, res := range results {
		if _, err := io.WriteString(w, ui.Render(res, styled)); err != nil {
			return err
		}
	}
	return nil
}
