// Command emojigen generates the emoji data table (tables.go) from the
// Unicode emoji-test.txt data file and the gemoji shortcode database.
//
// Both inputs can be URLs or local file paths, so a checked-in copy of
// the feeds can be used for reproducible builds:
//
//	go run ./cmd/emojigen -out tables.go
//	go run ./cmd/emojigen -unicode testdata/emoji-test.txt -gemoji testdata/emoji.json
//
// Integrity failures (duplicate emoji strings, duplicate shortcodes,
// malformed skin tone families) abort generation; they must never reach
// the committed table.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gogpu/emoji/internal/gemoji"
	"github.com/gogpu/emoji/internal/unicode"
)

const (
	defaultUnicodeURL = "https://unicode.org/Public/emoji/15.1/emoji-test.txt"
	defaultGemojiURL  = "https://raw.githubusercontent.com/github/gemoji/master/db/emoji.json"
)

func main() {
	var (
		unicodeSrc = flag.String("unicode", defaultUnicodeURL, "emoji-test.txt URL or file")
		gemojiSrc  = flag.String("gemoji", defaultGemojiURL, "gemoji emoji.json URL or file")
		out        = flag.String("out", "tables.go", "output file")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(logger, *unicodeSrc, *gemojiSrc, *out); err != nil {
		logger.Error("generation failed", "err", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, unicodeSrc, gemojiSrc, out string) error {
	start := time.Now()

	ur, err := open(unicodeSrc)
	if err != nil {
		return err
	}
	defer ur.Close()
	entries, err := unicode.Parse(ur)
	if err != nil {
		return err
	}
	logger.Debug("parsed emoji-test.txt", "entries", len(entries))

	gr, err := open(gemojiSrc)
	if err != nil {
		return err
	}
	defer gr.Close()
	aliases, err := gemoji.Parse(gr)
	if err != nil {
		return err
	}
	logger.Debug("parsed gemoji database", "emoji", len(aliases))

	table, err := merge(entries, aliases, logger)
	if err != nil {
		return err
	}

	src, err := render(table, unicodeSrc, gemojiSrc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(out, src, 0o644); err != nil {
		return err
	}

	logger.Info("generated",
		"out", out,
		"entries", len(table),
		"elapsed", time.Since(start).Round(time.Millisecond))
	return nil
}

// open returns a reader for a URL or local file path.
func open(src string) (io.ReadCloser, error) {
	if !strings.HasPrefix(src, "http://") && !strings.HasPrefix(src, "https://") {
		return os.Open(src)
	}
	resp, err := http.Get(src)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("fetch %s: %s", src, resp.Status)
	}
	return resp.Body, nil
}
