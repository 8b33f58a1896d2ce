// Command subsolver solves monoalphabetic substitution ciphers against a
// frequency-ordered word corpus, and can generate that corpus from a
// ranked word-frequency listing.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/alecthomas/kong"

	"github.com/jmccarv/subsolver/internal/corpus"
	"github.com/jmccarv/subsolver/internal/logging"
	"github.com/jmccarv/subsolver/internal/report"
	"github.com/jmccarv/subsolver/internal/scrape"
	"github.com/jmccarv/subsolver/internal/solver"
)

const version = "0.1.0"

// CLI defines the command-line interface for subsolver.
var CLI struct {
	Verbose bool `name:"verbose" short:"v" help:"Enable debug logging of the search."`

	Solve   SolveCmd   `cmd:"" help:"Solve a cryptogram"`
	Scrape  ScrapeCmd  `cmd:"" help:"Build a corpus file from a word-frequency listing"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// SolveCmd solves the ciphertext in a file.
type SolveCmd struct {
	Input      string        `arg:"" help:"File containing the ciphertext." type:"existingfile"`
	Corpus     string        `name:"corpus" short:"c" default:"corpus.txt" help:"Word corpus, one word per line, most frequent first."`
	MaxRuntime time.Duration `name:"max-runtime" short:"r" help:"Give up after this amount of time. Ex: 30s or 1m"`
	MaxNodes   int           `name:"max-nodes" help:"Search-node budget per tolerance level (0 = unlimited)."`
}

func (c *SolveCmd) Run() error {
	raw, err := os.ReadFile(c.Input)
	if err != nil {
		return err
	}

	ix, err := corpus.Open(c.Corpus)
	if err != nil {
		return err
	}

	eng := solver.New(ix, solver.WithMaxNodes(c.MaxNodes))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if c.MaxRuntime > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.MaxRuntime)
		defer cancel()
	}

	start := time.Now()
	sol, err := eng.Solve(ctx, strings.TrimSpace(string(raw)))
	switch {
	case errors.Is(err, solver.ErrUnsolved):
		report.FprintUnsolved(os.Stdout)
		return nil
	case err != nil:
		return err
	}

	report.Fprint(os.Stdout, sol)
	fmt.Printf("\nSolved in %v\n", time.Since(start).Round(time.Millisecond))
	return nil
}

// ScrapeCmd builds a corpus file from saved pages or a URL.
type ScrapeCmd struct {
	Source string `arg:"" help:"Directory of saved frequency-listing pages, or an http(s) URL."`
	Out    string `name:"out" short:"o" default:"corpus.txt" help:"Corpus file to write."`
}

func (c *ScrapeCmd) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var entries []scrape.Entry
	var err error
	if strings.HasPrefix(c.Source, "http://") || strings.HasPrefix(c.Source, "https://") {
		entries, err = scrape.Fetch(ctx, c.Source)
	} else {
		entries, err = scrape.Dir(c.Source)
	}
	if err != nil {
		return err
	}

	out, err := os.Create(c.Out)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := scrape.WriteCorpus(out, entries); err != nil {
		return err
	}

	fmt.Printf("Wrote %d words to %s\n", len(entries), c.Out)
	return nil
}

// VersionCmd prints the version.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("subsolver v%s\n", version)
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("subsolver"),
		kong.Description("Substitution-cipher (cryptogram) solver"),
		kong.UsageOnError(),
	)

	logging.Init(CLI.Verbose)
	ctx.FatalIfErrorf(ctx.Run())
}
