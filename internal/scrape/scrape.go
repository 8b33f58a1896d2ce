// Package scrape generates a solver corpus from ranked word-frequency
// listings: HTML pages whose tables hold one rank/word pair per row.
// Pages can come from a directory of saved files or a single HTTP fetch;
// the output is the one-word-per-line corpus file the solver loads, most
// frequent word first.
package scrape

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/antchfx/htmlquery"
	"github.com/antchfx/xpath"
	"golang.org/x/net/html"
)

// Frequency listings put the numeric rank in the first cell of a row
// and the word, as a link, in the second.
var (
	rowExpr  = xpath.MustCompile("//tr[td[2]/a]")
	rankExpr = xpath.MustCompile("td[1]")
	wordExpr = xpath.MustCompile("td[2]/a")
)

// Entry is one scraped word and its frequency rank (1 = most frequent).
type Entry struct {
	Rank int
	Word string
}

// Parse extracts rank/word entries from one HTML page. Rows that don't
// carry a parseable rank or a non-empty word are skipped with a warning.
// A page with no usable rows is an error.
func Parse(r io.Reader) ([]Entry, error) {
	doc, err := htmlquery.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing page: %w", err)
	}

	var entries []Entry
	for _, row := range htmlquery.QuerySelectorAll(doc, rowExpr) {
		e, err := parseRow(row)
		if err != nil {
			slog.Warn("skipping row", "err", err)
			continue
		}
		entries = append(entries, e)
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("no rank/word rows found")
	}
	return entries, nil
}

func parseRow(row *html.Node) (Entry, error) {
	rankNode := htmlquery.QuerySelector(row, rankExpr)
	wordNode := htmlquery.QuerySelector(row, wordExpr)
	if rankNode == nil || wordNode == nil {
		return Entry{}, fmt.Errorf("incomplete row")
	}

	rank, err := strconv.Atoi(strings.TrimSpace(htmlquery.InnerText(rankNode)))
	if err != nil {
		return Entry{}, fmt.Errorf("bad rank: %w", err)
	}

	word := strings.TrimSpace(htmlquery.InnerText(wordNode))
	if word == "" {
		return Entry{}, fmt.Errorf("empty word at rank %d", rank)
	}

	return Entry{Rank: rank, Word: word}, nil
}

// File parses one saved page.
func File(fn string) ([]Entry, error) {
	fh, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	entries, err := Parse(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fn, err)
	}
	return entries, nil
}

// Dir parses every regular file in a directory of saved pages and
// returns the combined entries sorted by rank.
func Dir(dir string) ([]Entry, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading pages: %w", err)
	}

	var entries []Entry
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		e, err := File(filepath.Join(dir, f.Name()))
		if err != nil {
			return nil, err
		}
		entries = append(entries, e...)
	}

	Sort(entries)
	return entries, nil
}

// Fetch downloads and parses a single listing page.
func Fetch(ctx context.Context, url string) ([]Entry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: %s", url, resp.Status)
	}

	entries, err := Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", url, err)
	}

	Sort(entries)
	return entries, nil
}

// Sort orders entries most frequent (lowest rank) first, the order the
// solver's corpus format requires.
func Sort(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Rank < entries[j].Rank
	})
}

// WriteCorpus writes entries as a corpus file, one word per line in the
// given order.
func WriteCorpus(w io.Writer, entries []Entry) error {
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		if _, err := fmt.Fprintln(bw, e.Word); err != nil {
			return err
		}
	}
	return bw.Flush()
}
