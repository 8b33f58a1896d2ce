// Package corpus builds the pattern index a solve runs against: a lookup
// from structural letter pattern to the corpus words sharing it, in the
// corpus's frequency order.
package corpus

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Index maps word patterns to the corpus words that share them. Bucket
// order is input order, which for a well-formed corpus is descending
// real-world frequency; the search relies on that as candidate priority.
// An Index is immutable once built.
type Index struct {
	buckets map[string][]string
	nrWords int
}

// Build indexes words in the order given. Words are not validated;
// duplicates and mixed case pass through as-is.
func Build(words []string) *Index {
	ix := &Index{buckets: make(map[string][]string)}
	for _, w := range words {
		p := Pattern(w)
		ix.buckets[p] = append(ix.buckets[p], w)
		ix.nrWords++
	}
	return ix
}

// Load reads a corpus, one word per line, most frequent first.
func Load(r io.Reader) (*Index, error) {
	var words []string
	s := bufio.NewScanner(r)
	for s.Scan() {
		words = append(words, s.Text())
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("reading corpus: %w", err)
	}
	return Build(words), nil
}

// Open loads a corpus file. A missing or unreadable file is an error;
// there is no fallback to an empty corpus, which could only ever produce
// unsolved results.
func Open(fn string) (*Index, error) {
	fh, err := os.Open(fn)
	if err != nil {
		return nil, fmt.Errorf("opening corpus: %w", err)
	}
	defer fh.Close()

	ix, err := Load(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fn, err)
	}
	return ix, nil
}

// Len returns the number of indexed words.
func (ix *Index) Len() int { return ix.nrWords }

// Candidates returns the corpus words that could match probe, in corpus
// frequency order. Probe is a ciphertext word rendered under the current
// translation: decoded positions are lowercase plaintext (or a literal
// apostrophe), undecoded positions are uppercase ciphertext letters.
// A decoded position must match the corpus word exactly; an undecoded
// position constrains only through the shared pattern. An unknown
// pattern yields no candidates.
func (ix *Index) Candidates(probe string) []string {
	bucket := ix.buckets[Pattern(probe)]
	if len(bucket) == 0 {
		return nil
	}

	var out []string
	for _, w := range bucket {
		if matches(probe, w) {
			out = append(out, w)
		}
	}
	return out
}

// matches reports whether a corpus word is compatible with a rendered
// probe of the same pattern (and therefore the same length).
func matches(probe, w string) bool {
	for i := 0; i < len(probe); i++ {
		pc := probe[i]
		fixed := pc >= 'a' && pc <= 'z' || pc == '\'' || w[i] == '\''
		if fixed && pc != w[i] {
			return false
		}
	}
	return true
}
