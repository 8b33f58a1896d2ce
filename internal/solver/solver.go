// Package solver implements the cryptogram search: an escalating-
// tolerance, depth-first assignment of ciphertext letters to plaintext
// letters, word by word, against a corpus pattern index.
package solver

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"

	"github.com/jmccarv/subsolver/internal/corpus"
)

// ErrUnsolved means every tolerance level in the schedule was exhausted
// without finding a translation. It is a negative result, not a fault;
// a ciphertext with no extractable words solves trivially instead.
var ErrUnsolved = errors.New("no translation found")

// cipherLetter marks the bytes that belong to a ciphertext word; all
// other bytes are separators.
var cipherLetter [256]bool

func init() {
	cipherLetter['\''] = true
	for c := 'A'; c <= 'Z'; c++ {
		cipherLetter[c] = true
	}
	for c := '0'; c <= '9'; c++ {
		cipherLetter[c] = true
	}
}

// Engine solves substitution ciphers against a fixed corpus index.
type Engine struct {
	idx      *corpus.Index
	schedule []int
	maxNodes int
	log      *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithSchedule replaces the default tolerance schedule. Levels are tried
// in the order given.
func WithSchedule(levels []int) Option {
	return func(e *Engine) { e.schedule = levels }
}

// WithMaxNodes bounds the number of search nodes visited per tolerance
// level; a level that exceeds it is abandoned and the next level runs.
// Zero means no bound.
func WithMaxNodes(n int) Option {
	return func(e *Engine) { e.maxNodes = n }
}

// WithLogger sets the logger used for search tracing.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// New returns an Engine that solves against ix.
func New(ix *corpus.Index, opts ...Option) *Engine {
	e := &Engine{idx: ix, log: slog.Default()}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Solution is a successful solve: the normalized ciphertext plus the
// translation found for it.
type Solution struct {
	ciphertext string
	trans      translation
}

// Ciphertext returns the normalized (uppercased) input text.
func (s *Solution) Ciphertext() string { return s.ciphertext }

// Plaintext decodes the ciphertext under the translation. Letters the
// search never needed to map stay as uppercase ciphertext.
func (s *Solution) Plaintext() string { return s.trans.render(s.ciphertext) }

// Translation returns the cipher-letter to plain-letter mapping. It is
// injective and may be partial.
func (s *Solution) Translation() map[byte]byte { return s.trans.letters() }

// Solve finds a translation that decodes ciphertext into corpus words.
// It tries each tolerance level in turn, allowing that many words to go
// unmatched (proper nouns, typos), and returns the first success.
// Returns ErrUnsolved when the whole schedule fails, or ctx.Err() if the
// context is cancelled mid-search.
func (e *Engine) Solve(ctx context.Context, ciphertext string) (*Solution, error) {
	text := strings.ToUpper(ciphertext)
	words := extractWords(text)

	// Longest words carry the most constraints; resolving them first
	// prunes the search early.
	sort.SliceStable(words, func(i, j int) bool {
		return len(words[i]) > len(words[j])
	})

	if len(words) == 0 {
		return &Solution{ciphertext: text, trans: newTranslation()}, nil
	}

	for _, tolerance := range e.tolerances(len(words)) {
		st := &searchState{ctx: ctx, maxNodes: e.maxNodes}
		t, ok := e.search(st, words, newTranslation(), 0, tolerance)

		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if ok {
			e.log.Debug("solved", "tolerance", tolerance, "nodes", st.nodes)
			return &Solution{ciphertext: text, trans: t}, nil
		}
		e.log.Debug("tolerance level exhausted",
			"tolerance", tolerance, "nodes", st.nodes, "budget_hit", st.overBudget())
	}

	return nil, ErrUnsolved
}

// tolerances returns the schedule of unmatched-word allowances to try,
// strictest first.
func (e *Engine) tolerances(nrWords int) []int {
	if e.schedule != nil {
		return e.schedule
	}

	max := nrWords / 10
	if max < 3 {
		max = 3
	}

	s := make([]int, max)
	for i := range s {
		s[i] = i
	}
	return s
}

// extractWords splits normalized text into maximal runs of ciphertext
// bytes. Separators are discarded; the caller keeps the original text
// for rendering.
func extractWords(text string) []string {
	var words []string

	i := 0
	for i < len(text) {
		if !cipherLetter[text[i]] {
			i++
			continue
		}
		j := i + 1
		for j < len(text) && cipherLetter[text[j]] {
			j++
		}
		words = append(words, text[i:j])
		i = j
	}

	return words
}

// searchState carries the per-tolerance-level accounting shared down one
// search tree: visited node count against the optional budget, and the
// context checked as the count ticks over.
type searchState struct {
	ctx      context.Context
	maxNodes int
	nodes    int
}

func (st *searchState) overBudget() bool {
	return st.maxNodes > 0 && st.nodes > st.maxNodes
}

// visit accounts for one search node and reports whether the branch must
// be abandoned.
func (st *searchState) visit() bool {
	st.nodes++
	if st.overBudget() {
		return true
	}
	if st.nodes%1024 == 0 && st.ctx.Err() != nil {
		return true
	}
	return false
}

// search assigns the head word and recurses on the rest. Candidates are
// tried in corpus frequency order, each on its own copy of the
// translation; only after every candidate fails is the word skipped as
// unmatched. First success wins.
func (e *Engine) search(st *searchState, remaining []string, t translation, skipped, tolerance int) (translation, bool) {
	if len(remaining) == 0 {
		return t, true
	}
	if skipped > tolerance {
		return t, false
	}
	if st.visit() {
		return t, false
	}

	cw := remaining[0]
	for _, cand := range e.idx.Candidates(t.render(cw)) {
		nt, ok := t.extend(cw, cand)
		if !ok {
			continue
		}
		if res, ok := e.search(st, remaining[1:], nt, skipped, tolerance); ok {
			return res, true
		}
	}

	// The word may not be in the corpus at all (a proper noun, say);
	// spend one unit of tolerance and move on.
	return e.search(st, remaining[1:], t, skipped+1, tolerance)
}
