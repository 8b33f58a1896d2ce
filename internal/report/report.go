// Package report renders solve results as plain text.
package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/jmccarv/subsolver/internal/solver"
)

// pairsPerLine is how many substitutions print on one line of the key
// listing.
const pairsPerLine = 5

// Fprint writes the full solve report: the ciphertext, the decoded
// plaintext, and the substitution key sorted by ciphertext letter.
func Fprint(w io.Writer, sol *solver.Solution) {
	fmt.Fprintln(w, "Ciphertext:")
	fmt.Fprintln(w, sol.Ciphertext())
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Plaintext:")
	fmt.Fprintln(w, sol.Plaintext())
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Substitutions:")
	fprintKey(w, sol.Translation())
}

// FprintUnsolved reports a negative result.
func FprintUnsolved(w io.Writer) {
	fmt.Fprintln(w, "Failed to translate ciphertext.")
}

func fprintKey(w io.Writer, trans map[byte]byte) {
	chars := make([]byte, 0, len(trans))
	for c := range trans {
		chars = append(chars, c)
	}
	sort.Slice(chars, func(i, j int) bool { return chars[i] < chars[j] })

	for i, c := range chars {
		fmt.Fprintf(w, "%c -> %c ", c, trans[c])
		if i%pairsPerLine == pairsPerLine-1 {
			fmt.Fprintln(w)
		}
	}
	if len(chars)%pairsPerLine != 0 {
		fmt.Fprintln(w)
	}
}
