package solver

// translation is the partial, injective cipher-letter to plain-letter
// mapping a search branch has committed to. It is a value type: every
// branch extends its own copy, so failed branches never leak tentative
// assignments back into their siblings.
//
// key is indexed by ciphertext byte (uppercase letters, digits,
// apostrophe) and holds the plaintext byte, 0 when unmapped. used marks
// plaintext bytes already taken by some ciphertext letter. The tables
// span all byte values so corpus words pass through unvalidated.
type translation struct {
	key  [256]byte
	used [256]bool
}

func newTranslation() translation {
	var t translation

	// An apostrophe always decodes to itself and is reserved on both
	// sides up front, so candidate words containing one extend cleanly.
	t.key['\''] = '\''
	t.used['\''] = true

	return t
}

// extend returns a copy of t with the mappings cw[i] -> pw[i] added.
// A candidate is rejected wholesale when any position conflicts: either
// the ciphertext letter is already mapped to a different plaintext
// letter, or the plaintext letter is already the target of another
// ciphertext letter.
func (t translation) extend(cw, pw string) (translation, bool) {
	for i := 0; i < len(cw); i++ {
		cc, wc := cw[i], pw[i]

		if t.key[cc] == 0 && !t.used[wc] {
			t.key[cc] = wc
			t.used[wc] = true
		} else if t.key[cc] != wc {
			return t, false
		}
	}

	return t, true
}

// render produces the candidate-lookup probe for a ciphertext word:
// mapped positions become their (lowercase) plaintext letters, unmapped
// positions stay as the uppercase ciphertext letter.
func (t translation) render(cw string) string {
	out := make([]byte, len(cw))
	for i := 0; i < len(cw); i++ {
		if p := t.key[cw[i]]; p != 0 {
			out[i] = p
		} else {
			out[i] = cw[i]
		}
	}
	return string(out)
}

// letters exports the mapping for callers, letters only; the reserved
// apostrophe entry is an internal detail.
func (t translation) letters() map[byte]byte {
	m := make(map[byte]byte)
	for c, p := range t.key {
		if p != 0 && byte(c) != '\'' {
			m[byte(c)] = p
		}
	}
	return m
}
