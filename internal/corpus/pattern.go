package corpus

// Pattern returns the structural letter pattern of a word: each byte of
// the result is '0'+n where n is the first-occurrence rank of the
// character at that position. Any two words built from the same
// repeated-letter structure share a pattern, regardless of which letters
// they use.
//
// An example:
//
//	M X M
//	0 1 0  => "010". WOW, DID and EYE all yield "010" as well.
//
// Another:
//
//	Q U E E N
//	0 1 2 2 3  => "01223"
//
// Ranks past 9 continue through the ASCII bytes after '9'; the pattern
// is a bucket key, not display text.
func Pattern(w string) string {
	if len(w) == 0 {
		return ""
	}

	var seen [256]byte
	pat := make([]byte, len(w))
	n := byte('0')

	for i := 0; i < len(w); i++ {
		c := w[i]
		if seen[c] == 0 {
			seen[c] = n
			n++
		}
		pat[i] = seen[c]
	}

	return string(pat)
}
