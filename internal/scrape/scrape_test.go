package scrape

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pageOne = `<html><body><table>
<tr><th>Rank</th><th>Word</th></tr>
<tr><td>3</td><td><a href="/wiki/you">you</a></td></tr>
<tr><td>1</td><td><a href="/wiki/the">the</a></td></tr>
<tr><td>bogus</td><td><a href="/wiki/bad">bad</a></td></tr>
</table></body></html>`

const pageTwo = `<html><body><table>
<tr><td>4</td><td><a href="/wiki/that">that</a></td></tr>
<tr><td>2</td><td><a href="/wiki/of">of</a></td></tr>
</table></body></html>`

// TestParse verifies rank/word extraction: header and malformed rows
// are skipped, data rows come back in page order.
func TestParse(t *testing.T) {
	entries, err := Parse(strings.NewReader(pageOne))
	require.NoError(t, err)

	assert.Equal(t, []Entry{{3, "you"}, {1, "the"}}, entries)
}

// TestParse_NoRows verifies a page without usable rows is an error.
func TestParse_NoRows(t *testing.T) {
	_, err := Parse(strings.NewReader("<html><body><p>nothing here</p></body></html>"))
	assert.Error(t, err)
}

// TestDir verifies pages combine and sort most-frequent-first.
func TestDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "page1.html"), []byte(pageOne), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "page2.html"), []byte(pageTwo), 0o644))

	entries, err := Dir(dir)
	require.NoError(t, err)

	assert.Equal(t, []Entry{{1, "the"}, {2, "of"}, {3, "you"}, {4, "that"}}, entries)
}

// TestFetch verifies the HTTP path returns sorted entries.
func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(pageOne))
	}))
	defer srv.Close()

	entries, err := Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, []Entry{{1, "the"}, {3, "you"}}, entries)
}

// TestFetch_BadStatus verifies a non-200 response is an error.
func TestFetch_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	_, err := Fetch(context.Background(), srv.URL)
	assert.Error(t, err)
}

// TestWriteCorpus verifies one word per line in entry order.
func TestWriteCorpus(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCorpus(&buf, []Entry{{1, "the"}, {2, "of"}, {3, "you"}})
	require.NoError(t, err)

	assert.Equal(t, "the\nof\nyou\n", buf.String())
}
