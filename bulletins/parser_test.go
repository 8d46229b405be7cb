package bulletins

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const indexPage = `<html><body>
<div class="bulletin-title">
	<a href="/bulletins/fall-armyworm-maize">Fall Armyworm Alert for Maize</a>
	<span class="date">18 Aug 2026</span>
	<span class="region">Nashik</span>
</div>
<div class="bulletin-summary">
	Scout maize fields for window-pane feeding damage and egg masses.
</div>
<div class="bulletin-title">
	<a href="/bulletins/kharif-sowing-window">Kharif Sowing Window Update</a>
	<span class="date">12 Aug 2026</span>
</div>
<div class="bulletin-summary">
	Delayed monsoon onset shifts the ideal sowing window for soybean.
</div>
</body></html>`

func testBulletins(t *testing.T) []Bulletin {
	t.Helper()
	bs, err := Parse(strings.NewReader(indexPage))
	require.NoError(t, err)
	require.Len(t, bs, 2)
	return bs
}

func TestParse(t *testing.T) {
	bs := testBulletins(t)

	assert.Equal(t, "Fall Armyworm Alert for Maize", bs[0].Title)
	assert.Equal(t, "https://agriwatch.example.org/bulletins/fall-armyworm-maize", bs[0].URL)
	assert.Equal(t, "fall-armyworm-maize", bs[0].Slug)
	assert.Equal(t, "Nashik", bs[0].Region)
	assert.Contains(t, bs[0].Summary, "window-pane feeding")

	// Missing region falls back.
	assert.Equal(t, "All regions", bs[1].Region)
}

func TestMatch(t *testing.T) {
	bs := testBulletins(t)

	assert.Equal(t, MatchTitle, bs[0].Match("armyworm"))
	assert.Equal(t, MatchTitle, bs[0].Match("ARMYWORM maize"))
	assert.Equal(t, MatchSummary, bs[0].Match("egg masses"))
	assert.Equal(t, NoMatch, bs[0].Match("armyworm wheat"))
	assert.Equal(t, MatchExact, bs[0].Match("fall-armyworm-maize"))
}

func TestMatchAll(t *testing.T) {
	bs := testBulletins(t)

	title, summary, total := MatchAll(bs, "sowing")
	assert.Equal(t, 1, total)
	assert.Len(t, title, 1)
	assert.Empty(t, summary)

	exact, _, total := MatchAll(bs, "kharif-sowing-window")
	assert.Equal(t, 1, total)
	require.Len(t, exact, 1)
	assert.Equal(t, "Kharif Sowing Window Update", exact[0].Title)
}

func TestDisplay(t *testing.T) {
	bs := testBulletins(t)

	e := bs[0].Display()
	assert.Equal(t, bs[0].Title, e.Title)
	assert.Equal(t, "Nashik\n18 Aug 2026", e.Footer.Text)
}
