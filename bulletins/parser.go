package bulletins

import (
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	base  = "https://agriwatch.example.org"
	index = base + "/bulletins/all"
)

// Fetch downloads and parses the bulletin index.
func Fetch(client *http.Client) ([]Bulletin, error) {
	res, err := client.Get(index)
	if err != nil {
		return nil, fmt.Errorf("could not get bulletins: %w", err)
	}
	defer res.Body.Close()

	return Parse(res.Body)
}

// Parse reads a bulletin index page. Each entry is a title block
// followed by a summary block.
func Parse(r io.Reader) ([]Bulletin, error) {
	document, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("could not parse body: %w", err)
	}

	var bulletins []Bulletin
	var bulletin Bulletin

	document.Find(".bulletin-title, .bulletin-summary").Each(func(_ int, s *goquery.Selection) {
		class, _ := s.Attr("class")
		switch class {
		case "bulletin-title":
			a := s.Find("a")
			uri := a.AttrOr("href", "")
			if strings.HasPrefix(uri, "/") {
				uri = base + uri
			}

			bulletin = Bulletin{
				Title:  a.Text(),
				URL:    uri,
				Date:   s.Find(".date").Text(),
				Region: s.Find(".region").Text(),
				Slug:   path.Base(uri),
			}
			if bulletin.Region == "" {
				bulletin.Region = "All regions"
			}

			bulletin.titleLower = strings.ToLower(bulletin.Title)

		case "bulletin-summary":
			bulletin.Summary = strings.TrimSpace(s.Text())
			bulletin.summaryLower = strings.ToLower(bulletin.Summary)
			bulletins = append(bulletins, bulletin)
		}
	})

	return bulletins, nil
}
