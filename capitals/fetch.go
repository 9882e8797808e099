// Package capitals — live dataset scraper.
//
// Fetch rebuilds the dataset from Wikipedia in two stages:
//
//  1. the Americas overview page: its first sortable table lists one country
//     or territory per row with the capital linked in the sixth cell;
//  2. each capital's own page: the first span.latitude / span.longitude pair
//     carries the position as DMS tokens.
//
// Scrape policy: rows without a proper capital link and capital pages
// without coordinate markup are skipped (footnote rows, stub articles);
// transport failures and unparsable coordinates abort the fetch. The
// resulting list feeds SaveCache, so one successful scrape is enough.
package capitals

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/net/html"
)

const (
	wikiBase     = "https://en.wikipedia.org"
	americasPath = "/wiki/Americas"
)

// capitalRef is one overview-table row worth keeping: the capital's name,
// the country it serves and the site-relative link to its page.
type capitalRef struct {
	name    string
	country string
	href    string
}

// Fetch scrapes the capitals of the Americas from Wikipedia.
//
// A nil client falls back to http.DefaultClient; the context bounds every
// request. Expect one page load per capital, so a full run takes a while.
//
// Errors: ErrFetchFailed (transport, status, layout), ErrBadCoordinate
// (present but unparsable coordinate markup), ErrEmptyDataset (fewer than
// two usable rows survive the scrape).
func Fetch(ctx context.Context, client *http.Client) ([]City, error) {
	if client == nil {
		client = http.DefaultClient
	}

	// Stage 1: the overview table names every capital and links its page.
	overview, err := fetchDoc(ctx, client, wikiBase+americasPath)
	if err != nil {
		return nil, err
	}
	refs, err := capitalRefs(overview)
	if err != nil {
		return nil, err
	}

	// Stage 2: visit each capital page for its coordinates.
	var (
		cities = make([]City, 0, len(refs))
		page   *html.Node
		lat    float64
		lon    float64
	)
	for _, ref := range refs {
		page, err = fetchDoc(ctx, client, wikiBase+ref.href)
		if err != nil {
			return nil, err
		}

		latTok, lonTok, ok := coordTokens(page)
		if !ok {
			continue // page carries no coordinate markup
		}
		lat, err = ParseDMS(latTok)
		if err != nil {
			return nil, err
		}
		lon, err = ParseDMS(lonTok)
		if err != nil {
			return nil, err
		}

		cities = append(cities, City{Name: ref.name, Country: ref.country, Lat: lat, Lon: lon})
	}

	if len(cities) < 2 {
		return nil, fmt.Errorf("%w: scrape yielded %d cities", ErrEmptyDataset, len(cities))
	}

	return cities, nil
}

// fetchDoc GETs one URL and parses the response body as HTML.
func fetchDoc(ctx context.Context, client *http.Client, url string) (*html.Node, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFetchFailed, url, err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFetchFailed, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s: %s", ErrFetchFailed, url, resp.Status)
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFetchFailed, url, err)
	}

	return doc, nil
}

// capitalRefs extracts the capital rows from the overview document: the
// first sortable table, one row per country, country anchor in the first
// cell, capital anchor in the sixth.
func capitalRefs(doc *html.Node) ([]capitalRef, error) {
	table := findNode(doc, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == "table" && hasClass(n, "sortable")
	})
	if table == nil {
		return nil, fmt.Errorf("%w: no sortable country table", ErrFetchFailed)
	}

	var refs []capitalRef
	for _, row := range findNodes(table, isElem("tr")) {
		cells := findNodes(row, isElem("td"))
		if len(cells) < 6 {
			continue // header or spanned summary row
		}

		countryA := findNode(cells[0], isElem("a"))
		capitalA := findNode(cells[5], isElem("a"))
		if countryA == nil || capitalA == nil {
			continue
		}
		href := attr(capitalA, "href")
		if !strings.HasPrefix(href, "/wiki/") {
			continue // footnote or red link
		}

		refs = append(refs, capitalRef{
			name:    strings.TrimSpace(nodeText(capitalA)),
			country: strings.TrimSpace(nodeText(countryA)),
			href:    href,
		})
	}
	if len(refs) == 0 {
		return nil, fmt.Errorf("%w: country table has no capital rows", ErrFetchFailed)
	}

	return refs, nil
}

// coordTokens pulls the first latitude/longitude DMS token pair from a
// capital page, reporting ok=false when the markup is absent.
func coordTokens(doc *html.Node) (latTok, lonTok string, ok bool) {
	latSpan := findNode(doc, isSpanClass("latitude"))
	lonSpan := findNode(doc, isSpanClass("longitude"))
	if latSpan == nil || lonSpan == nil {
		return "", "", false
	}

	return nodeText(latSpan), nodeText(lonSpan), true
}

// findNode returns the first node (preorder) matching the predicate, or nil.
func findNode(root *html.Node, match func(*html.Node) bool) *html.Node {
	if match(root) {
		return root
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if hit := findNode(c, match); hit != nil {
			return hit
		}
	}

	return nil
}

// findNodes returns every node (preorder) matching the predicate, nested
// matches included.
func findNodes(root *html.Node, match func(*html.Node) bool) []*html.Node {
	var (
		out  []*html.Node
		walk func(*html.Node)
	)
	walk = func(n *html.Node) {
		if match(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	return out
}

// isElem matches element nodes with the given tag name.
func isElem(tag string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == tag
	}
}

// isSpanClass matches span elements carrying the given class.
func isSpanClass(class string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == "span" && hasClass(n, class)
	}
}

// hasClass reports whether the node's class attribute contains class as a
// whole word.
func hasClass(n *html.Node, class string) bool {
	for _, f := range strings.Fields(attr(n, "class")) {
		if f == class {
			return true
		}
	}

	return false
}

// attr returns the node's attribute value, or "" when absent.
func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}

	return ""
}

// nodeText concatenates every text node under root.
func nodeText(root *html.Node) string {
	var (
		b    strings.Builder
		walk func(*html.Node)
	)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	return b.String()
}
