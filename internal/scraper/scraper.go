// Package scraper fetches Wikipedia pages and extracts the article
// title, summary, section headings and cleaned body text.
package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html"
)

// Article holds the extracted content of one Wikipedia page.
type Article struct {
	Title     string
	Summary   string
	Sections  []string
	CleanText string
	RawHTML   string
}

// Scraper fetches and parses Wikipedia pages.
type Scraper struct {
	client    *http.Client
	userAgent string
}

// New creates a Scraper with the given request timeout and User-Agent.
func New(timeout time.Duration, userAgent string) *Scraper {
	if userAgent == "" {
		userAgent = "wikiquiz/1.0"
	}
	return &Scraper{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// IsWikipediaURL reports whether the URL points at a Wikipedia host.
func IsWikipediaURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return strings.Contains(u.Host, "wikipedia.org")
}

// Scrape fetches the page and extracts its content. Callers are
// expected to have validated the URL with IsWikipediaURL first.
func (s *Scraper) Scrape(ctx context.Context, pageURL string) (*Article, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)
	req.Header.Set("Accept", "text/html")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("page returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading page body: %w", err)
	}

	article, err := ParseArticle(string(body))
	if err != nil {
		return nil, err
	}
	article.RawHTML = string(body)
	return article, nil
}

// ParseArticle extracts title, summary, sections and cleaned text from
// Wikipedia page HTML.
func ParseArticle(pageHTML string) (*Article, error) {
	doc, err := html.Parse(strings.NewReader(pageHTML))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	article := &Article{}

	// Title from the page heading, falling back to the document title.
	if h := findByID(doc, "firstHeading"); h != nil {
		article.Title = strings.TrimSpace(textContent(h))
	} else if t := findElement(doc, "title"); t != nil {
		article.Title = strings.TrimSpace(textContent(t))
	}

	// Main content area, falling back to the whole body.
	content := findByID(doc, "mw-content-text")
	if content == nil {
		content = findElement(doc, "body")
	}
	if content == nil {
		content = doc
	}

	// Section headings live in span.mw-headline inside h2/h3.
	walk(content, func(n *html.Node) bool {
		if n.Type == html.ElementNode && (n.Data == "h2" || n.Data == "h3") {
			if span := findWithClass(n, "span", "mw-headline"); span != nil {
				if s := strings.TrimSpace(textContent(span)); s != "" {
					article.Sections = append(article.Sections, s)
				}
			}
			return false
		}
		return true
	})

	// Paragraph text, with reference markers and tables dropped.
	var paragraphs []string
	walk(content, func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.Data == "table" {
			return false
		}
		if n.Type == html.ElementNode && n.Data == "p" {
			if text := strings.TrimSpace(textContent(n)); text != "" {
				paragraphs = append(paragraphs, text)
			}
			return false
		}
		return true
	})

	article.CleanText = strings.Join(paragraphs, "\n\n")
	if len(paragraphs) > 0 {
		article.Summary = paragraphs[0]
	}

	return article, nil
}

// walk visits nodes depth-first; fn returning false prunes the subtree.
func walk(n *html.Node, fn func(*html.Node) bool) {
	if !fn(n) {
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

func findByID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode && attr(n, "id") == id {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func findWithClass(n *html.Node, tag, class string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag && hasClass(n, class) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findWithClass(c, tag, class); found != nil {
			return found
		}
	}
	return nil
}

func hasClass(n *html.Node, class string) bool {
	for _, f := range strings.Fields(attr(n, "class")) {
		if f == class {
			return true
		}
	}
	return false
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// textContent returns the concatenated text of a node, skipping
// superscript reference markers and embedded tables.
func textContent(n *html.Node) string {
	var sb strings.Builder
	walk(n, func(c *html.Node) bool {
		if c.Type == html.ElementNode && (c.Data == "sup" || c.Data == "table") {
			return false
		}
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
		return true
	})
	return sb.String()
}
