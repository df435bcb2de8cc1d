package serviceImp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	ErrBadURL           = errors.New("bad url")
	ErrDomainNotAllowed = errors.New("domain not allowed")
	ErrFetchPage        = errors.New("fetch guide page")
)

const maxTitleRunes = 120

// checkURL accepts only http(s) URLs whose host is on the allow list.
func (s *Svc) checkURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrBadURL, raw)
	}
	if !s.allow[strings.ToLower(u.Hostname())] {
		return fmt.Errorf("%w: %s", ErrDomainNotAllowed, u.Hostname())
	}
	return nil
}

// fetchPage downloads at most maxBytes of raw and returns its readable text
// and title. HTML and plain text are supported.
func (s *Svc) fetchPage(ctx context.Context, raw string) (text, title string, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, raw, nil)
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrFetchPage, err)
	}
	resp, err := s.httpc.Do(req)
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrFetchPage, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", "", fmt.Errorf("%w: status %d", ErrFetchPage, resp.StatusCode)
	}
	if resp.ContentLength > int64(s.maxBytes) {
		return "", "", fmt.Errorf("%w: page is %d bytes, limit %d", ErrFetchPage, resp.ContentLength, s.maxBytes)
	}
	body := io.LimitReader(resp.Body, int64(s.maxBytes))

	ct := strings.ToLower(resp.Header.Get("Content-Type"))
	switch {
	case strings.Contains(ct, "text/html"):
		return htmlText(body)
	case strings.Contains(ct, "text/plain"):
		b, err := io.ReadAll(body)
		if err != nil {
			return "", "", fmt.Errorf("%w: %w", ErrFetchPage, err)
		}
		return string(b), firstLine(string(b)), nil
	}
	return "", "", fmt.Errorf("%w: unsupported content-type %q", ErrFetchPage, ct)
}

// htmlText keeps headings, paragraphs and list items from the page's main
// content, one per line. Navigation and scripts are dropped.
func htmlText(r io.Reader) (string, string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrFetchPage, err)
	}
	doc.Find("script, style, nav, header, footer, aside").Remove()

	root := doc.Find("main, article").First()
	if root.Length() == 0 {
		root = doc.Find("body")
	}
	var lines []string
	root.Find("h1, h2, h3, h4, p, li").Each(func(_ int, sel *goquery.Selection) {
		if t := strings.Join(strings.Fields(sel.Text()), " "); t != "" {
			lines = append(lines, t)
		}
	})
	title := strings.TrimSpace(doc.Find("head title").First().Text())
	if title == "" && len(lines) > 0 {
		title = firstLine(lines[0])
	}
	return strings.Join(lines, "\n"), title, nil
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(s), "\n")
	if r := []rune(line); len(r) > maxTitleRunes {
		line = string(r[:maxTitleRunes])
	}
	return line
}
