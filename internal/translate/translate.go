// Package translate builds machine-translation site URLs for an extracted
// document.
package translate

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/pkg/browser"
	"github.com/pkg/errors"
)

// Site は翻訳サイトの識別子です。
type Site string

const (
	Google Site = "google"
	DeepL  Site = "deepl"
	Bing   Site = "bing"
)

// ErrUnknownSite is returned by ParseSite.
var ErrUnknownSite = errors.New("unknown translation site")

// サイトごとの入力上限 (rune 数)
var maxRunes = map[Site]int{
	Google: 5000,
	DeepL:  1500,
	Bing:   1000,
}

// Sites returns the supported sites in help order.
func Sites() []Site {
	return []Site{Google, DeepL, Bing}
}

// ParseSite accepts a site name in any case; empty selects Google.
func ParseSite(raw string) (Site, error) {
	s := Site(strings.ToLower(strings.TrimSpace(raw)))
	if s == "" {
		return Google, nil
	}
	if _, ok := maxRunes[s]; ok {
		return s, nil
	}
	return "", errors.Wrapf(ErrUnknownSite, "%q", raw)
}

// MaxRunes is the longest text the site accepts through its URL.
func (s Site) MaxRunes() int {
	return maxRunes[s]
}

// Link は生成した URL と切り詰めの有無です。
type Link struct {
	URL string `json:"url"`
	// Truncated is set when text exceeded the site's limit.
	Truncated bool `json:"truncated,omitempty"`
}

// URL builds the translation page for text. source "auto" lets the site
// detect the language.
func URL(site Site, source, target, text string) (Link, error) {
	limit, ok := maxRunes[site]
	if !ok {
		return Link{}, errors.Wrapf(ErrUnknownSite, "%q", string(site))
	}
	if strings.TrimSpace(target) == "" {
		return Link{}, errors.New("translate: target language is empty")
	}
	source = strings.TrimSpace(source)
	if source == "" {
		source = "auto"
	}
	text, cut := truncateRunes(text, limit)

	var u string
	switch site {
	case Google:
		q := url.Values{}
		q.Set("sl", source)
		q.Set("tl", target)
		q.Set("text", text)
		q.Set("op", "translate")
		u = "https://translate.google.com/?" + q.Encode()
	case DeepL:
		// slashes inside the fragment must be escaped for DeepL
		escaped := url.PathEscape(strings.ReplaceAll(text, "/", `\/`))
		u = fmt.Sprintf("https://www.deepl.com/translator#%s/%s/%s", url.PathEscape(source), url.PathEscape(target), escaped)
	case Bing:
		if source == "auto" {
			source = "auto-detect"
		}
		q := url.Values{}
		q.Set("from", source)
		q.Set("to", target)
		q.Set("text", text)
		u = "https://www.bing.com/translator?" + q.Encode()
	}
	return Link{URL: u, Truncated: cut}, nil
}

func truncateRunes(s string, limit int) (string, bool) {
	if limit <= 0 || utf8.RuneCountInString(s) <= limit {
		return s, false
	}
	n := 0
	for i := range s {
		if n == limit {
			return s[:i], true
		}
		n++
	}
	return s, false
}

var openURL = browser.OpenURL

// Open shows the link in the user's browser.
func Open(l Link) error {
	if l.URL == "" {
		return errors.New("translate: empty url")
	}
	return errors.Wrap(openURL(l.URL), "open browser")
}
