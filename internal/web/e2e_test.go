//go:build e2e

package web

import (
	"context"
	"net/http/httptest"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/chromedp/chromedp"

	engineopts "github.com/phyten/cmtrans/internal/engine/opts"
	"github.com/phyten/cmtrans/internal/translate"
)

func TestフォームからExtractしてエスケープ表示する(t *testing.T) {
	t.Parallel()

	if !hasBrowser() {
		t.Skip("Chrome/Chromiumが見つからないためスキップします")
	}

	srv := httptest.NewServer(New(nil, engineopts.Defaults(), Translate{Site: translate.Google, Target: "ja"}).Handler())
	t.Cleanup(srv.Close)

	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	// chromedp navigation can take some time in CI environments.
	ctx, cancel = context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	var doc, docHTML, href string
	var nodeCount int
	err := chromedp.Run(ctx,
		chromedp.Navigate(srv.URL),
		chromedp.WaitVisible(`#text`, chromedp.ByID),
		chromedp.SetValue(`#lang`, "Go", chromedp.ByID),
		chromedp.SetValue(`#text`, "// hello <img src=x onerror=alert(1)> & bye\n// second-\n// line\nfunc main() {}", chromedp.ByID),
		chromedp.Click(`#f button`, chromedp.ByQuery),
		chromedp.WaitVisible(`#out pre.doc`, chromedp.ByQuery),
		chromedp.Text(`#out pre.doc`, &doc, chromedp.ByQuery),
		chromedp.InnerHTML(`#out pre.doc`, &docHTML, chromedp.ByQuery),
		chromedp.AttributeValue(`#out a`, "href", &href, nil, chromedp.ByQuery),
		chromedp.Evaluate(`document.querySelectorAll('#out img, #out script').length`, &nodeCount),
	)
	if err != nil {
		t.Fatalf("chromedpの操作に失敗しました: %v", err)
	}

	if doc != "hello <img src=x onerror=alert(1)> & bye secondline" {
		t.Fatalf("文書が期待値と異なります: %q", doc)
	}
	if !strings.Contains(docHTML, "&lt;img") || !strings.Contains(docHTML, "&amp;") {
		t.Fatalf("文書がエスケープされていません: %q", docHTML)
	}
	if !strings.HasPrefix(href, "https://translate.google.com/") {
		t.Fatalf("翻訳リンクが期待値と異なります: %q", href)
	}
	if nodeCount != 0 {
		t.Fatalf("危険なノードが挿入されています: %d", nodeCount)
	}
}

func hasBrowser() bool {
	candidates := []string{"google-chrome", "google-chrome-stable", "chromium", "chromium-browser"}
	for _, name := range candidates {
		if _, err := exec.LookPath(name); err == nil {
			return true
		}
	}
	return false
}
