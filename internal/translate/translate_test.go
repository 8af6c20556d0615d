package translate

import (
	"errors"
	"net/url"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestParseSite(t *testing.T) {
	cases := map[string]Site{"": Google, "Google": Google, " deepl ": DeepL, "BING": Bing}
	for in, want := range cases {
		got, err := ParseSite(in)
		if err != nil {
			t.Fatalf("ParseSite(%q) error: %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseSite(%q) = %q, want %q", in, got, want)
		}
	}
	if _, err := ParseSite("babelfish"); !errors.Is(err, ErrUnknownSite) {
		t.Fatalf("expected ErrUnknownSite, got %v", err)
	}
}

func TestGoogleURLはクエリをエンコードする(t *testing.T) {
	l, err := URL(Google, "auto", "ja", "a & b\nc")
	if err != nil {
		t.Fatal(err)
	}
	u, err := url.Parse(l.URL)
	if err != nil {
		t.Fatalf("invalid url %q: %v", l.URL, err)
	}
	if u.Host != "translate.google.com" {
		t.Fatalf("unexpected host: %s", u.Host)
	}
	q := u.Query()
	if q.Get("text") != "a & b\nc" || q.Get("sl") != "auto" || q.Get("tl") != "ja" {
		t.Fatalf("unexpected query: %v", q)
	}
	if l.Truncated {
		t.Fatal("short text should not be truncated")
	}
}

func TestDeepLURLはスラッシュをエスケープする(t *testing.T) {
	l, err := URL(DeepL, "en", "ja", "a/b c")
	if err != nil {
		t.Fatal(err)
	}
	want := "https://www.deepl.com/translator#en/ja/a%5C%2Fb%20c"
	if l.URL != want {
		t.Fatalf("URL = %s, want %s", l.URL, want)
	}
}

func TestBingURLはautoをauto_detectに変換する(t *testing.T) {
	l, err := URL(Bing, "", "fr", "hello")
	if err != nil {
		t.Fatal(err)
	}
	u, _ := url.Parse(l.URL)
	if got := u.Query().Get("from"); got != "auto-detect" {
		t.Fatalf("from = %q", got)
	}
}

func TestURLはrune境界で切り詰める(t *testing.T) {
	text := strings.Repeat("あ", Bing.MaxRunes()+10)
	l, err := URL(Bing, "ja", "en", text)
	if err != nil {
		t.Fatal(err)
	}
	if !l.Truncated {
		t.Fatal("expected truncation")
	}
	u, _ := url.Parse(l.URL)
	got := u.Query().Get("text")
	if !utf8.ValidString(got) || utf8.RuneCountInString(got) != Bing.MaxRunes() {
		t.Fatalf("unexpected truncated text: %d runes", utf8.RuneCountInString(got))
	}
}

func TestURLの入力エラー(t *testing.T) {
	if _, err := URL("altavista", "en", "ja", "x"); !errors.Is(err, ErrUnknownSite) {
		t.Fatalf("expected ErrUnknownSite, got %v", err)
	}
	if _, err := URL(Google, "en", " ", "x"); err == nil {
		t.Fatal("expected error for empty target")
	}
}

func TestOpenはブラウザ関数を呼ぶ(t *testing.T) {
	orig := openURL
	t.Cleanup(func() { openURL = orig })

	var opened string
	openURL = func(u string) error {
		opened = u
		return nil
	}
	if err := Open(Link{URL: "https://example.com"}); err != nil {
		t.Fatal(err)
	}
	if opened != "https://example.com" {
		t.Fatalf("opened %q", opened)
	}
	if err := Open(Link{}); err == nil {
		t.Fatal("expected error for empty link")
	}
}
