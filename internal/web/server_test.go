package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	engineopts "github.com/phyten/cmtrans/internal/engine/opts"
	"github.com/phyten/cmtrans/internal/output"
	"github.com/phyten/cmtrans/internal/translate"
)

func newTestHandler() http.Handler {
	return New(nil, engineopts.Defaults(), Translate{Site: translate.Google, Source: "auto", Target: "ja"}).Handler()
}

func postExtract(t *testing.T, h http.Handler, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/extract", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body), rr.Body.String())
	return body
}

func TestIndexはセキュリティヘッダと言語一覧を返す(t *testing.T) {
	rr := httptest.NewRecorder()
	newTestHandler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Header().Get("Content-Security-Policy"), "script-src 'self'")
	require.Equal(t, "DENY", rr.Header().Get("X-Frame-Options"))
	body := rr.Body.String()
	require.Contains(t, body, `<option value="Python">Python</option>`)
	require.Contains(t, body, `<option value="Custom">Custom</option>`)
	require.Contains(t, body, `value="ja"`)
	require.Contains(t, body, scriptPath)

	rr = httptest.NewRecorder()
	newTestHandler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/missing", nil))
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestAssets(t *testing.T) {
	for path, ctype := range map[string]string{stylesPath: "text/css", scriptPath: "application/javascript"} {
		rr := httptest.NewRecorder()
		newTestHandler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, rr.Code)
		require.True(t, strings.HasPrefix(rr.Header().Get("Content-Type"), ctype), rr.Header().Get("Content-Type"))
		require.NotEmpty(t, rr.Body.String())
	}
}

func TestExtractはハイフン行を連結する(t *testing.T) {
	form := url.Values{}
	form.Set("lang", "javascript")
	form.Set("text", "// part-\n// two\nlet x = 1; // keep <b>bold</b> & co")
	form.Set("with_lines", "1")

	rr := postExtract(t, newTestHandler(), form)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	body := decode(t, rr)
	require.Equal(t, "parttwo\nkeep <b>bold</b> & co", body["document"])
	require.Equal(t, "JavaScript or TypeScript", body["lang"])
	require.Len(t, body["lines"], 3)
	require.NotContains(t, rr.Body.String(), `\u003c`)

	link := body["translate"].(map[string]any)
	require.True(t, strings.HasPrefix(link["url"].(string), "https://translate.google.com/?"))
}

func TestExtractはカスタム記号とサイト指定を受け付ける(t *testing.T) {
	form := url.Values{}
	form.Set("text", "x ; hi")
	form.Set("line", ";")
	form.Set("site", "deepl")
	form.Set("target", "de")

	rr := postExtract(t, newTestHandler(), form)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	body := decode(t, rr)
	require.Equal(t, "hi", body["document"])
	require.Equal(t, "Custom", body["lang"])
	link := body["translate"].(map[string]any)
	require.Equal(t, "https://www.deepl.com/translator#auto/de/hi", link["url"])
}

func TestExtractのエラー応答(t *testing.T) {
	h := newTestHandler()
	cases := []struct {
		name   string
		form   url.Values
		status int
		stage  string
	}{
		{"空のカスタムセット", url.Values{"lang": {"custom"}, "text": {"// a"}}, http.StatusBadRequest, ""},
		{"未知の言語", url.Values{"lang": {"klingon"}, "text": {"a"}}, http.StatusBadRequest, ""},
		{"検出できない入力", url.Values{"text": {"plain words"}}, http.StatusUnprocessableEntity, "resolve"},
		{"不正なペア", url.Values{"block": {"/*"}, "text": {"a"}}, http.StatusBadRequest, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := postExtract(t, h, tc.form)
			require.Equal(t, tc.status, rr.Code, rr.Body.String())
			body := decode(t, rr)
			require.NotEmpty(t, body["error"])
			if tc.stage != "" {
				require.Equal(t, tc.stage, body["stage"])
			}
		})
	}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/extract", nil))
	require.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	require.Equal(t, http.MethodPost, rr.Header().Get("Allow"))
}

func TestLangs(t *testing.T) {
	rr := httptest.NewRecorder()
	newTestHandler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/langs", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var langs []output.LangView
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &langs))
	require.NotEmpty(t, langs)
	names := make([]string, len(langs))
	for i, l := range langs {
		names[i] = l.Name
	}
	require.Contains(t, names, "Python")
}
