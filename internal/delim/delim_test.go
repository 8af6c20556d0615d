package delim

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/phyten/cmtrans/internal/model"
)

func TestNewは不正な区切りを拒否する(t *testing.T) {
	cases := []struct {
		name string
		tc   TypeChanger
		want error
	}{
		{"開始が空", TypeChanger{Start: "", End: "*/", Role: model.RoleComment}, ErrEmptyStart},
		{"終了が空", TypeChanger{Start: "/*", End: "", Role: model.RoleComment}, ErrEmptyEnd},
		{"役割がソース", TypeChanger{Start: "/*", End: "*/", Role: model.RoleSource}, ErrBadRole},
	}
	for _, c := range cases {
		_, err := New(LineComment("//"), c.tc)
		if !errors.Is(err, c.want) {
			t.Fatalf("%s: %v を期待しましたが %v でした", c.name, c.want, err)
		}
		if !strings.Contains(err.Error(), "delimiter #2") {
			t.Fatalf("%s: 位置がエラーに含まれていません: %v", c.name, err)
		}
	}
}

func TestSetは構築後に変更されない(t *testing.T) {
	in := []TypeChanger{LineComment("#")}
	s := MustNew(in...)
	in[0].Start = "//"
	got := s.Changers()
	got[0].Start = ";"
	if s.At(0).Start != "#" {
		t.Fatalf("Set が外部から変更されました: %q", s.At(0).Start)
	}
}

func TestBuildは行コメントから順に並べる(t *testing.T) {
	s, err := Build([]string{"#"}, []Pair{{`"""`, `"""`}}, []Pair{{`"`, `"`}})
	if err != nil {
		t.Fatal(err)
	}
	want := []TypeChanger{
		{Start: "#", End: "\n", Role: model.RoleComment},
		{Start: `"""`, End: `"""`, Role: model.RoleComment},
		{Start: `"`, End: `"`, Role: model.RoleStringLiteral},
	}
	if diff := cmp.Diff(want, s.Changers()); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
	if !s.At(0).IsLineComment() || s.At(1).IsLineComment() {
		t.Fatal("IsLineComment の判定が不正です")
	}
	if n := len(s.Filter(model.RoleComment)); n != 2 {
		t.Fatalf("Filter(comment)=%d, want 2", n)
	}
}

func TestParsePair(t *testing.T) {
	p, err := ParsePair("  /*   */ ")
	if err != nil || p != (Pair{Start: "/*", End: "*/"}) {
		t.Fatalf("ParsePair=%v, %v", p, err)
	}
	for _, bad := range []string{"", "/*", "a b c"} {
		if _, err := ParsePair(bad); err == nil {
			t.Fatalf("ParsePair(%q) はエラーになるべきです", bad)
		}
	}
	if _, err := ParsePairs([]string{"<!-- -->", "{-"}); err == nil {
		t.Fatal("不正な要素を含む場合はエラーになるべきです")
	}
}

func TestWarnings(t *testing.T) {
	s := Unchecked(
		StringLiteral(`"`, `"`),
		BlockComment(`""`, `""`),
		BlockComment("'''", "'''"),
		StringLiteral("'", "'"),
		LineComment("#"),
		LineComment("#"),
		TypeChanger{Start: "", End: "x", Role: model.RoleComment},
	)
	got := s.Warnings()
	kinds := make([]WarningKind, len(got))
	pairs := make([][2]int, len(got))
	for i, w := range got {
		kinds[i] = w.Kind
		pairs[i] = [2]int{w.Winner, w.Loser}
	}
	if diff := cmp.Diff([]WarningKind{WarnShadowed, WarnOverlap, WarnShadowed}, kinds); diff != "" {
		t.Fatalf("kinds (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([][2]int{{0, 1}, {2, 3}, {4, 5}}, pairs); diff != "" {
		t.Fatalf("pairs (-want +got):\n%s", diff)
	}
	if !strings.Contains(got[0].Message, "never used") {
		t.Fatalf("message=%q", got[0].Message)
	}
}

func TestWarningsは通常のプリセットで空(t *testing.T) {
	s := MustNew(LineComment("//"), BlockComment("/*", "*/"), StringLiteral(`"`, `"`))
	if w := s.Warnings(); len(w) != 0 {
		t.Fatalf("警告は出ないはずです: %v", w)
	}
}
