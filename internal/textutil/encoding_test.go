package textutil

import (
	"errors"
	"testing"

	"golang.org/x/text/encoding/japanese"
)

func TestDecodeはShiftJISを変換する(t *testing.T) {
	raw, err := japanese.ShiftJIS.NewEncoder().Bytes([]byte("// コメント\n"))
	if err != nil {
		t.Fatal(err)
	}
	got, err := Decode(raw, "Shift_JIS")
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if got != "// コメント\n" {
		t.Fatalf("Decode = %q", got)
	}
}

func TestDecodeはBOMを落とす(t *testing.T) {
	got, err := Decode([]byte("\xef\xbb\xbf# x"), "")
	if err != nil {
		t.Fatal(err)
	}
	if got != "# x" {
		t.Fatalf("Decode = %q", got)
	}
}

func TestDecodeの不正入力(t *testing.T) {
	if _, err := Decode([]byte{0xff, 0xfe, 'a'}, "utf-8"); err == nil {
		t.Fatal("expected error for invalid utf-8")
	}
	if _, err := Decode([]byte("x"), "klingon-8"); !errors.Is(err, ErrUnknownEncoding) {
		t.Fatalf("expected ErrUnknownEncoding, got %v", err)
	}
}

func TestLookupEncodingの別名(t *testing.T) {
	for _, name := range []string{"UTF8", "latin1", "euc-jp", "gbk"} {
		if _, err := LookupEncoding(name); err != nil {
			t.Fatalf("LookupEncoding(%q): %v", name, err)
		}
	}
}
