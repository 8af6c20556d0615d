package textutil

import (
	"bytes"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrUnknownEncoding is returned for charset names IANA does not know.
var ErrUnknownEncoding = errors.New("unknown encoding")

// LookupEncoding resolves an IANA charset name ("utf-8", "shift_jis",
// "gbk", "latin1"). Empty means UTF-8.
func LookupEncoding(name string) (encoding.Encoding, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	switch n {
	case "", "utf-8", "utf8":
		return unicode.UTF8, nil
	}
	enc, err := ianaindex.IANA.Encoding(n)
	if err != nil || enc == nil {
		return nil, errors.Wrapf(ErrUnknownEncoding, "%q", name)
	}
	return enc, nil
}

// Decode converts data from the named charset to UTF-8. A UTF-8 byte order
// mark is dropped; invalid UTF-8 input is reported rather than replaced.
func Decode(data []byte, name string) (string, error) {
	enc, err := LookupEncoding(name)
	if err != nil {
		return "", err
	}
	if enc == unicode.UTF8 {
		data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
		if !utf8.Valid(data) {
			return "", errors.New("input is not valid utf-8; pass --encoding")
		}
		return string(data), nil
	}
	out, err := io.ReadAll(transform.NewReader(bytes.NewReader(data), enc.NewDecoder()))
	if err != nil {
		return "", errors.Wrapf(err, "decode %s", name)
	}
	return string(out), nil
}
