package lang

import (
	"github.com/pkg/errors"

	"github.com/phyten/cmtrans/internal/delim"
	"github.com/phyten/cmtrans/internal/detect"
)

// Resolver picks the delimiter set for each input: a fixed preset, the
// custom set, or detection from the input's path and content.
type Resolver struct {
	Lang   string
	Custom Language
}

// Resolve implements engine.Resolver.
func (r Resolver) Resolve(name, text string) (string, delim.Set, error) {
	switch {
	case IsCustom(r.Lang):
		return CustomName, r.Custom.Set, nil
	case IsAuto(r.Lang):
		info := detect.FromPathAndContent(name, []byte(text))
		if info.Name == "" {
			return "", delim.Set{}, errors.Errorf("cannot detect the language of %s; pass --lang", displayName(name))
		}
		l, err := Lookup(info.Name)
		if err != nil {
			return "", delim.Set{}, errors.Wrapf(err, "detected %s for %s", info.Name, displayName(name))
		}
		return l.Name, l.Set, nil
	}
	l, err := Lookup(r.Lang)
	if err != nil {
		return "", delim.Set{}, err
	}
	return l.Name, l.Set, nil
}

func displayName(name string) string {
	if name == "" || name == "-" {
		return "standard input"
	}
	return name
}
