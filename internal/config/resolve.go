package config

import (
	"strings"

	"github.com/phyten/cmtrans/internal/delim"
)

func ResolveString(def string, values ...*string) string {
	result := def
	for _, v := range values {
		if v != nil {
			result = *v
		}
	}
	return result
}

func ResolveInt(def int, values ...*int) int {
	result := def
	for _, v := range values {
		if v != nil {
			result = *v
		}
	}
	return result
}

func ResolveBool(def bool, values ...*bool) bool {
	result := def
	for _, v := range values {
		if v != nil {
			result = *v
		}
	}
	return result
}

// ResolveStrings lets a later empty list clear earlier ones.
func ResolveStrings(def []string, values ...*[]string) []string {
	result := cloneStrings(def)
	for _, v := range values {
		if v != nil {
			result = cloneStrings(*v)
		}
	}
	return result
}

func ResolvePairs(def []delim.Pair, values ...*[]delim.Pair) []delim.Pair {
	result := clonePairs(def)
	for _, v := range values {
		if v != nil {
			result = clonePairs(*v)
		}
	}
	return result
}

func ResolveAndTrim(def string, values ...*string) string {
	return strings.TrimSpace(ResolveString(def, values...))
}
