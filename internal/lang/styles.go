package lang

import "github.com/phyten/cmtrans/internal/delim"

// style lists a language's markers per kind; the delimiter set orders
// them line comments first, then block comments, then string literals.
type style struct {
	lineComments   []string
	blockComments  []delim.Pair
	stringLiterals []delim.Pair
}

func (s style) set() delim.Set {
	set, err := delim.Build(s.lineComments, s.blockComments, s.stringLiterals)
	if err != nil {
		panic(err)
	}
	return set
}

var (
	dq       = delim.Pair{Start: `"`, End: `"`}
	sq       = delim.Pair{Start: "'", End: "'"}
	bq       = delim.Pair{Start: "`", End: "`"}
	cBlock   = delim.Pair{Start: "/*", End: "*/"}
	xmlBlock = delim.Pair{Start: "<!--", End: "-->"}
)

var (
	styleJS = style{
		lineComments:   []string{"//"},
		blockComments:  []delim.Pair{cBlock},
		stringLiterals: []delim.Pair{dq, sq, bq},
	}
	styleC = style{
		lineComments:   []string{"//"},
		blockComments:  []delim.Pair{cBlock},
		stringLiterals: []delim.Pair{dq, sq},
	}
	stylePython = style{
		lineComments:   []string{"#"},
		blockComments:  []delim.Pair{{Start: `"""`, End: `"""`}, {Start: "'''", End: "'''"}},
		stringLiterals: []delim.Pair{dq, sq},
	}
	styleShell = style{
		lineComments:   []string{"#"},
		stringLiterals: []delim.Pair{dq, sq},
	}
	styleGo = style{
		lineComments:   []string{"//"},
		blockComments:  []delim.Pair{cBlock},
		stringLiterals: []delim.Pair{dq, bq, sq},
	}
	// lifetimes ('a) make single quotes unusable as string markers
	styleRust = style{
		lineComments:   []string{"//"},
		blockComments:  []delim.Pair{cBlock},
		stringLiterals: []delim.Pair{dq},
	}
	styleRuby = style{
		lineComments:   []string{"#"},
		blockComments:  []delim.Pair{{Start: "=begin", End: "=end"}},
		stringLiterals: []delim.Pair{dq, sq},
	}
	styleSQL = style{
		lineComments:   []string{"--"},
		blockComments:  []delim.Pair{cBlock},
		stringLiterals: []delim.Pair{sq},
	}
	styleHTML = style{
		blockComments: []delim.Pair{xmlBlock},
	}
	styleCSS = style{
		blockComments:  []delim.Pair{cBlock},
		stringLiterals: []delim.Pair{dq, sq},
	}
	styleSCSS = style{
		lineComments:   []string{"//"},
		blockComments:  []delim.Pair{cBlock},
		stringLiterals: []delim.Pair{dq, sq},
	}
	styleHaskell = style{
		lineComments:   []string{"--"},
		blockComments:  []delim.Pair{{Start: "{-", End: "-}"}},
		stringLiterals: []delim.Pair{dq},
	}
	styleOCaml = style{
		blockComments:  []delim.Pair{{Start: "(*", End: "*)"}},
		stringLiterals: []delim.Pair{dq},
	}
	styleLua = style{
		lineComments:   []string{"--"},
		stringLiterals: []delim.Pair{dq, sq},
	}
	styleLisp = style{
		lineComments:   []string{";"},
		stringLiterals: []delim.Pair{dq},
	}
	stylePercent = style{
		lineComments:   []string{"%"},
		stringLiterals: []delim.Pair{dq},
	}
	stylePowershell = style{
		lineComments:   []string{"#"},
		blockComments:  []delim.Pair{{Start: "<#", End: "#>"}},
		stringLiterals: []delim.Pair{dq, sq},
	}
	styleBatch = style{
		lineComments: []string{"REM ", "rem ", "::"},
	}
	styleIni = style{
		lineComments: []string{";", "#"},
	}
	styleHCL = style{
		lineComments:   []string{"//", "#"},
		blockComments:  []delim.Pair{cBlock},
		stringLiterals: []delim.Pair{dq},
	}
	styleJinja = style{
		blockComments: []delim.Pair{{Start: "{#", End: "#}"}},
	}
	styleHandlebars = style{
		blockComments: []delim.Pair{{Start: "{{!--", End: "--}}"}, {Start: "{{!", End: "}}"}},
	}
	// prose-heavy config formats: apostrophes are not string markers there
	styleHash = style{
		lineComments: []string{"#"},
	}
)
