package detect

var basenameLanguages = map[string]string{
	"makefile":       "make",
	"gnumakefile":    "make",
	"cmakelists.txt": "cmake",
	"dockerfile":     "dockerfile",
	"containerfile":  "dockerfile",
	"gemfile":        "ruby",
	"rakefile":       "ruby",
	"vagrantfile":    "ruby",
	"podfile":        "ruby",
	"jenkinsfile":    "groovy",
	"justfile":       "make",
	"procfile":       "procfile",
	"gradlew":        "shell",
	"gradlew.bat":    "batch",
	".bashrc":        "shell",
	".zshrc":         "shell",
	".profile":       "shell",
	".env":           "dotenv",
	".gitignore":     "dotenv",
	".editorconfig":  "ini",
}

var extensionLanguages = map[string]string{
	".c":          "c",
	".h":          "c",
	".cc":         "cpp",
	".cpp":        "cpp",
	".cxx":        "cpp",
	".hh":         "cpp",
	".hpp":        "cpp",
	".hxx":        "cpp",
	".m":          "objective-c",
	".mm":         "objective-cpp",
	".go":         "go",
	".js":         "javascript",
	".mjs":        "javascript",
	".cjs":        "javascript",
	".jsx":        "javascriptreact",
	".ts":         "typescript",
	".mts":        "typescript",
	".cts":        "typescript",
	".tsx":        "typescriptreact",
	".ejs":        "ejs",
	".php":        "php",
	".py":         "python",
	".pyw":        "python",
	".pyi":        "python",
	".pyx":        "cython",
	".bzl":        "starlark",
	".star":       "starlark",
	".rb":         "ruby",
	".rake":       "ruby",
	".gemspec":    "ruby",
	".cs":         "csharp",
	".java":       "java",
	".kt":         "kotlin",
	".kts":        "kotlin",
	".scala":      "scala",
	".groovy":     "groovy",
	".gradle":     "gradle",
	".swift":      "swift",
	".dart":       "dart",
	".rs":         "rust",
	".zig":        "zig",
	".proto":      "proto",
	".thrift":     "thrift",
	".v":          "verilog",
	".sv":         "systemverilog",
	".cls":        "apex",
	".sh":         "shell",
	".bash":       "shell",
	".zsh":        "shell",
	".ksh":        "shell",
	".fish":       "fish",
	".pl":         "perl",
	".pm":         "perl",
	".ps1":        "powershell",
	".psm1":       "powershell",
	".psd1":       "powershell",
	".bat":        "batch",
	".cmd":        "batch",
	".sql":        "sql",
	".psql":       "sql",
	".pgsql":      "sql",
	".hs":         "haskell",
	".lhs":        "haskell",
	".ml":         "ocaml",
	".mli":        "ocaml",
	".lua":        "lua",
	".erl":        "erlang",
	".hrl":        "erlang",
	".tex":        "latex",
	".ex":         "elixir",
	".exs":        "elixir",
	".jl":         "julia",
	".nim":        "nim",
	".r":          "r",
	".rego":       "rego",
	".cue":        "cue",
	".clj":        "clojure",
	".cljs":       "clojure",
	".lisp":       "common-lisp",
	".el":         "common-lisp",
	".scm":        "scheme",
	".rkt":        "racket",
	".yaml":       "yaml",
	".yml":        "yaml",
	".toml":       "toml",
	".ini":        "ini",
	".cfg":        "ini",
	".properties": "properties",
	".mk":         "make",
	".cmake":      "cmake",
	".ninja":      "ninja",
	".hcl":        "hcl",
	".tf":         "terraform",
	".tfvars":     "terraform",
	".html":       "html",
	".htm":        "html",
	".xhtml":      "html",
	".vue":        "vue",
	".svelte":     "svelte",
	".xml":        "xml",
	".svg":        "xml",
	".plist":      "xml",
	".md":         "markdown",
	".markdown":   "markdown",
	".css":        "css",
	".scss":       "scss",
	".sass":       "sass",
	".less":       "less",
	".styl":       "stylus",
	".jinja":      "jinja",
	".jinja2":     "jinja",
	".j2":         "jinja",
	".twig":       "twig",
	".liquid":     "liquid",
	".hbs":        "handlebars",
	".mustache":   "handlebars",
}

var shebangLanguages = map[string]string{
	"python":  "python",
	"pypy":    "python",
	"node":    "javascript",
	"deno":    "typescript",
	"bun":     "typescript",
	"perl":    "perl",
	"ruby":    "ruby",
	"php":     "php",
	"bash":    "shell",
	"sh":      "shell",
	"dash":    "shell",
	"zsh":     "shell",
	"ksh":     "shell",
	"fish":    "fish",
	"pwsh":    "powershell",
	"lua":     "lua",
	"luajit":  "lua",
	"rscript": "r",
	"elixir":  "elixir",
	"julia":   "julia",
}

// langAliases maps user-facing and go-enry names onto the keys used above.
var langAliases = map[string]string{
	"c#":                               "csharp",
	"cs":                               "csharp",
	"c++":                              "cpp",
	"cc":                               "cpp",
	"hpp":                              "cpp",
	"objective-c++":                    "objective-cpp",
	"js":                               "javascript",
	"node":                             "javascript",
	"jsx":                              "javascriptreact",
	"ts":                               "typescript",
	"tsx":                              "typescriptreact",
	"kt":                               "kotlin",
	"rb":                               "ruby",
	"py":                               "python",
	"python3":                          "python",
	"golang":                           "go",
	"rs":                               "rust",
	"ps1":                              "powershell",
	"bash":                             "shell",
	"sh":                               "shell",
	"zsh":                              "shell",
	"batchfile":                        "batch",
	"bat":                              "batch",
	"plsql":                            "sql",
	"tsql":                             "sql",
	"plpgsql":                          "sql",
	"yml":                              "yaml",
	"md":                               "markdown",
	"htm":                              "html",
	"common lisp":                      "common-lisp",
	"emacs lisp":                       "common-lisp",
	"lisp":                             "common-lisp",
	"protocol buffer":                  "proto",
	"protocol buffers":                 "proto",
	"makefile":                         "make",
	"tex":                              "latex",
	"hashicorp configuration language": "hcl",
	"jinja2":                           "jinja",
	"ini":                              "ini",
	"java properties":                  "properties",
	"dockerfile":                       "dockerfile",
	"systemverilog":                    "systemverilog",
}
