package engine

import (
	"github.com/phyten/cmtrans/internal/delim"
	"github.com/phyten/cmtrans/internal/model"
)

// Analysis は 1 つのテキストに対する全段階の結果です。
type Analysis struct {
	Document string          `json:"document"`
	Spans    []model.Span    `json:"spans"`
	Lines    []LineResult    `json:"lines"`
	Warnings []delim.Warning `json:"warnings,omitempty"`
}

// LineResult は行ごとの判定結果
type LineResult struct {
	Number int    `json:"number"`
	Text   string `json:"text"`
	LineProps
	// Join is the decision towards the next line; empty on the last line.
	Join  string       `json:"join,omitempty"`
	Parts []model.Span `json:"parts"`
}

// Input は Run に渡す 1 件の入力
type Input struct {
	Name string
	Text string
}

// Resolver decides the delimiter set for one input. lang is a display
// name for the chosen language.
type Resolver interface {
	Resolve(name, text string) (lang string, set delim.Set, err error)
}

// Item は 1 入力ぶんの抽出結果を表す
type Item struct {
	Name     string          `json:"name"`
	Lang     string          `json:"lang,omitempty"`
	Document string          `json:"document"`
	Spans    []model.Span    `json:"spans,omitempty"`
	Lines    []LineResult    `json:"lines,omitempty"`
	Warnings []delim.Warning `json:"warnings,omitempty"`
}

// ItemError は 1 入力の処理に失敗した際の情報を表す
type ItemError struct {
	Name    string `json:"name"`
	Stage   string `json:"stage"`
	Message string `json:"message"`
}

// Options は実行オプション
type Options struct {
	Lang      string // preset name, "auto" or "custom"
	Inputs    []Input
	Resolver  Resolver `json:"-"`
	Jobs      int
	WithSpans bool
	WithLines bool
	Progress  bool
	Output    string
	Color     string
	Encoding  string
}

// Result は出力
type Result struct {
	Items      []Item      `json:"items"`
	Total      int         `json:"total"`
	ElapsedMS  int64       `json:"elapsed_ms"`
	Errors     []ItemError `json:"errors,omitempty"`
	ErrorCount int         `json:"error_count"`
}
