package engine

import (
	"context"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/phyten/cmtrans/internal/delim"
	"github.com/phyten/cmtrans/internal/util"
)

// Transform はソースコードからコメントを抽出し、翻訳向けの文書に再構成します。
// set が空の場合は ErrInvalidDelimiterSet を返します。
func Transform(text string, set delim.Set) (string, error) {
	if set.Len() == 0 {
		return "", errors.WithStack(ErrInvalidDelimiterSet)
	}
	spans, err := Classify(text, set)
	if err != nil {
		return "", err
	}
	return Reassemble(SplitLines(spans)), nil
}

// Analyze runs every stage and keeps the intermediate results for
// inspection.
func Analyze(text string, set delim.Set) (*Analysis, error) {
	if set.Len() == 0 {
		return nil, errors.WithStack(ErrInvalidDelimiterSet)
	}
	spans, err := Classify(text, set)
	if err != nil {
		return nil, err
	}
	lines := SplitLines(spans)
	t := newPropsTable(lines)
	results := make([]LineResult, len(lines))
	for i, l := range lines {
		results[i] = LineResult{
			Number:    l.Number,
			Text:      l.Text(),
			LineProps: t.at(i),
			Parts:     DecorativeParts(l),
		}
		if i > 0 {
			results[i-1].Join = Decide(t.at(i-1), t.at(i)).String()
		}
	}
	return &Analysis{
		Document: reassemble(t),
		Spans:    spans,
		Lines:    results,
		Warnings: set.Warnings(),
	}, nil
}

// Run は Options.Inputs の各入力を並行に処理し、入力順の結果を返します。
//
// 言語の決定や走査に失敗した入力は Result.Errors に集約されます。
// 区切り文字セットが空の場合は全体を中断して ErrInvalidDelimiterSet を返します。
func Run(ctx context.Context, opts Options) (*Result, error) {
	start := time.Now()
	if opts.Resolver == nil {
		return nil, errors.New("engine: no resolver configured")
	}
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	items := make([]Item, len(opts.Inputs))
	ok := make([]bool, len(opts.Inputs))
	prog := util.NewProgress(len(opts.Inputs), opts.Progress)
	var errsMu sync.Mutex
	var errs []ItemError
	record := func(name, stage string, err error) {
		errsMu.Lock()
		errs = append(errs, newItemError(name, stage, err))
		errsMu.Unlock()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, in := range opts.Inputs {
		if gctx.Err() != nil {
			break
		}
		i, in := i, in
		g.Go(func() error {
			defer prog.Advance()
			lang, set, err := opts.Resolver.Resolve(in.Name, in.Text)
			if err != nil {
				record(in.Name, "resolve", err)
				return nil
			}
			a, err := Analyze(in.Text, set)
			if errors.Is(err, ErrInvalidDelimiterSet) {
				return errors.Wrapf(err, "%s (%s)", in.Name, lang)
			}
			if err != nil {
				record(in.Name, "classify", err)
				return nil
			}
			it := Item{Name: in.Name, Lang: lang, Document: a.Document, Warnings: a.Warnings}
			if opts.WithSpans {
				it.Spans = a.Spans
			}
			if opts.WithLines {
				it.Lines = a.Lines
			}
			items[i] = it
			ok[i] = true
			return nil
		})
	}
	err := g.Wait()
	prog.Done()
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	final := items[:0]
	for i, it := range items {
		if ok[i] {
			final = append(final, it)
		}
	}
	sortItemErrors(errs, opts.Inputs)

	return &Result{
		Items:      final,
		Total:      len(final),
		ElapsedMS:  msSince(start),
		Errors:     errs,
		ErrorCount: len(errs),
	}, nil
}

func newItemError(name, stage string, err error) ItemError {
	msg := strings.TrimSpace(err.Error())
	if msg == "" {
		msg = "unknown error"
	}
	return ItemError{Name: name, Stage: stage, Message: msg}
}

// sortItemErrors orders errors like their inputs.
func sortItemErrors(errs []ItemError, inputs []Input) {
	pos := make(map[string]int, len(inputs))
	for i, in := range inputs {
		if _, seen := pos[in.Name]; !seen {
			pos[in.Name] = i
		}
	}
	sort.SliceStable(errs, func(i, j int) bool {
		return pos[errs[i].Name] < pos[errs[j].Name]
	})
}

func msSince(t time.Time) int64 {
	return time.Since(t).Milliseconds()
}
