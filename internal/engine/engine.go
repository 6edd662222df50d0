package engine

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math/bits"
	"os"
	"runtime"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/phyten/gearscan/internal/schematic"
	"github.com/phyten/gearscan/internal/util"
)

// StdinPath is the path that selects Options.Stdin as input.
const StdinPath = "-"

type job struct {
	idx  int
	path string
	data []byte // preloaded (stdin)
}

type outcome struct {
	idx  int
	item *Item
	err  *ItemError
}

// Run は指定された回路図ファイルを並列に解析し、ファイルごとの部品番号合計と
// ギア比合計を返します。
//
// 読み込みに失敗したファイルは Result.Errors に集約され、処理は継続します。
// 返されるエラーはオプション不正とキャンセルのみです。
func Run(ctx context.Context, opts Options) (*Result, error) {
	start := time.Now()
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	if opts.Jobs <= 0 {
		opts.Jobs = runtime.NumCPU()
	}

	hasParts, hasGears := true, true
	switch strings.ToLower(strings.TrimSpace(opts.Query)) {
	case "", "both":
	case "parts":
		hasGears = false
	case "gears":
		hasParts = false
	default:
		return nil, fmt.Errorf("invalid --query: %s", opts.Query)
	}
	sopts, err := schematicOptions(opts)
	if err != nil {
		return nil, err
	}

	paths := opts.Paths
	if len(paths) == 0 {
		paths = []string{StdinPath}
	}
	jobs, err := planJobs(paths, opts.Stdin)
	if err != nil {
		return nil, err
	}

	log.Debug("starting analysis",
		zap.Int("files", len(jobs)),
		zap.Int("jobs", opts.Jobs),
		zap.String("gear", string(sopts.GearGlyph)),
		zap.Int("arity", sopts.GearArity))

	outcomes, err := analyzeAll(ctx, jobs, opts, sopts, log)
	if err != nil {
		return nil, err
	}

	res := &Result{HasParts: hasParts, HasGears: hasGears, HasList: opts.WithParts}
	for _, o := range outcomes {
		if o.err != nil {
			res.Errors = append(res.Errors, *o.err)
			continue
		}
		res.Items = append(res.Items, *o.item)
	}

	// stable order by file name
	sort.SliceStable(res.Items, func(i, j int) bool { return res.Items[i].File < res.Items[j].File })
	sort.SliceStable(res.Errors, func(i, j int) bool {
		if res.Errors[i].File == res.Errors[j].File {
			return res.Errors[i].Stage < res.Errors[j].Stage
		}
		return res.Errors[i].File < res.Errors[j].File
	})

	if err := sumTotals(&res.Totals, res.Items); err != nil {
		return nil, err
	}
	res.Total = len(res.Items)
	res.ErrorCount = len(res.Errors)
	res.ElapsedMS = msSince(start)

	log.Info("analysis finished",
		zap.Int("files", res.Total),
		zap.Int("errors", res.ErrorCount),
		zap.Uint64("part_sum", res.Totals.PartSum),
		zap.Uint64("gear_ratio_sum", res.Totals.GearRatioSum),
		zap.Int64("elapsed_ms", res.ElapsedMS))
	return res, nil
}

func analyzeAll(ctx context.Context, jobs []job, opts Options, sopts schematic.Options, log *zap.Logger) ([]outcome, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	workers := opts.Jobs
	if workers > len(jobs) {
		workers = len(jobs)
	}
	if workers < 1 {
		workers = 1
	}

	prog := util.NewProgress(opts.ProgressOut, len(jobs), opts.Progress)
	defer prog.Done()

	queue := make(chan job)
	results := make(chan outcome)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(queue)
		for _, j := range jobs {
			select {
			case <-gctx.Done():
				return gctx.Err()
			case queue <- j:
			}
		}
		return nil
	})

	for i := 0; i < workers; i++ {
		g.Go(func() error {
			for j := range queue {
				o := analyzeOne(j, opts, sopts)
				if o.err != nil {
					log.Warn("skipping input",
						zap.String("file", o.err.File),
						zap.String("stage", o.err.Stage),
						zap.String("error", o.err.Message))
				} else {
					log.Debug("analyzed",
						zap.String("file", o.item.File),
						zap.Int("parts", o.item.Parts),
						zap.Uint64("part_sum", o.item.PartSum),
						zap.Uint64("gear_ratio_sum", o.item.GearRatioSum))
				}
				select {
				case <-gctx.Done():
					return gctx.Err()
				case results <- o:
				}
				prog.Advance()
			}
			return nil
		})
	}

	var waitErr error
	done := make(chan struct{})
	go func() {
		waitErr = g.Wait()
		close(results)
		close(done)
	}()

	out := make([]outcome, len(jobs))
	for o := range results {
		out[o.idx] = o
	}
	<-done
	if waitErr != nil {
		return nil, waitErr
	}
	return out, nil
}

func analyzeOne(j job, opts Options, sopts schematic.Options) outcome {
	data := j.data
	if data == nil {
		var err error
		data, err = os.ReadFile(j.path)
		if err != nil {
			return outcome{idx: j.idx, err: newItemError(j.path, "read", err)}
		}
	}
	if opts.MaxFileBytes > 0 && len(data) > opts.MaxFileBytes {
		return outcome{idx: j.idx, err: newItemError(j.path, "size", fmt.Errorf("%d bytes exceeds max_file_bytes %d", len(data), opts.MaxFileBytes))}
	}
	if bytes.IndexByte(data, 0) >= 0 {
		return outcome{idx: j.idx, err: newItemError(j.path, "binary", fmt.Errorf("input contains NUL bytes"))}
	}

	rep, err := analyze(data, sopts)
	if err != nil {
		return outcome{idx: j.idx, err: newItemError(j.path, "parse", err)}
	}
	it := &Item{
		File:         j.path,
		Lines:        rep.Lines,
		Parts:        rep.Parts,
		Symbols:      rep.Symbols,
		Gears:        len(rep.Gears),
		PartSum:      rep.PartSum,
		GearRatioSum: rep.GearRatioSum,
	}
	if opts.WithParts {
		it.Adjacent = rep.Adjacent
		it.Isolated = rep.Isolated
		it.GearList = rep.Gears
	}
	return outcome{idx: j.idx, item: it}
}

// analyze turns the panics schematic raises for part numbers, sums or ratios
// that overflow uint64 into an error for the one file.
func analyze(data []byte, sopts schematic.Options) (rep schematic.Report, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	return schematic.Analyze(string(data), sopts), nil
}

func planJobs(paths []string, stdin io.Reader) ([]job, error) {
	jobs := make([]job, 0, len(paths))
	var stdinData []byte
	for i, p := range paths {
		p = strings.TrimSpace(p)
		if p != StdinPath {
			jobs = append(jobs, job{idx: i, path: p})
			continue
		}
		if stdinData == nil {
			if stdin == nil {
				return nil, fmt.Errorf("read stdin: no reader configured")
			}
			data, err := io.ReadAll(stdin)
			if err != nil {
				return nil, fmt.Errorf("read stdin: %w", err)
			}
			stdinData = append([]byte{}, data...)
		}
		jobs = append(jobs, job{idx: i, path: p, data: stdinData})
	}
	return jobs, nil
}

func schematicOptions(opts Options) (schematic.Options, error) {
	sopts := schematic.DefaultOptions()
	switch glyph := opts.GearGlyph; len(glyph) {
	case 0:
	case 1:
		sopts.GearGlyph = glyph[0]
	default:
		return sopts, fmt.Errorf("invalid --gear: %q must be a single character", glyph)
	}
	if opts.GearArity < 0 {
		return sopts, fmt.Errorf("invalid --arity: %d", opts.GearArity)
	}
	if opts.GearArity > 0 {
		sopts.GearArity = opts.GearArity
	}
	return sopts, nil
}

// sumTotals fails rather than wrap when the part or ratio totals across files
// exceed uint64.
func sumTotals(t *Totals, items []Item) error {
	for _, it := range items {
		t.Files++
		t.Lines += it.Lines
		t.Parts += it.Parts
		t.Symbols += it.Symbols
		t.Gears += it.Gears
		var carry uint64
		if t.PartSum, carry = bits.Add64(t.PartSum, it.PartSum, 0); carry != 0 {
			return fmt.Errorf("part_sum total overflows uint64 at %s", it.File)
		}
		if t.GearRatioSum, carry = bits.Add64(t.GearRatioSum, it.GearRatioSum, 0); carry != 0 {
			return fmt.Errorf("gear_ratio_sum total overflows uint64 at %s", it.File)
		}
	}
	return nil
}

func newItemError(file, stage string, err error) *ItemError {
	msg := strings.TrimSpace(err.Error())
	if msg == "" {
		msg = "unknown error"
	}
	return &ItemError{File: file, Stage: stage, Message: msg}
}

func msSince(t time.Time) int64 {
	return time.Since(t).Milliseconds()
}
