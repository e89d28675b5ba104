// SPDX-License-Identifier: MIT
// Copyright (c) 2026 prebetafinal
// Source: github.com/prebetafinal/epitypes

// Package scan classifies every entry of a directory tree.
//
// The tree is walked concurrently with cwalk; results are sorted by path so
// reports are deterministic. Ignored directories are not descended into.
package scan

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/iafan/cwalk"
	"github.com/prebetafinal/epitypes"
	"github.com/prebetafinal/epitypes/internal/logging"
)

// ErrNotDirectory is returned when the scan root is not a directory.
var ErrNotDirectory = errors.New("scan root is not a directory")

// errPruned keeps cwalk from descending into an entry. cwalk stops listing the
// whole parent directory on filepath.SkipDir, so that is not usable here.
// It is removed from the walk error list before reporting.
var errPruned = errors.New("scan: pruned")

// Options configures a scan.
type Options struct {
	// Logger receives warnings for unreadable entries. Nil discards them.
	Logger *logging.Logger
}

// Entry is one classified path.
type Entry struct {
	// Path is relative to the scan root, slash separated.
	Path string
	// Classification is the classifier result for the entry.
	Classification epitypes.Classification
	// Size is the byte size of regular files, 0 otherwise.
	Size int64
}

// Totals aggregates entries of one nature.
type Totals struct {
	Count int
	Bytes uint64
}

// Report is the result of one scan.
type Report struct {
	// Root is the scanned directory.
	Root string
	// Entries are sorted by Path.
	Entries []Entry
	// Summary holds totals per nature.
	Summary map[epitypes.Nature]Totals
	// Errors are non-fatal walk errors.
	Errors []error
}

// Walk classifies every entry below root.
//
// Unreadable entries are logged and collected in Report.Errors. Cancelling ctx
// stops the walk and returns ctx.Err().
func Walk(ctx context.Context, root string, c *epitypes.Classifier, opts Options) (*Report, error) {
	if c == nil {
		return nil, epitypes.ErrNilClassifier
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat scan root: %w", err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, root)
	}

	w := newWalker(root, c, opts.Logger)

	walkErr := cwalk.Walk(root, func(rel string, fi os.FileInfo, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		return w.visit(rel, fi, err)
	})

	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}

	report := w.report
	for _, err := range walkErrors(walkErr) {
		w.logger.Warn("walk %s: %s", root, err)
		report.Errors = append(report.Errors, err)
	}

	sort.Slice(report.Entries, func(i, j int) bool {
		return report.Entries[i].Path < report.Entries[j].Path
	})

	return report, nil
}

// walker accumulates one report; visit is called from several goroutines.
type walker struct {
	root       string
	classifier *epitypes.Classifier
	logger     *logging.Logger

	mu     sync.Mutex
	report *Report
}

func newWalker(root string, c *epitypes.Classifier, logger *logging.Logger) *walker {
	return &walker{
		root:       root,
		classifier: c,
		logger:     logger,
		report: &Report{
			Root:    root,
			Summary: make(map[epitypes.Nature]Totals),
		},
	}
}

// visit classifies one walked entry.
//
// Directories classified Ignored are recorded and pruned, so nothing below
// them is read or reported, read errors included.
func (w *walker) visit(rel string, fi os.FileInfo, err error) error {
	rel = filepath.ToSlash(rel)
	if rel == "" || rel == "." {
		return nil
	}

	if err != nil {
		if !w.classifier.Table().IsIgnored(path.Base(rel)) {
			w.logger.Warn("%s: %s", rel, err)
			w.mu.Lock()
			w.report.Errors = append(w.report.Errors, fmt.Errorf("%s: %w", rel, err))
			w.mu.Unlock()
		}

		return errPruned
	}

	cls := w.classifier.Classify(filepath.Join(w.root, filepath.FromSlash(rel)))

	var size int64
	if fi != nil && fi.Mode().IsRegular() {
		size = fi.Size()
	}

	w.logger.Debug("%s: %s", rel, cls)
	w.add(Entry{Path: rel, Classification: cls, Size: size})

	if cls.Nature() == epitypes.NatureIgnored && fi != nil && fi.IsDir() {
		return errPruned
	}

	return nil
}

func (w *walker) add(e Entry) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.report.Entries = append(w.report.Entries, e)
	totals := w.report.Summary[e.Classification.Nature()]
	totals.Count++
	totals.Bytes += uint64(e.Size)
	w.report.Summary[e.Classification.Nature()] = totals
}

// walkErrors flattens the error returned by cwalk.Walk and drops errPruned.
//
// cwalk keeps walk function errors unwrapped, so they are matched by message.
func walkErrors(err error) []error {
	if err == nil {
		return nil
	}

	var list cwalk.WalkerErrorList
	if !errors.As(err, &list) {
		return []error{err}
	}

	out := make([]error, 0, len(list.ErrorList))
	for _, we := range list.ErrorList {
		if we.Error() == errPruned.Error() {
			continue
		}

		out = append(out, we)
	}

	return out
}

// Records returns entries as serializable records.
func (r *Report) Records() []epitypes.Record {
	out := make([]epitypes.Record, len(r.Entries))
	for i, e := range r.Entries {
		out[i] = epitypes.NewRecord(e.Path, e.Classification)
	}

	return out
}

// summaryOrder is the print order of natures.
var summaryOrder = []epitypes.Nature{
	epitypes.NaturePage,
	epitypes.NatureAsset,
	epitypes.NatureFolder,
	epitypes.NatureUnknown,
	epitypes.NatureIgnored,
}

// Print writes a per-nature summary table.
func (r *Report) Print(w io.Writer) error {
	var total Totals
	for _, nature := range summaryOrder {
		t := r.Summary[nature]
		total.Count += t.Count
		total.Bytes += t.Bytes
		if _, err := fmt.Fprintf(w, "%-8s %8d %10s\n", nature, t.Count, humanize.Bytes(t.Bytes)); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "%-8s %8d %10s\n", "total", total.Count, humanize.Bytes(total.Bytes)); err != nil {
		return err
	}

	if len(r.Errors) > 0 {
		if _, err := fmt.Fprintf(w, "%d entries could not be read\n", len(r.Errors)); err != nil {
			return err
		}
	}

	return nil
}
