// Package dispatch turns a requested bookmark operation into a single store
// call and writes any returned bookmark to an output sink.
package dispatch

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/Cult-of-sam/Bookmark-Manager/internal/bookmark"
)

// Op is a bookmark operation.
type Op string

const (
	OpAdd    Op = "add"
	OpRemove Op = "remove"
	OpQuery  Op = "query"
)

// StdoutPath is the output path meaning standard output.
const StdoutPath = "-"

// Request is one parsed invocation.
type Request struct {
	Op     Op
	Name   string
	Offset float64
}

// Store is the subset of *store.Store the dispatcher needs.
type Store interface {
	Add(name string, offset float64) error
	Remove(name string) (*bookmark.Bookmark, error)
	Query(name string) (*bookmark.Bookmark, error)
}

// Dispatcher routes requests to a Store.
type Dispatcher struct {
	Store Store
	// OutputPath is where a returned bookmark is written. "-" or empty means
	// Stdout.
	OutputPath string
	Stdout     io.Writer
	Logger     *slog.Logger
}

// Validate checks a request without touching the store. Only add rejects an
// empty name; remove and query simply find nothing.
func (r Request) Validate() error {
	switch r.Op {
	case OpAdd, OpRemove, OpQuery:
	case "":
		return bookmark.NewError(bookmark.KindUsage, "dispatch", bookmark.ErrMissingOperation)
	default:
		return bookmark.NewError(bookmark.KindUsage, "dispatch",
			fmt.Errorf("%w %q", bookmark.ErrUnknownOperation, string(r.Op)))
	}
	if r.Op == OpAdd {
		return bookmark.ValidateName(r.Name)
	}
	return nil
}

// Run executes req and writes the resulting bookmark, if any, to the output
// sink. Nothing is written when the operation returns no bookmark.
func (d *Dispatcher) Run(req Request) (*bookmark.Bookmark, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	logger := d.logger()

	var (
		result *bookmark.Bookmark
		err    error
	)
	switch req.Op {
	case OpAdd:
		err = d.Store.Add(req.Name, req.Offset)
	case OpRemove:
		result, err = d.Store.Remove(req.Name)
	case OpQuery:
		result, err = d.Store.Query(req.Name)
	}
	if err != nil {
		return nil, err
	}
	logger.Debug("Operation done", "op", req.Op, "name", req.Name, "found", result != nil)

	if result == nil {
		return nil, nil
	}
	if err := d.write(*result); err != nil {
		return nil, err
	}
	return result, nil
}

// write renders b as one line on the output sink. A file sink is created
// (or truncated) only here, so operations without a result leave it alone.
func (d *Dispatcher) write(b bookmark.Bookmark) error {
	if d.OutputPath == "" || d.OutputPath == StdoutPath {
		w := d.Stdout
		if w == nil {
			w = os.Stdout
		}
		if _, err := fmt.Fprintln(w, b); err != nil {
			return bookmark.NewError(bookmark.KindIO, "writing output", err)
		}
		return nil
	}

	f, err := os.Create(d.OutputPath)
	if err != nil {
		return bookmark.NewError(bookmark.KindIO, "creating output file", err)
	}
	if _, err := fmt.Fprintln(f, b); err != nil {
		f.Close()
		return bookmark.NewError(bookmark.KindIO, "writing output", err)
	}
	if err := f.Close(); err != nil {
		return bookmark.NewError(bookmark.KindIO, "closing output file", err)
	}
	return nil
}

func (d *Dispatcher) logger() *slog.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return slog.Default()
}

// ParseOffset parses a decimal offset argument as a float64. NaN and
// infinities are accepted, and out-of-range values saturate to an infinity.
// Go literal syntax such as digit separators and hex floats is rejected.
func ParseOffset(s string) (float64, error) {
	digits := strings.TrimLeft(s, "+-")
	if strings.Contains(s, "_") || strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		return 0, bookmark.UsageErrorf("invalid offset %q: must be a decimal number", s)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, bookmark.UsageErrorf("invalid offset %q: must be a number", s)
	}
	return f, nil
}
