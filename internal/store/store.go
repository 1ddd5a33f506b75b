// Package store persists a bookmark collection in a single YAML file.
//
// Every operation opens the file, reads it completely, applies at most one
// change and closes it again. Nothing is cached between operations and there
// is no locking: two processes writing the same file race and the last
// writer wins.
package store

import (
	"io"
	"log/slog"
	"os"

	"github.com/Cult-of-sam/Bookmark-Manager/internal/bookmark"
	"github.com/kjk/common/atomicfile"
)

// DefaultPath is the store file used when none is configured.
const DefaultPath = "bookmarks"

// Handle is an open store file.
type Handle struct {
	path   string
	f      *os.File
	atomic bool
	logger *slog.Logger
}

// Options control how a Handle rewrites its file.
type Options struct {
	// AtomicWrite writes the new contents to a temporary file next to the
	// store and renames it into place instead of truncating the open file.
	AtomicWrite bool
	Logger      *slog.Logger
}

// Open opens path for reading and writing. With create set, a missing file
// is created empty; otherwise a missing file is an error.
func Open(path string, create bool, opts Options) (*Handle, error) {
	flag := os.O_RDWR
	if create {
		flag |= os.O_CREATE
	}
	f, err := os.OpenFile(path, flag, 0644)
	if err != nil {
		return nil, bookmark.NewError(bookmark.KindIO, "opening store", err)
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Handle{path: path, f: f, atomic: opts.AtomicWrite, logger: logger}, nil
}

// Close releases the file. It is safe to call more than once.
func (h *Handle) Close() error {
	if h.f == nil {
		return nil
	}
	err := h.f.Close()
	h.f = nil
	if err != nil {
		return bookmark.NewError(bookmark.KindIO, "closing store", err)
	}
	return nil
}

// readAll returns the complete file contents.
func (h *Handle) readAll() ([]byte, error) {
	if _, err := h.f.Seek(0, io.SeekStart); err != nil {
		return nil, bookmark.NewError(bookmark.KindIO, "seeking store", err)
	}
	data, err := io.ReadAll(h.f)
	if err != nil {
		return nil, bookmark.NewError(bookmark.KindIO, "reading store", err)
	}
	return data, nil
}

// Load reads and parses the collection. Read errors are KindIO and
// malformed contents are KindParse.
func (h *Handle) Load() ([]bookmark.Bookmark, error) {
	data, err := h.readAll()
	if err != nil {
		return nil, err
	}
	list, err := bookmark.Decode(data)
	if err != nil {
		return nil, err
	}
	h.logger.Debug("Loaded bookmarks", "path", h.path, "count", len(list))
	return list, nil
}

// LoadOrEmpty is Load, except that empty or unparseable contents yield an
// empty collection. Read errors are still returned.
func (h *Handle) LoadOrEmpty() ([]bookmark.Bookmark, error) {
	list, err := h.Load()
	if err != nil {
		if !bookmark.IsParse(err) {
			return nil, err
		}
		h.logger.Debug("Store contents unreadable, starting empty", "path", h.path, "err", err)
		return nil, nil
	}
	return list, nil
}

// Save replaces the file contents with list. The collection is encoded
// completely before the file is touched.
func (h *Handle) Save(list []bookmark.Bookmark) error {
	data, err := bookmark.Encode(list)
	if err != nil {
		return err
	}
	if h.atomic {
		err = h.replace(data)
	} else {
		err = h.rewrite(data)
	}
	if err != nil {
		return err
	}
	h.logger.Debug("Wrote bookmarks", "path", h.path, "count", len(list), "bytes", len(data), "atomic", h.atomic)
	return nil
}

// rewrite truncates the open file and writes data from the start.
func (h *Handle) rewrite(data []byte) error {
	if _, err := h.f.Seek(0, io.SeekStart); err != nil {
		return bookmark.NewError(bookmark.KindIO, "seeking store", err)
	}
	if err := h.f.Truncate(0); err != nil {
		return bookmark.NewError(bookmark.KindIO, "truncating store", err)
	}
	if _, err := h.f.Write(data); err != nil {
		return bookmark.NewError(bookmark.KindIO, "writing store", err)
	}
	if err := h.f.Sync(); err != nil {
		return bookmark.NewError(bookmark.KindIO, "syncing store", err)
	}
	return nil
}

// replace writes data to a temporary file and renames it over the store.
// The replacement keeps the permission bits of the file it replaces.
func (h *Handle) replace(data []byte) error {
	st, err := h.f.Stat()
	if err != nil {
		return bookmark.NewError(bookmark.KindIO, "reading store mode", err)
	}
	perm := st.Mode().Perm()

	w, err := atomicfile.New(h.path)
	if err != nil {
		return bookmark.NewError(bookmark.KindIO, "creating temp file", err)
	}
	defer w.RemoveIfNotClosed()

	if _, err := w.Write(data); err != nil {
		return bookmark.NewError(bookmark.KindIO, "writing temp file", err)
	}
	if err := w.Close(); err != nil {
		return bookmark.NewError(bookmark.KindIO, "replacing store", err)
	}
	// The temp file is created 0600.
	if err := os.Chmod(h.path, perm); err != nil {
		return bookmark.NewError(bookmark.KindIO, "restoring store mode", err)
	}
	return nil
}
