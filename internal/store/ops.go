package store

import (
	"github.com/Cult-of-sam/Bookmark-Manager/internal/bookmark"
)

// Store runs bookmark operations against one backing file. Each call opens
// and closes the file itself.
type Store struct {
	Path    string
	Options Options
}

// New returns a Store for path.
func New(path string, opts Options) *Store {
	if path == "" {
		path = DefaultPath
	}
	return &Store{Path: path, Options: opts}
}

// Add sets the offset of the bookmark called name, creating the file and
// the bookmark as needed.
func (s *Store) Add(name string, offset float64) error {
	if err := bookmark.ValidateName(name); err != nil {
		return err
	}
	h, err := Open(s.Path, true, s.Options)
	if err != nil {
		return err
	}
	defer h.Close()
	return Add(h, name, offset)
}

// Remove deletes the bookmark called name and returns it, or nil if the
// store had no such bookmark.
func (s *Store) Remove(name string) (*bookmark.Bookmark, error) {
	h, err := Open(s.Path, false, s.Options)
	if err != nil {
		return nil, err
	}
	defer h.Close()
	return Remove(h, name)
}

// Query returns the bookmark called name, or nil.
func (s *Store) Query(name string) (*bookmark.Bookmark, error) {
	h, err := Open(s.Path, false, s.Options)
	if err != nil {
		return nil, err
	}
	defer h.Close()
	return Query(h, name)
}

// Add upserts name into the collection held by h and rewrites the file.
//
// Unlike Remove and Query, Add treats empty or unparseable contents as an
// empty collection, so a corrupt store is silently replaced.
func Add(h *Handle, name string, offset float64) error {
	list, err := h.LoadOrEmpty()
	if err != nil {
		return err
	}
	list = bookmark.Upsert(list, name, offset)
	return h.Save(list)
}

// Remove deletes the first bookmark called name. The file is rewritten only
// when a bookmark was removed.
func Remove(h *Handle, name string) (*bookmark.Bookmark, error) {
	list, err := h.Load()
	if err != nil {
		return nil, err
	}
	rest, removed, ok := bookmark.Remove(list, name)
	if !ok {
		return nil, nil
	}
	if err := h.Save(rest); err != nil {
		return nil, err
	}
	return &removed, nil
}

// Query returns the first bookmark called name. It never writes.
func Query(h *Handle, name string) (*bookmark.Bookmark, error) {
	list, err := h.Load()
	if err != nil {
		return nil, err
	}
	b, ok := bookmark.Find(list, name)
	if !ok {
		return nil, nil
	}
	return &b, nil
}
