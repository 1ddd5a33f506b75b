package bookmark

import (
	"bytes"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrEmptyDocument indicates store contents with no YAML document at all.
var ErrEmptyDocument = errors.New("empty document")

// record mirrors Bookmark with pointer fields so missing keys can be told
// apart from zero values.
type record struct {
	Name   *string  `yaml:"name"`
	Offset *float64 `yaml:"offset"`
}

// Decode parses store contents: a YAML sequence of {name, offset} mappings.
// Empty input, a non-sequence document, or an entry missing either field is
// a KindParse error.
func Decode(data []byte) ([]Bookmark, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, NewError(KindParse, "parsing bookmarks", err)
	}
	if len(doc.Content) == 0 {
		return nil, NewError(KindParse, "parsing bookmarks", ErrEmptyDocument)
	}
	root := doc.Content[0]
	if root.Kind != yaml.SequenceNode {
		return nil, NewError(KindParse, "parsing bookmarks",
			fmt.Errorf("line %d: expected a sequence of bookmarks", root.Line))
	}

	var records []record
	if err := root.Decode(&records); err != nil {
		return nil, NewError(KindParse, "parsing bookmarks", err)
	}

	list := make([]Bookmark, 0, len(records))
	for i, r := range records {
		if r.Name == nil {
			return nil, NewError(KindParse, "parsing bookmarks",
				fmt.Errorf("entry %d: missing field name", i))
		}
		if r.Offset == nil {
			return nil, NewError(KindParse, "parsing bookmarks",
				fmt.Errorf("entry %d: missing field offset", i))
		}
		list = append(list, New(*r.Name, *r.Offset))
	}
	return list, nil
}

// Encode serializes a collection in the format read by Decode.
func Encode(list []Bookmark) ([]byte, error) {
	if list == nil {
		list = []Bookmark{}
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(list); err != nil {
		return nil, NewError(KindSerialization, "encoding bookmarks", err)
	}
	if err := enc.Close(); err != nil {
		return nil, NewError(KindSerialization, "encoding bookmarks", err)
	}
	return buf.Bytes(), nil
}
