package gallery

import (
	"errors"
	"io/fs"
	"path"
	"regexp"
	"sort"
	"strings"

	"github.com/maruel/natural"
)

var workImagePattern = regexp.MustCompile(`(?i)^work-.+\.(png|jpg|jpeg|webp|gif)$`)

// Item is one past-work image
type Item struct {
	File string `json:"file"`
	URL  string `json:"url"`
	ID   string `json:"id"`
}

// Lister scans a directory of a site filesystem for past-work images.
type Lister struct {
	fsys      fs.FS
	dir       string
	urlPrefix string
}

// NewLister lists dir inside fsys; item URLs are urlPrefix + "/" + file.
func NewLister(fsys fs.FS, dir, urlPrefix string) *Lister {
	return &Lister{
		fsys:      fsys,
		dir:       dir,
		urlPrefix: "/" + strings.Trim(urlPrefix, "/"),
	}
}

// List returns the matching images in natural order. A missing directory is an empty gallery.
func (l *Lister) List() ([]Item, error) {
	entries, err := fs.ReadDir(l.fsys, l.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return []Item{}, nil
	}
	if err != nil {
		return nil, err
	}

	items := []Item{}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !workImagePattern.MatchString(name) {
			continue
		}
		items = append(items, Item{
			File: name,
			URL:  path.Join(l.urlPrefix, name),
			ID:   strings.TrimSuffix(name, path.Ext(name)),
		})
	}

	// Numeric-aware and case-insensitive, so "work-2" sorts before "work-10".
	sort.SliceStable(items, func(i, j int) bool {
		return natural.Less(strings.ToLower(items[i].File), strings.ToLower(items[j].File))
	})
	return items, nil
}
