// Package filex holds small helpers for files picked by the user.
package filex

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

var ErrNotRegularFile = errors.New("not a regular file")

// Info describes a file selected for upload.
type Info struct {
	Path string
	Name string
	Size int64
}

// DroppedPath normalizes a path that a terminal pasted after a file was
// dropped onto it. Terminals differ: some quote the path, some escape spaces
// with backslashes, some paste a file:// URL.
func DroppedPath(raw string) string {
	p := strings.TrimSpace(raw)
	if len(p) >= 2 {
		if (p[0] == '\'' && p[len(p)-1] == '\'') || (p[0] == '"' && p[len(p)-1] == '"') {
			p = p[1 : len(p)-1]
		}
	}

	if strings.HasPrefix(p, "file://") {
		if u, err := url.Parse(p); err == nil {
			p = u.Path
		}
	} else {
		p = strings.ReplaceAll(p, `\ `, " ")
	}

	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}

	return p
}

// Inspect checks that path names a regular file and returns its details.
func Inspect(path string) (Info, error) {
	st, err := os.Stat(path)
	if err != nil {
		return Info{}, fmt.Errorf("stat %s: %w", path, err)
	}
	if !st.Mode().IsRegular() {
		return Info{}, fmt.Errorf("%s: %w", path, ErrNotRegularFile)
	}
	return Info{Path: path, Name: filepath.Base(path), Size: st.Size()}, nil
}
