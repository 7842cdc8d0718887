// Package header rewrites the metadata block at the top of a Markdown file.
package header

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/starford/ansuz/internal/apperr"
	"github.com/starford/ansuz/internal/meta"
	"github.com/starford/ansuz/internal/storage"
)

const delimiter = "---"

// Rewriter replaces the leading metadata block of a document in place.
type Rewriter struct {
	store storage.Provider
}

// NewRewriter creates a Rewriter over the given storage provider.
func NewRewriter(store storage.Provider) *Rewriter {
	return &Rewriter{store: store}
}

// Rewrite reads the file at path, replaces its leading metadata block with
// lines rendered from md, and writes the result back. A missing file is
// apperr.ErrNotFound.
func (r *Rewriter) Rewrite(path string, md meta.Metadata) error {
	data, err := r.store.Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", apperr.ErrNotFound, path)
		}
		return err
	}
	return r.store.Write(path, []byte(Render(md, string(data))))
}

// Render returns doc with its metadata block replaced. The block is every
// line strictly before the first delimiter line; the delimiter and the rest
// of the document are kept verbatim.
func Render(md meta.Metadata, doc string) string {
	lines := strings.Split(doc, "\n")
	rest := lines[delimiterIndex(lines):]
	return strings.Join(append(headerLines(md), rest...), "\n")
}

// delimiterIndex returns the index of the first line whose trimmed content
// equals the delimiter. Without a delimiter the block is empty and the whole
// document is kept, so the index is 0.
func delimiterIndex(lines []string) int {
	for i, line := range lines {
		if strings.TrimSpace(line) == delimiter {
			return i
		}
	}
	return 0
}

func headerLines(md meta.Metadata) []string {
	return []string{
		"# " + md.Title,
		"",
		"**" + md.Description + "**",
		"",
		"*Author: " + md.Author + "*",
		"",
		"*Last Updated: " + md.Updated + "*",
		"",
	}
}
