package boardgeom

import (
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// decode wraps r so that UTF-16 input with a byte order mark is converted to
// UTF-8. Input without a BOM is read as UTF-8; a UTF-8 BOM is stripped.
func decode(r io.Reader) io.Reader {
	return transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
}
