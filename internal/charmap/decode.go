package charmap

import (
	"fmt"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Decode returns mapping file content as UTF-8. A leading byte order mark
// selects UTF-8, UTF-16LE or UTF-16BE and is dropped. Content without one
// is returned unchanged.
func Decode(data []byte) ([]byte, error) {
	out, _, err := transform.Bytes(unicode.BOMOverride(transform.Nop), data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode mapping file: %w", err)
	}

	return out, nil
}
