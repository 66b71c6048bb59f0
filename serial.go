package whirl

import (
	"fmt"
	"strconv"
	"strings"
)

// appendStateWords renders words as uppercase hex separated by '~',
// the shared serialized-body layout of the built-in generators.
func appendStateWords(dst []byte, words ...uint64) []byte {
	for i, w := range words {
		if i > 0 {
			dst = append(dst, '~')
		}
		dst = fmt.Appendf(dst, "%X", w)
	}
	return dst
}

// parseStateWords parses a body produced by appendStateWords,
// requiring exactly count words.
func parseStateWords(body string, count int) ([]uint64, error) {
	parts := strings.Split(body, "~")
	if len(parts) != count {
		return nil, fmt.Errorf("%w: %d state words, want %d", ErrMalformed, len(parts), count)
	}
	words := make([]uint64, count)
	for i, p := range parts {
		w, err := strconv.ParseUint(p, 16, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: state word %q", ErrMalformed, p)
		}
		words[i] = w
	}
	return words, nil
}
