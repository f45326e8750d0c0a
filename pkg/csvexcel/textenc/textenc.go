// Package textenc resolves character encodings for delimited text.
package textenc

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ukaji3/csvexcel-go/pkg/csvexcel/models"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

var utf8BOM = []byte("\xef\xbb\xbf")

// encodingAliases maps common spellings that neither index knows.
var encodingAliases = map[string]string{
	"utf8":     "utf-8",
	"latin-1":  "latin1",
	"latin":    "latin1",
	"ascii":    "us-ascii",
	"cp932":    "windows-31j",
	"utf8-sig": "utf-8-sig",
}

// Charset is a resolved character encoding.
type Charset struct {
	// Name is the normalized name the charset was resolved from.
	Name string
	encoding.Encoding
	utf8Family bool
}

// Lookup resolves an encoding name such as "utf-8", "latin-1",
// "cp1252" or "shift_jis". Names are tried against the IANA registry first
// and the WHATWG labels second, so "latin1" stays ISO-8859-1.
func Lookup(name string) (Charset, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = "utf-8"
	}

	for _, candidate := range []string{key, strings.ReplaceAll(key, "_", "-")} {
		if alias, ok := encodingAliases[candidate]; ok {
			candidate = alias
		}
		if cs, ok := lookupCharset(candidate); ok {
			return cs, nil
		}
	}
	return Charset{}, models.NewKindError(models.ErrInvalidOptions, fmt.Errorf("unsupported encoding %q", name))
}

func lookupCharset(key string) (Charset, bool) {
	switch key {
	case "utf-8":
		return Charset{Name: key, Encoding: unicode.UTF8, utf8Family: true}, true
	case "utf-8-sig":
		return Charset{Name: key, Encoding: unicode.UTF8BOM, utf8Family: true}, true
	}

	enc, err := ianaindex.IANA.Encoding(key)
	if err != nil || enc == nil {
		enc, err = htmlindex.Get(key)
	}
	if err != nil || enc == nil {
		return Charset{}, false
	}
	return Charset{Name: key, Encoding: enc}, true
}

// Decode converts raw file content to UTF-8. For the UTF-8 family a leading
// byte order mark is dropped and invalid byte sequences are an error rather
// than being replaced.
func (c Charset) Decode(raw []byte) ([]byte, error) {
	if c.utf8Family {
		raw = bytes.TrimPrefix(raw, utf8BOM)
		if !utf8.Valid(raw) {
			return nil, models.NewKindError(models.ErrDecode,
				fmt.Errorf("input is not valid %s (offset %d)", c.Name, invalidOffset(raw)))
		}
		return raw, nil
	}
	out, err := c.NewDecoder().Bytes(raw)
	if err != nil {
		return nil, models.NewKindError(models.ErrDecode, fmt.Errorf("decode %s: %w", c.Name, err))
	}
	// Multi-byte decoders substitute U+FFFD for invalid sequences without
	// failing. The text is only genuine if it encodes back to the input.
	if bytes.ContainsRune(out, utf8.RuneError) {
		if back, err := c.NewEncoder().Bytes(out); err != nil || !bytes.Equal(back, raw) {
			return nil, models.NewKindError(models.ErrDecode,
				fmt.Errorf("input is not valid %s (offset %d)", c.Name, replacementOffset(out)))
		}
	}
	return out, nil
}

// Encode converts UTF-8 text to the charset. A character the charset
// cannot represent is an error naming that character.
func (c Charset) Encode(text []byte) ([]byte, error) {
	out, err := c.NewEncoder().Bytes(text)
	if err == nil {
		return out, nil
	}
	for _, r := range string(text) {
		if _, rerr := c.NewEncoder().String(string(r)); rerr != nil {
			return nil, models.NewKindError(models.ErrEncoding,
				fmt.Errorf("character %q cannot be represented in %s: %w", r, c.Name, rerr))
		}
	}
	return nil, models.NewKindError(models.ErrEncoding, fmt.Errorf("encode %s: %w", c.Name, err))
}

// replacementOffset returns the byte offset of the first U+FFFD in decoded text.
func replacementOffset(b []byte) int {
	return bytes.IndexRune(b, utf8.RuneError)
}

func invalidOffset(b []byte) int {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return -1
}
