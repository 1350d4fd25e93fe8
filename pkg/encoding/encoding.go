// Package encoding turns the raw byte strings found in imported scenes
// into UTF-8. Exporters from CJK locales often write node and material
// names in a legacy code page such as EUC-KR or Shift_JIS.
package encoding

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	textencoding "golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// Lookup returns the encoding registered under a WHATWG label such as
// "euc-kr", "shift_jis", "gbk" or "windows-1252".
func Lookup(label string) (textencoding.Encoding, error) {
	enc, err := htmlindex.Get(strings.TrimSpace(label))
	if err != nil {
		return nil, fmt.Errorf("unknown text encoding %q: %w", label, err)
	}
	return enc, nil
}

// Decode converts data from enc to UTF-8.
func Decode(data []byte, enc textencoding.Encoding) (string, error) {
	result, _, err := transform.Bytes(enc.NewDecoder(), data)
	if err != nil {
		return "", err
	}
	return string(result), nil
}

// ToUTF8 returns data as a string, decoding it from fallback when it is
// not already valid UTF-8. Bytes that still cannot be decoded become
// U+FFFD. A nil fallback skips decoding.
func ToUTF8(data []byte, fallback textencoding.Encoding) string {
	if utf8.Valid(data) {
		return string(data)
	}
	if fallback != nil {
		if s, err := Decode(data, fallback); err == nil && utf8.ValidString(s) {
			return s
		}
	}
	return strings.ToValidUTF8(string(data), "\uFFFD")
}

// Encode converts UTF-8 text to enc. Returns the original bytes if
// conversion fails.
func Encode(s string, enc textencoding.Encoding) []byte {
	result, _, err := transform.Bytes(enc.NewEncoder(), []byte(s))
	if err != nil {
		return []byte(s)
	}
	return result
}

// FixedString cuts a fixed-size, NUL-padded buffer at its first NUL.
func FixedString(data []byte) []byte {
	if i := bytes.IndexByte(data, 0); i >= 0 {
		return data[:i]
	}
	return data
}
