package internal

import (
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
	"golang.org/x/text/transform"
)

// encodings maps encoding names to decoders of program source. A nil entry
// means the source is used as is.
var encodings = map[string]encoding.Encoding{
	"":        nil,
	"utf8":    nil,
	"utf-8":   nil,
	"latin1":  charmap.Windows1252,
	"ascii":   charmap.Windows1252,
	"utf16":   unicode.UTF16(unicode.LittleEndian, unicode.UseBOM),
	"utf16le": unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
	"utf16be": unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
	"utf32":   utf32.UTF32(utf32.LittleEndian, utf32.UseBOM),
	"utf32le": utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM),
	"utf32be": utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM),
}

// KnownEncoding returns whether name is a source encoding DecodeSource
// accepts. Names are case-insensitive.
func KnownEncoding(name string) bool {
	_, ok := encodings[strings.ToLower(name)]
	return ok
}

// DecodeSource wraps r so that it yields UTF-8 text from source in the named
// encoding. The 16- and 32-bit encodings without an explicit byte order
// honor a byte order mark and default to little endian.
func DecodeSource(r io.Reader, name string) (io.Reader, error) {
	enc, ok := encodings[strings.ToLower(name)]
	if !ok {
		return nil, NewErrorf(ConfigError, "unknown encoding %q", name)
	}
	if enc == nil {
		return r, nil
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}
