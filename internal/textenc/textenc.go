// Package textenc normalizes uploaded text files to UTF-8. Customer lists
// exported from spreadsheets and legacy POS systems arrive in whatever
// encoding the exporting tool felt like, most often Windows-1252.
package textenc

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const sniffLen = 4096

// UTF8Reader wraps r so its content reads as UTF-8, detecting the source
// encoding from a BOM, UTF-8 validity, or a chardet heuristic, in that
// order. Undetectable input falls back to Windows-1252.
func UTF8Reader(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)

	head, err := br.Peek(sniffLen)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("sniffing encoding: %w", err)
	}

	dec, skip := bomDecoder(head)
	if skip > 0 {
		_, _ = br.Discard(skip)
		return br, nil
	}

	if dec != nil {
		return transform.NewReader(br, dec.NewDecoder()), nil
	}

	if utf8.Valid(head) {
		return br, nil
	}

	if enc := detect(head); enc != nil {
		return transform.NewReader(br, enc.NewDecoder()), nil
	}

	return transform.NewReader(br, charmap.Windows1252.NewDecoder()), nil
}

// bomDecoder inspects a byte-order mark. A UTF-8 BOM is stripped without
// decoding (nil encoding, positive skip); UTF-16 BOMs select a decoder.
func bomDecoder(head []byte) (encoding.Encoding, int) {
	switch {
	case bytes.HasPrefix(head, []byte{0xEF, 0xBB, 0xBF}):
		return nil, 3
	case bytes.HasPrefix(head, []byte{0xFF, 0xFE}):
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM), 0
	case bytes.HasPrefix(head, []byte{0xFE, 0xFF}):
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM), 0
	default:
		return nil, 0
	}
}

func detect(head []byte) encoding.Encoding {
	best, err := chardet.NewTextDetector().DetectBest(head)
	if err != nil {
		return nil
	}

	switch best.Charset {
	case "ISO-8859-1", "windows-1252":
		return charmap.Windows1252
	case "ISO-8859-15":
		return charmap.ISO8859_15
	default:
		return nil
	}
}
