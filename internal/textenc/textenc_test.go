package textenc_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/dhruvbhat/kagaz/internal/textenc"
)

func readAll(t *testing.T, r io.Reader) string {
	t.Helper()

	b, err := io.ReadAll(r)
	require.NoError(t, err)

	return string(b)
}

func TestUTF8Reader_PlainUTF8(t *testing.T) {
	r, err := textenc.UTF8Reader(strings.NewReader("Mehtä Stores, Pune"))
	require.NoError(t, err)
	assert.Equal(t, "Mehtä Stores, Pune", readAll(t, r))
}

func TestUTF8Reader_StripsUTF8BOM(t *testing.T) {
	in := append([]byte{0xEF, 0xBB, 0xBF}, []byte("name,phone")...)

	r, err := textenc.UTF8Reader(bytes.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, "name,phone", readAll(t, r))
}

func TestUTF8Reader_UTF16LE(t *testing.T) {
	enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
	in, err := enc.Bytes([]byte("José,98"))
	require.NoError(t, err)

	r, err := textenc.UTF8Reader(bytes.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, "José,98", readAll(t, r))
}

func TestUTF8Reader_Windows1252(t *testing.T) {
	enc := charmap.Windows1252.NewEncoder()
	in, err := enc.Bytes([]byte("Café Olé"))
	require.NoError(t, err)

	r, err := textenc.UTF8Reader(bytes.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, "Café Olé", readAll(t, r))
}
