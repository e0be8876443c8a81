package rowio

import (
	"bytes"
	"io"
	"os"

	"github.com/ulikunitz/xz"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	utf8BOM = []byte{0xEF, 0xBB, 0xBF}
	xzMagic = []byte{0xFD, '7', 'z', 'X', 'Z', 0x00}
)

// NewReaderFile reads the whole file at path into a Reader. Files carrying
// the XZ magic are decompressed first. Content with a UTF-16 byte-order
// mark is transcoded to UTF-8; a UTF-8 BOM is stripped. OS errors from
// opening or reading pass through unchanged.
func NewReaderFile(path string) (*Reader, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if bytes.HasPrefix(data, xzMagic) {
		r, err := xz.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		if data, err = io.ReadAll(r); err != nil {
			return nil, err
		}
	}
	if isUTF16(data) {
		dec := unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder()
		data, _, err = transform.Bytes(dec, data)
		if err != nil {
			return nil, err
		}
	} else {
		data = bytes.TrimPrefix(data, utf8BOM)
	}
	return NewReaderBytes(data), nil
}

func isUTF16(data []byte) bool {
	return len(data) >= 2 &&
		((data[0] == 0xFF && data[1] == 0xFE) || (data[0] == 0xFE && data[1] == 0xFF))
}

// WriteFile stores the buffered rows at path in one write. OS errors pass
// through unchanged.
func (w *Writer) WriteFile(path string) error {
	return os.WriteFile(path, w.buf, 0644)
}
