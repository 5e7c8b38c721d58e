package mgf

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"github.com/paretje/mzdata/pkg/types"
)

// lineDecoder converts raw line bytes to UTF-8 text. A nil decoder means
// the input is already UTF-8 and is used as is.
type lineDecoder struct {
	dec *encoding.Decoder
}

func newLineDecoder(name string) (*lineDecoder, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "", types.EncodingUTF8, "UTF8":
		return &lineDecoder{}, nil
	case types.EncodingLatin1, "LATIN1", "LATIN-1", "ISO8859-1":
		return &lineDecoder{dec: charmap.ISO8859_1.NewDecoder()}, nil
	case types.EncodingWindows1252, "CP1252":
		return &lineDecoder{dec: charmap.Windows1252.NewDecoder()}, nil
	default:
		return nil, types.NewError(types.ErrKindUnsupported,
			fmt.Sprintf("mgf: unsupported encoding %q", name), -1, nil)
	}
}

// decode returns the UTF-8 text of raw. atStart strips a UTF-8 byte order
// mark from the first line of a file.
func (d *lineDecoder) decode(raw []byte, atStart bool) (string, error) {
	if atStart && bytes.HasPrefix(raw, []byte(utf8BOM)) {
		raw = raw[len(utf8BOM):]
	}
	if d.dec == nil {
		return string(raw), nil
	}
	out, err := d.dec.Bytes(raw)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
