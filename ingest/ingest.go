// Package ingest reads the text and known-word files, decoding legacy
// Japanese encodings to UTF-8.
package ingest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

// ErrEncoding reports an unsupported encoding name.
var ErrEncoding = errors.New("unsupported encoding")

var bom = []byte{0xEF, 0xBB, 0xBF}

func lookup(name string) (encoding.Encoding, error) {
	switch strings.ToLower(name) {
	case "", "utf-8", "utf8":
		return nil, nil
	case "shift_jis", "sjis":
		return japanese.ShiftJIS, nil
	case "euc-jp":
		return japanese.EUCJP, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrEncoding, name)
	}
}

// NewReader wraps r so that it yields UTF-8 with any byte order mark removed.
func NewReader(r io.Reader, enc string) (io.Reader, error) {
	e, err := lookup(enc)
	if err != nil {
		return nil, err
	}
	if e != nil {
		r = transform.NewReader(r, e.NewDecoder())
	}
	return &bomSkipper{r: r}, nil
}

// ReadFile returns the decoded contents of path.
func ReadFile(path, enc string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	r, err := NewReader(f, enc)
	if err != nil {
		return "", err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", path, err)
	}
	return string(data), nil
}

// Open returns a decoding reader over path. The caller closes the file.
func Open(path, enc string) (io.Reader, io.Closer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	r, err := NewReader(f, enc)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return r, f, nil
}

type bomSkipper struct {
	r       io.Reader
	checked bool
	pending []byte
}

func (b *bomSkipper) Read(p []byte) (int, error) {
	if !b.checked {
		b.checked = true
		head := make([]byte, len(bom))
		n, err := io.ReadFull(b.r, head)
		head = head[:n]
		if !bytes.Equal(head, bom) {
			b.pending = head
		}
		if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
			return 0, err
		}
	}
	if len(b.pending) > 0 {
		n := copy(p, b.pending)
		b.pending = b.pending[n:]
		return n, nil
	}
	return b.r.Read(p)
}
