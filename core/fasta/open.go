// core/fasta/open.go
package fasta

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"strings"
)

// stackedCloser closes the decompressor before the file underneath it.
type stackedCloser struct {
	io.Reader
	closers []io.Closer
}

func (s *stackedCloser) Close() error {
	var err error
	for _, c := range s.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// openReader opens path ("-" = stdin) and transparently gunzips it when the
// stream starts with the gzip magic (1F 8B) or the name ends in ".gz".
// Sniffing goes through a bufio.Reader so pipes work as well as files.
func openReader(path string) (io.ReadCloser, error) {
	var (
		src    io.Reader
		closer io.Closer
	)
	if path == "-" {
		src, closer = os.Stdin, io.NopCloser(nil)
	} else {
		fh, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		src, closer = fh, fh
	}

	br := bufio.NewReaderSize(src, 64<<10)
	sig, _ := br.Peek(2)
	isGz := len(sig) == 2 && sig[0] == 0x1f && sig[1] == 0x8b
	if isGz || (strings.HasSuffix(path, ".gz") && len(sig) > 0) {
		gr, err := gzip.NewReader(br)
		if err != nil {
			_ = closer.Close()
			return nil, err
		}
		return &stackedCloser{Reader: gr, closers: []io.Closer{gr, closer}}, nil
	}
	return &stackedCloser{Reader: br, closers: []io.Closer{closer}}, nil
}
