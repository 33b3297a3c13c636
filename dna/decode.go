package dna

import (
	"bufio"
	"fmt"
	"io"

	"github.com/shicks/endo/base"
)

// DecodeStream reads a whitespace-tolerant stream of I/C/F/P
// characters from r into bases built by factory, tagging each with
// its position in the stream (ignored by base.PlainFactory). Spaces
// and newlines are skipped; any other byte is rejected.
func DecodeStream(r io.Reader, factory base.Factory) ([]base.Base, error) {
	br := bufio.NewReader(r)
	var out []base.Base
	pos := 0
	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		switch b {
		case ' ', '\n':
			continue
		}
		sym, ok := base.SymbolFromByte(b)
		if !ok {
			return nil, fmt.Errorf("dna: invalid byte %q at stream offset %d", b, pos)
		}
		out = append(out, factory.FromSymbolPos(sym, pos))
		pos++
	}
}
