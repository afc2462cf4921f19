package codec

import (
	"compress/gzip"
	"io"
)

// GzipCodec compresses and decompresses lexicon sources.
type GzipCodec struct {
	r io.Reader
	w io.Writer
}

func NewGzipCodec() *GzipCodec {
	return &GzipCodec{}
}

func (gc *GzipCodec) BindR(r io.Reader) {
	gc.r = r
}
func (gc *GzipCodec) BindW(w io.Writer) {
	gc.w = w
}

// Encode writes b compressed to the bound writer and returns the number of
// compressed bytes written.
func (gc *GzipCodec) Encode(b []byte) (int64, error) {
	cw := NewCountWriter(gc.w)
	w := gzip.NewWriter(cw)
	if _, err := w.Write(b); err != nil {
		w.Close()
		return cw.Count(), err
	}
	err := w.Close()
	return cw.Count(), err
}

func (gc *GzipCodec) Decode() ([]byte, error) {
	r, err := gc.Reader()
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return io.ReadAll(r)
}

// Reader streams the decompressed content of the bound reader.
func (gc *GzipCodec) Reader() (io.ReadCloser, error) {
	return gzip.NewReader(gc.r)
}
