// SPDX-License-Identifier: MIT

package rawio

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/katalvlaran/lvchoice/field"
)

// valueSize is the byte width of one stored value.
const valueSize = 8

var (
	// ErrTruncated indicates the stream ended before shape.Size() values were read.
	ErrTruncated = errors.New("rawio: truncated data")

	// ErrSizeMismatch indicates a file whose byte length does not fit the shape.
	ErrSizeMismatch = errors.New("rawio: file size does not match shape")
)

// byteOrder is the on-disk order of every value.
var byteOrder = binary.LittleEndian

// Read decodes shape.Size() values from r. Trailing bytes are left unread.
func Read(r io.Reader, shape field.Shape) (*field.Field, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	data := make([]float64, shape.Size())
	if err := binary.Read(r, byteOrder, data); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("want %d values: %w", len(data), ErrTruncated)
		}

		return nil, err
	}

	return field.Wrap(shape, data)
}

// Write encodes f to w.
func Write(w io.Writer, f *field.Field) error {
	if f == nil {
		return field.ErrNilField
	}

	return binary.Write(w, byteOrder, f.Raw())
}

// ReadFile reads a field of the given shape; the file must hold exactly
// shape.Size() values.
func ReadFile(path string, shape field.Shape) (*field.Field, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	fh, size, err := open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	if size%valueSize != 0 || size/valueSize != int64(shape.Size()) {
		return nil, fmt.Errorf("%s: %d bytes for %s: %w", path, size, shape, ErrSizeMismatch)
	}
	f, err := Read(bufio.NewReader(fh), shape)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// ReadFlatFile reads a whole file as a vector, its length taken from the
// file size.
func ReadFlatFile(path string) (*field.Field, error) {
	size, err := fileSize(path)
	if err != nil {
		return nil, err
	}
	if size == 0 || size%valueSize != 0 {
		return nil, fmt.Errorf("%s: %d bytes: %w", path, size, ErrSizeMismatch)
	}

	return ReadFile(path, field.Vector(int(size/valueSize)))
}

// ReadSquareFile reads a whole file as an n×n matrix, n inferred from the
// file size.
func ReadSquareFile(path string) (*field.Field, error) {
	size, err := fileSize(path)
	if err != nil {
		return nil, err
	}
	count := size / valueSize
	n := int64(math.Sqrt(float64(count)))
	for n*n < count {
		n++
	}
	if size == 0 || size%valueSize != 0 || n*n != count {
		return nil, fmt.Errorf("%s: %d bytes is not a square matrix: %w", path, size, ErrSizeMismatch)
	}

	return ReadFile(path, field.Square(int(n)))
}

// WriteFile writes f to path, replacing any existing file.
func WriteFile(path string, f *field.Field) error {
	if f == nil {
		return field.ErrNilField
	}
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(fh)
	if err = Write(bw, f); err != nil {
		_ = fh.Close()

		return fmt.Errorf("%s: %w", path, err)
	}
	if err = bw.Flush(); err != nil {
		_ = fh.Close()

		return fmt.Errorf("%s: %w", path, err)
	}

	return fh.Close()
}

// open opens path and reports its size.
func open(path string) (*os.File, int64, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	info, err := fh.Stat()
	if err != nil {
		_ = fh.Close()

		return nil, 0, err
	}

	return fh, info.Size(), nil
}

// fileSize reports the byte length of path.
func fileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}

	return info.Size(), nil
}
