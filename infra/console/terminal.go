// Package console implements the core console interfaces on top of io
// readers and writers.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Reader reads operator input line by line.
type Reader struct {
	r *bufio.Reader
}

// NewReader wraps r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// ReadLine implements console.Input. A final line without terminator is
// returned before io.EOF.
func (r *Reader) ReadLine() (string, error) {
	line, err := r.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ReadKey implements console.Input. In a cooked terminal the key is only
// delivered once the line is submitted.
func (r *Reader) ReadKey() error {
	_, _, err := r.r.ReadRune()
	return err
}

// Writer writes display text to an io.Writer. Write errors are dropped since
// the display is best effort.
type Writer struct {
	w io.Writer
}

// NewWriter wraps w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Printf implements console.Output.
func (w *Writer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(w.w, format, args...)
}

// Println implements console.Output.
func (w *Writer) Println(args ...any) {
	_, _ = fmt.Fprintln(w.w, args...)
}
