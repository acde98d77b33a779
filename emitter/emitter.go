package emitter

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/arrowmaze/move"
)

// Format renders path as a single string.
func Format(path []move.Move, opts ...Option) string {
	var sb strings.Builder
	_ = write(&sb, path, build(opts))

	return sb.String()
}

// Write streams path to w.
func Write(w io.Writer, path []move.Move, opts ...Option) error {
	bw := bufio.NewWriter(w)
	if err := write(bw, path, build(opts)); err != nil {
		return fmt.Errorf("%w: %w", ErrSinkUnavailable, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrSinkUnavailable, err)
	}

	return nil
}

// WriteFile creates or truncates name and writes path into it.
func WriteFile(name string, path []move.Move, opts ...Option) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSinkUnavailable, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %w", ErrSinkUnavailable, cerr)
		}
	}()

	return Write(f, path, opts...)
}

func build(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

func write(w io.StringWriter, path []move.Move, o Options) error {
	first := true
	for _, m := range path {
		if m.IsEmpty() {
			continue
		}
		if !first && !o.TrailingSeparator {
			if _, err := w.WriteString(o.Separator); err != nil {
				return err
			}
		}
		first = false
		if _, err := w.WriteString(m.Token(o.Magnitude)); err != nil {
			return err
		}
		if o.TrailingSeparator {
			if _, err := w.WriteString(o.Separator); err != nil {
				return err
			}
		}
	}

	return nil
}
