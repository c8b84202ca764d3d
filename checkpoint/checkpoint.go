// Package checkpoint decorates errors with the location they passed through, which
// results in something similar to a stacktrace when printed.
// Both the decorated error and the decoration can still be matched by errors.Is and
// errors.As.
package checkpoint

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"strings"
)

// From wraps err into a checkpoint at the location of the caller.
// It returns nil if err is nil. io.EOF and io.ErrUnexpectedEOF are returned as they are,
// because callers compare them with ==.
func From(err error) error {
	if err == nil || err == io.EOF || err == io.ErrUnexpectedEOF {
		return err
	}

	return newCheckpoint(err, nil)
}

// Wrap adds a checkpoint to prev which is further described by err.
// It returns nil if prev is nil and prev itself if it is io.EOF.
//
// This allows to return predefined errors while keeping the cause:
//  var ErrReadDir = errors.New("could not read the directory")
//
//  func readDir() error {
//  	err := decode()
//  	return checkpoint.Wrap(err, ErrReadDir)
//  }
// errors.Is(err, ErrReadDir) is true for the result and so is errors.Is for
// whatever decode returned.
func Wrap(prev, err error) error {
	if prev == nil || prev == io.EOF {
		return prev
	}

	return newCheckpoint(prev, err)
}

type checkpoint struct {
	cause error
	err   error

	location string
}

func newCheckpoint(cause, err error) *checkpoint {
	// Skip newCheckpoint and the exported function.
	_, file, line, ok := runtime.Caller(2)

	location := "unknown"
	if ok {
		location = fmt.Sprintf("%s:%d", filepath.Base(file), line)
	}

	return &checkpoint{
		cause:    cause,
		err:      err,
		location: location,
	}
}

func (c *checkpoint) Error() string {
	cause := c.cause.Error()
	if _, ok := c.cause.(*checkpoint); !ok {
		cause = "File: unknown\n\t" + strings.ReplaceAll(cause, "\n", "\n\t")
	}

	if c.err == nil {
		return fmt.Sprintf("File: %s\n%v", c.location, cause)
	}
	return fmt.Sprintf("File: %s\n\t%v\n%v", c.location, c.err, cause)
}

func (c *checkpoint) Unwrap() error {
	return c.cause
}

func (c *checkpoint) Is(target error) bool {
	return c.err != nil && errors.Is(c.err, target)
}

func (c *checkpoint) As(target interface{}) bool {
	return c.err != nil && errors.As(c.err, target)
}
