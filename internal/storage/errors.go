package storage

import "fmt"

// FileError signals that the storage location could not be read or written.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("failed accessing %s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

// ParseError signals that the durable content is not a valid todo collection.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed parsing %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// SerializeError signals that the in-memory collection could not be encoded.
// Not expected for well-formed todos; part of the contract for completeness.
type SerializeError struct {
	Err error
}

func (e *SerializeError) Error() string {
	return fmt.Sprintf("failed serializing todos: %v", e.Err)
}

func (e *SerializeError) Unwrap() error { return e.Err }
