// Package storage defines file access scoped to the project directory.
package storage

// Provider is the interface for project file operations.
type Provider interface {
	// Read returns the raw bytes of the file at path (relative to the project root).
	Read(path string) ([]byte, error)
	// Write atomically writes content to path (relative to the project root).
	Write(path string, content []byte) error
}
