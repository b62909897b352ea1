/*
File    : slcc/file/file.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package file implements the compiler's file I/O: reading a source file
// from disk and writing the generated C translation unit back out.
package file

import (
	"fmt"
	"os"
)

// ReadSource reads the source file at path and returns its contents.
func ReadSource(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("could not read file '%s': %w", path, err)
	}
	return string(content), nil
}

// WriteOutput writes the generated C source to path, creating or truncating
// it as needed.
func WriteOutput(path string, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("could not write file '%s': %w", path, err)
	}
	return nil
}
