package main

import (
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

const maxLogSize = 10 * 1024 * 1024

// setupLogging sends the standard logger to path when debug is set and
// discards it otherwise. A log grown past maxLogSize is moved aside first.
func setupLogging(debug bool, path string) (*os.File, error) {
	if !debug {
		log.SetOutput(io.Discard)
		return nil, nil
	}
	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		if err := os.Rename(path, path+".old"); err != nil {
			return nil, err
		}
	}
	f, err := tea.LogToFile(path, "spiralmatrix")
	if err != nil {
		log.SetOutput(io.Discard)
		return nil, err
	}
	return f, nil
}
