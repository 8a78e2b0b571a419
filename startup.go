package main

import (
	"fmt"
	"os"

	"github.com/olivier-w/spiralmatrix/internal/config"
	"github.com/olivier-w/spiralmatrix/internal/gallery"
)

// resolveImages returns the refs to place on the grid: the images in
// cfg.Images when set, generated swatches otherwise.
func resolveImages(cfg config.Config) ([]string, error) {
	if cfg.Images == "" {
		return gallery.Swatches(cfg.Swatches), nil
	}
	info, err := os.Stat(cfg.Images)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", cfg.Images)
	}
	return gallery.Scan(cfg.Images)
}
