// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Package icons generates square icon sets from a single source image.

A source image is resized to every size in Config.Sizes with a Lanczos
filter, and each result is saved as a PNG file named by its dimensions:

	icons/icon-72x72.png
	icons/icon-96x96.png
	...
	icons/icon-512x512.png

Outputs are always exactly size×size pixels. The aspect ratio of a
non-square source is not preserved.
*/
package icons

import (
	"context"
	"errors"
	"fmt"
	"image"
	"iter"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"go.astrophena.name/iconset/internal/logger"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // register WebP decoder
)

// Possible errors. Errors returned by Generate wrap one of them together with
// the underlying cause.
var (
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrInputDecode   = errors.New("failed to decode input image")
	ErrDirCreate     = errors.New("failed to create output directory")
	ErrOutputWrite   = errors.New("failed to write icon")
)

// DefaultSizes are the icon sizes a web app manifest usually asks for.
var DefaultSizes = []int{72, 96, 128, 144, 152, 192, 384, 512}

// Defaults for Config.
var (
	DefaultInput = filepath.Join("icons", "icon.png")
	DefaultDir   = "icons"
)

// Config configures the icon generation.
type Config struct {
	// Input is a path to the source image. If empty, DefaultInput is used.
	Input string
	// Dir is a directory where icons are written. It's created if it doesn't
	// exist. If empty, DefaultDir is used.
	Dir string
	// Sizes are the icon sizes to generate, in order. If nil, DefaultSizes is
	// used.
	Sizes []int
	// Logf is a logger to use. If nil, log.Printf is used.
	Logf logger.Logf
}

func (c *Config) setDefaults() {
	if c.Input == "" {
		c.Input = DefaultInput
	}
	if c.Dir == "" {
		c.Dir = DefaultDir
	}
	if c.Sizes == nil {
		c.Sizes = slices.Clone(DefaultSizes)
	}
	if c.Logf == nil {
		c.Logf = logger.Logf(log.Printf)
	}
}

func (c *Config) validate() error {
	if len(c.Sizes) == 0 {
		return fmt.Errorf("%w: no sizes", ErrInvalidConfig)
	}
	seen := make(map[int]bool, len(c.Sizes))
	for _, size := range c.Sizes {
		if size <= 0 {
			return fmt.Errorf("%w: size %d is not positive", ErrInvalidConfig, size)
		}
		if seen[size] {
			return fmt.Errorf("%w: duplicate size %d", ErrInvalidConfig, size)
		}
		seen[size] = true
	}
	return nil
}

// Filename returns the name of the icon file for size.
func Filename(size int) string {
	s := strconv.Itoa(size)
	return "icon-" + s + "x" + s + ".png"
}

// Icons returns a sequence of icon sizes paired with their output paths, in
// the order of c.Sizes.
func (c *Config) Icons() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for _, size := range c.Sizes {
			if !yield(size, filepath.Join(c.Dir, Filename(size))) {
				return
			}
		}
	}
}

// Generate creates the output directory, decodes the source image and writes
// an icon for each configured size.
//
// Generate stops at the first error. Icons written before the error are left
// in place.
func Generate(ctx context.Context, c *Config) error {
	c.setDefaults()
	if err := c.validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(c.Dir, 0o755); err != nil {
		return fmt.Errorf("%w %s: %w", ErrDirCreate, c.Dir, err)
	}

	src, err := Decode(c.Input)
	if err != nil {
		return err
	}
	c.checkSource(src)

	var n int
	for size, path := range c.Icons() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := writeIcon(path, Resize(src, size)); err != nil {
			return fmt.Errorf("%w %s: %w", ErrOutputWrite, path, err)
		}
		c.Logf("generated %s", path)
		n++
	}

	c.Logf("generated %d icons in %s", n, c.Dir)
	return nil
}

// Decode reads the image at path. Pixels are taken as stored; EXIF
// orientation is ignored.
func Decode(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrInputDecode, path, err)
	}
	return img, nil
}

// Resize returns src resampled to size×size pixels with a Lanczos filter.
func Resize(src image.Image, size int) *image.NRGBA {
	return imaging.Resize(src, size, size, imaging.Lanczos)
}

func (c *Config) checkSource(src image.Image) {
	b := src.Bounds()
	if b.Dx() != b.Dy() {
		c.Logf("warning: %s is %dx%d, icons will be stretched to a square", c.Input, b.Dx(), b.Dy())
	}
	if largest := slices.Max(c.Sizes); largest > min(b.Dx(), b.Dy()) {
		c.Logf("warning: %s is smaller than %dx%d, icons will be upscaled", c.Input, largest, largest)
	}
}

func writeIcon(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return imaging.Encode(f, img, imaging.PNG)
}
