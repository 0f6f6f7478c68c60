// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package imagex reads and writes image files for bitmap stimuli and
// frame captures.
package imagex

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Formats are the supported image encoding / decoding formats
type Formats int32

// The supported image encoding formats
const (
	None Formats = iota
	PNG
	JPEG
	GIF
	TIFF
	BMP
	WebP
)

var formatNames = []string{"none", "png", "jpeg", "gif", "tiff", "bmp", "webp"}

func (f Formats) String() string {
	if f >= 0 && int(f) < len(formatNames) {
		return formatNames[f]
	}
	return "none"
}

// ErrNotImage is returned for files whose content is not a
// supported image.
var ErrNotImage = errors.New("imagex: not a supported image")

// ExtToFormat returns a Format based on a filename extension,
// which can start with a . or not
func ExtToFormat(ext string) (Formats, error) {
	if len(ext) == 0 {
		return None, errors.New("ExtToFormat: ext is empty")
	}
	if ext[0] == '.' {
		ext = ext[1:]
	}
	ext = strings.ToLower(ext)
	switch ext {
	case "png":
		return PNG, nil
	case "jpg", "jpeg":
		return JPEG, nil
	case "gif":
		return GIF, nil
	case "tif", "tiff":
		return TIFF, nil
	case "bmp":
		return BMP, nil
	case "webp":
		return WebP, nil
	}
	return None, fmt.Errorf("ExtToFormat: extension %q not recognized", ext)
}

// Sniff returns the format of encoded image data from its leading
// bytes, regardless of any file name.
func Sniff(head []byte) (Formats, error) {
	kind, err := filetype.Image(head)
	if err != nil || kind == filetype.Unknown {
		return None, ErrNotImage
	}
	f, err := ExtToFormat(kind.Extension)
	if err != nil {
		return None, fmt.Errorf("%w: %s", ErrNotImage, kind.MIME.Value)
	}
	return f, nil
}

// Open opens an image from the given filename. The content is sniffed
// before decoding, so files that are not images are rejected with
// [ErrNotImage] whatever their extension.
// png, jpeg, gif, tiff, bmp, and webp are supported.
func Open(filename string) (image.Image, Formats, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, None, err
	}
	defer file.Close()
	return Read(file)
}

// Read reads an image from the given reader, sniffing its format.
func Read(r io.Reader) (image.Image, Formats, error) {
	br := bufio.NewReader(r)
	head, _ := br.Peek(262)
	f, err := Sniff(head)
	if err != nil {
		return nil, None, err
	}
	im, _, err := image.Decode(br)
	if err != nil {
		return nil, f, err
	}
	return im, f, nil
}

// Save saves the image to the given filename,
// with the format inferred from the filename.
// png, jpeg, gif, tiff, and bmp are supported.
func Save(im image.Image, filename string) error {
	ext := filepath.Ext(filename)
	f, err := ExtToFormat(ext)
	if err != nil {
		return err
	}
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	bw := bufio.NewWriter(file)
	if err := Write(im, bw, f); err != nil {
		return err
	}
	return bw.Flush()
}

// Write writes the image to the given writer using the given format.
// png, jpeg, gif, tiff, and bmp are supported.
func Write(im image.Image, w io.Writer, f Formats) error {
	switch f {
	case PNG:
		return png.Encode(w, im)
	case JPEG:
		return jpeg.Encode(w, im, &jpeg.Options{Quality: 90})
	case GIF:
		return gif.Encode(w, im, nil)
	case TIFF:
		return tiff.Encode(w, im, nil)
	case BMP:
		return bmp.Encode(w, im)
	default:
		return fmt.Errorf("imagex.Write: format %q not valid", f)
	}
}
