// Package images recompresses JPEG files in place to reclaim disk space.
// Files are only rewritten when the re-encoded version is actually smaller,
// so repeated runs do not degrade quality further.
package images

import (
	"bytes"
	"image"
	"image/jpeg"
	_ "image/png" // some vaults carry PNG data behind a .jpg name
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/mdvault/mdvault/pkg/logger"
)

// CompressOptions controls a compression sweep.
type CompressOptions struct {
	Quality   int // JPEG quality 1-100
	MinSizeKB int // files below this size are skipped
}

// DefaultQuality is the JPEG quality used when none is configured.
const DefaultQuality = 85

// DefaultMinSizeKB is the skip threshold used when none is configured.
const DefaultMinSizeKB = 100

// FileResult describes what happened to one file during a sweep.
type FileResult struct {
	Path         string
	OriginalSize int64
	NewSize      int64
	Skipped      bool
	SkipReason   string
}

// CompressResult aggregates a whole sweep.
type CompressResult struct {
	Found     int
	Processed int
	Skipped   int
	Files     []FileResult

	OriginalBytes int64
	NewBytes      int64
}

// Compress walks root for .jpg/.jpeg files and re-encodes each at
// opts.Quality, overwriting the file only when that shrinks it. Files
// smaller than opts.MinSizeKB are skipped, as are files whose re-encoding
// would not save anything. Decode and write failures are aggregated; the
// sweep continues past them.
func Compress(root string, opts CompressOptions) (*CompressResult, error) {
	if opts.Quality < 1 || opts.Quality > 100 {
		return nil, errors.Errorf("quality must be between 1 and 100, got %d", opts.Quality)
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot access directory %s", root)
	}
	if !info.IsDir() {
		return nil, errors.Errorf("%s is not a directory", root)
	}

	result := &CompressResult{}
	var sweepErrs *multierror.Error
	minBytes := int64(opts.MinSizeKB) * 1024

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			sweepErrs = multierror.Append(sweepErrs, err)
			return nil
		}
		if d.IsDir() || !isJPEG(path) {
			return nil
		}

		result.Found++

		fi, err := d.Info()
		if err != nil {
			sweepErrs = multierror.Append(sweepErrs, errors.Wrapf(err, "stat %s", path))
			return nil
		}

		if fi.Size() < minBytes {
			result.Skipped++
			result.Files = append(result.Files, FileResult{
				Path:         path,
				OriginalSize: fi.Size(),
				Skipped:      true,
				SkipReason:   "below minimum size",
			})
			return nil
		}

		fr, err := compressFile(path, fi.Size(), opts.Quality)
		if err != nil {
			sweepErrs = multierror.Append(sweepErrs, errors.Wrapf(err, "processing %s", path))
			return nil
		}

		if fr.Skipped {
			result.Skipped++
		} else {
			result.Processed++
			result.OriginalBytes += fr.OriginalSize
			result.NewBytes += fr.NewSize
		}
		result.Files = append(result.Files, fr)
		return nil
	})
	if walkErr != nil {
		sweepErrs = multierror.Append(sweepErrs, walkErr)
	}

	return result, sweepErrs.ErrorOrNil()
}

func compressFile(path string, originalSize int64, quality int) (FileResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return FileResult{}, err
	}

	img, format, err := image.Decode(f)
	f.Close()
	if err != nil {
		return FileResult{}, errors.Wrap(err, "decoding image")
	}
	logger.L.WithField("path", path).WithField("format", format).Debug("decoded image")

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return FileResult{}, errors.Wrap(err, "encoding jpeg")
	}

	if int64(buf.Len()) >= originalSize {
		return FileResult{
			Path:         path,
			OriginalSize: originalSize,
			Skipped:      true,
			SkipReason:   "no size improvement",
		}, nil
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return FileResult{}, errors.Wrap(err, "writing compressed image")
	}

	return FileResult{
		Path:         path,
		OriginalSize: originalSize,
		NewSize:      int64(buf.Len()),
	}, nil
}

func isJPEG(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return true
	}
	return false
}
