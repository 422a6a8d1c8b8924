package archive

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"iter"
	"time"

	"github.com/cavaliergopher/cpio"

	"github.com/dendrascience/vshell/vfs"
)

const (
	dirMode  fs.FileMode = 0o755
	fileMode fs.FileMode = 0o644

	numLinks = 2
)

// Writer writes archive members.
type Writer interface {
	WriteDirectory(path string) error
	WriteRegular(path string, source io.Reader, size int64, mode fs.FileMode) error
	Close() error
}

// NewWriter creates a [Writer] for the given format. [FormatAuto] is not a
// valid output format.
func NewWriter(w io.Writer, format Format) (Writer, error) {
	switch format {
	case FormatTar:
		return NewTarWriter(w), nil
	case FormatCPIO:
		return NewCPIOWriter(w), nil
	case FormatZip:
		return NewZipWriter(w), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

// WriteEntries writes all entries in iteration order. Directories are
// written before their children if entries is sorted by path, as
// [vfs.Store.All] is.
func WriteEntries(w Writer, entries iter.Seq[vfs.Entry]) error {
	for entry := range entries {
		name := entry.Path().String()

		var err error
		if entry.IsDir() {
			err = w.WriteDirectory(name)
		} else {
			err = w.WriteRegular(name, bytes.NewReader(entry.Content()), entry.Size(), fileMode)
		}

		if err != nil {
			return err
		}
	}

	return nil
}

// TarWriter implements [Writer] for [tar.Writer].
type TarWriter struct {
	tarWriter *tar.Writer
	modTime   time.Time
}

// NewTarWriter creates a new tar archive writer.
func NewTarWriter(w io.Writer) *TarWriter {
	return &TarWriter{
		tarWriter: tar.NewWriter(w),
		modTime:   time.Now().Truncate(time.Second),
	}
}

// Close writes the archive trailer.
func (w *TarWriter) Close() error {
	if err := w.tarWriter.Close(); err != nil {
		return fmt.Errorf("close: %w", err)
	}

	return nil
}

// WriteDirectory adds a directory entry for the given path.
func (w *TarWriter) WriteDirectory(path string) error {
	hdr := &tar.Header{
		Typeflag: tar.TypeDir,
		Name:     path + vfs.Separator,
		Mode:     int64(dirMode),
		ModTime:  w.modTime,
	}

	if err := w.tarWriter.WriteHeader(hdr); err != nil {
		return fmt.Errorf("write header for %s: %w", path, err)
	}

	return nil
}

// WriteRegular adds a regular file with size bytes read from source.
func (w *TarWriter) WriteRegular(path string, source io.Reader, size int64, mode fs.FileMode) error {
	hdr := &tar.Header{
		Typeflag: tar.TypeReg,
		Name:     path,
		Mode:     int64(mode.Perm()),
		Size:     size,
		ModTime:  w.modTime,
	}

	if err := w.tarWriter.WriteHeader(hdr); err != nil {
		return fmt.Errorf("write header for %s: %w", path, err)
	}

	if _, err := io.Copy(w.tarWriter, source); err != nil {
		return fmt.Errorf("write body for %s: %w", path, err)
	}

	return nil
}

// CPIOWriter implements [Writer] for [cpio.Writer].
type CPIOWriter struct {
	cpioWriter *cpio.Writer
}

// NewCPIOWriter creates a new cpio archive writer.
func NewCPIOWriter(w io.Writer) *CPIOWriter {
	return &CPIOWriter{cpio.NewWriter(w)}
}

// Close writes the trailer. Flush is called by the underlying closer.
func (w *CPIOWriter) Close() error {
	if err := w.cpioWriter.Close(); err != nil {
		return fmt.Errorf("close: %w", err)
	}

	return nil
}

func (w *CPIOWriter) writeHeader(hdr *cpio.Header) error {
	if err := w.cpioWriter.WriteHeader(hdr); err != nil {
		return fmt.Errorf("write header for %s: %w", hdr.Name, err)
	}

	return nil
}

// WriteDirectory adds a directory entry for the given path.
func (w *CPIOWriter) WriteDirectory(path string) error {
	return w.writeHeader(&cpio.Header{
		Name:  path,
		Mode:  cpio.TypeDir | cpio.FileMode(dirMode),
		Links: numLinks,
	})
}

// WriteRegular adds a regular file with size bytes read from source.
func (w *CPIOWriter) WriteRegular(path string, source io.Reader, size int64, mode fs.FileMode) error {
	err := w.writeHeader(&cpio.Header{
		Name:  path,
		Mode:  cpio.TypeReg | cpio.FileMode(mode.Perm()),
		Size:  size,
		Links: 1,
	})
	if err != nil {
		return err
	}

	if _, err := io.Copy(w.cpioWriter, source); err != nil {
		return fmt.Errorf("write body for %s: %w", path, err)
	}

	return nil
}

// ZipWriter implements [Writer] for [zip.Writer].
type ZipWriter struct {
	zipWriter *zip.Writer
	modTime   time.Time
}

// NewZipWriter creates a new zip archive writer.
func NewZipWriter(w io.Writer) *ZipWriter {
	return &ZipWriter{
		zipWriter: zip.NewWriter(w),
		modTime:   time.Now().Truncate(time.Second),
	}
}

// Close writes the central directory.
func (w *ZipWriter) Close() error {
	if err := w.zipWriter.Close(); err != nil {
		return fmt.Errorf("close: %w", err)
	}

	return nil
}

// WriteDirectory adds a directory entry for the given path.
func (w *ZipWriter) WriteDirectory(path string) error {
	hdr := &zip.FileHeader{
		Name:     path + vfs.Separator,
		Method:   zip.Store,
		Modified: w.modTime,
	}
	hdr.SetMode(fs.ModeDir | dirMode)

	if _, err := w.zipWriter.CreateHeader(hdr); err != nil {
		return fmt.Errorf("write header for %s: %w", path, err)
	}

	return nil
}

// WriteRegular adds a regular file read from source. The size is ignored
// since zip records sizes after the body.
func (w *ZipWriter) WriteRegular(path string, source io.Reader, _ int64, mode fs.FileMode) error {
	hdr := &zip.FileHeader{
		Name:     path,
		Method:   zip.Deflate,
		Modified: w.modTime,
	}
	hdr.SetMode(mode.Perm())

	body, err := w.zipWriter.CreateHeader(hdr)
	if err != nil {
		return fmt.Errorf("write header for %s: %w", path, err)
	}

	if _, err := io.Copy(body, source); err != nil {
		return fmt.Errorf("write body for %s: %w", path, err)
	}

	return nil
}
