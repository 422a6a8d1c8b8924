package archive

import (
	"archive/tar"
	"archive/zip"
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cavaliergopher/cpio"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"go.uber.org/zap"

	"github.com/dendrascience/vshell/vfs"
)

// cpioTypeMask selects the file type bits of a cpio mode.
const cpioTypeMask = 0o170000

// Option configures [Load] and [Read].
type Option func(*options)

type options struct {
	format Format
	log    *zap.Logger
}

// WithFormat disables format detection and reads the archive as the given
// format. Compression is still detected.
func WithFormat(format Format) Option {
	return func(o *options) {
		o.format = format
	}
}

// WithLogger sets the logger. Nothing is logged by default.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		format: FormatAuto,
		log:    zap.NewNop(),
	}

	for _, opt := range opts {
		opt(o)
	}

	return o
}

// Load reads the archive file at path into a new [vfs.Store]. The file is
// closed before Load returns.
func Load(path string, opts ...Option) (*vfs.Store, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpenArchive, err)
	}
	defer file.Close()

	o := newOptions(opts)
	o.log = o.log.With(zap.String("archive", path))

	store, err := read(file, o)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return store, nil
}

// Read reads an archive stream into a new [vfs.Store]. On error no store is
// returned.
func Read(r io.Reader, opts ...Option) (*vfs.Store, error) {
	return read(r, newOptions(opts))
}

func read(r io.Reader, o *options) (*vfs.Store, error) {
	src := bufio.NewReaderSize(r, sniffLen)

	head, err := peek(src)
	if err != nil {
		return nil, err
	}

	compression := detectCompression(head)
	if compression != CompressionNone {
		decompressed, err := newDecompressor(src, compression)
		if err != nil {
			return nil, err
		}
		defer decompressed.Close()

		src = bufio.NewReaderSize(decompressed, sniffLen)

		head, err = peek(src)
		if err != nil {
			return nil, err
		}

		if detectCompression(head) != CompressionNone {
			return nil, fmt.Errorf("%w: nested compression", ErrMalformedArchive)
		}
	}

	format := o.format
	if format == FormatAuto {
		format = detectFormat(head)
	}

	o.log.Debug("reading archive",
		zap.Stringer("format", format),
		zap.Stringer("compression", compression),
	)

	c := &collector{log: o.log}

	switch format {
	case FormatTar:
		err = c.readTar(src)
	case FormatCPIO:
		err = c.readCPIO(src)
	case FormatZip:
		err = c.readZip(src)
	default:
		return nil, fmt.Errorf("%w: cannot detect format", ErrUnknownFormat)
	}

	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformedArchive, format, err)
	}

	store := vfs.NewStore(c.entries)

	o.log.Info("archive loaded",
		zap.Int("entries", store.Len()),
		zap.Int("skipped", c.skipped),
	)

	return store, nil
}

func peek(r *bufio.Reader) ([]byte, error) {
	head, err := r.Peek(sniffLen)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrMalformedArchive, err)
	}

	return head, nil
}

type decompressor struct {
	io.Reader
	close func() error
}

func (d *decompressor) Close() error {
	return d.close()
}

func newDecompressor(r io.Reader, compression Compression) (io.ReadCloser, error) {
	switch compression {
	case CompressionGzip:
		reader, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("%w: gzip: %w", ErrMalformedArchive, err)
		}

		return reader, nil
	case CompressionZstd:
		decoder, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("%w: zstd: %w", ErrMalformedArchive, err)
		}

		return &decompressor{
			Reader: decoder,
			close: func() error {
				decoder.Close()
				return nil
			},
		}, nil
	default:
		return io.NopCloser(r), nil
	}
}

// collector accumulates entries in archive order.
type collector struct {
	entries []vfs.Entry
	skipped int
	log     *zap.Logger
}

func (c *collector) addDir(name string) {
	path := vfs.ParsePath(name)
	if path.IsZero() {
		return
	}

	c.entries = append(c.entries, vfs.NewDir(path))
}

func (c *collector) addFile(name string, content []byte) {
	path := vfs.ParsePath(name)
	if path.IsZero() {
		return
	}

	c.entries = append(c.entries, vfs.NewFile(path, content))
}

func (c *collector) skip(name, kind string) {
	c.skipped++
	c.log.Debug("skipping member",
		zap.String("name", name),
		zap.String("type", kind),
	)
}

func (c *collector) readTar(r io.Reader) error {
	reader := tar.NewReader(r)

	for {
		hdr, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}

		switch hdr.Typeflag {
		case tar.TypeReg:
			content, err := io.ReadAll(reader)
			if err != nil {
				return fmt.Errorf("read %s: %w", hdr.Name, err)
			}

			c.addFile(hdr.Name, content)
		case tar.TypeDir:
			c.addDir(hdr.Name)
		default:
			c.skip(hdr.Name, string(hdr.Typeflag))
		}
	}
}

func (c *collector) readCPIO(r io.Reader) error {
	reader := cpio.NewReader(r)

	for {
		hdr, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}

		switch hdr.Mode & cpioTypeMask {
		case cpio.TypeReg:
			content, err := io.ReadAll(reader)
			if err != nil {
				return fmt.Errorf("read %s: %w", hdr.Name, err)
			}

			c.addFile(hdr.Name, content)
		case cpio.TypeDir:
			c.addDir(hdr.Name)
		default:
			c.skip(hdr.Name, fmt.Sprintf("%o", hdr.Mode&cpioTypeMask))
		}
	}
}

// readZip buffers the whole stream since zip needs random access to the
// central directory.
func (c *collector) readZip(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return err
	}

	for _, file := range reader.File {
		mode := file.Mode()

		switch {
		case mode.IsDir():
			c.addDir(file.Name)
		case mode.IsRegular():
			content, err := readZipFile(file)
			if err != nil {
				return fmt.Errorf("read %s: %w", file.Name, err)
			}

			c.addFile(file.Name, content)
		default:
			c.skip(file.Name, mode.Type().String())
		}
	}

	return nil
}

func readZipFile(file *zip.File) ([]byte, error) {
	rc, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return io.ReadAll(rc)
}
