// Package archive packs a file or directory into a tar stream suitable for
// extraction inside a container.
package archive

import (
	"archive/tar"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sync"
	"time"
)

var (
	// ErrEmpty is returned when a directory holds no regular files.
	ErrEmpty = errors.New("archive source contains no regular files")

	// ErrUnsupported is returned when the source is neither a regular file
	// nor a directory, such as a named pipe or a device.
	ErrUnsupported = errors.New("archive source is not a regular file or directory")

	// ErrConsumed is returned when an archive is read after it was closed.
	ErrConsumed = errors.New("archive already consumed")
)

// Entry describes one regular file in the archive.
type Entry struct {
	Name    string // slash separated, relative to the archive root
	Size    int64
	Mode    fs.FileMode
	ModTime time.Time

	hostPath string
}

// Option customizes Build.
type Option func(*options)

type options struct {
	root string
}

// WithRoot prefixes every entry name with root.
func WithRoot(root string) Option {
	return func(o *options) {
		o.root = filepath.ToSlash(root)
	}
}

// Archive is a tar stream over a fixed set of entries. It can be read once.
type Archive struct {
	entries []Entry

	mu      sync.Mutex
	pr      *io.PipeReader
	started bool
	closed  bool
}

// Build collects the entries under source. A regular file yields a single
// entry named after its base name; a directory yields one entry per regular
// file found by a lexical walk. Nothing is read from the files until the
// archive is read.
func Build(source string, opts ...Option) (*Archive, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	info, err := os.Stat(source)
	if err != nil {
		return nil, fmt.Errorf("archive source %q: %w", source, err)
	}

	var entries []Entry
	switch {
	case info.Mode().IsRegular():
		entries = append(entries, newEntry(path.Join(o.root, info.Name()), source, info))
	case info.IsDir():
		entries, err = collectDir(source, o.root)
		if err != nil {
			return nil, err
		}
		if len(entries) == 0 {
			return nil, fmt.Errorf("archive source %q: %w", source, ErrEmpty)
		}
	default:
		return nil, fmt.Errorf("archive source %q (%s): %w", source, info.Mode().Type(), ErrUnsupported)
	}

	return &Archive{entries: entries}, nil
}

func collectDir(root, prefix string) ([]Entry, error) {
	var entries []Entry
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		// Symlinks, sockets and devices are skipped.
		if !d.Type().IsRegular() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}

		entries = append(entries, newEntry(path.Join(prefix, filepath.ToSlash(rel)), p, info))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %q: %w", root, err)
	}
	return entries, nil
}

func newEntry(name, hostPath string, info fs.FileInfo) Entry {
	return Entry{
		Name:     name,
		Size:     info.Size(),
		Mode:     info.Mode().Perm(),
		ModTime:  info.ModTime(),
		hostPath: hostPath,
	}
}

// Entries returns the archive entries in stream order.
func (a *Archive) Entries() []Entry {
	out := make([]Entry, len(a.entries))
	copy(out, a.entries)
	return out
}

// Read streams the tar archive. The first call starts the writer.
func (a *Archive) Read(p []byte) (int, error) {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return 0, ErrConsumed
	}
	if !a.started {
		pr, pw := io.Pipe()
		a.pr = pr
		a.started = true
		go a.write(pw)
	}
	pr := a.pr
	a.mu.Unlock()

	return pr.Read(p)
}

// Close releases the stream. Reading after Close returns ErrConsumed.
func (a *Archive) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return nil
	}
	a.closed = true
	if a.pr != nil {
		return a.pr.CloseWithError(ErrConsumed)
	}
	return nil
}

func (a *Archive) write(pw *io.PipeWriter) {
	tw := tar.NewWriter(pw)

	var err error
	for _, e := range a.entries {
		if err = writeEntry(tw, e); err != nil {
			break
		}
	}
	if closeErr := tw.Close(); err == nil {
		err = closeErr
	}

	pw.CloseWithError(err)
}

func writeEntry(tw *tar.Writer, e Entry) error {
	f, err := os.Open(e.hostPath)
	if err != nil {
		return err
	}
	defer f.Close()

	header := &tar.Header{
		Typeflag: tar.TypeReg,
		Name:     e.Name,
		Size:     e.Size,
		Mode:     int64(e.Mode),
		ModTime:  e.ModTime,
	}
	if err := tw.WriteHeader(header); err != nil {
		return fmt.Errorf("write header %s: %w", e.Name, err)
	}

	// The header already fixed the size; a file that changed since Build
	// fails rather than producing a corrupt entry.
	if _, err := io.CopyN(tw, f, e.Size); err != nil {
		return fmt.Errorf("write %s: %w", e.Name, err)
	}
	return nil
}
