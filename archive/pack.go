package archive

import (
	"fmt"
	"io/fs"
	"os"
	"path"

	"go.uber.org/zap"
)

// Pack writes the directory tree at dir into w. Member names are prefixed
// with root, which is written as the first directory. Only directories and
// regular files are packed. It returns the number of members written.
func Pack(w Writer, dir, root string, log *zap.Logger) (int, error) {
	if log == nil {
		log = zap.NewNop()
	}

	fsys := os.DirFS(dir)
	count := 0

	err := fs.WalkDir(fsys, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		memberName := path.Join(root, name)
		if memberName == "." {
			return nil
		}

		switch {
		case d.IsDir():
			if err := w.WriteDirectory(memberName); err != nil {
				return err
			}
		case d.Type().IsRegular():
			if err := packRegular(w, fsys, name, memberName); err != nil {
				return err
			}
		default:
			log.Debug("skipping non-regular file",
				zap.String("name", name),
				zap.Stringer("type", d.Type()),
			)

			return nil
		}

		count++

		return nil
	})
	if err != nil {
		return count, fmt.Errorf("pack %s: %w", dir, err)
	}

	return count, nil
}

func packRegular(w Writer, fsys fs.FS, name, memberName string) error {
	file, err := fsys.Open(name)
	if err != nil {
		return err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return fmt.Errorf("read info: %w", err)
	}

	return w.WriteRegular(memberName, file, info.Size(), info.Mode())
}
