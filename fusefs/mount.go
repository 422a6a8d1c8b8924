package fusefs

import (
	"context"
	"fmt"

	"bazil.org/fuse"
	"bazil.org/fuse/fs"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Mount mounts fsys read-only at mountpoint and serves requests until ctx is
// done or the filesystem is unmounted externally.
func Mount(ctx context.Context, mountpoint string, fsys *FS, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}

	conn, err := fuse.Mount(
		mountpoint,
		fuse.FSName("vshell"),
		fuse.Subtype("vshell"),
		fuse.ReadOnly(),
	)
	if err != nil {
		return fmt.Errorf("mount %s: %w", mountpoint, err)
	}
	defer conn.Close()

	log.Info("mounted",
		zap.String("mountpoint", mountpoint),
		zap.Int("nodes", fsys.Len()),
	)

	group, ctx := errgroup.WithContext(ctx)
	served := make(chan struct{})

	group.Go(func() error {
		defer close(served)

		if err := fs.Serve(conn, fsys); err != nil {
			return fmt.Errorf("serve: %w", err)
		}

		return nil
	})

	group.Go(func() error {
		select {
		case <-served:
			return nil
		case <-ctx.Done():
		}

		log.Info("unmounting", zap.String("mountpoint", mountpoint))

		if err := fuse.Unmount(mountpoint); err != nil {
			return fmt.Errorf("unmount %s: %w", mountpoint, err)
		}

		return nil
	})

	return group.Wait()
}
