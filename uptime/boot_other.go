//go:build !linux && !darwin && !dragonfly && !freebsd && !netbsd && !openbsd

package uptime

import "time"

func bootTime() (time.Time, error) {
	return time.Time{}, ErrUnsupported
}
