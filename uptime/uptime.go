package uptime

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnsupported is returned by [HostClock.BootTime] on platforms without a
// boot time source.
var ErrUnsupported = errors.New("boot time not supported on this platform")

// Clock provides the host boot time and the current time.
type Clock interface {
	BootTime() (time.Time, error)
	Now() time.Time
}

// HostClock reads the boot time of the running host.
type HostClock struct{}

// BootTime returns the time the host was booted.
func (HostClock) BootTime() (time.Time, error) {
	return bootTime()
}

// Now returns the current local time.
func (HostClock) Now() time.Time {
	return time.Now()
}

// Report is a snapshot of boot time and current time.
type Report struct {
	Boot time.Time
	Now  time.Time
}

// Query reads both times from clock.
func Query(clock Clock) (Report, error) {
	boot, err := clock.BootTime()
	if err != nil {
		return Report{}, fmt.Errorf("uptime: %w", err)
	}

	return Report{Boot: boot, Now: clock.Now()}, nil
}

// Elapsed returns the uptime truncated to whole seconds. It is never
// negative.
func (r Report) Elapsed() time.Duration {
	return max(r.Now.Sub(r.Boot), 0).Truncate(time.Second)
}

// Long renders the uptime as "N days, H:MM:SS". The day part is omitted
// under 24 hours.
func (r Report) Long() string {
	total := int64(r.Elapsed() / time.Second)
	days := total / 86400
	hours := total % 86400 / 3600
	minutes := total % 3600 / 60
	seconds := total % 60

	clock := fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)

	switch days {
	case 0:
		return clock
	case 1:
		return "1 day, " + clock
	default:
		return fmt.Sprintf("%d days, %s", days, clock)
	}
}

// HMS renders the total uptime as zero-padded "HH:MM:SS". Hours are not
// wrapped at 24.
func (r Report) HMS() string {
	total := int64(r.Elapsed() / time.Second)

	return fmt.Sprintf("%02d:%02d:%02d", total/3600, total%3600/60, total%60)
}

// BootString renders the boot time as "YYYY-MM-DD HH:MM:SS".
func (r Report) BootString() string {
	return r.Boot.Format(time.DateTime)
}
