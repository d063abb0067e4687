//go:build unix

package rusage

import (
	"time"

	"golang.org/x/sys/unix"
)

// Self returns the resources used by this process.
func Self() (*Resources, error) {
	return stats(unix.RUSAGE_SELF)
}

// Children returns the resources used by waited-for children, i.e. the
// command that just ran.
func Children() (*Resources, error) {
	return stats(unix.RUSAGE_CHILDREN)
}

func stats(who int) (*Resources, error) {
	var usage unix.Rusage
	if err := unix.Getrusage(who, &usage); err != nil {
		return nil, err
	}

	return &Resources{
		Utime: time.Duration(usage.Utime.Nano()),
		Stime: time.Duration(usage.Stime.Nano()),

		// Note: These integer casts aren't redundant on 32-bit arches
		MaxRSS:      int64(usage.Maxrss),
		MinorFaults: int64(usage.Minflt),
		MajorFaults: int64(usage.Majflt),
	}, nil
}
