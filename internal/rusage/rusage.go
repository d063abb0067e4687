// Package rusage reports resources consumed by this process or by its
// waited-for children, via the POSIX getrusage call.
package rusage

import "time"

// Resources summarises used system resources (mainly CPU time and memory).
type Resources struct {
	// User-mode time and system-mode time
	Utime, Stime time.Duration

	// Maximum resident segment size, in platform-dependent units:
	// - Linux, Dragonfly, FreeBSD, NetBSD, OpenBSD, AIX: kilobytes
	// - Darwin: bytes
	// - Solaris, Illumos: pages
	MaxRSS int64

	// Counts of minor and major page faults
	MinorFaults, MajorFaults int64
}
