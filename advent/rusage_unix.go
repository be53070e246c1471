//go:build unix

package main

import (
	"fmt"
	"runtime"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/sys/unix"
)

// resourceUsage summarizes the CPU time and peak memory of this process.
func resourceUsage() (string, bool) {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return "", false
	}
	cpu := time.Duration(ru.Utime.Nano() + ru.Stime.Nano())
	maxRSS := int64(ru.Maxrss)
	if runtime.GOOS != "darwin" {
		maxRSS *= 1024 // kilobytes everywhere but macOS
	}
	return fmt.Sprintf(
		"cpu: %s, max RSS: %s",
		cpu.Round(time.Millisecond),
		humanize.Bytes(uint64(maxRSS)),
	), true
}
