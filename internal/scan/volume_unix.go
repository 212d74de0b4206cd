//go:build !windows

package scan

import (
	"os"
	"strconv"
	"syscall"
)

// volumeID keys a path by the device its inode lives on. Returns false
// when the identity cannot be determined.
func volumeID(path string) (string, bool) {
	info, err := os.Stat(path)
	if err != nil {
		return "", false
	}
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return "", false
	}
	return strconv.FormatUint(uint64(stat.Dev), 10), true
}
