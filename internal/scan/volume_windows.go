//go:build windows

package scan

import "path/filepath"

// volumeID keys a path by its drive letter or UNC volume name. Returns
// false when the path carries no volume component.
func volumeID(path string) (string, bool) {
	vol := filepath.VolumeName(path)
	return vol, vol != ""
}
