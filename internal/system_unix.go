// +build aix darwin dragonfly freebsd linux netbsd openbsd solaris

package internal

import (
	"bytes"
	"fmt"

	"golang.org/x/sys/unix"
)

// platformVersion returns the kernel name, release, and machine reported by
// uname, or the empty string if uname fails.
func platformVersion() string {
	var uname unix.Utsname
	if unix.Uname(&uname) != nil {
		// We don't have anything else to try.
		return ""
	}
	s, r, m := uname.Sysname[:], uname.Release[:], uname.Machine[:]
	return fmt.Sprintf("%s %s %s", bytes.Trim(s, "\x00"), bytes.Trim(r, "\x00"), bytes.Trim(m, "\x00"))
}
