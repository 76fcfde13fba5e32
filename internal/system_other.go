// +build !aix,!darwin,!dragonfly,!freebsd,!linux,!netbsd,!openbsd,!solaris

package internal

// platformVersion has nothing to report on this platform.
func platformVersion() string {
	return ""
}
