// Package platform hides operating system differences in file permissions.
// Windows has no Unix permission bits, so permission changes are skipped there.
package platform
