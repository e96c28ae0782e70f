// Package runner executes the external tools a scaffold needs: the package
// manager's install command and three git operations. Each call blocks until
// the process exits and reports failure as an error carrying its output.
package runner
