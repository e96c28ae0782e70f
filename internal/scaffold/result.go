package scaffold

import "time"

// Fixed figures reported in a Result.
const (
	ScaffoldCommandCount = 6
	InitCommandCount     = 7
	DependencyCount      = 24

	// DiskUsageFallback replaces a disk usage figure that could not be measured.
	DiskUsageFallback = "~4mb"
	// InitDiskUsage is reported by merges, which install nothing.
	InitDiskUsage = "~500kb"
)

// Result summarizes a finished run. SkillCount is the number of skills
// requested, which can exceed the number actually copied.
type Result struct {
	FileCount       int
	SkillCount      int
	CommandCount    int
	Elapsed         time.Duration
	DependencyCount int
	DiskUsage       string
	// Warnings are non-fatal findings, such as package.json schema issues.
	Warnings []string
}
