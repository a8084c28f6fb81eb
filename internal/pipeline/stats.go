package pipeline

// RunStats tracks aggregate counters and byte totals across a reconcile run.
type RunStats struct {
	RawIndexed     int
	Scanned        int
	Matched        int
	Orphaned       int
	Deleted        int
	WouldDelete    int
	DeleteErrors   int
	SkippedDirs    int
	BytesReclaimed int64
}

// Removals returns the count of delete actions taken, or previewed in a
// dry run.
func (s *RunStats) Removals() int {
	return s.Deleted + s.WouldDelete
}
