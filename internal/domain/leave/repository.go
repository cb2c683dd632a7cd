package leave

import "context"

// TotalsRepository persists per-file leave totals. Like attendance records,
// totals are replaced wholesale when the same file is uploaded again.
type TotalsRepository interface {
	ReplaceForFile(ctx context.Context, fileName string, totals []Totals) error
	List(ctx context.Context) ([]Totals, error)
}
