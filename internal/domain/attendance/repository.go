package attendance

import "context"

// RecordRepository defines data access for extracted attendance records.
// Writes are scoped per source file: ReplaceForFile removes every record
// previously extracted from the file before inserting the new batch, so a
// re-upload fully supersedes the prior extraction.
type RecordRepository interface {
	// ReplaceForFile atomically replaces all records for fileName
	ReplaceForFile(ctx context.Context, fileName string, records []Record) (int, error)

	// List retrieves records with optional employee/status filters
	List(ctx context.Context, filter RecordFilter) ([]Record, error)

	// ListEmployees returns the distinct employee names present in the ledger
	ListEmployees(ctx context.Context) ([]string, error)
}

// UploadRepository records processed file uploads.
type UploadRepository interface {
	Create(ctx context.Context, upload Upload) (Upload, error)
	DeleteByFileName(ctx context.Context, fileName string) error
}
