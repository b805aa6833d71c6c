package documents

import "time"

// Document is the metadata record for a file uploaded to object storage and
// linked to a case. Documents are only ever created through the upload
// pipeline.
type Document struct {
	ID         string
	UserID     string // uploader
	CaseID     string
	Name       string // display name, the original file name
	URL        string
	StorageKey string // remote object identifier
	Format     string
	CreatedAt  time.Time
}
