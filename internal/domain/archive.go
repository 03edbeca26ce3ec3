package domain

import "time"

// ArchiveRecord is a write-once snapshot of a record removed through the
// approval workflow. SourceID is unique in the archive store so that
// re-running an interrupted delete resolution cannot archive twice.
type ArchiveRecord struct {
	ID         string     `json:"id"`
	SourceID   string     `json:"sourceId"`
	TargetType TargetType `json:"targetType"`
	EntryKind  EntryKind  `json:"entryKind,omitempty"`
	Snapshot   JSON       `json:"snapshot"`
	ArchivedBy string     `json:"archivedBy"`
	ArchivedAt time.Time  `json:"archivedAt"`
}
