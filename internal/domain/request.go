package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Operation is the kind of change a request stages.
type Operation string

const (
	OperationEdit   Operation = "Edit"
	OperationDelete Operation = "Delete"
)

// TargetType tags the store family a change request points at.
type TargetType string

const (
	TargetBank        TargetType = "Bank"
	TargetWebsite     TargetType = "Website"
	TargetTransaction TargetType = "Transaction"
	TargetIntroducer  TargetType = "Introducer"
)

// Decision resolves a pending request.
type Decision string

const (
	DecisionApprove Decision = "Approve"
	DecisionReject  Decision = "Reject"
)

// JSON is a type alias for JSON data.
type JSON map[string]any

// PendingChangeRequest stages a proposed edit or delete of a live record.
// At most one open request may exist per (target id, operation) pair; the
// request store enforces that with a partial unique index. Requests are never
// updated in place: the resolution step consumes and deletes them.
type PendingChangeRequest struct {
	ID         string     `json:"id"`
	TargetID   string     `json:"targetId"`
	TargetType TargetType `json:"targetType"`
	// EntryKind narrows TargetTransaction to one of the four ledger
	// collections. Empty for master-record targets.
	EntryKind   EntryKind `json:"entryKind,omitempty"`
	Operation   Operation `json:"operation"`
	Snapshot    JSON      `json:"snapshot"`
	Changes     JSON      `json:"changes,omitempty"`
	Message     string    `json:"message"`
	RequestedBy string    `json:"requestedBy"`
	IsApproved  bool      `json:"isApproved"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ApprovalMessage composes the audit message shown to the supervisor, e.g.
// "Withdraw is sent to Super Admin for delete approval".
func ApprovalMessage(label string, op Operation) string {
	verb := "edit"
	if op == OperationDelete {
		verb = "delete"
	}
	return fmt.Sprintf("%s is sent to Super Admin for %s approval", label, verb)
}

// MarshalState converts a domain object to JSON for snapshots.
func MarshalState(v any) JSON {
	if v == nil {
		return nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		return JSON{"error": "failed to marshal state"}
	}

	var result JSON
	if err := json.Unmarshal(data, &result); err != nil {
		return JSON{"error": "failed to unmarshal state"}
	}

	return result
}

// DiffFields returns the subset of proposed whose values differ from the
// snapshot. Keys absent from the snapshot count as changed. Values are
// compared by their canonical JSON encoding so that numbers arriving as
// strings or floats do not produce phantom diffs.
func DiffFields(snapshot, proposed JSON) JSON {
	diff := make(JSON)
	for key, value := range proposed {
		prev, ok := snapshot[key]
		if !ok || !jsonEqual(prev, value) {
			diff[key] = value
		}
	}

	if len(diff) == 0 {
		return nil
	}

	return diff
}

// Merge overlays changed fields onto a live record. Fields absent from
// changes keep their prior values. dst must be a pointer to a struct with
// json tags matching the change keys.
func Merge(dst any, changes JSON) error {
	if len(changes) == 0 {
		return nil
	}

	base, err := json.Marshal(dst)
	if err != nil {
		return err
	}

	var state map[string]any
	if err := json.Unmarshal(base, &state); err != nil {
		return err
	}

	for key, value := range changes {
		state[key] = value
	}

	merged, err := json.Marshal(state)
	if err != nil {
		return err
	}

	return json.Unmarshal(merged, dst)
}

func jsonEqual(a, b any) bool {
	ab, err := json.Marshal(a)
	if err != nil {
		return false
	}

	bb, err := json.Marshal(b)
	if err != nil {
		return false
	}

	return bytes.Equal(ab, bb)
}
