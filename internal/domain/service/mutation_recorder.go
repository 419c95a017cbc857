package service

// Mutation outcomes reported to the MutationRecorder.
const (
	OutcomeSuccess   = "success"
	OutcomeConflict  = "conflict"
	OutcomeNotFound  = "not_found"
	OutcomeUnchanged = "unchanged"
	OutcomeFailed    = "failed"
)

// MutationRecorder counts create and update attempts per entity.
type MutationRecorder interface {
	RecordMutation(entity string, action AuditAction, outcome string)
}
