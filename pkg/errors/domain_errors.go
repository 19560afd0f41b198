package errors

var (
	// Domain errors — used by services
	ErrSelfAction      = InvalidReference("cannot vibe on yourself")
	ErrUserNotFound    = NotFound("user not found")
	ErrUnknownAction   = Validation("action must be tick or cross")
	ErrEmptyMessage    = Validation("message text cannot be empty")
	ErrBadRoom         = InvalidReference("malformed room id")
	ErrNotParticipant  = InvalidReference("sender is not a participant of this room")
	ErrConsentRequired = ConsentRequired("chat requires a mutual match")
)

func ErrMessageSaveFailed(cause error) error {
	return Wrap(CodeInternal, "failed to store message", cause)
}
