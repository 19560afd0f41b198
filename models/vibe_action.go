package models

// A vibe action is a directional interest signal.
const (
	ActionTick  = "tick"  // interested
	ActionCross = "cross" // pass
)

// ValidAction reports whether v is a supported vibe action.
func ValidAction(v string) bool {
	return v == ActionTick || v == ActionCross
}

// VibeAction is the current disposition of FromUser toward ToUser.
// There is at most one record per ordered (FromUser, ToUser) pair; a new
// action from the same user toward the same target replaces the old one.
type VibeAction struct {
	FromUser  string `dynamodbav:"fromUser" json:"fromUser"`
	ToUser    string `dynamodbav:"toUser" json:"toUser"`
	Action    string `dynamodbav:"action" json:"action"`
	CreatedAt string `dynamodbav:"createdAt" json:"createdAt"`
}

// VibeActionsTable is the DynamoDB table name for vibe actions
const VibeActionsTable = "VibeActions"

// ToUserIndex is the GSI used to query actions by their target
const ToUserIndex = "toUser-index"

// MatchState is the derived state of an unordered user pair.
type MatchState string

const (
	MatchNone    MatchState = "none"
	MatchPending MatchState = "pending"
	MatchMutual  MatchState = "mutual"
)
