package models

// Accepted values for both gender and interestedIn.
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// ValidGender reports whether v belongs to the closed gender set.
func ValidGender(v string) bool {
	switch v {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// UserProfile is the read model for a user. Profile writes (signup, edits)
// belong to the external profile service; this server only reads profiles
// and bumps vibeCount.
type UserProfile struct {
	UserID       string   `dynamodbav:"userId" json:"userId"`
	Name         string   `dynamodbav:"name" json:"name"`
	Email        string   `dynamodbav:"email,omitempty" json:"email,omitempty"`
	ProfilePic   string   `dynamodbav:"profilePic,omitempty" json:"profilePic,omitempty"`
	Bio          string   `dynamodbav:"bio,omitempty" json:"bio,omitempty"`
	Gender       string   `dynamodbav:"gender" json:"gender"`
	InterestedIn string   `dynamodbav:"interestedIn" json:"interestedIn"`
	Genres       []string `dynamodbav:"genres,omitempty" json:"genres,omitempty"`
	VibeCount    int      `dynamodbav:"vibeCount" json:"vibeCount"`
	CreatedAt    string   `dynamodbav:"createdAt,omitempty" json:"createdAt,omitempty"`
}

// UserProfilesTable is the DynamoDB table name for user profiles
const UserProfilesTable = "UserProfiles"
