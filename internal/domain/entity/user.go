package entity

// User is an author of articles and comments, identified by username.
type User struct {
	Username  string
	Name      string
	AvatarURL string
}
