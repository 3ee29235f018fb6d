package core

type CredentialsMessage struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserSummary is the list-users projection: password hash, internal
// metadata and bookmarks are deliberately left out.
type UserSummary struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type UserRecord struct {
	ID        string   `json:"id"`
	Email     string   `json:"email"`
	Bookmarks []string `json:"bookmarks"`
}

type Session struct {
	User  UserRecord `json:"user"`
	Token string     `json:"token"`
}
