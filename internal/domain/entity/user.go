package entity

// User represents a registered account.
// HashedPassword holds a bcrypt hash and must never leave the service layer.
type User struct {
	ID             int64
	FirstName      string
	Surname        string
	Email          string
	HashedPassword string
	IsSuperuser    bool
}
