package models

// User documents are keyed by email, so signup can detect duplicates with a
// single lookup and the report joins can resolve names by email directly.
type User struct {
	Email        string `bson:"_id" json:"email"`
	Name         string `bson:"name" json:"name"`
	PasswordHash string `bson:"password" json:"-"`
	Role         string `bson:"role" json:"role"`
}
