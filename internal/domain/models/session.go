package models

// Session is keyed by its opaque token. Sessions never expire; expiry would be
// added in the session repository, not here.
type Session struct {
	Token string `bson:"_id" json:"-"`
	Email string `bson:"email" json:"email"`
	Role  string `bson:"role" json:"role"`
}
