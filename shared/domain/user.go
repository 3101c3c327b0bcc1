package domain

// UserRef identifies an author as the Remote Feed Store reports it.
type UserRef struct {
	Id   UserId   `json:"id"`
	Name UserName `json:"name"`
}

// Credential is the explicit bearer identity passed into the core.
// It is never read from ambient storage; an empty Token fails local
// validation before any request is issued.
type Credential struct {
	Token string
	User  UserRef
}

func (c Credential) Empty() bool {
	return c.Token == ""
}
