package model

// Owned is implemented by every entity with a single owning user.
type Owned interface {
	OwnerID() int64
}
