package domain

const (
	CollectionUser = "users"
)

const (
	CollectionMedia = "media"
)
