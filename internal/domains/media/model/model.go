package model

const (
	EntityName = "media"
	Directory  = "media"

	MaxFileSizeMB = 5
)
