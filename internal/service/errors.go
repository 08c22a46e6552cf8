package service

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrPostNotFound       = errors.New("post not found")
	ErrCommentNotFound    = errors.New("comment not found")
	ErrForbidden          = errors.New("not allowed to modify this resource")

	// ErrConcurrentUpdate surfaces when a row vanished mid-update but
	// reappeared on the existence re-check. Treated as an internal failure.
	ErrConcurrentUpdate = errors.New("concurrent update detected")
)
