package domain

import "errors"

var (
	ErrNoteNotFound       = errors.New("note does not exist")
	ErrUnauthorizedAccess = errors.New("unauthorized access")
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
)
