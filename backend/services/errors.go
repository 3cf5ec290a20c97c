package services

import "errors"

var (
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrUnknownCourse      = errors.New("unknown course type")
	ErrUnknownItem        = errors.New("unknown course item")
	ErrUnknownSection     = errors.New("unknown guide section")
	ErrItemLocked         = errors.New("item is locked")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrWrongPassword      = errors.New("current password does not match")
)
