package domain

import "errors"

var (
	ErrStateNotFound     = errors.New("state not found")
	ErrAuthorityNotFound = errors.New("authority not found for state")
)
