package repository

import "errors"

var (
	ErrFailedToAppend = errors.New("failed to append turn")
	ErrFailedToList   = errors.New("failed to list turns")
)
