package status

import "errors"

var (
	ErrNotAuthenticated   = errors.New("auth: not authenticated")
	ErrInvalidCredentials = errors.New("auth: invalid email or password")
	ErrWrongPassword      = errors.New("auth: current password is incorrect")
)
