// Package common defines shared helpers and sentinel errors used across
// client and server layers of labkeeper. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (

	// repository specific errors
	ErrorNotFound       = errors.New("not found")
	ErrorDuplicateLogin = errors.New("login name already exists")
)
