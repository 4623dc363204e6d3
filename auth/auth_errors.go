package auth

import "errors"

var (
	InvalidSecretErr      = errors.New("invalid secret")
	MissingSessionRepoErr = errors.New("session repo is required")
)
