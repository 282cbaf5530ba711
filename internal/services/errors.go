package services

import "errors"

// ErrUnauthorized is raised by the access gate before any database call is
// made. The message is fixed; handlers translate it to a 403. The check is
// advisory and only shapes what the client sees: the database layer's own
// access rules are the authoritative enforcement point for every mutation.
var ErrUnauthorized = errors.New("unauthorized")

// ErrProfessionnelUnavailable is returned when a booking targets a profile
// that is not an approved professional.
var ErrProfessionnelUnavailable = errors.New("professional not available for booking")
