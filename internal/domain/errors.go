package domain

import "errors"

// Domain errors
var (
	// Run errors
	ErrNoLeagues = errors.New("no leagues found")
	ErrNoTeams   = errors.New("no teams found for league")

	// Store errors
	ErrSectionNotFound = errors.New("section not found")
	ErrGameNotFound    = errors.New("game not found")
)
