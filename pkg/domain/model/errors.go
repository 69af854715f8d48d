package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for domain operations
var (
	ErrTeamNotFound   = goerr.New("team not found")
	ErrLeagueNotFound = goerr.New("league not found")
	ErrUserNotFound   = goerr.New("user not found")
)
