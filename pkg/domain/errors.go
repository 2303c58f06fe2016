package domain

import "errors"

// Constraint violations. Each kind stays a distinct sentinel so callers can
// surface a specific, human-readable reason.
var (
	// ErrOperatorInUse is returned when binding an operator that already
	// occupies a different track.
	ErrOperatorInUse = errors.New("operator already bound to another track")

	// ErrSelfLink is returned when a link source and target are the same
	// action instance.
	ErrSelfLink = errors.New("cannot link an action to itself")

	// ErrDuplicateLink is returned when a connection with the same
	// (from, to, effect index) triple already exists.
	ErrDuplicateLink = errors.New("connection already exists")
)

var (
	// ErrNoSelection is returned when a linking gesture starts without a
	// selected source action.
	ErrNoSelection = errors.New("no action selected")

	// ErrTrackNotFound is returned for an out-of-range track index.
	ErrTrackNotFound = errors.New("track not found")

	// ErrUnknownOperator is returned when placing a skill on a track whose
	// operator is missing from the roster.
	ErrUnknownOperator = errors.New("operator not in roster")
)

var (
	// ErrLoadFailed wraps any failure to fetch or parse the game-data
	// document. Prior roster state is left untouched.
	ErrLoadFailed = errors.New("game data load failed")

	// ErrDecodeFailed wraps any failure to decode a share string. No
	// partial import is ever applied.
	ErrDecodeFailed = errors.New("share string decode failed")

	// ErrScenarioNotFound is returned when a published scenario slug does
	// not exist in the store.
	ErrScenarioNotFound = errors.New("scenario not found")
)
