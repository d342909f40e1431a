package domain

import "errors"

var (
	ErrPollNotFound        = errors.New("poll not found")
	ErrInvalidPollID       = errors.New("invalid poll id")
	ErrEmptyQuestion       = errors.New("question is required")
	ErrInsufficientOptions = errors.New("at least two non-empty options are required")
	ErrInvalidChoice       = errors.New("invalid choice index")
	ErrMissingChoice       = errors.New("choice index is required")
	ErrAlreadyVoted        = errors.New("you have already voted on this poll")

	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrMissingCredentials = errors.New("username and password are required")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)
