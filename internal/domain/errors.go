package domain

import "errors"

var (
	ErrJobNotFound            = errors.New("job not found")
	ErrJobAlreadyExists       = errors.New("job already exists")
	ErrPlaylistNotFound       = errors.New("playlist not found")
	ErrUserNotFound           = errors.New("user not found")
	ErrJobNotInPlaylist       = errors.New("job not in playlist")
	ErrMissingJobURL          = errors.New("job url is required")
	ErrEmptyUsername          = errors.New("username is empty")
	ErrIndexOutOfRange        = errors.New("index out of range")
	ErrEmptyPlaylistName      = errors.New("playlist name is empty")
	ErrTemporarilyUnavailable = errors.New("temporarily unavailable")
)
