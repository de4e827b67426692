package app

import "errors"

var (
	ErrContentRequired = errors.New("Content is required")
	ErrIDRequired      = errors.New("ID is required")
	ErrAudioRequired   = errors.New("Audio payload is required")
	ErrAudioNotFound   = errors.New("Audio not found")
	ErrUnauthorized    = errors.New("Unauthorized")
)
