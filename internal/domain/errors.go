package domain

import "errors"

var (
	ErrInvalidConfig = errors.New("invalid game config")
	ErrBoardFull     = errors.New("no free cell left for food")
)
