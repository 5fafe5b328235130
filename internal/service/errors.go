package service

import "errors"

var (
	ErrBoardNotFound    = errors.New("board not found")
	ErrBoardExists      = errors.New("board already exists")
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrNoOccupant       = errors.New("square is empty")
	ErrPlyOutOfRange    = errors.New("ply out of range")
	ErrAlreadyConnected = errors.New("connection already exists")
	ErrNotConnected     = errors.New("no connection for client")
)
