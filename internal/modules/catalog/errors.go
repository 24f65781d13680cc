package catalog

import "errors"

var (
	ErrDuplicateRoom  = errors.New("room number already registered")
	ErrDuplicateGuest = errors.New("guest document already registered")
	ErrRoomNotFound   = errors.New("room not found")
	ErrRoomInUse      = errors.New("room has a guest checked in")
)
