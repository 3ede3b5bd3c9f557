package teams

import "errors"

var (
	ErrNotFound     = errors.New("team not found")
	ErrInvalidGroup = errors.New("invalid roster group")
)
