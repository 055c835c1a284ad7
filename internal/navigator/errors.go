package navigator

import "errors"

var (
	ErrNoDirectory     = errors.New("navigator requires a room directory")
	ErrNoNavigate      = errors.New("navigator requires a navigate function")
	ErrControlNotExist = errors.New("switch-room control not exist")
)
