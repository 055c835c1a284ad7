package directory

import (
	"errors"
	"fmt"
)

var ErrConfiguration = errors.New("room directory configuration")

var (
	errRoomsAbsent      = errors.New("recommendedRooms is absent")
	errRoomsNotSequence = errors.New("recommendedRooms is not a sequence")
	errRoomNotMapping   = errors.New("room descriptor is not a mapping")
	errRoomNoTitle      = errors.New("room descriptor has no title")
	errRoomNoURL        = errors.New("enabled room descriptor has no url")
)

// ConfigurationError reports a directory that could not be constructed.
type ConfigurationError struct {
	Source string
	Err    error
}

func (e *ConfigurationError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("%s: %s", ErrConfiguration, e.Err)
	}
	return fmt.Sprintf("%s %s: %s", ErrConfiguration, e.Source, e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }

func configurationError(source string, err error) error {
	return &ConfigurationError{Source: source, Err: err}
}
