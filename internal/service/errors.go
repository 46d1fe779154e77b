package service

import "errors"

var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrSettingNotFound       = errors.New("setting not found")
	ErrNoDomainList          = errors.New("no domain list configured")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrNoRecorder            = errors.New("settings recorder is not provided")
)
