package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrNilRepository         = errors.New("product repository is nil")
)
