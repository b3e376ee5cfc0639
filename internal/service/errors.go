package service

import "errors"

var (
	ErrStorage = errors.New("storage failure")
)
