package utils

import "errors"

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrBackendOffline = errors.New("backend not configured")
	ErrLoginDisabled  = errors.New("admin login is not configured")
	ErrInvalidLogin   = errors.New("invalid email or password")
	ErrBannerTagFull  = errors.New("banner tag has reached its product limit")
	ErrPendingOnly    = errors.New("product is not awaiting review")
	ErrUnknownFlag    = errors.New("unknown feature flag")
	ErrValidation     = errors.New("validation failed")
)
