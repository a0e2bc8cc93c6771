package utils

import "errors"

var (
	ErrSessionNotFound         = errors.New("quiz session not found")
	ErrStepIncomplete          = errors.New("current step is not answered")
	ErrUnknownOption           = errors.New("option is not offered by the current step")
	ErrQuizSubmitted           = errors.New("quiz already submitted")
	ErrQuizNotSubmitted        = errors.New("quiz not submitted yet")
	ErrPackageNotFound         = errors.New("package not found")
	ErrPackageGenerationFailed = errors.New("package generation failed")
	ErrMalformedResponse       = errors.New("malformed recommendation response")
	ErrRendererUnavailable     = errors.New("globe renderer unavailable")
	ErrInvalidInput            = errors.New("invalid input")
	ErrDatabaseError           = errors.New("database error")
)
