package domain

import "errors"

var (
	ErrMalformedOutput   = errors.New("model output is not valid JSON for this step")
	ErrTransport         = errors.New("upstream model call failed")
	ErrEmptyResult       = errors.New("model returned no ideas")
	ErrMissingCredential = errors.New("no API key configured")
)
