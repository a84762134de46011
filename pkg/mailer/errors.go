package mailer

import "errors"

var (
	ErrNoRecipients       = errors.New("no recipients: set TO_CHURCH and/or TO_HOME")
	ErrImageRequired      = errors.New("image path is required for a variant with recipients")
	ErrNotImage           = errors.New("not an image")
	ErrMissingImage       = errors.New("missing image file")
	ErrMissingCredentials = errors.New("missing OAuth client credentials")
	ErrAuthorization      = errors.New("authorization failed")
	ErrSendFailed         = errors.New("send failed")
)
