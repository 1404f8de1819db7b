package checkout

import "errors"

var (
	ErrNothingToPay    = errors.New("quote total must be greater than zero")
	ErrMissingQuote    = errors.New("quote is required")
	ErrMissingRedirect = errors.New("success and cancel URLs are required")
)
