package errors

import "net/http"

var (
	ErrInvalidShipment = &DomainError{
		Code:    "INVALID_SHIPMENT",
		Message: "invalid shipment request",
		Status:  http.StatusBadRequest,
	}
	ErrZoneConfiguration = &DomainError{
		Code:    "ZONE_CONFIGURATION",
		Message: "pricing zones are misconfigured",
		Status:  http.StatusUnprocessableEntity,
	}
	ErrPackageNotFound = &DomainError{
		Code:    "PACKAGE_NOT_FOUND",
		Message: "package not found",
		Status:  http.StatusNotFound,
	}
	ErrPackageState = &DomainError{
		Code:    "PACKAGE_STATE",
		Message: "package is not in a state that allows this operation",
		Status:  http.StatusConflict,
	}
	ErrInvalidOverride = &DomainError{
		Code:    "INVALID_FEE_OVERRIDE",
		Message: "invalid fee override",
		Status:  http.StatusBadRequest,
	}
	ErrCheckoutFailed = &DomainError{
		Code:    "CHECKOUT_FAILED",
		Message: "could not create checkout session",
		Status:  http.StatusBadGateway,
	}
)
