package domain

import "errors"

var (
	// ErrProductNotFound is returned when the catalog has no item for the requested ASIN
	ErrProductNotFound = errors.New("product not found in catalog")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrThrottled is returned when the Product Advertising API rejects a call for exceeding its request rate
	ErrThrottled = errors.New("catalog API request throttled")

	// ErrInvalidCredentials is returned when the API rejects the access key or request signature
	ErrInvalidCredentials = errors.New("catalog API rejected credentials")

	// ErrAssociateValidation is returned when the partner tag is not a valid associate for the marketplace
	ErrAssociateValidation = errors.New("associate tag validation failed")

	// ErrCatalogAPIFailure is returned when a Product Advertising API request fails
	ErrCatalogAPIFailure = errors.New("catalog API request failed")
)
