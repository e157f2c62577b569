package farm

import "errors"

var (
	ErrInvalidState      = errors.New("action not allowed in current plot status")
	ErrNotReady          = errors.New("crop is not ready for harvest")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrUnknownCrop       = errors.New("unknown crop")
	ErrUnknownAction     = errors.New("unknown action type")
	ErrInvalidLocation   = errors.New("location out of range")
	ErrPlotNotFound      = errors.New("plot not found")
	ErrCorruptFarm       = errors.New("farm state is structurally corrupt")
)
