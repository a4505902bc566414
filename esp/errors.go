package esp

import "errors"

var (
	// ErrNoDialer is returned when a Driver is constructed without a Dialer.
	//
	// This indicates a configuration error. A Dialer is required in order to
	// establish a connection to the module.
	ErrNoDialer = errors.New("no dialer configured")

	// ErrNotInitialized is returned when the Dialer hands back no Transport,
	// or when an operation is attempted on a Driver that was not created via
	// New.
	ErrNotInitialized = errors.New("driver not initialized")

	// ErrAlreadyClosed is returned when Close is called on a Driver that has
	// already been closed, and by every operation after that.
	ErrAlreadyClosed = errors.New("driver already closed")

	// ErrLoopRunning is returned when Loop is called while another Loop is
	// still running on the same Driver.
	ErrLoopRunning = errors.New("loop already running")

	// ErrBusy is returned when a command is issued while another command is
	// still outstanding.
	//
	// The outstanding command is not affected. Callers typically retry after
	// the pending command reports its result to the Handler.
	ErrBusy = errors.New("command outstanding")

	// ErrInvalidLinkID is returned for a multiplexed link id outside 0..4.
	ErrInvalidLinkID = errors.New("invalid link id")

	// ErrFieldTooLong is returned when a string argument exceeds what the
	// firmware accepts (SSID, password, domain name).
	ErrFieldTooLong = errors.New("field too long")

	// ErrPayloadTooLarge is returned when a send payload exceeds the
	// firmware's per-send limit.
	ErrPayloadTooLarge = errors.New("payload too large")

	// ErrEmptyPayload is returned when a send is requested with no data.
	ErrEmptyPayload = errors.New("empty payload")

	// ErrNoData is returned by ReadByte when nothing is buffered.
	ErrNoData = errors.New("no data buffered")
)
