package application

import (
	pkgDomain "github.com/viajabus/booking/pkg/domain"
)

// Command names handled by the booking slice.
const (
	CommandBookSeat      = "BookSeat"
	CommandCancelBooking = "CancelBooking"
)

type bookSeatCommand struct {
	data BookSeatInput
}

func (c bookSeatCommand) CommandName() string {
	return CommandBookSeat
}

func (c bookSeatCommand) Payload() BookSeatInput {
	return c.data
}

// NewBookSeatCommand wraps a booking request for dispatch on the command bus.
func NewBookSeatCommand(data BookSeatInput) pkgDomain.Command[BookSeatInput] {
	return bookSeatCommand{data: data}
}

type cancelBookingCommand struct {
	data CancelBookingInput
}

func (c cancelBookingCommand) CommandName() string {
	return CommandCancelBooking
}

func (c cancelBookingCommand) Payload() CancelBookingInput {
	return c.data
}

// NewCancelBookingCommand wraps a cancellation request for dispatch on the
// command bus.
func NewCancelBookingCommand(data CancelBookingInput) pkgDomain.Command[CancelBookingInput] {
	return cancelBookingCommand{data: data}
}
