package application

import (
	pkgApp "github.com/viajabus/booking/pkg/application"
	pkgDomain "github.com/viajabus/booking/pkg/domain"
)

// Event names published by the booking slice.
const (
	EventTravelCreated    = "TravelCreated"
	EventTravelDeleted    = "TravelDeleted"
	EventSeatBooked       = "SeatBooked"
	EventBookingCancelled = "BookingCancelled"
)

// EventBus is the bus type every mutating use-case publishes on.
type EventBus = pkgApp.EventBus[pkgDomain.Event[string], string]

type bookingEvent struct {
	name string
	data string
}

func (e bookingEvent) EventName() string {
	return e.name
}

func (e bookingEvent) Payload() string {
	return e.data
}

// NewTravelCreatedEvent announces a newly scheduled travel.
func NewTravelCreatedEvent(data string) pkgDomain.Event[string] {
	return bookingEvent{name: EventTravelCreated, data: data}
}

// NewTravelDeletedEvent announces a removed travel.
func NewTravelDeletedEvent(data string) pkgDomain.Event[string] {
	return bookingEvent{name: EventTravelDeleted, data: data}
}

// NewSeatBookedEvent announces a booked seat.
func NewSeatBookedEvent(data string) pkgDomain.Event[string] {
	return bookingEvent{name: EventSeatBooked, data: data}
}

// NewBookingCancelledEvent announces a cancelled booking.
func NewBookingCancelledEvent(data string) pkgDomain.Event[string] {
	return bookingEvent{name: EventBookingCancelled, data: data}
}
