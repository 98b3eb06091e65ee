package sqlassets

import _ "embed"

//go:embed schema/events/events.sql
var EventsSQL string

//go:embed schema/events/bookings.sql
var BookingsSQL string
