package types

// EventCount is the number of individual events tracked per athlete.
const EventCount = 3

// EventNames lists the tracked events in sheet column order.
var EventNames = [EventCount]string{"800m", "1600m", "3200m"}

// PRRecord holds one athlete's best recorded times, one per event. A time may
// be a sentinel ("--" or empty) when no time has been recorded yet.
type PRRecord struct {
	Name  string             `json:"name"`
	Times [EventCount]string `json:"times"` // 800m, 1600m, 3200m
}

// RelayLeg is one relay team time an athlete contributed to at a meet.
type RelayLeg struct {
	Time  string `json:"time"`
	Event string `json:"event"`
}

// RaceResult is one athlete's performance at one named meet: up to three
// individual event times plus any relay legs. Immutable once fetched.
type RaceResult struct {
	Name  string             `json:"name"`
	Meet  string             `json:"meet"`
	Times [EventCount]string `json:"times"` // 800m, 1600m, 3200m
	Legs  []RelayLeg         `json:"legs"`
}
