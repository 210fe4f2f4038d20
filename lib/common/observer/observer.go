package observer

import (
	"github.com/GianlucaGuarini/go-observable"
)

// ConfirmationObserver is triggered by the aggregator for every
// confirmation it folds into the running result.
var ConfirmationObserver = observable.New()

const (
	EventConfirmationAccepted = "confirmation-accepted"
	EventConfirmationRejected = "confirmation-rejected"
)

// Event is passed to the handlers of ConfirmationObserver.
type Event struct {
	Source string `json:"source"`
	Voter  string `json:"voter,omitempty"`
	Error  error  `json:"-"`
}

func NewEvent(source, voter string) Event {
	return Event{
		Source: source,
		Voter:  voter,
	}
}

func (e Event) String() string {
	if e.Error != nil {
		return e.Source + ": " + e.Error.Error()
	}
	if len(e.Voter) < 1 {
		return e.Source
	}

	return e.Source + ": " + e.Voter
}
