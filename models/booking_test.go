package models

import "testing"

func TestBookingStatusCanTransitionTo(t *testing.T) {
	cases := []struct {
		from BookingStatus
		to   BookingStatus
		want bool
	}{
		{BookingStatusPending, BookingStatusConfirmed, true},
		{BookingStatusPending, BookingStatusCancelled, true},
		{BookingStatusPending, BookingStatusCompleted, false},
		{BookingStatusPending, BookingStatusPending, false},
		{BookingStatusConfirmed, BookingStatusCompleted, true},
		{BookingStatusConfirmed, BookingStatusCancelled, false},
		{BookingStatusConfirmed, BookingStatusPending, false},
		{BookingStatusCompleted, BookingStatusPending, false},
		{BookingStatusCompleted, BookingStatusConfirmed, false},
		{BookingStatusCompleted, BookingStatusCancelled, false},
		{BookingStatusCancelled, BookingStatusPending, false},
		{BookingStatusCancelled, BookingStatusConfirmed, false},
		{BookingStatusCancelled, BookingStatusCompleted, false},
	}

	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Errorf("CanTransitionTo(%s -> %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestBookingStatusIsTerminal(t *testing.T) {
	if BookingStatusPending.IsTerminal() || BookingStatusConfirmed.IsTerminal() {
		t.Error("pending and confirmed must not be terminal")
	}
	if !BookingStatusCompleted.IsTerminal() || !BookingStatusCancelled.IsTerminal() {
		t.Error("completed and cancelled must be terminal")
	}
}

func TestBookingStatusIsValid(t *testing.T) {
	for _, s := range []BookingStatus{BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted, BookingStatusCancelled} {
		if !s.IsValid() {
			t.Errorf("%s should be valid", s)
		}
	}
	if BookingStatus("in_progress").IsValid() {
		t.Error("unknown status should not be valid")
	}
}
