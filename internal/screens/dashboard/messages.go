package dashboard

import "time"

// mentorReplyMsg is sent when the mentor round-trip finishes. Text is
// always populated; transport failures surface as the recovery line, so
// there is no error field.
type mentorReplyMsg struct {
	Text string
}

// spinnerTickMsg is sent at short intervals to animate the uplink spinner
// while a mentor reply is in flight.
type spinnerTickMsg time.Time

// LogoutMsg is emitted when the candidate disconnects. The app model
// clears the session and returns to the login screen.
type LogoutMsg struct{}
