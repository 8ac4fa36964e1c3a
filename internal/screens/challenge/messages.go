package challenge

import "github.com/abhisek/vexillo/internal/session"

// advanceMsg fires when the post-answer delay has elapsed.
type advanceMsg struct {
	Token session.Token
}

// countdownMsg fires once per second while feedback is shown.
type countdownMsg struct {
	Token session.Token
}

// factMsg carries a resolved fun fact.
type factMsg struct {
	Token session.Token
	Text  string
}

// spinnerTickMsg animates the fact loading indicator.
type spinnerTickMsg struct {
	Token session.Token
}
