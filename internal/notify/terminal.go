package notify

import (
	"fmt"
	"io"
	"os"
	"time"
)

// Bell beeps the terminal when a batch item ends in one of the alert
// statuses, typically FAILED, so a long batch can run unattended. Items that
// finish within Quiet of the last beep stay silent; Missed counts them.
type Bell struct {
	// Out receives the BEL character. Nil means os.Stderr.
	Out io.Writer
	// Quiet is the minimum gap between two beeps.
	Quiet time.Duration

	alertOn map[string]bool
	last    time.Time
	muted   bool
	missed  int
}

// NewBell returns a bell that alerts on the given item statuses.
func NewBell(quiet time.Duration, statuses []string) *Bell {
	alertOn := make(map[string]bool, len(statuses))
	for _, s := range statuses {
		alertOn[s] = true
	}
	return &Bell{Quiet: quiet, alertOn: alertOn}
}

// Ring beeps for n if its status is an alert status, the bell is not muted
// and the quiet period since the last beep has passed. It reports whether
// the terminal was beeped.
func (b *Bell) Ring(n Notification) bool {
	if !b.alertOn[n.Status] {
		return false
	}
	if b.muted || (!b.last.IsZero() && n.Timestamp.Sub(b.last) < b.Quiet) {
		b.missed++
		return false
	}

	out := b.Out
	if out == nil {
		out = os.Stderr
	}
	fmt.Fprint(out, "\a")
	b.last = n.Timestamp
	return true
}

// Missed returns how many alert items did not beep because the bell was
// muted or quiet.
func (b *Bell) Missed() int { return b.missed }

// Mute silences the bell until Unmute.
func (b *Bell) Mute() { b.muted = true }

// Unmute turns the bell back on.
func (b *Bell) Unmute() { b.muted = false }

// Muted reports whether the bell is silenced.
func (b *Bell) Muted() bool { return b.muted }
