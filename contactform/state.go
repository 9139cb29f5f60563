package contactform

// State is the rendering mode of a contact form at a point in time.
type State int

const (
	Idle State = iota
	Submitting
	Succeeded
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Submitting:
		return "submitting"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Settled reports whether a submission has resolved and the form waits for the
// user to start over.
func (s State) Settled() bool {
	return s == Succeeded || s == Failed
}

// View is a snapshot of a controller. Message is only set when Settled.
type View struct {
	State   State
	Message string
}
