package domain

type Cause string

const (
	CauseRemote     Cause = "remote_error"
	CauseConnection Cause = "connection_error"
	CauseUnexpected Cause = "unexpected_error"
)

// Result is the outcome of a single adapter call. Exactly one of the
// success text or the failure message is meaningful, selected by OK.
type Result struct {
	OK      bool
	Text    string
	Message string
	Cause   Cause
}

func Success(text string) Result {
	return Result{OK: true, Text: text}
}

func Failure(message string, cause Cause) Result {
	return Result{Message: message, Cause: cause}
}

// Speech returns the text a host should present to the user.
func (r Result) Speech() string {
	if r.OK {
		return r.Text
	}
	return r.Message
}

func (r Result) String() string {
	if r.OK {
		return "success: " + r.Text
	}
	return string(r.Cause) + ": " + r.Message
}
