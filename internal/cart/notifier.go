package cart

// Notifier surfaces user-visible confirmations and failures. The CLI plugs in
// a printing implementation; libraries default to Nop.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

type nopNotifier struct{}

func (nopNotifier) Success(string) {}
func (nopNotifier) Error(string)   {}

// Nop returns a Notifier that discards all messages.
func Nop() Notifier { return nopNotifier{} }
