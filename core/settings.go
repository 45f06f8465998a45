package core

// Settings holds the user-facing message strings shared across prompt
// types. Callers pass them explicitly per prompt; zero fields fall back
// to the library defaults at construction time, so tests can override a
// single instance without cross-test leakage.
type Settings struct {
	// CancelMessage is rendered on the final frame of a cancelled prompt.
	CancelMessage string
	// ErrorMessage is used when a validator fails without a message.
	ErrorMessage string
}

// DefaultSettings returns the library-wide default messages.
func DefaultSettings() Settings {
	return Settings{
		CancelMessage: "Cancelled",
		ErrorMessage:  "Invalid value",
	}
}

// merged fills zero fields from the library defaults.
func (s Settings) merged() Settings {
	def := DefaultSettings()
	if s.CancelMessage == "" {
		s.CancelMessage = def.CancelMessage
	}
	if s.ErrorMessage == "" {
		s.ErrorMessage = def.ErrorMessage
	}
	return s
}
