package styles

// Symbols holds the glyph set used to draw prompt frames and indicators.
type Symbols struct {
	StepActive string // focused prompt
	StepSubmit string // submitted prompt
	StepCancel string // cancelled prompt
	StepError  string // prompt with a validation error

	BarStart string // first gutter line (intro)
	Bar      string // gutter bar
	BarEnd   string // last gutter line

	RadioActive   string // highlighted select option
	RadioInactive string // other select options

	CheckboxActive   string // highlighted, unselected multiselect option
	CheckboxSelected string // selected multiselect option
	CheckboxInactive string // unselected multiselect option

	Caret string // end-of-line text caret

	Spinner []string // spinner animation frames

	BarFilled string // progress bar filled cell
	BarEmpty  string // progress bar empty cell
}

// Default symbols (unicode)
var unicodeSymbols = Symbols{
	StepActive: "◆",
	StepSubmit: "◇",
	StepCancel: "■",
	StepError:  "▲",

	BarStart: "┌",
	Bar:      "│",
	BarEnd:   "└",

	RadioActive:   "●",
	RadioInactive: "○",

	CheckboxActive:   "◻",
	CheckboxSelected: "◼",
	CheckboxInactive: "◻",

	Caret: "█",

	Spinner: []string{"◒", "◐", "◓", "◑"},

	BarFilled: "█",
	BarEmpty:  "░",
}

// ASCII-safe fallback for terminals without unicode support
var asciiSymbols = Symbols{
	StepActive: "*",
	StepSubmit: "o",
	StepCancel: "x",
	StepError:  "!",

	BarStart: ",",
	Bar:      "|",
	BarEnd:   "'",

	RadioActive:   ">",
	RadioInactive: " ",

	CheckboxActive:   "[ ]",
	CheckboxSelected: "[+]",
	CheckboxInactive: "[ ]",

	Caret: "_",

	Spinner: []string{"-", "\\", "|", "/"},

	BarFilled: "#",
	BarEmpty:  "-",
}

// useASCII tracks whether the ASCII fallback set is enabled
var useASCII bool

// currentSymbols holds the active symbol set
var currentSymbols = unicodeSymbols

// SetASCII enables or disables the ASCII-safe symbol set.
func SetASCII(enabled bool) {
	useASCII = enabled
	if enabled {
		currentSymbols = asciiSymbols
	} else {
		currentSymbols = unicodeSymbols
	}
}

// ASCIIEnabled returns whether the ASCII fallback set is enabled.
func ASCIIEnabled() bool {
	return useASCII
}

// CurrentSymbols returns the active symbol set.
func CurrentSymbols() Symbols {
	return currentSymbols
}

// SetSymbols replaces the active symbol set wholesale. Zero-value fields
// fall back to the current set, so partial overrides are safe.
func SetSymbols(s Symbols) {
	currentSymbols = currentSymbols.merge(s)
}

func (base Symbols) merge(o Symbols) Symbols {
	pick := func(v, def string) string {
		if v != "" {
			return v
		}
		return def
	}
	return Symbols{
		StepActive: pick(o.StepActive, base.StepActive),
		StepSubmit: pick(o.StepSubmit, base.StepSubmit),
		StepCancel: pick(o.StepCancel, base.StepCancel),
		StepError:  pick(o.StepError, base.StepError),

		BarStart: pick(o.BarStart, base.BarStart),
		Bar:      pick(o.Bar, base.Bar),
		BarEnd:   pick(o.BarEnd, base.BarEnd),

		RadioActive:   pick(o.RadioActive, base.RadioActive),
		RadioInactive: pick(o.RadioInactive, base.RadioInactive),

		CheckboxActive:   pick(o.CheckboxActive, base.CheckboxActive),
		CheckboxSelected: pick(o.CheckboxSelected, base.CheckboxSelected),
		CheckboxInactive: pick(o.CheckboxInactive, base.CheckboxInactive),

		Caret: pick(o.Caret, base.Caret),

		Spinner: func() []string {
			if len(o.Spinner) > 0 {
				return o.Spinner
			}
			return base.Spinner
		}(),

		BarFilled: pick(o.BarFilled, base.BarFilled),
		BarEmpty:  pick(o.BarEmpty, base.BarEmpty),
	}
}
