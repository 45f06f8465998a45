package core

import (
	"unicode"
	"unicode/utf8"
)

// KeyName identifies a decoded key from the closed vocabulary understood
// by the prompt engine.
type KeyName string

const (
	KeyUp    KeyName = "up"
	KeyDown  KeyName = "down"
	KeyLeft  KeyName = "left"
	KeyRight KeyName = "right"
	KeyHome  KeyName = "home"
	KeyEnd   KeyName = "end"

	KeyReturn    KeyName = "return"
	KeyEscape    KeyName = "escape"
	KeyTab       KeyName = "tab"
	KeySpace     KeyName = "space"
	KeyBackspace KeyName = "backspace"
	KeyDelete    KeyName = "delete"
	KeyCtrlC     KeyName = "ctrl-c"
	KeyCtrlV     KeyName = "ctrl-v"

	// KeyChar carries a printable character in Key.Rune.
	KeyChar KeyName = "char"
)

// Key is a single normalized keypress event.
type Key struct {
	Name KeyName
	// Rune holds the literal character for KeyChar and KeySpace events.
	Rune rune
}

// IsMovement reports whether the key navigates (arrows, home/end).
func (k Key) IsMovement() bool {
	switch k.Name {
	case KeyUp, KeyDown, KeyLeft, KeyRight, KeyHome, KeyEnd:
		return true
	}
	return false
}

// vi-style navigation aliases, active when the consuming prompt does not
// accept free text input
var aliasKeys = map[rune]KeyName{
	'h': KeyLeft,
	'j': KeyDown,
	'k': KeyUp,
	'l': KeyRight,
}

// KeyDecoder translates raw terminal bytes into Key events. It keeps an
// internal carry buffer so multi-byte UTF-8 runes split across reads are
// reassembled.
type KeyDecoder struct {
	aliases bool
	carry   []byte
}

// NewKeyDecoder returns a decoder. With aliases enabled, h/j/k/l resolve
// to the corresponding directional keys in addition to the arrow keys.
func NewKeyDecoder(aliases bool) *KeyDecoder {
	return &KeyDecoder{aliases: aliases}
}

// Decode translates one chunk of input into zero or more keys. In raw
// mode a keypress arrives as a complete chunk, so an escape sequence cut
// off at the end of a chunk is treated as a lone escape key.
func (d *KeyDecoder) Decode(data []byte) []Key {
	if len(d.carry) > 0 {
		data = append(d.carry, data...)
		d.carry = nil
	}

	var keys []Key
	for i := 0; i < len(data); {
		b := data[i]

		if b == 0x1b {
			if i == len(data)-1 {
				// A lone ESC press arrives as a single byte in raw mode.
				keys = append(keys, Key{Name: KeyEscape})
				i++
				continue
			}
			key, consumed := parseEscape(data[i:])
			if consumed == 0 {
				// Sequence cut off at the end of the chunk; reassemble
				// with the next read.
				d.carry = append(d.carry, data[i:]...)
				break
			}
			if key != "" {
				keys = append(keys, Key{Name: key})
			}
			i += consumed
			continue
		}

		if k, ok := controlKey(b); ok {
			keys = append(keys, k)
			i++
			continue
		}

		if !utf8.FullRune(data[i:]) {
			// Incomplete rune, keep for the next chunk.
			d.carry = append(d.carry, data[i:]...)
			break
		}
		r, size := utf8.DecodeRune(data[i:])
		i += size
		if r == utf8.RuneError && size == 1 {
			continue
		}
		if !unicode.IsPrint(r) {
			continue
		}
		if d.aliases {
			if dir, ok := aliasKeys[r]; ok {
				keys = append(keys, Key{Name: dir, Rune: r})
				continue
			}
		}
		keys = append(keys, Key{Name: KeyChar, Rune: r})
	}
	return keys
}

// controlKey maps single control bytes to keys.
func controlKey(b byte) (Key, bool) {
	switch b {
	case 0x03:
		return Key{Name: KeyCtrlC}, true
	case 0x16:
		return Key{Name: KeyCtrlV}, true
	case '\r', '\n':
		return Key{Name: KeyReturn}, true
	case '\t':
		return Key{Name: KeyTab}, true
	case ' ':
		return Key{Name: KeySpace, Rune: ' '}, true
	case 0x7f, 0x08:
		return Key{Name: KeyBackspace}, true
	}
	return Key{}, false
}

// parseEscape interprets an escape sequence at the start of seq. It
// returns the decoded key name ("" for sequences outside the vocabulary)
// and the number of bytes consumed; consumed == 0 means the sequence is
// incomplete.
func parseEscape(seq []byte) (KeyName, int) {
	if len(seq) < 2 {
		return "", 0
	}

	switch seq[1] {
	case '[':
		return parseCSI(seq)
	case 'O':
		// SS3 sequences, used by some terminals in application mode.
		if len(seq) < 3 {
			return "", 0
		}
		return csiFinal(seq[2]), 3
	default:
		// ESC followed by an unrelated byte: a lone escape keypress.
		return KeyEscape, 1
	}
}

// parseCSI interprets ESC [ ... sequences.
func parseCSI(seq []byte) (KeyName, int) {
	// Scan for the final byte (0x40-0x7e) after the parameters.
	for i := 2; i < len(seq); i++ {
		b := seq[i]
		if b >= 0x40 && b <= 0x7e {
			if b == '~' {
				return tildeKey(seq[2:i]), i + 1
			}
			return csiFinal(b), i + 1
		}
		if i > 18 {
			// Malformed sequence, drop what we have.
			return "", i
		}
	}
	return "", 0
}

func csiFinal(b byte) KeyName {
	switch b {
	case 'A':
		return KeyUp
	case 'B':
		return KeyDown
	case 'C':
		return KeyRight
	case 'D':
		return KeyLeft
	case 'H':
		return KeyHome
	case 'F':
		return KeyEnd
	}
	return ""
}

// tildeKey maps the parameter of ESC [ n ~ sequences.
func tildeKey(param []byte) KeyName {
	switch string(param) {
	case "1", "7":
		return KeyHome
	case "3":
		return KeyDelete
	case "4", "8":
		return KeyEnd
	}
	return ""
}
