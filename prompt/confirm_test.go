package prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/raphi011/ask/core"
)

func TestConfirm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		initial bool
		want    bool
	}{
		{"y confirms", "y", false, true},
		{"Y confirms", "Y", false, true},
		{"n declines", "n", true, false},
		{"N declines", "N", true, false},
		{"return keeps initial yes", "\r", true, true},
		{"return keeps initial no", "\r", false, false},
		{"arrow toggles to yes", "\x1b[C\r", false, true},
		{"arrow toggles back", "\x1b[C\x1b[D\r", false, false},
		{"up toggles too", "\x1b[A\r", false, true},
		{"h alias toggles", "h\r", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Confirm(ConfirmParams{
				Input:        strings.NewReader(tt.input),
				Output:       &bytes.Buffer{},
				Message:      "Proceed?",
				InitialValue: tt.initial,
			})
			if err != nil {
				t.Fatalf("Confirm() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Confirm() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfirm_Cancel(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"\x03", "\x1b"} {
		_, err := Confirm(ConfirmParams{
			Input:   strings.NewReader(input),
			Output:  &bytes.Buffer{},
			Message: "Proceed?",
		})
		if !core.IsCancel(err) {
			t.Errorf("Confirm(%q) error = %v, want ErrCancelled", input, err)
		}
	}
}

func TestConfirm_CustomLabels(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	got, err := Confirm(ConfirmParams{
		Input:    strings.NewReader("y"),
		Output:   out,
		Message:  "Deploy?",
		Active:   "Ship it",
		Inactive: "Hold off",
	})
	if err != nil {
		t.Fatalf("Confirm() error = %v", err)
	}
	if !got {
		t.Error("Confirm() = false, want true")
	}
	if !strings.Contains(out.String(), "Ship it") {
		t.Error("output should contain the active label")
	}
}
