package prompt

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/raphi011/ask/core"
)

func TestMultiSelect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		initial  []string
		optional bool
		want     []string
	}{
		{"space selects under cursor", " \r", nil, false, []string{"a"}},
		{"space toggles off", "  \x1b[B \r", nil, false, []string{"b"}},
		{"declaration order preserved", "\x1b[B\x1b[B \x1b[A\x1b[A \r", nil, false, []string{"a", "c"}},
		{"initial values kept", "\r", []string{"b"}, false, []string{"b"}},
		{"optional allows empty", "\r", nil, true, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := MultiSelect(MultiSelectParams[string]{
				Input:         strings.NewReader(tt.input),
				Output:        &bytes.Buffer{},
				Message:       "Pick some",
				Options:       options("a", "b", "c"),
				InitialValues: tt.initial,
				Optional:      tt.optional,
			})
			if err != nil {
				t.Fatalf("MultiSelect() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("MultiSelect() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMultiSelect_RequiresSelection(t *testing.T) {
	t.Parallel()

	// The first return is rejected by validation; selecting an option
	// afterwards lets the second return through.
	got, err := MultiSelect(MultiSelectParams[string]{
		Input:   strings.NewReader("\r \r"),
		Output:  &bytes.Buffer{},
		Message: "Pick some",
		Options: options("a", "b"),
	})
	if err != nil {
		t.Fatalf("MultiSelect() error = %v", err)
	}
	if !reflect.DeepEqual(got, []string{"a"}) {
		t.Errorf("MultiSelect() = %v, want [a]", got)
	}
}

func TestMultiSelect_SlidingWindow(t *testing.T) {
	t.Parallel()

	opts := make([]Option[int], 12)
	for i := range opts {
		opts[i] = Option[int]{Value: i}
	}

	// Moving down six times lands on the 7th option even though only six
	// rows are visible at a time.
	down := strings.Repeat("\x1b[B", 6)
	got, err := MultiSelect(MultiSelectParams[int]{
		Input:    strings.NewReader(down + " \r"),
		Output:   &bytes.Buffer{},
		Message:  "Pick some",
		Options:  opts,
		MaxItems: 6,
	})
	if err != nil {
		t.Fatalf("MultiSelect() error = %v", err)
	}
	if !reflect.DeepEqual(got, []int{6}) {
		t.Errorf("MultiSelect() = %v, want [6]", got)
	}

	// The cursor wraps over the full list, not the visible window.
	got, err = MultiSelect(MultiSelectParams[int]{
		Input:    strings.NewReader("\x1b[A \r"),
		Output:   &bytes.Buffer{},
		Message:  "Pick some",
		Options:  opts,
		MaxItems: 6,
	})
	if err != nil {
		t.Fatalf("MultiSelect() error = %v", err)
	}
	if !reflect.DeepEqual(got, []int{11}) {
		t.Errorf("MultiSelect() = %v, want [11]", got)
	}
}

func TestMultiSelect_Cancel(t *testing.T) {
	t.Parallel()

	_, err := MultiSelect(MultiSelectParams[string]{
		Input:   strings.NewReader(" \x1b"),
		Output:  &bytes.Buffer{},
		Message: "Pick some",
		Options: options("a", "b"),
	})
	if !core.IsCancel(err) {
		t.Errorf("MultiSelect() error = %v, want ErrCancelled", err)
	}
}
