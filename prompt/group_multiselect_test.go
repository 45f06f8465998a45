package prompt

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
)

func testGroups() []Group[string] {
	return []Group[string]{
		{Name: "Fruit", Options: options("apple", "banana")},
		{Name: "Veg", Options: options("carrot")},
	}
}

func TestGroupMultiSelect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		// Cursor path with headers: Fruit, apple, banana, Veg, carrot.
		{"header selects whole group", " \r", []string{"apple", "banana"}},
		{"member selection", "\x1b[B \r", []string{"apple"}},
		{"cross-group order", "\x1b[F \x1b[H\x1b[B \r", []string{"apple", "carrot"}},
		// Selecting every member completes the group; the header then
		// clears it.
		{"complete group cleared by header", "\x1b[B \x1b[B \x1b[A\x1b[A \x1b[B \r", []string{"apple"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := GroupMultiSelect(GroupMultiSelectParams[string]{
				Input:   strings.NewReader(tt.input),
				Output:  &bytes.Buffer{},
				Message: "Pick some",
				Groups:  testGroups(),
			})
			if err != nil {
				t.Fatalf("GroupMultiSelect() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("GroupMultiSelect() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGroupMultiSelect_HeaderEqualsAllMembers(t *testing.T) {
	t.Parallel()

	run := func(input string) []string {
		t.Helper()
		got, err := GroupMultiSelect(GroupMultiSelectParams[string]{
			Input:   strings.NewReader(input),
			Output:  &bytes.Buffer{},
			Message: "Pick some",
			Groups:  testGroups(),
		})
		if err != nil {
			t.Fatalf("GroupMultiSelect() error = %v", err)
		}
		return got
	}

	viaHeader := run(" \r")
	viaMembers := run("\x1b[B \x1b[B \r")
	if !reflect.DeepEqual(viaHeader, viaMembers) {
		t.Errorf("header selection %v != member selection %v", viaHeader, viaMembers)
	}
}

func TestGroupMultiSelect_DisabledHeaders(t *testing.T) {
	t.Parallel()

	// Without group selection the cursor path holds only the members.
	got, err := GroupMultiSelect(GroupMultiSelectParams[string]{
		Input:                 strings.NewReader(" \x1b[F \r"),
		Output:                &bytes.Buffer{},
		Message:               "Pick some",
		Groups:                testGroups(),
		DisableGroupSelection: true,
	})
	if err != nil {
		t.Fatalf("GroupMultiSelect() error = %v", err)
	}
	want := []string{"apple", "carrot"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("GroupMultiSelect() = %v, want %v", got, want)
	}
}

func TestGroupMultiSelect_Validation(t *testing.T) {
	t.Parallel()

	if _, err := GroupMultiSelect(GroupMultiSelectParams[string]{Message: "x"}); err == nil {
		t.Error("GroupMultiSelect() without groups should fail")
	}
	if _, err := GroupMultiSelect(GroupMultiSelectParams[string]{
		Message: "x",
		Groups:  []Group[string]{{Name: "empty"}},
	}); err == nil {
		t.Error("GroupMultiSelect() with an empty group should fail")
	}
}
