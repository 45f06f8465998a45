// Package prompt provides interactive terminal prompts.
//
// Each prompt is the core engine configured with a variant-specific
// render function and key bindings.
//
// Available prompts:
//   - [Text]: single-line text input with caret editing
//   - [Password]: text input with masked rendering
//   - [Confirm]: yes/no confirmation
//   - [Select]: single selection from a list
//   - [MultiSelect]: multiple selection with checkbox toggling
//   - [GroupMultiSelect]: multiple selection across named groups
//   - [Suggest]: text input with fuzzy-filtered suggestions
//
// All prompts resolve to their typed value, or to core.ErrCancelled when
// the user aborts; test with core.IsCancel. Frames render to stderr by
// default so stdout stays clean for piping.
package prompt
