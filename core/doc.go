// Package core implements the prompt engine shared by all prompt variants.
//
// A prompt is an event-driven state machine: it renders frames to the
// terminal, decodes raw keypress input into normalized keys, and resolves
// to a final value or a cancellation once the user submits or aborts.
//
// The building blocks are:
//   - [KeyDecoder]: raw terminal bytes -> normalized [Key] events
//   - [Prompt]: state machine (value, caret, validation, submit/cancel)
//   - frame writer: diff-rendering against the previously written frame
//
// Variants (see the prompt package) supply a render function and register
// additional key handlers on top of the engine; they never mutate engine
// state outside those handlers.
package core
