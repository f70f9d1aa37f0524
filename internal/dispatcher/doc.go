// Package dispatcher maps key sequences to motion actions and applies
// them to selection sets.
//
// Actions come in two kinds. Point actions move the cursor of each
// selection; with the extend flag set the anchor stays put, otherwise
// the selection collapses to a caret at the target. Region actions
// replace each selection outright with a computed anchor/cursor pair.
// Every region action names the point action that serves as its extend
// form, so a keymap can pair a lowercase select key with its uppercase
// extend twin.
//
// Counts are applied here, not in the motion functions: a point action
// runs count times feeding each result into the next step, and a
// region action keeps the first anchor while re-running from the
// cursor. The find family is the exception; those actions take the
// count directly because "the count-th occurrence" is not the same as
// repeating "the next occurrence" when matches are adjacent.
//
// Basic setup:
//
//	reg := dispatcher.NewRegistry()
//	if err := reg.BindDefaults(); err != nil { ... }
//
//	d := dispatcher.New(reg)
//	err := d.Dispatch(ctx, sels, dispatcher.Input{Mode: "normal", Keys: "w", Count: 3})
package dispatcher
