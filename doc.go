// Package tickbridge is a client bridge to an external real-time
// simulation engine that exposes its state only through pull-based,
// non-blocking native entry points. The engine advances its own
// simulation at 120 Hz; consumers discover new ticks by polling.
//
// The bridge provides three layers:
//
//   - Interface translates each native call into a typed result:
//     command statuses become nil or *Error, buffer queries become
//     decoded records or an absent result.
//   - Physicist and Packeteer turn "give me the latest state" into
//     "give me the next new state", with a rate floor that protects
//     the engine and a deadline that catches a frozen one.
//   - bind loads the native library and exposes its entry points as a
//     plain struct of Go funcs, so every layer above it can be tested
//     against closures.
//
// Polling faster than once per millisecond has been observed to
// destabilize the engine. The pollers enforce that floor; do not call
// the Interface query methods in a tight loop yourself.
package tickbridge
