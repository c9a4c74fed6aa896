// Package thrower provides fire-and-forget launching of background work,
// with optional bounding of concurrent launches, e.g. to keep "nice to have"
// background work from crowding out everything else.
//
// # Launch operations
//
// There are two launch operations, both available as methods of [Launcher],
// and as package-level functions (which use a shared default instance):
//
//   - [Launcher.Go] always schedules the work item (subject only to
//     validation), and is never counted against the concurrency limit
//   - [Launcher.TryGo] is the "optional" variant, which admits the work item
//     only if the number of concurrently-admitted optional launches does not
//     exceed the configured limit, reporting the admission decision as a bool
//
// Neither operation blocks the caller. Work items run on their own
// goroutines, decoupled from the caller's continuation, with no ordering
// guarantees between distinct work items, and no cancellation mechanism.
//
// # Failure routing
//
// A work item fails if it returns a non-nil error, or panics (recovered, and
// wrapped as [PanicError]). Failures are delivered to the optional handler,
// on the work item's goroutine, after the work item terminates. Without a
// handler, failures are discarded, and will never propagate to, or
// terminate, any other part of the process. See also [LauncherConfig.Logger],
// which provides visibility of the discard path.
//
// # Concurrency limit
//
// The limit defaults to half the available parallelism (at least 1), and may
// be read or adjusted at any time, via [Launcher.ConcurrencyLimit] and
// [Launcher.SetConcurrencyLimit]. Each [Launcher.TryGo] reads the limit
// exactly once, at the admission decision. The admission slot is released
// when the call returns, not when the work item finishes - the limit bounds
// concurrent launch attempts, rather than concurrently-running work items.
package thrower
