// Package driven defines the interfaces that core and its callers use
// to reach infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal
// architecture. The diff engine itself is pure computation; these
// ports cover its collaborators:
//
//   - DocumentLoader / ValueLoader: parse serialized text into
//     validated trees before the engine runs
//   - DiffRenderer: format diff results for humans or machines
//   - LineResolver: map generic diff paths back to source lines
//     (best-effort, unrelated to diff correctness)
//   - RuleStore: persisted identity rules and CLI defaults
//   - HistoryStore: diff-run history (the engine never persists state;
//     the CLI records runs after the call)
//   - Fetcher: retrieves remote documents for diffing
package driven
