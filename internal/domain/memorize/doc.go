// Package memorize implements the pure memorization engine: text
// normalization, edit-distance similarity scoring, cloze generation,
// response validation, session step progression, and the streak/XP
// ledger rules.
//
// Every function in this package is side-effect free. The engine holds
// no persistent state; callers pass sessions, streaks, and verse text in
// as values and persist the returned updates themselves. Randomness (for
// the mask cloze policy) and the current time (for the ledger) are always
// injected so behavior is reproducible in tests.
package memorize
