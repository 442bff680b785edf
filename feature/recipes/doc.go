// Package recipes implements recipe generation and application.
//
// The generator sends selected inventory records to a language-model
// completion API and parses the response into a Suggestion. Applying a
// suggestion maps its ingredients onto pantry deductions, prunes depleted
// records, and archives the suggestion into the gorm-backed history store.
//
// The history database is optional: without it the pantry still works and
// only archiving and the history endpoints are unavailable.
package recipes
