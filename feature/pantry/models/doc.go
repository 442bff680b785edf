// Package models defines the pantry domain types: inventory records, the
// code-keyed inventory mapping, scan results, and recipe deduction lines.
package models
