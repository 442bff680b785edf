// Package models defines the recipe domain types: generated suggestions,
// their ingredient deduction lines, and the archived history record.
package models
