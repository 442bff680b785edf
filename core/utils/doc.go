// Package utils provides type conversion helpers.
//
// Quantity fields arrive from HTTP clients and the LLM as arbitrary JSON
// scalars (numbers, numeric strings, null). The helpers here coerce such
// values into the concrete types the reconciliation logic needs, mapping
// anything invalid to the zero value rather than propagating NaN or errors.
package utils
