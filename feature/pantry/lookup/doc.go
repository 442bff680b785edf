// Package lookup provides the barcode-to-product resolution client.
//
// It queries the UPCItemDB lookup API and maps every failure mode (network
// error, non-OK response, empty result set, unparseable body) to a
// not-found Product whose Name defaults to the queried code. The scan
// reconciliation path therefore never has to branch on lookup errors.
//
// # Client Interface
//
// The Client interface abstracts the HTTP API so reconciliation logic can be
// unit tested with the mock in lookup/mocks.
package lookup
