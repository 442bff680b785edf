package models

// Record is one tracked product in the pantry.
//
// Code is the canonical UPC/EAN key; it doubles as the storage key, so record
// identity and key are the same value. The persisted field name stays "upc"
// for compatibility with existing pantry.json blobs.
type Record struct {
	Code        string   `json:"upc"`
	Name        string   `json:"name"`
	Brand       string   `json:"brand"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
	Quantity    float64  `json:"quantity"`
	Units       string   `json:"units"`
}

// Inventory maps canonical product codes to records.
type Inventory map[string]Record

// NewInventory returns an empty inventory.
func NewInventory() Inventory {
	return make(Inventory)
}

// ScanResult is the outcome of a scan reconciliation, for preview and commit
// alike.
//
// Existing reports whether the code was already tracked. Found reports whether
// the product's identity is resolved (previously known, looked up, or manually
// named); callers use it to decide whether to prompt for a name.
type ScanResult struct {
	Existing bool   `json:"existing"`
	Found    bool   `json:"found"`
	Record   Record `json:"item"`
}

// Deduction is one ingredient line applied against the inventory.
// Units are informational only; no unit conversion is performed.
type Deduction struct {
	Code     string  `json:"upc"`
	Required float64 `json:"required"`
	Units    string  `json:"units"`
}
