package finance

import "fmt"

// DefaultInvoicePrefix is used when company settings carry no prefix.
const DefaultInvoicePrefix = "INV"

// NextInvoiceNumber formats currentCount+1 as a zero-padded sequence,
// e.g. count 3 yields "INV-0004". The sequence is display-only and
// best-effort: generating against a stale count reissues a prior number,
// there is no reservation or uniqueness guarantee.
func NextInvoiceNumber(currentCount int, prefix string) string {
	if prefix == "" {
		prefix = DefaultInvoicePrefix
	}
	return fmt.Sprintf("%s-%04d", prefix, currentCount+1)
}
