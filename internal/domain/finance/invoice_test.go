package finance

import "testing"

func TestNextInvoiceNumber(t *testing.T) {
	if got := NextInvoiceNumber(3, "INV"); got != "INV-0004" {
		t.Fatalf("expected INV-0004, got %q", got)
	}
	if got := NextInvoiceNumber(0, ""); got != "INV-0001" {
		t.Fatalf("expected default prefix, got %q", got)
	}
	if got := NextInvoiceNumber(41, "SHH"); got != "SHH-0042" {
		t.Fatalf("expected SHH-0042, got %q", got)
	}
	// Sequence outgrows the padding rather than truncating.
	if got := NextInvoiceNumber(9999, "INV"); got != "INV-10000" {
		t.Fatalf("expected INV-10000, got %q", got)
	}
}
