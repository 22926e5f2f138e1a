package inventory

import (
	"crypto/rand"
	"fmt"
)

const barcodeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const barcodeSuffixLen = 6

// NewBarcode builds a box barcode of form QR-{sku}-{batchNumber}-{suffix},
// where the suffix is 6 random characters from [A-Z0-9]. Uniqueness is
// enforced by the database constraint; callers retry on conflict.
func NewBarcode(sku, batchNumber string) (string, error) {
	buf := make([]byte, barcodeSuffixLen)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random suffix: %w", err)
	}
	for i := range buf {
		buf[i] = barcodeCharset[int(buf[i])%len(barcodeCharset)]
	}
	return fmt.Sprintf("QR-%s-%s-%s", sku, batchNumber, buf), nil
}
