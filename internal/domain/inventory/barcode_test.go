package inventory

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBarcodeFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^QR-WID-100-BATCH-2026-08-[A-Z0-9]{6}$`)

	for i := 0; i < 50; i++ {
		barcode, err := NewBarcode("WID-100", "BATCH-2026-08")
		require.NoError(t, err)
		assert.Regexp(t, pattern, barcode)
	}
}

func TestNewBarcodeSuffixVaries(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		barcode, err := NewBarcode("SKU", "B1")
		require.NoError(t, err)
		seen[barcode] = true
	}
	// 36^6 values; 200 draws colliding down to a handful would mean the
	// suffix is not random at all.
	assert.Greater(t, len(seen), 190)
}
