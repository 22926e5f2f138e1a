package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madison-jay/edike-backend/internal/pkg/validator"
)

const (
	testBatchID = "7b1d2f7e-9c1a-4f5b-8a2e-3d4c5b6a7f80"
	testItemID  = "0e8f1a2b-3c4d-5e6f-7a8b-9c0d1e2f3a4b"
	testBoxID   = "1a2b3c4d-5e6f-7a8b-9c0d-1e2f3a4b5c6d"
	testOrderID = "9f8e7d6c-5b4a-3928-1706-f5e4d3c2b1a0"
)

func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	return errs.ToMap()
}

func TestAddStockRequestValidate(t *testing.T) {
	valid := AddStockRequest{
		BatchID:       testBatchID,
		ContentsType:  string(ContentsProduct),
		ContentsID:    testItemID,
		QuantityInBox: 24,
		BoxesCount:    10,
		Location:      "warehouse-a",
	}
	assert.NoError(t, valid.Validate())

	bad := valid
	bad.ContentsType = "pallet"
	bad.QuantityInBox = 0
	bad.BoxesCount = -1
	bad.Location = " "

	fields := fieldsOf(t, bad.Validate())
	assert.Contains(t, fields, "contents_type")
	assert.Contains(t, fields, "quantity_in_box")
	assert.Contains(t, fields, "boxes_count")
	assert.Contains(t, fields, "location")
	assert.NotContains(t, fields, "batch_id")
}

func TestSellStockRequestValidate(t *testing.T) {
	empty := SellStockRequest{}
	fields := fieldsOf(t, empty.Validate())
	assert.Contains(t, fields, "items")

	ok := SellStockRequest{Items: []SellStockItem{
		{BoxID: testBoxID, RequestedQuantity: 5, OrderID: testOrderID},
		{BoxID: testBoxID, RequestedQuantity: 2},
	}}
	assert.NoError(t, ok.Validate(), "order id is optional")

	bad := SellStockRequest{Items: []SellStockItem{
		{BoxID: "box-1", RequestedQuantity: 0, OrderID: "order-1"},
	}}
	fields = fieldsOf(t, bad.Validate())
	assert.Contains(t, fields, "items[0].box_id")
	assert.Contains(t, fields, "items[0].requested_quantity")
	assert.Contains(t, fields, "items[0].order_id")
}

func TestContentsTypeValid(t *testing.T) {
	assert.True(t, ContentsProduct.Valid())
	assert.True(t, ContentsComponent.Valid())
	assert.False(t, ContentsType("pallet").Valid())
}
