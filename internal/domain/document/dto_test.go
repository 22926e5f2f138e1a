package document

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madison-jay/edike-backend/internal/pkg/validator"
)

const testEmployeeID = "018f3a2b-7c4d-7e5f-8a9b-0c1d2e3f4a5b"

func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	return verrs.ToMap()
}

func TestCreateEmployeeDocumentsRequestValidate(t *testing.T) {
	valid := CreateEmployeeDocumentsRequest{
		EmployeeID: testEmployeeID,
		Documents: []DocumentInput{
			{Name: "Employment contract", Type: "pdf", URL: "https://files.example.com/contract.pdf", Category: "contracts"},
		},
	}
	require.NoError(t, valid.Validate())

	t.Run("empty document list", func(t *testing.T) {
		req := CreateEmployeeDocumentsRequest{EmployeeID: testEmployeeID}
		fields := fieldsOf(t, req.Validate())
		assert.Contains(t, fields, "documents")
	})

	t.Run("bad item fields carry their index", func(t *testing.T) {
		req := CreateEmployeeDocumentsRequest{
			EmployeeID: testEmployeeID,
			Documents: []DocumentInput{
				{Name: "", Type: strings.Repeat("x", 51), URL: "", Category: "selfies"},
			},
		}
		fields := fieldsOf(t, req.Validate())
		assert.Contains(t, fields, "documents[0].name")
		assert.Contains(t, fields, "documents[0].type")
		assert.Contains(t, fields, "documents[0].url")
		assert.Contains(t, fields, "documents[0].category")
	})

	t.Run("category is optional and defaults later", func(t *testing.T) {
		req := valid
		req.Documents = []DocumentInput{{Name: "Payslip July", Type: "pdf", URL: "https://files.example.com/p.pdf"}}
		require.NoError(t, req.Validate())
	})
}

func TestCreateTaskDocumentsRequestValidate(t *testing.T) {
	req := CreateTaskDocumentsRequest{
		TaskID: testEmployeeID,
		Documents: []DocumentInput{
			{Name: "Brief", Type: "pdf", URL: "https://files.example.com/brief.pdf"},
		},
	}
	fields := fieldsOf(t, req.Validate())
	assert.Contains(t, fields, "documents[0].category", "task attachments must state assignment or completion")

	req.Documents[0].Category = "completion"
	require.NoError(t, req.Validate())
}

func TestUpdateEmployeeDocumentRequestValidate(t *testing.T) {
	name := ""
	category := "official documents"
	req := UpdateEmployeeDocumentRequest{ID: "doc-1", Name: &name, Category: &category}

	fields := fieldsOf(t, req.Validate())
	assert.Contains(t, fields, "name")
	assert.NotContains(t, fields, "category")

	name = "Updated contract"
	require.NoError(t, req.Validate())
}
