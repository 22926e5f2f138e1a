package document

import "time"

// EmployeeDocumentCategory buckets an employee document in the file cabinet.
type EmployeeDocumentCategory string

const (
	CategoryOfficialDocuments EmployeeDocumentCategory = "official documents"
	CategoryPayslips          EmployeeDocumentCategory = "payslips"
	CategoryContracts         EmployeeDocumentCategory = "contracts"
	CategoryCertificates      EmployeeDocumentCategory = "certificates"
	CategoryIDs               EmployeeDocumentCategory = "ids"
)

func (c EmployeeDocumentCategory) Valid() bool {
	switch c {
	case CategoryOfficialDocuments, CategoryPayslips, CategoryContracts, CategoryCertificates, CategoryIDs:
		return true
	}
	return false
}

// TaskDocumentCategory marks whether an attachment describes the assignment
// or proves completion.
type TaskDocumentCategory string

const (
	TaskCategoryAssignment TaskDocumentCategory = "assignment"
	TaskCategoryCompletion TaskDocumentCategory = "completion"
)

func (c TaskDocumentCategory) Valid() bool {
	return c == TaskCategoryAssignment || c == TaskCategoryCompletion
}

// EmployeeDocument is metadata only; the file itself lives at URL in external
// storage.
type EmployeeDocument struct {
	ID         string
	EmployeeID string
	Name       string
	Type       string
	URL        string
	Category   EmployeeDocumentCategory
	CreatedBy  *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TaskDocument is an attachment reference on a task.
type TaskDocument struct {
	ID        string
	TaskID    string
	Name      string
	Type      string
	URL       string
	Category  TaskDocumentCategory
	CreatedBy *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
