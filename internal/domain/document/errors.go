package document

import "errors"

var (
	ErrEmployeeDocumentNotFound = errors.New("employee document not found")
	ErrTaskDocumentNotFound     = errors.New("task document not found")
)
