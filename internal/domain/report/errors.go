package report

import "errors"

var ErrExportFailed = errors.New("report export failed")
