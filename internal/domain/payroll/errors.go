package payroll

import "errors"

var ErrNoRecords = errors.New("no payroll records for client and month")
