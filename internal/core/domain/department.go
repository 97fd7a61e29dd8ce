package domain

import "errors"

var ErrDepartmentNotFound = errors.New("department not found")
var ErrDepartmentExists = errors.New("department already exists")

// Department is an organizational unit appointments are scoped to.
type Department struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
