package employee

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrUsernameExists     = errors.New("username already exists")
	ErrNotAssigned        = errors.New("employee is not assigned to a department")
	ErrCannotDeleteSelf   = errors.New("cannot delete your own employee record")
	ErrCannotRemoveSelf   = errors.New("cannot remove yourself from a department")
	ErrInvalidAccessLevel = errors.New("invalid access level")
)
