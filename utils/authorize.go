package utils

import "errors"

var ErrRoleNotAllowed = errors.New("user is not authorized")

func AuthorizeRole(userRole string, allowedRoles ...string) error {
	for _, allowedRole := range allowedRoles {
		if allowedRole == userRole {
			return nil
		}
	}
	return ErrRoleNotAllowed
}
