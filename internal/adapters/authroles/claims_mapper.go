// Package authroles maps IdP role claims onto application roles.
package authroles

import (
	domainauth "github.com/cenentury0941/ready-api/internal/domain/auth"
)

// ClaimsRoleMapper derives the application role from role claims. Any
// identity carrying AdminClaim is an administrator; every other
// authenticated identity, including one with no claims at all, is a
// regular user.
type ClaimsRoleMapper struct {
	AdminClaim string
}

func (m ClaimsRoleMapper) Map(claims []string) domainauth.Role {
	for _, c := range claims {
		if m.AdminClaim != "" && c == m.AdminClaim {
			return domainauth.RoleAdmin
		}
	}
	return domainauth.RoleUser
}
