// Package auth turns bearer tokens into a per-request capability set.
package auth

import (
	"slices"
	"strings"
)

type Permission string

const (
	LoansView        Permission = "loans:view"
	LoansManage      Permission = "loans:manage"
	LoansDelete      Permission = "loans:delete"
	RepaymentsRecord Permission = "repayments:record"
	RepaymentsImport Permission = "repayments:import"
	CreditsView      Permission = "credits:view"
	CreditsManage    Permission = "credits:manage"
	PayoutsRecord    Permission = "payouts:record"
	GuarantorsManage Permission = "guarantors:manage"
	GuarantorsVerify Permission = "guarantors:verify"
)

var allPermissions = []Permission{
	LoansView, LoansManage, LoansDelete,
	RepaymentsRecord, RepaymentsImport,
	CreditsView, CreditsManage, PayoutsRecord,
	GuarantorsManage, GuarantorsVerify,
}

// rolePermissions lists what each staff role may do. Portal roles
// (creditor, debtor) hold no back-office permissions.
var rolePermissions = map[string][]Permission{
	"super_admin": allPermissions,
	"admin": {
		LoansView, LoansManage, RepaymentsRecord, RepaymentsImport,
		CreditsView, CreditsManage, PayoutsRecord,
		GuarantorsManage, GuarantorsVerify,
	},
	"finance":  {LoansView, RepaymentsRecord, RepaymentsImport, CreditsView, PayoutsRecord},
	"ops":      {LoansView, LoansManage, CreditsView, CreditsManage, GuarantorsManage},
	"risk":     {LoansView, CreditsView, GuarantorsManage, GuarantorsVerify},
	"creditor": nil,
	"debtor":   nil,
}

// Capabilities is the set of permissions held by a session.
type Capabilities map[Permission]struct{}

// Resolve unions the permissions of the given roles. Unknown roles are
// ignored; role names are matched case-insensitively.
func Resolve(roles []string) Capabilities {
	caps := make(Capabilities)

	for _, role := range roles {
		for _, p := range rolePermissions[strings.ToLower(role)] {
			caps[p] = struct{}{}
		}
	}

	return caps
}

func (c Capabilities) Has(p Permission) bool {
	_, ok := c[p]
	return ok
}

// List returns the permissions in a stable order.
func (c Capabilities) List() []Permission {
	out := make([]Permission, 0, len(c))
	for p := range c {
		out = append(out, p)
	}

	slices.Sort(out)

	return out
}
