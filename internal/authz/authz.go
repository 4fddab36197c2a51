// Package authz decides which admin-panel role may touch which resource.
package authz

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/casbin/casbin/v3"
	"github.com/casbin/casbin/v3/model"
)

const (
	ActionRead  = "read"
	ActionWrite = "write"
)

// Resources guarded by the admin API.
const (
	ResourceUsers        = "users"
	ResourceJobs         = "jobs"
	ResourceApplications = "applications"
	ResourceProjects     = "projects"
	ResourceContacts     = "contacts"
	ResourceSettings     = "settings"
	ResourceUpload       = "upload"
)

//go:embed model.conf
var modelText string

//go:embed policy.csv
var policyText string

type Enforcer struct {
	e *casbin.Enforcer
}

// NewEnforcer builds an enforcer from the embedded model and role policy.
func NewEnforcer() (*Enforcer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, fmt.Errorf("load authz model: %w", err)
	}
	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("create enforcer: %w", err)
	}

	policies, groupings := parsePolicy(policyText)
	if _, err := e.AddPolicies(policies); err != nil {
		return nil, fmt.Errorf("add policies: %w", err)
	}
	if _, err := e.AddGroupingPolicies(groupings); err != nil {
		return nil, fmt.Errorf("add role inheritance: %w", err)
	}
	return &Enforcer{e: e}, nil
}

// Allowed reports whether role may perform action on resource. Unknown roles get nothing.
func (en *Enforcer) Allowed(role, resource, action string) bool {
	if role == "" {
		return false
	}
	ok, err := en.e.Enforce(role, resource, action)
	return err == nil && ok
}

func parsePolicy(text string) (policies, groupings [][]string) {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, ",")
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
		switch fields[0] {
		case "p":
			policies = append(policies, fields[1:])
		case "g":
			groupings = append(groupings, fields[1:])
		}
	}
	return policies, groupings
}
