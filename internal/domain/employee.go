// Package domain contains core business types for the Crewboard application.
package domain

import "time"

// AccessLevel determines which operations the presentation layer offers an
// employee. The engine itself does not re-check it.
type AccessLevel string

const (
	AccessCEO      AccessLevel = "ceo"
	AccessManager  AccessLevel = "manager"
	AccessEmployee AccessLevel = "employee"
)

// CanManage reports whether this level may create/delete tasks and edit
// other profiles.
func (a AccessLevel) CanManage() bool {
	return a == AccessCEO || a == AccessManager
}

// String returns the display string
func (a AccessLevel) String() string {
	return string(a)
}

// EmployeeStatus is the displayed load status. The three canonical values are
// the only ones ever derived; arbitrary strings are permitted for
// display-only overrides (the CEO keeps whatever status is already set).
type EmployeeStatus string

const (
	StatusOptimal       EmployeeStatus = "OPTIMAL"
	StatusOverloaded    EmployeeStatus = "OVERLOADED"
	StatusUnderutilized EmployeeStatus = "UNDERUTILIZED"
)

// Employee represents a member of the workforce
type Employee struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Email         string         `json:"email"`
	Password      string         `json:"password,omitempty"`
	Role          string         `json:"role"`
	AccessLevel   AccessLevel    `json:"accessLevel"`
	WorkloadScore float64        `json:"workloadScore"`
	Skills        []string       `json:"skills"`
	Status        EmployeeStatus `json:"status"`
	Bio           string         `json:"bio,omitempty"`
	ResumeLink    string         `json:"resumeLink,omitempty"`
	PortfolioLink string         `json:"portfolioLink,omitempty"`
	JoinedDate    time.Time      `json:"joinedDate"`
}

// HasSkill reports whether the employee lists the given skill.
func (e Employee) HasSkill(skill string) bool {
	for _, s := range e.Skills {
		if s == skill {
			return true
		}
	}
	return false
}
