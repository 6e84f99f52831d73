// Package session handles login against the employee roster and tracks the
// signed-in user for the lifetime of a run.
package session

import (
	"strings"

	"github.com/rlankford/crewboard/internal/domain"
)

// Authenticate matches email and password against the roster. Email matching
// is case-insensitive; passwords compare exactly.
func Authenticate(snap domain.Snapshot, email, password string) (domain.Employee, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	for _, e := range snap.Employees {
		if strings.ToLower(e.Email) == email && e.Password == password {
			return e, nil
		}
	}
	return domain.Employee{}, domain.ErrInvalidCredentials
}

// Session is the signed-in user for this run. The zero value is signed out.
type Session struct {
	user     domain.Employee
	signedIn bool
}

// SignIn records the authenticated user.
func (s *Session) SignIn(user domain.Employee) {
	s.user = user
	s.signedIn = true
}

// SignOut clears the session.
func (s *Session) SignOut() {
	*s = Session{}
}

// User returns the signed-in employee.
func (s *Session) User() (domain.Employee, bool) {
	return s.user, s.signedIn
}

// CanManage reports whether the signed-in user can create and delete tasks
// and act on behalf of other employees.
func (s *Session) CanManage() bool {
	return s.signedIn && s.user.AccessLevel.CanManage()
}
