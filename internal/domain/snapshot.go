package domain

import "time"

// Snapshot is the full, atomically visible state of the system at one
// instant: employees, tasks and product lines together.
type Snapshot struct {
	Employees []Employee `json:"employees"`
	Tasks     []Task     `json:"tasks"`
	Products  []Product  `json:"products"`
}

// Clone returns a deep copy. Mutating the copy never leaks into slices or
// pointer fields held by previous holders of the original.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Employees: make([]Employee, len(s.Employees)),
		Tasks:     make([]Task, len(s.Tasks)),
		Products:  make([]Product, len(s.Products)),
	}
	for i, e := range s.Employees {
		e.Skills = cloneStrings(e.Skills)
		out.Employees[i] = e
	}
	for i, t := range s.Tasks {
		t.RequiredSkills = cloneStrings(t.RequiredSkills)
		t.Notes = cloneStrings(t.Notes)
		t.Files = cloneStrings(t.Files)
		t.GroupAssigneeIDs = cloneStrings(t.GroupAssigneeIDs)
		t.AssignedToID = cloneString(t.AssignedToID)
		t.CompletedAt = cloneTime(t.CompletedAt)
		out.Tasks[i] = t
	}
	for i, p := range s.Products {
		p.History = append([]HistoryPoint(nil), p.History...)
		p.TopCustomers = append([]Customer(nil), p.TopCustomers...)
		p.DevComments = append([]Comment(nil), p.DevComments...)
		p.ServerLogs = append([]ServerLog(nil), p.ServerLogs...)
		p.BugReports = append([]BugReport(nil), p.BugReports...)
		out.Products[i] = p
	}
	return out
}

// EmployeeByID looks up an employee.
func (s Snapshot) EmployeeByID(id string) (Employee, bool) {
	for _, e := range s.Employees {
		if e.ID == id {
			return e, true
		}
	}
	return Employee{}, false
}

// TaskByID looks up a task.
func (s Snapshot) TaskByID(id string) (Task, bool) {
	for _, t := range s.Tasks {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}

// ProductByID looks up a product.
func (s Snapshot) ProductByID(id string) (Product, bool) {
	for _, p := range s.Products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}

func cloneString(in *string) *string {
	if in == nil {
		return nil
	}
	v := *in
	return &v
}

func cloneTime(in *time.Time) *time.Time {
	if in == nil {
		return nil
	}
	v := *in
	return &v
}
