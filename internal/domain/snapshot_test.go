package domain

import (
	"testing"
	"time"
)

func TestSnapshot_Clone_Isolation(t *testing.T) {
	assignee := "e1"
	done := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	orig := Snapshot{
		Employees: []Employee{
			{ID: "e1", Name: "Sam", Skills: []string{"go", "sql"}},
		},
		Tasks: []Task{
			{
				ID:               "t1",
				Title:            "Ship exports",
				AssignedToID:     &assignee,
				CompletedAt:      &done,
				Notes:            []string{"10:00: kickoff"},
				Files:            []string{"spec.pdf"},
				GroupAssigneeIDs: []string{"e1"},
				RequiredSkills:   []string{"go"},
			},
		},
		Products: []Product{
			{
				ID:      "p1",
				History: []HistoryPoint{{Month: "Jan", Profit: 100}},
				DevComments: []Comment{
					{ID: "c1", Author: "Sam", Text: "shipped"},
				},
			},
		},
	}

	clone := orig.Clone()

	clone.Employees[0].Skills[0] = "rust"
	clone.Tasks[0].Notes[0] = "mutated"
	*clone.Tasks[0].AssignedToID = "e9"
	*clone.Tasks[0].CompletedAt = done.Add(time.Hour)
	clone.Products[0].History[0].Profit = -1
	clone.Products[0].DevComments[0].Text = "mutated"

	if orig.Employees[0].Skills[0] != "go" {
		t.Error("employee skills leaked through clone")
	}
	if orig.Tasks[0].Notes[0] != "10:00: kickoff" {
		t.Error("task notes leaked through clone")
	}
	if *orig.Tasks[0].AssignedToID != "e1" {
		t.Error("assignee pointer shared with clone")
	}
	if !orig.Tasks[0].CompletedAt.Equal(done) {
		t.Error("completedAt pointer shared with clone")
	}
	if orig.Products[0].History[0].Profit != 100 {
		t.Error("product history leaked through clone")
	}
	if orig.Products[0].DevComments[0].Text != "shipped" {
		t.Error("product comments leaked through clone")
	}
}

func TestSnapshot_Lookups(t *testing.T) {
	s := Snapshot{
		Employees: []Employee{{ID: "e1"}},
		Tasks:     []Task{{ID: "t1"}},
		Products:  []Product{{ID: "p1"}},
	}

	if _, ok := s.EmployeeByID("e1"); !ok {
		t.Error("EmployeeByID(e1) not found")
	}
	if _, ok := s.EmployeeByID("nope"); ok {
		t.Error("EmployeeByID(nope) found")
	}
	if _, ok := s.TaskByID("t1"); !ok {
		t.Error("TaskByID(t1) not found")
	}
	if _, ok := s.ProductByID("p1"); !ok {
		t.Error("ProductByID(p1) not found")
	}
}
