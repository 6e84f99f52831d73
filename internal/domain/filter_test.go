package domain

import "testing"

func testTasks() []Task {
	return []Task{
		{ID: "t1", Title: "Migrate billing service", Type: TypeMandatory, Priority: PriorityHigh, Status: StatusPending},
		{ID: "t2", Title: "Refresh landing page", Type: TypeOpen, Priority: PriorityLow, Status: StatusInProgress},
		{ID: "t3", Title: "Quarterly security audit", Type: TypeMandatory, Priority: PriorityCritical, Status: StatusCompleted},
		{ID: "t4", Title: "Team hackathon prep", Type: TypeOpen, Priority: PriorityMedium, Status: StatusPending, IsGroupTask: true, RequiredPeople: 3},
	}
}

func TestActiveTasks(t *testing.T) {
	got := ActiveTasks(testTasks())
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	for _, task := range got {
		if task.Status == StatusCompleted {
			t.Errorf("completed task %s in active partition", task.ID)
		}
	}
}

func TestPartitions(t *testing.T) {
	tasks := testTasks()

	if got := IndividualTasks(tasks); len(got) != 3 {
		t.Errorf("IndividualTasks len = %d, want 3", len(got))
	}
	if got := GroupTasks(tasks); len(got) != 1 || got[0].ID != "t4" {
		t.Errorf("GroupTasks = %v, want [t4]", got)
	}
	if got := TasksOfType(tasks, TypeMandatory); len(got) != 2 {
		t.Errorf("TasksOfType(MANDATORY) len = %d, want 2", len(got))
	}
}

func TestFilter_Matches(t *testing.T) {
	tasks := testTasks()

	tests := []struct {
		name  string
		setup func(*Filter)
		want  []string
	}{
		{
			name:  "inactive filter passes everything",
			setup: func(f *Filter) {},
			want:  []string{"t1", "t2", "t3", "t4"},
		},
		{
			name:  "status filter",
			setup: func(f *Filter) { f.ToggleStatus(StatusPending) },
			want:  []string{"t1", "t4"},
		},
		{
			name: "status OR within, type AND across",
			setup: func(f *Filter) {
				f.ToggleStatus(StatusPending)
				f.ToggleStatus(StatusInProgress)
				f.ToggleType(TypeOpen)
			},
			want: []string{"t2", "t4"},
		},
		{
			name:  "priority filter",
			setup: func(f *Filter) { f.TogglePriority(PriorityCritical) },
			want:  []string{"t3"},
		},
		{
			name:  "search matches title case-insensitively",
			setup: func(f *Filter) { f.SearchQuery = "SECURITY" },
			want:  []string{"t3"},
		},
		{
			name:  "search matches id",
			setup: func(f *Filter) { f.SearchQuery = "t2" },
			want:  []string{"t2"},
		},
		{
			name: "toggle twice clears",
			setup: func(f *Filter) {
				f.ToggleStatus(StatusPending)
				f.ToggleStatus(StatusPending)
			},
			want: []string{"t1", "t2", "t3", "t4"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFilter()
			tt.setup(f)
			got := f.Apply(tasks)

			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i, id := range tt.want {
				if got[i].ID != id {
					t.Errorf("got[%d].ID = %s, want %s", i, got[i].ID, id)
				}
			}
		})
	}
}

func TestFilter_Clear(t *testing.T) {
	f := NewFilter()
	f.ToggleStatus(StatusPending)
	f.TogglePriority(PriorityHigh)
	f.SearchQuery = "audit"

	if !f.IsActive() {
		t.Fatal("filter should be active")
	}

	f.Clear()
	if f.IsActive() {
		t.Error("filter still active after Clear")
	}
}
