// Package seed provides the default dataset used when no saved snapshot
// exists (or the saved one cannot be read).
package seed

import (
	"time"

	"github.com/rlankford/crewboard/internal/domain"
)

// Default returns the starting snapshot: a small team, a board of individual
// and group tasks, and two product lines with six months of history.
func Default() domain.Snapshot {
	return domain.Snapshot{
		Employees: defaultEmployees(),
		Tasks:     defaultTasks(),
		Products:  defaultProducts(),
	}
}

func defaultEmployees() []domain.Employee {
	return []domain.Employee{
		{
			ID: "e_sarah", Name: "Sarah Vance", Email: "sarah@crewboard.dev",
			Password: "password123", Role: "Chief Executive Officer",
			AccessLevel: domain.AccessCEO, WorkloadScore: 100,
			// Display-only override; the score underneath keeps updating.
			Status: "LIMITLESS",
			Skills: []string{"Strategy", "Fundraising"},
			Bio:    "Founded the company in a garage that was technically a carport.",
			JoinedDate: date(2019, 3, 1),
		},
		{
			ID: "e_jessica", Name: "Jessica Tran", Email: "jessica@crewboard.dev",
			Password: "password123", Role: "Engineering Manager",
			AccessLevel: domain.AccessManager, WorkloadScore: 62,
			Status: domain.StatusOptimal,
			Skills: []string{"Go", "Architecture", "Hiring"},
			JoinedDate: date(2020, 7, 15),
		},
		{
			ID: "e_mike", Name: "Mike Delgado", Email: "mike@crewboard.dev",
			Password: "password123", Role: "Backend Engineer",
			AccessLevel: domain.AccessEmployee, WorkloadScore: 48,
			Status: domain.StatusOptimal,
			Skills: []string{"Go", "PostgreSQL", "Kubernetes"},
			JoinedDate: date(2021, 1, 11),
		},
		{
			ID: "e_priya", Name: "Priya Nair", Email: "priya@crewboard.dev",
			Password: "password123", Role: "Frontend Engineer",
			AccessLevel: domain.AccessEmployee, WorkloadScore: 84,
			Status: domain.StatusOverloaded,
			Skills: []string{"TypeScript", "React", "Design Systems"},
			JoinedDate: date(2022, 5, 2),
		},
		{
			ID: "e_tom", Name: "Tom Okafor", Email: "tom@crewboard.dev",
			Password: "password123", Role: "Data Engineer",
			AccessLevel: domain.AccessEmployee, WorkloadScore: 22,
			Status: domain.StatusUnderutilized,
			Skills: []string{"Python", "Airflow", "SQL"},
			JoinedDate: date(2023, 9, 18),
		},
	}
}

func defaultTasks() []domain.Task {
	mike := "e_mike"
	return []domain.Task{
		{
			ID: "t_billing", Title: "Migrate billing service",
			Description: "Move billing off the legacy cron jobs.",
			LongDescription: "The nightly cron reconciliation loses events under load. Move to the queue-based pipeline and backfill June.",
			Type: domain.TypeMandatory, Priority: domain.PriorityCritical,
			EstimatedHours: 16, AssignedToID: &mike,
			RequiredSkills: []string{"Go", "PostgreSQL"},
			Status:         domain.StatusInProgress, Progress: 40,
			CreatedAt: date(2025, 8, 4),
			Notes:     []string{"10:12: schema migration reviewed"},
			Files:     []string{"billing-cutover.md"},
		},
		{
			ID: "t_exports", Title: "Customer CSV exports",
			Description: "Self-serve data exports from the dashboard.",
			Type:           domain.TypeOpen, Priority: domain.PriorityMedium,
			EstimatedHours: 6,
			RequiredSkills: []string{"Go"},
			Status:         domain.StatusPending, Progress: 0,
			CreatedAt:      date(2025, 8, 11),
			Notes:          []string{}, Files: []string{},
		},
		{
			ID: "t_onboard", Title: "Revamp onboarding emails",
			Description: "Rewrite the drip sequence for trial signups.",
			Type:           domain.TypeOpen, Priority: domain.PriorityLow,
			EstimatedHours: 3,
			RequiredSkills: []string{},
			Status:         domain.StatusPending, Progress: 0,
			CreatedAt:      date(2025, 8, 12),
			Notes:          []string{}, Files: []string{},
		},
		{
			ID: "t_platform", Title: "Search infrastructure overhaul",
			Description: "Replace the bolted-on LIKE queries with a real index.",
			Type:           domain.TypeMandatory, Priority: domain.PriorityHigh,
			EstimatedHours: 24,
			RequiredSkills: []string{"Go", "Elasticsearch"},
			Status:         domain.StatusPending, Progress: 0,
			CreatedAt:      date(2025, 8, 6),
			Notes:          []string{}, Files: []string{},
			IsGroupTask:    true, RequiredPeople: 3,
			GroupAssigneeIDs: []string{"e_priya"},
		},
		{
			ID: "t_retro", Title: "Q2 incident retro",
			Description: "Write up the June outage timeline.",
			Type:           domain.TypeMandatory, Priority: domain.PriorityMedium,
			EstimatedHours: 4,
			RequiredSkills: []string{},
			Status:         domain.StatusCompleted, Progress: 100,
			CreatedAt:      date(2025, 7, 2), CompletedAt: timePtr(date(2025, 7, 9)),
			Notes:          []string{"14:20: draft shared", "16:05: signed off"},
			Files:          []string{"postmortem-june.pdf"},
		},
	}
}

func defaultProducts() []domain.Product {
	return []domain.Product{
		{
			ID: "p_pulse", Name: "Pulse", Tagline: "Team health metrics at a glance",
			Description: "Aggregates deployment, incident and review metrics into one weekly digest.",
			Status:      domain.ProductLive, LogoColor: "#8aadf4",
			History: []domain.HistoryPoint{
				{Month: "Mar", Traffic: 8200, Profit: 14100, ServerCost: 2100, InputCost: 6400},
				{Month: "Apr", Traffic: 9100, Profit: 15800, ServerCost: 2200, InputCost: 6400},
				{Month: "May", Traffic: 10400, Profit: 17300, ServerCost: 2600, InputCost: 7100},
				{Month: "Jun", Traffic: 9800, Profit: 16200, ServerCost: 3400, InputCost: 7100},
				{Month: "Jul", Traffic: 11600, Profit: 18900, ServerCost: 3500, InputCost: 7300},
				{Month: "Aug", Traffic: 12950, Profit: 20400, ServerCost: 3600, InputCost: 7300},
			},
			TopCustomers: []domain.Customer{
				{Name: "Northwind Logistics", Type: domain.CustomerCompany, RevenueContribution: 5200},
				{Name: "Lakeside School District", Type: domain.CustomerSchool, RevenueContribution: 1900},
			},
			DevComments: []domain.Comment{
				{ID: "c_1", Author: "Mike Delgado", Text: "Digest renderer memory usage is creeping up again.", Timestamp: date(2025, 8, 8)},
			},
			ServerLogs: []domain.ServerLog{
				{ID: "l_1", Type: domain.LogMaintenance, Description: "Postgres 16 upgrade", Date: date(2025, 7, 20), DurationMinutes: 45},
				{ID: "l_2", Type: domain.LogOperational, Description: "All regions nominal", Date: date(2025, 8, 1)},
			},
			BugReports: []domain.BugReport{
				{ID: "b_1", Severity: domain.BugHigh, Title: "Digest email duplicated for UTC+13 users",
					Description: "Cron fires twice across the date line.", ReportedBy: "Priya Nair",
					Status: domain.BugOpen, Date: date(2025, 8, 10)},
			},
		},
		{
			ID: "p_relay", Name: "Relay", Tagline: "Webhooks that never drop",
			Description: "Managed webhook delivery with replay and dead-letter queues.",
			Status:      domain.ProductBeta, LogoColor: "#a6da95",
			History: []domain.HistoryPoint{
				{Month: "Mar", Traffic: 900, Profit: -2400, ServerCost: 1800, InputCost: 5200},
				{Month: "Apr", Traffic: 1400, Profit: -1700, ServerCost: 1900, InputCost: 5200},
				{Month: "May", Traffic: 2600, Profit: -600, ServerCost: 2300, InputCost: 5600},
				{Month: "Jun", Traffic: 3900, Profit: 800, ServerCost: 2500, InputCost: 5600},
				{Month: "Jul", Traffic: 5200, Profit: 2300, ServerCost: 2700, InputCost: 5800},
				{Month: "Aug", Traffic: 6800, Profit: 4100, ServerCost: 2900, InputCost: 5800},
			},
			TopCustomers: []domain.Customer{
				{Name: "Civic Portal Initiative", Type: domain.CustomerGovernment, RevenueContribution: 2800},
			},
			DevComments: []domain.Comment{},
			ServerLogs: []domain.ServerLog{
				{ID: "l_3", Type: domain.LogOutage, Description: "Delivery workers stalled on redis failover", Date: date(2025, 6, 14), DurationMinutes: 22},
			},
			BugReports: []domain.BugReport{
				{ID: "b_2", Severity: domain.BugMedium, Title: "Replay UI shows stale attempt counts",
					Description: "Counter cache lags the worker by minutes.", ReportedBy: "Tom Okafor",
					Status: domain.BugResolved, Date: date(2025, 7, 28)},
			},
		},
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func timePtr(t time.Time) *time.Time {
	return &t
}
