package engine

import (
	"fmt"
	"strings"

	"github.com/rlankford/crewboard/internal/domain"
)

// Product dev-zone operations. These mutate inert product data only; they
// never touch employee workload or task state.

// AddProductComment appends a dev-zone comment to a product.
func (e *Engine) AddProductComment(productID, author, text string) (domain.Snapshot, error) {
	return e.store.Apply(func(snap domain.Snapshot) (domain.Snapshot, error) {
		if strings.TrimSpace(text) == "" {
			return domain.Snapshot{}, &domain.ValidationError{Field: "comment", Message: "must not be empty"}
		}
		pi := productIndex(snap, productID)
		if pi < 0 {
			return domain.Snapshot{}, fmt.Errorf("comment on product %s: %w", productID, domain.ErrNotFound)
		}

		product := &snap.Products[pi]
		product.DevComments = append(product.DevComments, domain.Comment{
			ID:        e.newID("c"),
			Author:    author,
			Text:      text,
			Timestamp: e.now(),
		})
		return snap, nil
	})
}

// AddServerLog appends a server status entry to a product.
func (e *Engine) AddServerLog(productID string, logType domain.ServerLogType, description string, durationMinutes int) (domain.Snapshot, error) {
	return e.store.Apply(func(snap domain.Snapshot) (domain.Snapshot, error) {
		switch logType {
		case domain.LogMaintenance, domain.LogOutage, domain.LogOperational:
		default:
			return domain.Snapshot{}, &domain.ValidationError{Field: "logType", Message: fmt.Sprintf("unknown log type %q", logType)}
		}
		if strings.TrimSpace(description) == "" {
			return domain.Snapshot{}, &domain.ValidationError{Field: "description", Message: "must not be empty"}
		}
		if durationMinutes < 0 {
			return domain.Snapshot{}, &domain.ValidationError{Field: "durationMinutes", Message: "must not be negative"}
		}
		pi := productIndex(snap, productID)
		if pi < 0 {
			return domain.Snapshot{}, fmt.Errorf("log on product %s: %w", productID, domain.ErrNotFound)
		}

		product := &snap.Products[pi]
		product.ServerLogs = append(product.ServerLogs, domain.ServerLog{
			ID:              e.newID("l"),
			Type:            logType,
			Description:     description,
			Date:            e.now(),
			DurationMinutes: durationMinutes,
		})
		return snap, nil
	})
}

// ToggleBugStatus flips a bug report between OPEN and RESOLVED. Reports are
// never removed.
func (e *Engine) ToggleBugStatus(productID, bugID string) (domain.Snapshot, error) {
	return e.store.Apply(func(snap domain.Snapshot) (domain.Snapshot, error) {
		pi := productIndex(snap, productID)
		if pi < 0 {
			return domain.Snapshot{}, fmt.Errorf("toggle bug on product %s: %w", productID, domain.ErrNotFound)
		}

		product := &snap.Products[pi]
		for i := range product.BugReports {
			if product.BugReports[i].ID != bugID {
				continue
			}
			if product.BugReports[i].Status == domain.BugOpen {
				product.BugReports[i].Status = domain.BugResolved
			} else {
				product.BugReports[i].Status = domain.BugOpen
			}
			return snap, nil
		}
		return domain.Snapshot{}, fmt.Errorf("bug %s: %w", bugID, domain.ErrNotFound)
	})
}

// UpdateProductDescription replaces a product's long description.
func (e *Engine) UpdateProductDescription(productID, description string) (domain.Snapshot, error) {
	return e.store.Apply(func(snap domain.Snapshot) (domain.Snapshot, error) {
		pi := productIndex(snap, productID)
		if pi < 0 {
			return domain.Snapshot{}, fmt.Errorf("update product %s: %w", productID, domain.ErrNotFound)
		}
		snap.Products[pi].Description = description
		return snap, nil
	})
}
