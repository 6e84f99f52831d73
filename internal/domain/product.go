package domain

import "time"

// ProductStatus represents a product line's lifecycle stage
type ProductStatus string

const (
	ProductLive        ProductStatus = "Live"
	ProductBeta        ProductStatus = "Beta"
	ProductMaintenance ProductStatus = "Maintenance"
)

// HistoryPoint is one month of product metrics. History is ordered
// chronologically by insertion and never reordered.
type HistoryPoint struct {
	Month      string  `json:"month"`
	Traffic    int     `json:"traffic"`
	Profit     float64 `json:"profit"`
	ServerCost float64 `json:"serverCost"`
	InputCost  float64 `json:"inputCost"`
}

// CustomerType categorizes a product customer
type CustomerType string

const (
	CustomerCompany      CustomerType = "Company"
	CustomerOrganization CustomerType = "Organization"
	CustomerSchool       CustomerType = "School"
	CustomerGovernment   CustomerType = "Government"
)

// Customer is a named revenue source for a product.
type Customer struct {
	Name                string       `json:"name"`
	Type                CustomerType `json:"type"`
	RevenueContribution float64      `json:"revenueContribution"`
}

// Comment is a dev-zone comment on a product. Append-only.
type Comment struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// ServerLogType categorizes a server status log entry
type ServerLogType string

const (
	LogMaintenance ServerLogType = "MAINTENANCE"
	LogOutage      ServerLogType = "OUTAGE"
	LogOperational ServerLogType = "OPERATIONAL"
)

// ServerLog is one server status entry. Append-only.
type ServerLog struct {
	ID              string        `json:"id"`
	Type            ServerLogType `json:"type"`
	Description     string        `json:"description"`
	Date            time.Time     `json:"date"`
	DurationMinutes int           `json:"durationMinutes"`
}

// BugSeverity represents bug report severity
type BugSeverity string

const (
	BugLow      BugSeverity = "LOW"
	BugMedium   BugSeverity = "MEDIUM"
	BugHigh     BugSeverity = "HIGH"
	BugCritical BugSeverity = "CRITICAL"
)

// BugStatus is the open/resolved toggle on a bug report.
type BugStatus string

const (
	BugOpen     BugStatus = "OPEN"
	BugResolved BugStatus = "RESOLVED"
)

// BugReport is a dev-zone bug entry. Status toggles, entries are never
// removed.
type BugReport struct {
	ID          string      `json:"id"`
	Severity    BugSeverity `json:"severity"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	ReportedBy  string      `json:"reportedBy"`
	Status      BugStatus   `json:"status"`
	Date        time.Time   `json:"date"`
}

// Product represents a product line. The assignment engine never touches
// workload state through products; they are inert data for the dashboard and
// the AI collaborator, mutated only through the dev-zone operations.
type Product struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Tagline     string        `json:"tagline"`
	Description string        `json:"description"`
	Status      ProductStatus `json:"status"`
	LogoColor   string        `json:"logoColor"`
	History     []HistoryPoint `json:"history"`
	TopCustomers []Customer    `json:"topCustomers"`
	DevComments  []Comment     `json:"devComments"`
	ServerLogs   []ServerLog   `json:"serverLogs"`
	BugReports   []BugReport   `json:"bugReports"`
}

// LatestMonth returns the most recent history point, if any.
func (p Product) LatestMonth() (HistoryPoint, bool) {
	if len(p.History) == 0 {
		return HistoryPoint{}, false
	}
	return p.History[len(p.History)-1], true
}

// TotalProfit sums profit across the recorded history.
func (p Product) TotalProfit() float64 {
	var total float64
	for _, h := range p.History {
		total += h.Profit
	}
	return total
}

// OpenBugs counts unresolved bug reports.
func (p Product) OpenBugs() int {
	n := 0
	for _, b := range p.BugReports {
		if b.Status == BugOpen {
			n++
		}
	}
	return n
}
