package models

// DashboardSummary carries the home page counters.
type DashboardSummary struct {
	VisitsToday       int64   `json:"visits_today"`
	PaymentsToday     float64 `json:"payments_today"`
	ActiveMemberships int64   `json:"active_memberships"`
	TotalClients      int64   `json:"total_clients"`
}

// PaymentFilters narrows the payments list. All filters are optional and
// AND-combined. Search matches client name, phone, client ID and description
// as a case-insensitive substring; Date matches the calendar day exactly.
type PaymentFilters struct {
	Search string
	Method string
	Date   string // yyyy-mm-dd
}

// VisitFilters narrows the visits list to one calendar day with an optional
// client/club name substring.
type VisitFilters struct {
	Date   string // yyyy-mm-dd, defaults to today
	Search string
}
