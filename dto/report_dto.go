package dto

// SummaryReport represents the top-level dashboard counters
type SummaryReport struct {
	Clients         int64 `json:"clients"`
	Assets          int64 `json:"assets"`
	Vulnerabilities int64 `json:"vulnerabilities"`
	Tickets         int64 `json:"tickets"`
	Projects        int64 `json:"projects"`
}

// VulnerabilityReport represents vulnerability counts grouped for the dashboard
type VulnerabilityReport struct {
	Total         int64            `json:"total"`
	ByStatus      map[string]int64 `json:"byStatus"`
	ByCriticality map[string]int64 `json:"byCriticality"`
}

// TicketReport represents ticket counts grouped for the dashboard
type TicketReport struct {
	Total      int64            `json:"total"`
	ByStatus   map[string]int64 `json:"byStatus"`
	ByPriority map[string]int64 `json:"byPriority"`
}

// AssetReport represents asset counts grouped for the dashboard
type AssetReport struct {
	Total    int64            `json:"total"`
	ByStatus map[string]int64 `json:"byStatus"`
	ByClient map[string]int64 `json:"byClient"`
}

// ClientOverviewReport represents one client's dashboard overview
type ClientOverviewReport struct {
	ClientID        string              `json:"clientId"`
	ClientName      string              `json:"clientName"`
	ShortName       string              `json:"shortName"`
	Assets          int64               `json:"assets"`
	Projects        int64               `json:"projects"`
	Vulnerabilities VulnerabilityReport `json:"vulnerabilities"`
	Tickets         TicketReport        `json:"tickets"`
}
