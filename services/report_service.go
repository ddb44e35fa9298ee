package services

import (
	"github.com/vulndesk-api/dto"
	"github.com/vulndesk-api/models"
	"github.com/vulndesk-api/repositories"
)

// ReportService builds the dashboard aggregates
type ReportService struct {
	reportRepo *repositories.ReportRepository
	clientRepo *repositories.ClientRepository
	assetRepo  *repositories.AssetRepository
	vulnRepo   *repositories.VulnerabilityRepository
	ticketRepo *repositories.TicketRepository
}

// NewReportService creates a new report service instance
func NewReportService() *ReportService {
	return &ReportService{
		reportRepo: repositories.NewReportRepository(),
		clientRepo: repositories.NewClientRepository(),
		assetRepo:  repositories.NewAssetRepository(),
		vulnRepo:   repositories.NewVulnerabilityRepository(),
		ticketRepo: repositories.NewTicketRepository(),
	}
}

// Summary returns the top-level counters across all clients
func (s *ReportService) Summary() (dto.SummaryReport, error) {
	var report dto.SummaryReport
	var err error

	if report.Clients, err = s.reportRepo.CountClients(); err != nil {
		return report, err
	}
	if report.Assets, err = s.reportRepo.Count(&models.Asset{}, ""); err != nil {
		return report, err
	}
	if report.Vulnerabilities, err = s.reportRepo.Count(&models.Vulnerability{}, ""); err != nil {
		return report, err
	}
	if report.Tickets, err = s.reportRepo.Count(&models.Ticket{}, ""); err != nil {
		return report, err
	}
	if report.Projects, err = s.reportRepo.Count(&models.Project{}, ""); err != nil {
		return report, err
	}
	return report, nil
}

// Vulnerabilities returns vulnerability counts grouped by status and
// criticality, optionally scoped to one client
func (s *ReportService) Vulnerabilities(clientID string) (dto.VulnerabilityReport, error) {
	var report dto.VulnerabilityReport
	var err error

	if report.Total, err = s.reportRepo.Count(&models.Vulnerability{}, clientID); err != nil {
		return report, err
	}
	if report.ByStatus, err = s.vulnRepo.CountByStatus(clientID); err != nil {
		return report, err
	}
	if report.ByCriticality, err = s.vulnRepo.CountByCriticality(clientID); err != nil {
		return report, err
	}
	return report, nil
}

// Tickets returns ticket counts grouped by status and priority,
// optionally scoped to one client
func (s *ReportService) Tickets(clientID string) (dto.TicketReport, error) {
	var report dto.TicketReport
	var err error

	if report.Total, err = s.reportRepo.Count(&models.Ticket{}, clientID); err != nil {
		return report, err
	}
	if report.ByStatus, err = s.ticketRepo.CountByStatus(clientID); err != nil {
		return report, err
	}
	if report.ByPriority, err = s.ticketRepo.CountByPriority(clientID); err != nil {
		return report, err
	}
	return report, nil
}

// Assets returns asset counts grouped by status and by client
func (s *ReportService) Assets(clientID string) (dto.AssetReport, error) {
	var report dto.AssetReport
	var err error

	if report.Total, err = s.reportRepo.Count(&models.Asset{}, clientID); err != nil {
		return report, err
	}
	if report.ByStatus, err = s.assetRepo.CountByStatus(clientID); err != nil {
		return report, err
	}
	if clientID == "" {
		if report.ByClient, err = s.assetRepo.CountByClient(); err != nil {
			return report, err
		}
	}
	return report, nil
}

// ClientOverviews returns one dashboard row per client
func (s *ReportService) ClientOverviews() ([]dto.ClientOverviewReport, error) {
	clients, _, err := s.clientRepo.FindWithPagination(1, 100, "")
	if err != nil {
		return nil, err
	}

	overviews := make([]dto.ClientOverviewReport, 0, len(clients))
	for _, client := range clients {
		overview := dto.ClientOverviewReport{
			ClientID:   client.ID,
			ClientName: client.Name,
			ShortName:  client.ShortName,
		}
		if overview.Assets, err = s.reportRepo.Count(&models.Asset{}, client.ID); err != nil {
			return nil, err
		}
		if overview.Projects, err = s.reportRepo.Count(&models.Project{}, client.ID); err != nil {
			return nil, err
		}
		if overview.Vulnerabilities, err = s.Vulnerabilities(client.ID); err != nil {
			return nil, err
		}
		if overview.Tickets, err = s.Tickets(client.ID); err != nil {
			return nil, err
		}
		overviews = append(overviews, overview)
	}
	return overviews, nil
}
