package services

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/vulndesk-api/database"
	"github.com/vulndesk-api/dto"
	"github.com/vulndesk-api/models"
	"github.com/vulndesk-api/utils"
)

var (
	initOnce sync.Once
	initErr  error
)

// setupIntegration connects to the database named by TEST_DATABASE_URL,
// or starts a throwaway Postgres container when it is not set. The
// container is reaped by testcontainers when the test process exits.
func setupIntegration(t *testing.T) {
	t.Helper()
	initOnce.Do(func() {
		dsn := os.Getenv("TEST_DATABASE_URL")
		if dsn == "" {
			dsn, initErr = startPostgres()
			if initErr != nil {
				return
			}
		}
		os.Setenv("DATABASE_URL", dsn)
		database.Initialize()
	})
	if initErr != nil {
		t.Fatalf("failed to start postgres container: %v", initErr)
	}
}

func startPostgres() (string, error) {
	ctx := context.Background()
	postgresC, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("vulndesk"),
		postgres.WithUsername("vulndesk"),
		postgres.WithPassword("vulndesk"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		return "", err
	}
	return postgresC.ConnectionString(ctx, "sslmode=disable")
}

// randomCode generates an unused 4-letter client short name
func randomCode() string {
	code := make([]byte, 4)
	for i := range code {
		code[i] = byte('A' + rand.Intn(26))
	}
	return string(code)
}

func createTestClient(t *testing.T) models.Client {
	t.Helper()
	client, err := NewClientService().CreateClient(dto.CreateClientRequest{
		Name:      "Integration Test Client " + randomCode(),
		ShortName: randomCode(),
	})
	require.NoError(t, err)
	return client
}

func createTestVulnerability(t *testing.T, clientID string) models.Vulnerability {
	t.Helper()
	vulnerability, err := NewVulnerabilityService().CreateVulnerability(dto.CreateVulnerabilityRequest{
		ClientID:    clientID,
		Title:       "SQL injection in login form",
		Status:      "Open",
		Criticality: "High",
	})
	require.NoError(t, err)
	return vulnerability
}

func createTestTicket(t *testing.T, clientID string, vulnerabilityIDs ...string) models.Ticket {
	t.Helper()
	ticket, err := NewTicketService().CreateTicket(dto.CreateTicketRequest{
		ClientID:         clientID,
		Title:            "Remediate finding",
		Priority:         "High",
		VulnerabilityIDs: vulnerabilityIDs,
	})
	require.NoError(t, err)
	return ticket
}

func TestDisplayIDsAreScopedPerClientAndEntity(t *testing.T) {
	setupIntegration(t)

	clientA := createTestClient(t)
	clientB := createTestClient(t)

	v1 := createTestVulnerability(t, clientA.ID)
	v2 := createTestVulnerability(t, clientA.ID)
	v3 := createTestVulnerability(t, clientB.ID)

	assert.Equal(t, utils.FormatDisplayID("V", clientA.ShortName, 1), v1.DisplayID)
	assert.Equal(t, utils.FormatDisplayID("V", clientA.ShortName, 2), v2.DisplayID)
	assert.Equal(t, utils.FormatDisplayID("V", clientB.ShortName, 1), v3.DisplayID)

	// Tickets count independently of vulnerabilities
	ticket := createTestTicket(t, clientA.ID)
	assert.Equal(t, utils.FormatDisplayID("T", clientA.ShortName, 1), ticket.DisplayID)
}

func TestDisplayIDsAreNeverReusedAfterDeletion(t *testing.T) {
	setupIntegration(t)

	client := createTestClient(t)
	vulnService := NewVulnerabilityService()

	v1 := createTestVulnerability(t, client.ID)
	v2 := createTestVulnerability(t, client.ID)
	assert.Equal(t, utils.FormatDisplayID("V", client.ShortName, 1), v1.DisplayID)
	assert.Equal(t, utils.FormatDisplayID("V", client.ShortName, 2), v2.DisplayID)

	require.NoError(t, vulnService.DeleteVulnerability(v2.ID))

	v3 := createTestVulnerability(t, client.ID)
	assert.Equal(t, utils.FormatDisplayID("V", client.ShortName, 3), v3.DisplayID)

	require.NoError(t, vulnService.DeleteVulnerability(v3.ID))

	v4 := createTestVulnerability(t, client.ID)
	assert.Equal(t, utils.FormatDisplayID("V", client.ShortName, 4), v4.DisplayID)
}

func TestConcurrentCreatorsGetDistinctIDs(t *testing.T) {
	setupIntegration(t)

	client := createTestClient(t)
	vulnService := NewVulnerabilityService()

	const creators = 10
	results := make(chan string, creators)
	errs := make(chan error, creators)

	var wg sync.WaitGroup
	for i := 0; i < creators; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			v, err := vulnService.CreateVulnerability(dto.CreateVulnerabilityRequest{
				ClientID:    client.ID,
				Title:       fmt.Sprintf("Concurrent finding %d", n),
				Status:      "Open",
				Criticality: "Medium",
			})
			if err != nil {
				errs <- err
				return
			}
			results <- v.DisplayID
		}(i)
	}
	wg.Wait()
	close(results)
	close(errs)

	for err := range errs {
		t.Fatalf("concurrent create failed: %v", err)
	}

	seen := make(map[string]bool)
	suffixes := make(map[int64]bool)
	for id := range results {
		assert.False(t, seen[id], "duplicate display ID %s", id)
		seen[id] = true

		n, err := utils.ParseDisplayIDNumber(id)
		require.NoError(t, err)
		suffixes[n] = true
	}
	require.Len(t, seen, creators)

	// Numbers form the contiguous range 1..creators
	for n := int64(1); n <= creators; n++ {
		assert.True(t, suffixes[n], "missing suffix %d", n)
	}
}

func TestPaddingGrowsPastThreeDigits(t *testing.T) {
	setupIntegration(t)

	client := createTestClient(t)

	// Push the counter to the three-digit boundary
	err := database.DB.Exec(`
		INSERT INTO display_sequences (entity_type, client_id, last_value)
		VALUES ('V', ?, 999)`, client.ID).Error
	require.NoError(t, err)

	v := createTestVulnerability(t, client.ID)
	assert.Equal(t, utils.FormatDisplayID("V", client.ShortName, 1000), v.DisplayID)
	assert.Equal(t, "V-"+client.ShortName+"-1000", v.DisplayID)
}

func TestCollisionWithLegacyRowRecoversOnce(t *testing.T) {
	setupIntegration(t)

	client := createTestClient(t)

	// A row the counter never saw, as left behind by a data import
	legacy := models.Vulnerability{
		DisplayID:   utils.FormatDisplayID("V", client.ShortName, 1),
		ClientID:    client.ID,
		Title:       "Imported finding",
		Status:      models.VulnOpen,
		Criticality: models.PriorityLow,
	}
	require.NoError(t, database.DB.Create(&legacy).Error)

	// The fresh counter would hand out 001 again; the unique index
	// trips and the rescan pushes past the legacy suffix
	v := createTestVulnerability(t, client.ID)
	assert.Equal(t, utils.FormatDisplayID("V", client.ShortName, 2), v.DisplayID)
}

func TestDeleteVulnerabilityBlockedByActiveTicket(t *testing.T) {
	setupIntegration(t)

	client := createTestClient(t)
	vulnService := NewVulnerabilityService()
	ticketService := NewTicketService()

	vulnerability := createTestVulnerability(t, client.ID)
	ticket := createTestTicket(t, client.ID, vulnerability.ID)

	err := vulnService.DeleteVulnerability(vulnerability.ID)
	require.Error(t, err)

	conflict, ok := AsConflict(err)
	require.True(t, ok)
	assert.Contains(t, conflict.BlockedBy, ticket.DisplayID)

	// Still retrievable: nothing was deleted
	_, err = vulnService.GetVulnerability(vulnerability.ID)
	require.NoError(t, err)

	// Deleting the ticket lifts the block
	require.NoError(t, ticketService.DeleteTicket(ticket.ID))
	require.NoError(t, vulnService.DeleteVulnerability(vulnerability.ID))

	_, err = vulnService.GetVulnerability(vulnerability.ID)
	assert.True(t, IsNotFound(err))
}

func TestAssetDeleteCascadesOrRejectsWholly(t *testing.T) {
	setupIntegration(t)

	client := createTestClient(t)
	assetService := NewAssetService()
	vulnService := NewVulnerabilityService()
	ticketService := NewTicketService()

	var assetType models.AssetType
	require.NoError(t, database.DB.FirstOrCreate(&assetType, models.AssetType{Name: "Server"}).Error)

	asset, err := assetService.CreateAsset(dto.CreateAssetRequest{
		ClientID:    client.ID,
		Name:        "db-prod-01",
		TypeID:      assetType.ID,
		Status:      string(models.AssetInOperation),
		Criticality: "High",
	})
	require.NoError(t, err)

	blocked, err := vulnService.CreateVulnerability(dto.CreateVulnerabilityRequest{
		ClientID:    client.ID,
		AssetID:     &asset.ID,
		Title:       "Outdated TLS configuration",
		Status:      "Open",
		Criticality: "High",
	})
	require.NoError(t, err)
	free, err := vulnService.CreateVulnerability(dto.CreateVulnerabilityRequest{
		ClientID:    client.ID,
		AssetID:     &asset.ID,
		Title:       "Default credentials",
		Status:      "Open",
		Criticality: "Critical",
	})
	require.NoError(t, err)

	ticket := createTestTicket(t, client.ID, blocked.ID)

	// One blocked vulnerability rejects the whole cascade
	err = assetService.DeleteAsset(asset.ID)
	require.Error(t, err)
	conflict, ok := AsConflict(err)
	require.True(t, ok)
	assert.Contains(t, conflict.BlockedBy, ticket.DisplayID)

	// Nothing was touched, including the unblocked vulnerability
	_, err = assetService.GetAsset(asset.ID)
	require.NoError(t, err)
	_, err = vulnService.GetVulnerability(free.ID)
	require.NoError(t, err)

	// Lifting the block lets the cascade through atomically
	require.NoError(t, ticketService.DeleteTicket(ticket.ID))
	require.NoError(t, assetService.DeleteAsset(asset.ID))

	_, err = assetService.GetAsset(asset.ID)
	assert.True(t, IsNotFound(err))
	_, err = vulnService.GetVulnerability(blocked.ID)
	assert.True(t, IsNotFound(err))
	_, err = vulnService.GetVulnerability(free.ID)
	assert.True(t, IsNotFound(err))

	// Numbers under the client keep counting past the deleted rows
	next := createTestVulnerability(t, client.ID)
	n, err := utils.ParseDisplayIDNumber(next.DisplayID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestShortNameLockedAfterFirstDisplayID(t *testing.T) {
	setupIntegration(t)

	client := createTestClient(t)
	clientService := NewClientService()

	// Renaming is fine while no IDs exist
	renamed := randomCode()
	updated, err := clientService.UpdateClient(client.ID, dto.UpdateClientRequest{ShortName: &renamed})
	require.NoError(t, err)
	assert.Equal(t, renamed, updated.ShortName)

	createTestVulnerability(t, client.ID)

	other := randomCode()
	_, err = clientService.UpdateClient(client.ID, dto.UpdateClientRequest{ShortName: &other})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func createTestProject(t *testing.T, clientID string) models.Project {
	t.Helper()
	project, err := NewProjectService().CreateProject(dto.CreateProjectRequest{
		ClientID:  clientID,
		Name:      "Quarterly Pentest " + randomCode(),
		Type:      "Penetration Test",
		StartDate: "2026-01-01",
		EndDate:   "2026-03-31",
	})
	require.NoError(t, err)
	return project
}

func TestGanttTaskReadAndProjectWideDelete(t *testing.T) {
	setupIntegration(t)

	client := createTestClient(t)
	project := createTestProject(t, client.ID)
	ganttService := NewGanttService()

	recon, err := ganttService.CreateTask(dto.CreateGanttTaskRequest{
		ProjectID: project.ID,
		Name:      "Recon",
		StartDate: "2026-01-05",
		EndDate:   "2026-01-09",
	})
	require.NoError(t, err)
	_, err = ganttService.CreateTask(dto.CreateGanttTaskRequest{
		ProjectID: project.ID,
		Name:      "Exploitation",
		StartDate: "2026-01-12",
		EndDate:   "2026-02-06",
	})
	require.NoError(t, err)

	got, err := ganttService.GetTask(recon.ID)
	require.NoError(t, err)
	assert.Equal(t, "Recon", got.Name)

	require.NoError(t, ganttService.DeleteProjectTasks(project.ID))

	tasks, err := ganttService.ListTasks(project.ID)
	require.NoError(t, err)
	assert.Empty(t, tasks)

	_, err = ganttService.GetTask(recon.ID)
	assert.True(t, IsNotFound(err))
}

func TestSoftDeleteRefreshesModificationTimestamp(t *testing.T) {
	setupIntegration(t)

	client := createTestClient(t)
	vulnerability := createTestVulnerability(t, client.ID)

	require.NoError(t, NewVulnerabilityService().DeleteVulnerability(vulnerability.ID))

	var deleted models.Vulnerability
	require.NoError(t, database.DB.Unscoped().First(&deleted, "id = ?", vulnerability.ID).Error)
	require.True(t, deleted.DeletedAt.Valid)
	assert.False(t, deleted.UpdatedAt.Before(vulnerability.UpdatedAt))
	assert.WithinDuration(t, deleted.DeletedAt.Time, deleted.UpdatedAt, time.Second)
}

func TestCreateClientRejectsBadShortNames(t *testing.T) {
	setupIntegration(t)

	for _, bad := range []string{"ts", "TSVXX", "tsv", "T5V"} {
		_, err := NewClientService().CreateClient(dto.CreateClientRequest{
			Name:      "Bad Code Client",
			ShortName: bad,
		})
		require.Error(t, err, bad)
		assert.True(t, IsValidation(err), bad)
	}
}
