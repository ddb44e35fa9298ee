package v1

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vulndesk-api/services"
)

func respondStatus(t *testing.T, err error) (int, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	respondError(c, "request failed", err)
	return w.Code, w.Body.String()
}

func TestRespondErrorMapsBusinessRuleRejectionsTo400(t *testing.T) {
	rejections := []error{
		errors.Wrap(services.ErrValidation, "all vulnerabilities must belong to the same client as the ticket"),
		errors.Wrapf(services.ErrValidation, "client with short name %q already exists", "TSV"),
		errors.Wrapf(services.ErrValidation, "client has %d active tickets, vulnerabilities or assets", 2),
		errors.Wrapf(services.ErrValidation, "asset type is used by %d assets", 3),
		errors.Wrap(services.ErrShortNameLocked, "client"),
		errors.Wrapf(services.ErrInvalidClientCode, "%q", "ts"),
	}
	for _, err := range rejections {
		status, _ := respondStatus(t, err)
		assert.Equal(t, http.StatusBadRequest, status, err.Error())
	}
}

func TestRespondErrorMapsNotFoundTo404(t *testing.T) {
	status, _ := respondStatus(t, errors.Wrap(services.ErrNotFound, "client"))
	assert.Equal(t, http.StatusNotFound, status)
}

func TestRespondErrorMapsConflictsTo400WithBlockers(t *testing.T) {
	conflict := &services.ConflictError{
		Resource:  "vulnerability V-TSV-003",
		BlockedBy: []string{"T-TSV-001", "T-TSV-007"},
	}
	status, body := respondStatus(t, conflict)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body, "T-TSV-001")
	assert.Contains(t, body, "T-TSV-007")
}

func TestRespondErrorDefaultsTo500(t *testing.T) {
	for _, err := range []error{
		errors.New("connection reset"),
		errors.Wrapf(services.ErrDuplicateIdentifier, "ticket %q", "T-TSV-010"),
	} {
		status, _ := respondStatus(t, err)
		assert.Equal(t, http.StatusInternalServerError, status, err.Error())
	}
}
