package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fabwise/equipment-mgmt/internal/pkg/infrastructure/repositories/database"
	"github.com/fabwise/equipment-mgmt/internal/pkg/infrastructure/router"

	"github.com/google/uuid"
	"github.com/matryer/is"
	"github.com/rs/zerolog"
)

type monitorMock struct {
	checks int
	err    error
}

func (m *monitorMock) CheckAllEquipment(ctx context.Context) error {
	m.checks++
	return m.err
}

func testSetup(t *testing.T) (*is.I, database.EquipmentRepository, *monitorMock, *httptest.Server) {
	is := is.New(t)

	repository, err := database.New(database.NewSQLiteConnector(zerolog.Logger{}))
	is.NoErr(err)

	svc := &monitorMock{}

	r := router.New("equipment-mgmt-test")
	RegisterHandlers(zerolog.Logger{}, r, svc, repository)

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)

	return is, repository, svc, server
}

func seedOne(is *is.I, r database.EquipmentRepository) string {
	equipmentID := "DC-" + uuid.NewString()

	csv := fmt.Sprintf("equipmentID;name;type;location;status\n%s;Dicer A;dicer;Fab 1;normal\n", equipmentID)
	err := r.SeedEquipment(context.Background(), bytes.NewBufferString(csv))
	is.NoErr(err)

	return equipmentID
}

func TestHealthEndpointReturns204(t *testing.T) {
	is, _, _, server := testSetup(t)

	resp, err := http.Get(server.URL + "/health")
	is.NoErr(err)
	is.Equal(http.StatusNoContent, resp.StatusCode)
}

func TestGetEquipmentByID(t *testing.T) {
	is, repository, _, server := testSetup(t)

	equipmentID := seedOne(is, repository)

	resp, err := http.Get(server.URL + "/api/v0/equipment/" + equipmentID)
	is.NoErr(err)
	is.Equal(http.StatusOK, resp.StatusCode)

	equipment := database.Equipment{}
	err = json.NewDecoder(resp.Body).Decode(&equipment)
	resp.Body.Close()
	is.NoErr(err)
	is.Equal("Dicer A", equipment.Name)
}

func TestGetEquipmentByIDNotFound(t *testing.T) {
	is, _, _, server := testSetup(t)

	resp, err := http.Get(server.URL + "/api/v0/equipment/no-such-equipment")
	is.NoErr(err)
	is.Equal(http.StatusNotFound, resp.StatusCode)
}

func TestGetAlertsForEquipment(t *testing.T) {
	is, repository, _, server := testSetup(t)

	equipmentID := seedOne(is, repository)

	changed, err := repository.UpdateStatus(context.Background(), equipmentID, database.StatusCritical, []database.AlertHistory{
		{AlertType: database.AlertTypeStateChange, Severity: "critical", Message: "rotation speed low"},
	})
	is.NoErr(err)
	is.True(changed)

	resp, err := http.Get(server.URL + "/api/v0/equipment/" + equipmentID + "/alerts")
	is.NoErr(err)
	is.Equal(http.StatusOK, resp.StatusCode)

	alerts := []database.AlertHistory{}
	err = json.NewDecoder(resp.Body).Decode(&alerts)
	resp.Body.Close()
	is.NoErr(err)
	is.Equal(1, len(alerts))
	is.Equal("critical", alerts[0].Severity)
}

func TestResolveAlert(t *testing.T) {
	is, repository, _, server := testSetup(t)

	equipmentID := seedOne(is, repository)

	_, err := repository.UpdateStatus(context.Background(), equipmentID, database.StatusWarning, []database.AlertHistory{
		{AlertType: database.AlertTypeStateChange, Severity: "warning", Message: "temperature high"},
	})
	is.NoErr(err)

	alerts, err := repository.GetAlertsByEquipmentID(context.Background(), equipmentID)
	is.NoErr(err)
	is.Equal(1, len(alerts))

	body := bytes.NewBufferString(`{"resolvedBy":"operator-7","notes":"cooling fixed"}`)
	req, _ := http.NewRequest(http.MethodPatch, fmt.Sprintf("%s/api/v0/alerts/%d", server.URL, alerts[0].ID), body)

	resp, err := http.DefaultClient.Do(req)
	is.NoErr(err)
	is.Equal(http.StatusNoContent, resp.StatusCode)

	alerts, err = repository.GetAlertsByEquipmentID(context.Background(), equipmentID)
	is.NoErr(err)
	is.True(alerts[0].IsResolved)
}

func TestTriggerManualCheck(t *testing.T) {
	is, _, svc, server := testSetup(t)

	resp, err := http.Post(server.URL+"/api/v0/check", "application/json", nil)
	is.NoErr(err)
	is.Equal(http.StatusNoContent, resp.StatusCode)
	is.Equal(1, svc.checks)
}

func TestGetStatistics(t *testing.T) {
	is, repository, _, server := testSetup(t)

	seedOne(is, repository)

	resp, err := http.Get(server.URL + "/api/v0/equipment/stats")
	is.NoErr(err)
	is.Equal(http.StatusOK, resp.StatusCode)

	stats := []database.StatusStatistics{}
	err = json.NewDecoder(resp.Body).Decode(&stats)
	resp.Body.Close()
	is.NoErr(err)
	is.True(len(stats) > 0)
}
