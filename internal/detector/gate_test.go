package detector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/truckwise/fleetops-backend-go/internal/models"
)

func TestGateOneLoadPerVehicle(t *testing.T) {
	loads := []models.Load{
		{ID: 2, Status: models.StatusPending, AssignedVehicleKey: "V1", LoadingDate: 2000},
		{ID: 1, Status: models.StatusInTransit, AssignedVehicleKey: "V1", LoadingDate: 1000},
		{ID: 3, Status: models.StatusPending, AssignedVehicleKey: "V2", LoadingDate: 3000},
	}

	eligible := Gate(loads)
	require.Len(t, eligible, 2)

	// Earliest loading date wins per vehicle
	assert.Equal(t, int64(1), eligible[0].ID)
	assert.Equal(t, int64(3), eligible[1].ID)
}

func TestGateReleasesVehicleAfterDelivery(t *testing.T) {
	l1 := models.Load{ID: 1, Status: models.StatusInTransit, AssignedVehicleKey: "V1", LoadingDate: 1000}
	l2 := models.Load{ID: 2, Status: models.StatusPending, AssignedVehicleKey: "V1", LoadingDate: 2000}

	eligible := Gate([]models.Load{l1, l2})
	require.Len(t, eligible, 1)
	assert.Equal(t, int64(1), eligible[0].ID)

	// Once L1 is delivered, L2 becomes the vehicle's gated load
	l1.Status = models.StatusDelivered
	eligible = Gate([]models.Load{l1, l2})
	require.Len(t, eligible, 1)
	assert.Equal(t, int64(2), eligible[0].ID)
}

func TestGateUnassignedLoadsBypass(t *testing.T) {
	loads := []models.Load{
		{ID: 1, Status: models.StatusPending, LoadingDate: 1000},
		{ID: 2, Status: models.StatusPending, LoadingDate: 1000},
		{ID: 3, Status: models.StatusPending, AssignedVehicleKey: "V1", LoadingDate: 500},
	}

	eligible := Gate(loads)
	assert.Len(t, eligible, 3)
}

func TestGateTieBreaksOnID(t *testing.T) {
	loads := []models.Load{
		{ID: 9, Status: models.StatusPending, AssignedVehicleKey: "V1", LoadingDate: 1000},
		{ID: 4, Status: models.StatusPending, AssignedVehicleKey: "V1", LoadingDate: 1000},
	}

	eligible := Gate(loads)
	require.Len(t, eligible, 1)
	assert.Equal(t, int64(4), eligible[0].ID)
}
