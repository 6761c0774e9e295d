package detector

import (
	"sort"

	"github.com/truckwise/fleetops-backend-go/internal/models"
)

// Gate restricts evaluation to one load per physical vehicle per tick: the
// not-yet-delivered load with the earliest loading date wins, later loads on
// the same truck wait until it is delivered. Loads without an assigned
// vehicle bypass the gate; they have no position to evaluate and stay no-ops
// until dispatch assigns one.
func Gate(loads []models.Load) []models.Load {
	sorted := make([]models.Load, len(loads))
	copy(sorted, loads)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].LoadingDate != sorted[j].LoadingDate {
			return sorted[i].LoadingDate < sorted[j].LoadingDate
		}
		return sorted[i].ID < sorted[j].ID
	})

	gated := make(map[string]bool)
	var eligible []models.Load
	for _, l := range sorted {
		if !l.Active() {
			continue
		}
		if l.AssignedVehicleKey == "" {
			eligible = append(eligible, l)
			continue
		}
		if gated[l.AssignedVehicleKey] {
			continue
		}
		gated[l.AssignedVehicleKey] = true
		eligible = append(eligible, l)
	}

	return eligible
}
