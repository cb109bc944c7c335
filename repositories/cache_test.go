package repositories

import (
	"testing"
	"time"
)

func TestEachCachedListingCarriesItsOwnExpiry(t *testing.T) {
	expiries := map[string]time.Duration{
		"doctor":      DoctorCacheExpiry,
		"patient":     PatientCacheExpiry,
		"specialty":   SpecialtyCacheExpiry,
		"room":        RoomCacheExpiry,
		"medication":  MedicationCacheExpiry,
		"appointment": AppointmentCacheExpiry,
	}
	for name, expiry := range expiries {
		if expiry <= 0 {
			t.Errorf("%s cache expiry must be positive, got %v", name, expiry)
		}
	}
}
