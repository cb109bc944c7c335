package handlers

import (
	"ClinicBook/store"
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestWriteStoreErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"uniqueness violation", fmt.Errorf("duplicate doctor email: %w", store.ErrUniquenessViolation), 409},
		{"reference violation", fmt.Errorf("patient_id does not resolve: %w", store.ErrReferenceViolation), 409},
		{"constraint violation", fmt.Errorf("end_time: must be after start_time: %w", store.ErrConstraintViolation), 422},
		{"not found", fmt.Errorf("doctor abc: %w", store.ErrNotFound), 404},
		{"unclassified", errors.New("connection reset"), 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			writeStoreError(c, tt.err)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}
