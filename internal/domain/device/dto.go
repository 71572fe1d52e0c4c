package device

import (
	"github.com/attendly/attendance-backend-go/internal/pkg/validator"
)

type CreateDeviceRequest struct {
	DeviceName string  `json:"device_name"`
	DeviceType string  `json:"device_type"`
	Location   *string `json:"location"`
}

func (r *CreateDeviceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.DeviceName) {
		errs = append(errs, validator.ValidationError{
			Field:   "device_name",
			Message: "device_name is required",
		})
	}

	if validator.IsEmpty(r.DeviceType) {
		errs = append(errs, validator.ValidationError{
			Field:   "device_type",
			Message: "device_type is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DeviceResponse struct {
	ID         string  `json:"id"`
	DeviceName string  `json:"device_name"`
	DeviceType string  `json:"device_type"`
	Location   *string `json:"location"`
	IsActive   bool    `json:"is_active"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  string  `json:"updated_at"`
}
