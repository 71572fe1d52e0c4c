package setting

import (
	"github.com/attendly/attendance-backend-go/internal/pkg/validator"
)

type CreateSettingRequest struct {
	SettingName  string `json:"setting_name"`
	SettingValue string `json:"setting_value"`
}

func (r *CreateSettingRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.SettingName) {
		errs = append(errs, validator.ValidationError{
			Field:   "setting_name",
			Message: "setting_name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateSettingRequest struct {
	SettingValue string `json:"setting_value"`
}

type SettingResponse struct {
	ID           string `json:"id"`
	SettingName  string `json:"setting_name"`
	SettingValue string `json:"setting_value"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}
