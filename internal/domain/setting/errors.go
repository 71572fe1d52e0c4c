package setting

import "errors"

var (
	ErrSettingNotFound = errors.New("setting not found")
	ErrSettingExists   = errors.New("setting name already exists")
)
