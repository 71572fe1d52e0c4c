package postgresql

import (
	"context"
	"fmt"

	"github.com/attendly/attendance-backend-go/internal/domain/setting"
	"github.com/attendly/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type settingRepository struct {
	db *database.DB
}

func NewSettingRepository(db *database.DB) setting.SettingRepository {
	return &settingRepository{db: db}
}

// Create implements setting.SettingRepository. Setting names are unique;
// a duplicate insert surfaces as ErrSettingExists.
func (s *settingRepository) Create(ctx context.Context, newSetting setting.Setting) (setting.Setting, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		INSERT INTO settings (setting_name, setting_value)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newSetting.SettingName,
		newSetting.SettingValue,
	).Scan(&newSetting.ID, &newSetting.CreatedAt, &newSetting.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return setting.Setting{}, setting.ErrSettingExists
		}
		return setting.Setting{}, fmt.Errorf("failed to create setting: %w", err)
	}

	return newSetting, nil
}

// GetByName implements setting.SettingRepository.
func (s *settingRepository) GetByName(ctx context.Context, name string) (setting.Setting, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT id, setting_name, setting_value, created_at, updated_at
		FROM settings
		WHERE setting_name = $1
	`

	var st setting.Setting
	err := q.QueryRow(ctx, query, name).Scan(
		&st.ID, &st.SettingName, &st.SettingValue, &st.CreatedAt, &st.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return setting.Setting{}, setting.ErrSettingNotFound
		}
		return setting.Setting{}, fmt.Errorf("failed to get setting: %w", err)
	}

	return st, nil
}

// List implements setting.SettingRepository.
func (s *settingRepository) List(ctx context.Context) ([]setting.Setting, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT id, setting_name, setting_value, created_at, updated_at
		FROM settings
		ORDER BY setting_name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}
	defer rows.Close()

	var settings []setting.Setting
	for rows.Next() {
		var st setting.Setting
		if err := rows.Scan(
			&st.ID, &st.SettingName, &st.SettingValue, &st.CreatedAt, &st.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan setting row: %w", err)
		}
		settings = append(settings, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate setting rows: %w", err)
	}

	return settings, nil
}

// UpdateValue implements setting.SettingRepository.
func (s *settingRepository) UpdateValue(ctx context.Context, name string, value string) (setting.Setting, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		UPDATE settings
		SET setting_value = $2, updated_at = NOW()
		WHERE setting_name = $1
		RETURNING id, setting_name, setting_value, created_at, updated_at
	`

	var st setting.Setting
	err := q.QueryRow(ctx, query, name, value).Scan(
		&st.ID, &st.SettingName, &st.SettingValue, &st.CreatedAt, &st.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return setting.Setting{}, setting.ErrSettingNotFound
		}
		return setting.Setting{}, fmt.Errorf("failed to update setting: %w", err)
	}

	return st, nil
}

// Delete implements setting.SettingRepository.
func (s *settingRepository) Delete(ctx context.Context, name string) error {
	q := GetQuerier(ctx, s.db)

	tag, err := q.Exec(ctx, `DELETE FROM settings WHERE setting_name = $1`, name)
	if err != nil {
		return fmt.Errorf("failed to delete setting: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return setting.ErrSettingNotFound
	}

	return nil
}
