package postgresql

import (
	"context"
	"fmt"

	"github.com/attendly/attendance-backend-go/internal/domain/device"
	"github.com/attendly/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type deviceRepository struct {
	db *database.DB
}

func NewDeviceRepository(db *database.DB) device.DeviceRepository {
	return &deviceRepository{db: db}
}

// Create implements device.DeviceRepository.
func (d *deviceRepository) Create(ctx context.Context, newDevice device.Device) (device.Device, error) {
	q := GetQuerier(ctx, d.db)

	query := `
		INSERT INTO devices (device_name, device_type, location, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newDevice.DeviceName,
		newDevice.DeviceType,
		newDevice.Location,
		newDevice.IsActive,
	).Scan(&newDevice.ID, &newDevice.CreatedAt, &newDevice.UpdatedAt)

	if err != nil {
		return device.Device{}, fmt.Errorf("failed to create device: %w", err)
	}

	return newDevice, nil
}

// GetByID implements device.DeviceRepository.
func (d *deviceRepository) GetByID(ctx context.Context, id string) (device.Device, error) {
	q := GetQuerier(ctx, d.db)

	query := `
		SELECT id, device_name, device_type, location, is_active, created_at, updated_at
		FROM devices
		WHERE id = $1
	`

	var dev device.Device
	err := q.QueryRow(ctx, query, id).Scan(
		&dev.ID, &dev.DeviceName, &dev.DeviceType, &dev.Location,
		&dev.IsActive, &dev.CreatedAt, &dev.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return device.Device{}, device.ErrDeviceNotFound
		}
		return device.Device{}, fmt.Errorf("failed to get device: %w", err)
	}

	return dev, nil
}

// List implements device.DeviceRepository.
func (d *deviceRepository) List(ctx context.Context) ([]device.Device, error) {
	q := GetQuerier(ctx, d.db)

	query := `
		SELECT id, device_name, device_type, location, is_active, created_at, updated_at
		FROM devices
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list devices: %w", err)
	}
	defer rows.Close()

	var devices []device.Device
	for rows.Next() {
		var dev device.Device
		if err := rows.Scan(
			&dev.ID, &dev.DeviceName, &dev.DeviceType, &dev.Location,
			&dev.IsActive, &dev.CreatedAt, &dev.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan device row: %w", err)
		}
		devices = append(devices, dev)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate device rows: %w", err)
	}

	return devices, nil
}

// Delete implements device.DeviceRepository.
func (d *deviceRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, d.db)

	tag, err := q.Exec(ctx, `DELETE FROM devices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete device: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return device.ErrDeviceNotFound
	}

	return nil
}
