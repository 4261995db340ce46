package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"go-weather/internal/domain/model"
)

// KeyValue is the row behind GormKeyValueGateway
type KeyValue struct {
	Key       string `gorm:"primaryKey;size:128"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

func (KeyValue) TableName() string {
	return "key_values"
}

// GormKeyValueGateway stores values in a key_values table on any gorm dialect (sqlite on device, postgres when shared)
type GormKeyValueGateway struct {
	DB *gorm.DB
}

var _ KeyValueGateway = (*GormKeyValueGateway)(nil)

// NewGormKeyValueGateway migrates the key_values table and returns the gateway
func NewGormKeyValueGateway(db *gorm.DB) (*GormKeyValueGateway, error) {
	if err := db.AutoMigrate(&KeyValue{}); err != nil {
		return nil, fmt.Errorf("failed to migrate key_values: %w", err)
	}
	return &GormKeyValueGateway{DB: db}, nil
}

func (gateway *GormKeyValueGateway) StoreData(ctx context.Context, key string, value string) error {
	row := KeyValue{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	err := gateway.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to store %s: %w", key, err)
	}
	return nil
}

func (gateway *GormKeyValueGateway) GetData(ctx context.Context, key string) (string, bool, error) {
	var row KeyValue
	err := gateway.DB.WithContext(ctx).Where("key = ?", key).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return row.Value, true, nil
}

func (gateway *GormKeyValueGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	details := map[string]string{"backend": gateway.DB.Dialector.Name()}

	sqlDB, err := gateway.DB.DB()
	if err != nil {
		details["message"] = err.Error()
		return model.ComponentHealthStatus{Status: model.StatusDown, Details: details}
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		details["message"] = err.Error()
		return model.ComponentHealthStatus{Status: model.StatusDown, Details: details}
	}

	details["message"] = string(model.StatusUp)
	return model.ComponentHealthStatus{Status: model.StatusUp, Details: details}
}
