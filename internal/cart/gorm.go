package cart

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CartRecord is the SQL fallback for deployments without Redis: one row per
// session holding the same serialized payload the Redis backend stores.
type CartRecord struct {
	SessionID string `gorm:"primaryKey"`
	Payload   []byte
	UpdatedAt time.Time
}

func (CartRecord) TableName() string {
	return "cart_records"
}

type GormStorage struct {
	DB *gorm.DB
}

func NewGormStorage(db *gorm.DB) (*GormStorage, error) {
	if err := db.AutoMigrate(&CartRecord{}); err != nil {
		return nil, err
	}
	return &GormStorage{DB: db}, nil
}

func (g *GormStorage) Load(ctx context.Context, sessionID string) ([]byte, error) {
	var rec CartRecord
	if err := g.DB.WithContext(ctx).First(&rec, "session_id = ?", sessionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rec.Payload, nil
}

func (g *GormStorage) Save(ctx context.Context, sessionID string, payload []byte) error {
	rec := CartRecord{SessionID: sessionID, Payload: payload, UpdatedAt: time.Now().UTC()}
	return g.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "session_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(&rec).Error
}

func (g *GormStorage) Delete(ctx context.Context, sessionID string) error {
	return g.DB.WithContext(ctx).Delete(&CartRecord{}, "session_id = ?", sessionID).Error
}
