package repository

import (
	"context"
	"fmt"
	"time"

	"contracting-cms/internal/model"

	"gorm.io/gorm"
)

type StatisticsRepository interface {
	CountRows(ctx context.Context, table string) (int64, error)
	ActivityByAction(ctx context.Context, start, end time.Time) ([]model.ActivityCount, error)
	MostEditedEntities(ctx context.Context, start, end time.Time, limit int) ([]model.EntityActivity, error)
}

type statisticsRepository struct {
	db *gorm.DB
}

func NewStatisticsRepository(db *gorm.DB) StatisticsRepository {
	return &statisticsRepository{db: db}
}

func (r *statisticsRepository) CountRows(ctx context.Context, table string) (int64, error) {
	var n int64
	if err := GetDB(ctx, r.db).Table(table).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", table, err)
	}
	return n, nil
}

func (r *statisticsRepository) ActivityByAction(ctx context.Context, start, end time.Time) ([]model.ActivityCount, error) {
	var counts []model.ActivityCount
	if err := GetDB(ctx, r.db).Model(&model.AuditLog{}).
		Select("action, COUNT(*) as total").
		Where("created_at >= ? AND created_at <= ?", start, end).
		Group("action").
		Order("total DESC, action ASC").
		Scan(&counts).Error; err != nil {
		return nil, fmt.Errorf("failed to query audit activity: %w", err)
	}
	return counts, nil
}

func (r *statisticsRepository) MostEditedEntities(ctx context.Context, start, end time.Time, limit int) ([]model.EntityActivity, error) {
	var rankings []model.EntityActivity
	if err := GetDB(ctx, r.db).Model(&model.AuditLog{}).
		Select("entity, COUNT(*) as total").
		Where("created_at >= ? AND created_at <= ?", start, end).
		Group("entity").
		Order("total DESC, entity ASC").
		Limit(limit).
		Scan(&rankings).Error; err != nil {
		return nil, fmt.Errorf("failed to query most edited entities: %w", err)
	}
	return rankings, nil
}
