package service

import (
	"context"
	"fmt"
	"time"

	"contracting-cms/internal/model"
	"contracting-cms/internal/repository"
)

// statisticsTables are the content tables counted on the dashboard, in display order.
var statisticsTables = []string{
	"projects", "articles", "products", "partners", "suppliers",
	"import_services", "contracting_services", "shipments", "faqs", "images", "accounts",
}

const mostEditedLimit = 5

type StatisticsService interface {
	GetStatistics(ctx context.Context, startDate, endDate time.Time) (model.StatisticsResponse, error)
}

type statisticsService struct {
	repo repository.StatisticsRepository
}

func NewStatisticsService(repo repository.StatisticsRepository) StatisticsService {
	return &statisticsService{repo: repo}
}

// GetStatistics counts the current content and the audit activity between
// startDate and endDate inclusive.
func (s *statisticsService) GetStatistics(ctx context.Context, startDate, endDate time.Time) (model.StatisticsResponse, error) {
	if endDate.Before(startDate) {
		return model.StatisticsResponse{}, fmt.Errorf("%w: end_date must not be before start_date", ErrInvalidInput)
	}
	resp := model.StatisticsResponse{
		ContentTotals:      make([]model.ContentTotal, 0, len(statisticsTables)),
		TimeRangeStartDate: startDate,
		TimeRangeEndDate:   endDate,
	}

	for _, table := range statisticsTables {
		n, err := s.repo.CountRows(ctx, table)
		if err != nil {
			return model.StatisticsResponse{}, err
		}
		resp.ContentTotals = append(resp.ContentTotals, model.ContentTotal{Entity: table, Total: n})
	}

	activity, err := s.repo.ActivityByAction(ctx, startDate, endDate)
	if err != nil {
		return model.StatisticsResponse{}, err
	}
	resp.Activity = nonNil(activity)

	top, err := s.repo.MostEditedEntities(ctx, startDate, endDate, mostEditedLimit)
	if err != nil {
		return model.StatisticsResponse{}, err
	}
	resp.MostEdited = nonNil(top)
	return resp, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
