package service

import (
	"context"
	"sort"
	"time"

	"github.com/Royal-dudy99/SwiftBooks18/internal/ledger/domain"
	"github.com/Royal-dudy99/SwiftBooks18/internal/ledger/dto"
)

// AnalyticsService is a read-only projection over a ledger snapshot. It
// never mutates the store and recomputes identically from the same data.
type AnalyticsService struct {
	repo domain.TransactionRepository
}

func NewAnalyticsService(repo domain.TransactionRepository) *AnalyticsService {
	return &AnalyticsService{repo: repo}
}

func (s *AnalyticsService) Summary(ctx context.Context, ownerID string, start, end *time.Time) (*dto.AnalyticsSummary, error) {
	// Limit 0 fetches the whole (date-filtered) partition.
	snapshot, _, err := s.repo.List(ctx, ownerID, domain.Filter{
		StartDate: start,
		EndDate:   endOfDay(end),
	})
	if err != nil {
		return nil, err
	}

	// Oldest first, stable: group order then follows first occurrence
	// rather than the display order of the list endpoint.
	sort.SliceStable(snapshot, func(i, j int) bool {
		return snapshot[i].Date.Before(snapshot[j].Date)
	})

	summary := &dto.AnalyticsSummary{
		Breakdown: []dto.TypeBreakdown{},
		Monthly:   []dto.MonthPoint{},
	}

	typeIndex := map[domain.Type]int{}
	categoryIndex := map[domain.Type]map[string]int{}

	type monthKey struct {
		year  int
		month time.Month
	}
	buckets := map[monthKey]*dto.MonthPoint{}
	keys := []monthKey{}

	for _, tx := range snapshot {
		switch tx.Type {
		case domain.TypeIncome:
			summary.TotalIncome += tx.Amount
		case domain.TypeExpense:
			summary.TotalExpenses += tx.Amount
		}

		ti, ok := typeIndex[tx.Type]
		if !ok {
			ti = len(summary.Breakdown)
			typeIndex[tx.Type] = ti
			categoryIndex[tx.Type] = map[string]int{}
			summary.Breakdown = append(summary.Breakdown, dto.TypeBreakdown{
				Type:       string(tx.Type),
				Categories: []dto.CategoryStat{},
			})
		}
		group := &summary.Breakdown[ti]
		group.Total += tx.Amount

		ci, ok := categoryIndex[tx.Type][tx.Category]
		if !ok {
			ci = len(group.Categories)
			categoryIndex[tx.Type][tx.Category] = ci
			group.Categories = append(group.Categories, dto.CategoryStat{Category: tx.Category})
		}
		group.Categories[ci].Total += tx.Amount
		group.Categories[ci].Count++

		key := monthKey{year: tx.Date.Year(), month: tx.Date.Month()}
		bucket, ok := buckets[key]
		if !ok {
			bucket = &dto.MonthPoint{
				Month: time.Date(key.year, key.month, 1, 0, 0, 0, 0, time.UTC).Format("Jan 2006"),
			}
			buckets[key] = bucket
			keys = append(keys, key)
		}
		switch tx.Type {
		case domain.TypeIncome:
			bucket.Income += tx.Amount
		case domain.TypeExpense:
			bucket.Expenses += tx.Amount
		}
	}

	summary.Balance = summary.TotalIncome - summary.TotalExpenses

	// Calendar order, never the formatted label.
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].month < keys[j].month
	})
	for _, key := range keys {
		summary.Monthly = append(summary.Monthly, *buckets[key])
	}

	return summary, nil
}
