// Package overview computes the store dashboard figures: revenue, sales,
// stock and a monthly revenue series for the current year.
package overview

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// MonthRevenue is one bar of the revenue chart.
type MonthRevenue struct {
	Name  string          `json:"name"`
	Total decimal.Decimal `json:"total"`
}

// Overview holds the figures shown on a store's landing page.
type Overview struct {
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
	SalesCount   int             `json:"salesCount"`
	StockCount   int             `json:"stockCount"`
	Graph        []MonthRevenue  `json:"graphRevenue"`
}

// Sale is a single paid order line.
type Sale struct {
	OrderID  uuid.UUID
	PaidAt   time.Time
	Quantity int
	Price    decimal.Decimal
}

// Repository reads the raw figures.
type Repository interface {
	PaidSales(ctx context.Context, storeID uuid.UUID) ([]Sale, error)
	CountPaidOrders(ctx context.Context, storeID uuid.UUID) (int, error)
	CountInStock(ctx context.Context, storeID uuid.UUID) (int, error)
}

type Service interface {
	Overview(ctx context.Context, storeID uuid.UUID) (*Overview, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

// NewService returns an overview service. A nil clock means time.Now.
func NewService(repo Repository, now func() time.Time) Service {
	if now == nil {
		now = time.Now
	}
	return &service{repo: repo, now: now}
}

func (s *service) Overview(ctx context.Context, storeID uuid.UUID) (*Overview, error) {
	var (
		out   Overview
		sales []Sale
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		sales, err = s.repo.PaidSales(gctx, storeID)
		return err
	})
	g.Go(func() (err error) {
		out.SalesCount, err = s.repo.CountPaidOrders(gctx, storeID)
		return err
	})
	g.Go(func() (err error) {
		out.StockCount, err = s.repo.CountInStock(gctx, storeID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	year := s.now().UTC().Year()
	out.TotalRevenue = decimal.Zero
	out.Graph = make([]MonthRevenue, 12)
	for m := range out.Graph {
		out.Graph[m] = MonthRevenue{Name: time.Month(m + 1).String()[:3], Total: decimal.Zero}
	}
	for _, sale := range sales {
		amount := sale.Price.Mul(decimal.NewFromInt(int64(sale.Quantity)))
		out.TotalRevenue = out.TotalRevenue.Add(amount)
		if at := sale.PaidAt.UTC(); at.Year() == year {
			m := at.Month() - 1
			out.Graph[m].Total = out.Graph[m].Total.Add(amount)
		}
	}
	return &out, nil
}
