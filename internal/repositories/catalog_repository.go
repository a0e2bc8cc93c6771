package repositories

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"traveldna/internal/models/db_models"
	"traveldna/internal/travel"
)

type CatalogRepositoryInterface interface {
	ListPackages(ctx context.Context) ([]travel.TravelPackage, error)
	SeedPackages(ctx context.Context, pkgs []travel.TravelPackage) error
	Source() string
}

func NewCatalogRepository(db *gorm.DB) CatalogRepositoryInterface {
	return &CatalogRepository{db: db}
}

type CatalogRepository struct {
	db *gorm.DB
}

func (r *CatalogRepository) Source() string { return "postgres" }

func (r *CatalogRepository) ListPackages(ctx context.Context) ([]travel.TravelPackage, error) {
	var rows []db_models.SamplePackage
	if err := r.db.WithContext(ctx).Order("position ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	pkgs := make([]travel.TravelPackage, 0, len(rows))
	for _, row := range rows {
		pkgs = append(pkgs, toTravelPackage(row))
	}
	return pkgs, nil
}

// SeedPackages inserts the catalog, leaving rows that already exist untouched.
func (r *CatalogRepository) SeedPackages(ctx context.Context, pkgs []travel.TravelPackage) error {
	if len(pkgs) == 0 {
		return nil
	}
	rows := make([]db_models.SamplePackage, 0, len(pkgs))
	for _, p := range pkgs {
		row, err := toRow(p)
		if err != nil {
			return err
		}
		rows = append(rows, row)
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&rows).Error
	})
}

func toRow(p travel.TravelPackage) (db_models.SamplePackage, error) {
	id, err := uuid.Parse(p.Key)
	if err != nil {
		return db_models.SamplePackage{}, err
	}
	return db_models.SamplePackage{
		BaseModel:   db_models.BaseModel{ID: id},
		Position:    p.ID,
		Name:        p.Name,
		Country:     p.Country,
		City:        p.City,
		Lat:         p.Lat,
		Lng:         p.Lng,
		Price:       p.Price,
		Duration:    p.Duration,
		Description: p.Description,
		Image:       p.Image,
		Tags:        pq.StringArray(p.Tags),
	}, nil
}

func toTravelPackage(row db_models.SamplePackage) travel.TravelPackage {
	return travel.TravelPackage{
		ID:          row.Position,
		Key:         row.ID.String(),
		Name:        row.Name,
		Country:     row.Country,
		City:        row.City,
		Lat:         row.Lat,
		Lng:         row.Lng,
		Price:       row.Price,
		Duration:    row.Duration,
		Description: row.Description,
		Image:       row.Image,
		Tags:        append([]string{}, row.Tags...),
	}
}

// MemoryCatalogRepository serves the catalog when no database is configured.
type MemoryCatalogRepository struct {
	mu   sync.RWMutex
	pkgs []travel.TravelPackage
}

func NewMemoryCatalogRepository() CatalogRepositoryInterface {
	return &MemoryCatalogRepository{}
}

func (r *MemoryCatalogRepository) Source() string { return "memory" }

func (r *MemoryCatalogRepository) ListPackages(ctx context.Context) ([]travel.TravelPackage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]travel.TravelPackage, len(r.pkgs))
	for i, p := range r.pkgs {
		p.Tags = append([]string{}, p.Tags...)
		out[i] = p
	}
	return out, nil
}

func (r *MemoryCatalogRepository) SeedPackages(ctx context.Context, pkgs []travel.TravelPackage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[string]bool, len(r.pkgs))
	for _, p := range r.pkgs {
		seen[p.Key] = true
	}
	for _, p := range pkgs {
		if seen[p.Key] {
			continue
		}
		seen[p.Key] = true
		r.pkgs = append(r.pkgs, p)
	}
	return nil
}
