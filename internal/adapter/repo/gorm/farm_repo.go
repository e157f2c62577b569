package gormrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"terrafarm/internal/adapter/repo/gorm/model"
	"terrafarm/internal/app/ports"
	"terrafarm/internal/domain/farm"

	"gorm.io/gorm"
)

type FarmRepo struct {
	db *gorm.DB
}

func NewFarmRepo(db *gorm.DB) FarmRepo {
	return FarmRepo{db: db}
}

func (r FarmRepo) GetByID(ctx context.Context, farmID string) (farm.Farm, error) {
	var m model.Farm
	if err := getDBFromCtx(ctx, r.db).Where("farm_id = ?", farmID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return farm.Farm{}, ports.ErrNotFound
		}
		return farm.Farm{}, err
	}
	return toDomain(m)
}

func (r FarmRepo) SaveWithVersion(ctx context.Context, f farm.Farm, expectedVersion int64) error {
	db := getDBFromCtx(ctx, r.db)
	m, err := toRow(f)
	if err != nil {
		return err
	}

	if expectedVersion == 0 {
		return db.Create(&m).Error
	}

	res := db.Model(&model.Farm{}).
		Where("farm_id = ? AND version = ?", f.ID, expectedVersion).
		Updates(map[string]any{
			"current_day":    m.CurrentDay,
			"season":         m.Season,
			"budget":         m.Budget,
			"total_revenue":  m.TotalRevenue,
			"total_expenses": m.TotalExpenses,
			"achievements":   m.Achievements,
			"plots":          m.Plots,
			"version":        m.Version,
			"updated_at":     m.UpdatedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrConflict
	}
	return nil
}

func (r FarmRepo) Delete(ctx context.Context, farmID string) error {
	db := getDBFromCtx(ctx, r.db)
	res := db.Where("farm_id = ?", farmID).Delete(&model.Farm{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return db.Where("farm_id = ?", farmID).Delete(&model.DomainEvent{}).Error
}

func toRow(f farm.Farm) (model.Farm, error) {
	plots, err := json.Marshal(f.Plots)
	if err != nil {
		return model.Farm{}, fmt.Errorf("encode plots: %w", err)
	}
	achievements, err := json.Marshal(f.Achievements)
	if err != nil {
		return model.Farm{}, fmt.Errorf("encode achievements: %w", err)
	}
	return model.Farm{
		FarmID:        f.ID,
		OwnerID:       f.OwnerID,
		Difficulty:    string(f.Difficulty),
		Latitude:      f.Location.Latitude,
		Longitude:     f.Location.Longitude,
		CurrentDay:    int32(f.CurrentDay),
		Season:        string(f.Season),
		Budget:        f.Budget,
		TotalRevenue:  f.TotalRevenue,
		TotalExpenses: f.TotalExpenses,
		Achievements:  achievements,
		Plots:         plots,
		Version:       f.Version,
		CreatedAt:     f.CreatedAt,
		UpdatedAt:     f.UpdatedAt,
	}, nil
}

func toDomain(m model.Farm) (farm.Farm, error) {
	var plots []farm.Plot
	if len(m.Plots) > 0 {
		if err := json.Unmarshal(m.Plots, &plots); err != nil {
			return farm.Farm{}, fmt.Errorf("decode plots for farm %s: %w", m.FarmID, err)
		}
	}
	achievements := []string{}
	if len(m.Achievements) > 0 {
		if err := json.Unmarshal(m.Achievements, &achievements); err != nil {
			return farm.Farm{}, fmt.Errorf("decode achievements for farm %s: %w", m.FarmID, err)
		}
	}
	return farm.Farm{
		ID:            m.FarmID,
		OwnerID:       m.OwnerID,
		Difficulty:    farm.Difficulty(m.Difficulty),
		Location:      farm.Location{Latitude: m.Latitude, Longitude: m.Longitude},
		CurrentDay:    int(m.CurrentDay),
		Season:        farm.Season(m.Season),
		Budget:        m.Budget,
		TotalRevenue:  m.TotalRevenue,
		TotalExpenses: m.TotalExpenses,
		Achievements:  achievements,
		Plots:         plots,
		Version:       m.Version,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}, nil
}
