package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"snowschool_backend/internals/models"
)

var (
	ErrProgramNotFound = errors.New("program not found")
	ErrProgramInUse    = errors.New("program has teams assigned")
)

// ProgramWithTeams is one row of the program overview.
type ProgramWithTeams struct {
	models.Program
	TeamCount int64
}

func List(ctx context.Context, db *gorm.DB) ([]ProgramWithTeams, error) {
	var programs []models.Program
	if err := db.WithContext(ctx).Order("name ASC, id ASC").Find(&programs).Error; err != nil {
		return nil, err
	}
	counts, err := TeamCounts(ctx, db)
	if err != nil {
		return nil, err
	}
	out := make([]ProgramWithTeams, 0, len(programs))
	for _, p := range programs {
		out = append(out, ProgramWithTeams{Program: p, TeamCount: counts[p.ID]})
	}
	return out, nil
}

// TeamCounts returns the number of teams per program id.
func TeamCounts(ctx context.Context, db *gorm.DB) (map[uint]int64, error) {
	var rows []struct {
		ProgramID uint
		Total     int64
	}
	if err := db.WithContext(ctx).Model(&models.Team{}).
		Select("program_id, COUNT(*) AS total").
		Group("program_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	counts := make(map[uint]int64, len(rows))
	for _, r := range rows {
		counts[r.ProgramID] = r.Total
	}
	return counts, nil
}

func Get(ctx context.Context, db *gorm.DB, id uint) (*models.Program, error) {
	var p models.Program
	if err := db.WithContext(ctx).First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProgramNotFound
		}
		return nil, err
	}
	return &p, nil
}

func Create(ctx context.Context, db *gorm.DB, p *models.Program) error {
	return db.WithContext(ctx).Create(p).Error
}

func Save(ctx context.Context, db *gorm.DB, p *models.Program) error {
	return db.WithContext(ctx).Save(p).Error
}

// Delete removes a program that no team references. Athletes pointing at it
// directly lose the reference.
func Delete(ctx context.Context, db *gorm.DB, id uint) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p models.Program
		if err := tx.First(&p, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProgramNotFound
			}
			return err
		}

		var teams int64
		if err := tx.Model(&models.Team{}).Where("program_id = ?", id).Count(&teams).Error; err != nil {
			return err
		}
		if teams > 0 {
			return ErrProgramInUse
		}

		if err := tx.Model(&models.User{}).Where("program_id = ?", id).Update("program_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&p).Error
	})
}
