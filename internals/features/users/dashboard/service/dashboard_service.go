package service

import (
	"context"

	"gorm.io/gorm"

	"snowschool_backend/internals/constants"
	teamService "snowschool_backend/internals/features/organizations/teams/service"
	evaluationService "snowschool_backend/internals/features/training/evaluations/service"
	"snowschool_backend/internals/features/users/users/repository"
	"snowschool_backend/internals/models"
)

const recentEvaluations = 5

type CoachDashboard struct {
	Teams       []models.Team
	Students    []models.User
	Evaluations []models.Evaluation
}

func AdminUsers(ctx context.Context, db *gorm.DB) ([]models.User, error) {
	return repository.ListAll(ctx, db)
}

// Coach collects the students of the coach's teams and the coach's latest
// evaluations.
func Coach(ctx context.Context, db *gorm.DB, coachID uint) (*CoachDashboard, error) {
	teams, err := teamService.ForCoach(ctx, db, coachID)
	if err != nil {
		return nil, err
	}
	out := &CoachDashboard{Teams: teams}

	if len(teams) > 0 {
		ids := make([]uint, 0, len(teams))
		for _, t := range teams {
			ids = append(ids, t.ID)
		}
		if err := db.WithContext(ctx).
			Preload("Team").
			Where("user_type = ? AND team_id IN ?", constants.RoleStudent, ids).
			Order("full_name ASC").
			Find(&out.Students).Error; err != nil {
			return nil, err
		}
	}

	out.Evaluations, err = evaluationService.RecentByCoach(ctx, db, coachID, recentEvaluations)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func Student(ctx context.Context, db *gorm.DB, studentID uint) ([]models.Evaluation, error) {
	return evaluationService.ForStudent(ctx, db, studentID)
}
