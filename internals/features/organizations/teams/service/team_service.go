package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"snowschool_backend/internals/constants"
	"snowschool_backend/internals/models"
)

var (
	ErrTeamNotFound      = errors.New("team not found")
	ErrProgramNotFound   = errors.New("program not found")
	ErrClubNotFound      = errors.New("club not found")
	ErrInvalidCoach      = errors.New("coach must be an existing coach user")
	ErrTeamHasStudents   = errors.New("team has students assigned")
	ErrTeamHasAttendance = errors.New("team has attendance records")
)

// TeamRow is one row of the team overview.
type TeamRow struct {
	models.Team
	CoachName    string
	StudentCount int64
}

func List(ctx context.Context, db *gorm.DB) ([]TeamRow, error) {
	var teams []models.Team
	if err := db.WithContext(ctx).Preload("Program").Preload("Club").Order("name ASC, id ASC").Find(&teams).Error; err != nil {
		return nil, err
	}
	return withCoachAndCounts(ctx, db, teams)
}

// ForCoach returns the teams coached by coachID.
func ForCoach(ctx context.Context, db *gorm.DB, coachID uint) ([]models.Team, error) {
	var teams []models.Team
	err := db.WithContext(ctx).Preload("Program").Where("coach_id = ?", coachID).Order("name ASC").Find(&teams).Error
	return teams, err
}

func withCoachAndCounts(ctx context.Context, db *gorm.DB, teams []models.Team) ([]TeamRow, error) {
	if len(teams) == 0 {
		return []TeamRow{}, nil
	}
	coachIDs := make([]uint, 0, len(teams))
	teamIDs := make([]uint, 0, len(teams))
	for _, t := range teams {
		coachIDs = append(coachIDs, t.CoachID)
		teamIDs = append(teamIDs, t.ID)
	}

	var coaches []models.User
	if err := db.WithContext(ctx).Select("id", "full_name").Where("id IN ?", coachIDs).Find(&coaches).Error; err != nil {
		return nil, err
	}
	names := make(map[uint]string, len(coaches))
	for _, c := range coaches {
		names[c.ID] = c.FullName
	}

	var counts []struct {
		TeamID uint
		Total  int64
	}
	if err := db.WithContext(ctx).Model(&models.User{}).
		Select("team_id, COUNT(*) AS total").
		Where("team_id IN ?", teamIDs).
		Group("team_id").
		Scan(&counts).Error; err != nil {
		return nil, err
	}
	byTeam := make(map[uint]int64, len(counts))
	for _, c := range counts {
		byTeam[c.TeamID] = c.Total
	}

	rows := make([]TeamRow, 0, len(teams))
	for _, t := range teams {
		rows = append(rows, TeamRow{Team: t, CoachName: names[t.CoachID], StudentCount: byTeam[t.ID]})
	}
	return rows, nil
}

func Get(ctx context.Context, db *gorm.DB, id uint) (*models.Team, error) {
	var team models.Team
	if err := db.WithContext(ctx).First(&team, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}
	return &team, nil
}

// Create stores a team after checking its program, coach and club.
func Create(ctx context.Context, db *gorm.DB, team *models.Team) error {
	team.TeamType = constants.TeamTypeTeam
	if err := checkReferences(ctx, db, team); err != nil {
		return err
	}
	return db.WithContext(ctx).Omit("Program", "Club").Create(team).Error
}

func Save(ctx context.Context, db *gorm.DB, team *models.Team) error {
	team.TeamType = constants.TeamTypeTeam
	if err := checkReferences(ctx, db, team); err != nil {
		return err
	}
	return db.WithContext(ctx).Omit("Program", "Club").Save(team).Error
}

func checkReferences(ctx context.Context, db *gorm.DB, team *models.Team) error {
	q := db.WithContext(ctx)

	var n int64
	if err := q.Model(&models.Program{}).Where("id = ?", team.ProgramID).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return ErrProgramNotFound
	}

	if err := q.Model(&models.User{}).Where("id = ? AND user_type = ?", team.CoachID, constants.RoleCoach).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return ErrInvalidCoach
	}

	if team.ClubID != nil {
		if err := q.Model(&models.Club{}).Where("id = ?", *team.ClubID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return ErrClubNotFound
		}
	}
	return nil
}

// Delete removes a team without students or attendance history.
func Delete(ctx context.Context, db *gorm.DB, id uint) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var team models.Team
		if err := tx.First(&team, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTeamNotFound
			}
			return err
		}

		var n int64
		if err := tx.Model(&models.User{}).Where("team_id = ?", id).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return ErrTeamHasStudents
		}
		if err := tx.Model(&models.Attendance{}).Where("team_id = ?", id).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return ErrTeamHasAttendance
		}
		return tx.Delete(&team).Error
	})
}
