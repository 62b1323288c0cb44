package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strconv"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"snowschool_backend/internals/constants"
	"snowschool_backend/internals/features/training/evaluations/dto"
	helper "snowschool_backend/internals/helpers"
	"snowschool_backend/internals/models"
)

var (
	ErrStudentNotFound    = errors.New("student not found")
	ErrNotAssigned        = errors.New("student is not assigned to this coach")
	ErrNotParticipating   = errors.New("student does not participate in sport")
	ErrSportRequired      = errors.New("sport is required")
	ErrInvalidLevel       = errors.New("level must be a positive whole number")
	ErrDuplicateLevel     = errors.New("evaluation already exists for level")
	ErrInvalidScore       = errors.New("scores must be numbers")
	ErrEvaluationNotFound = errors.New("evaluation not found")
	ErrAccessDenied       = errors.New("access denied")
)

// DuplicateLevelError is returned by Submit; it matches ErrDuplicateLevel.
type DuplicateLevelError struct {
	Level int
}

func (e *DuplicateLevelError) Error() string {
	return fmt.Sprintf("Student already has an evaluation for level %d. You can only create one evaluation per level per student.", e.Level)
}

func (e *DuplicateLevelError) Is(target error) bool { return target == ErrDuplicateLevel }

// StudentForCoach loads a student the coach may evaluate.
func StudentForCoach(ctx context.Context, db *gorm.DB, coachID, studentID uint) (*models.User, error) {
	var student models.User
	if err := db.WithContext(ctx).First(&student, studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	if !student.IsStudent() || student.CoachID == nil || *student.CoachID != coachID {
		return nil, ErrNotAssigned
	}
	return &student, nil
}

// CompletedLevels returns the evaluated levels per enabled sport, ascending.
func CompletedLevels(ctx context.Context, db *gorm.DB, studentID uint) (map[string][]int, error) {
	var rows []models.Evaluation
	if err := db.WithContext(ctx).
		Select("sport_type", "level").
		Where("student_id = ? AND sport_type IN ?", studentID, constants.EnabledSports).
		Order("level ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[string][]int, len(constants.AllSports))
	for _, s := range constants.AllSports {
		out[s] = []int{}
	}
	for _, r := range rows {
		out[r.SportType] = append(out[r.SportType], r.Level)
	}
	return out, nil
}

// Submit validates req and stores the evaluation of student by coachID.
func Submit(ctx context.Context, db *gorm.DB, coachID uint, student *models.User, req dto.EvaluationRequest) (*models.Evaluation, error) {
	sport := req.SportType
	if constants.IsValidSport(sport) && !student.Participates(sport) {
		return nil, ErrNotParticipating
	}
	if !constants.IsValidSport(sport) {
		return nil, ErrSportRequired
	}

	level, err := strconv.Atoi(req.Level)
	if err != nil || level < 1 {
		return nil, ErrInvalidLevel
	}

	var existing int64
	if err := db.WithContext(ctx).Model(&models.Evaluation{}).
		Where("student_id = ? AND sport_type = ? AND level = ?", student.ID, sport, level).
		Count(&existing).Error; err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, &DuplicateLevelError{Level: level}
	}

	eval := &models.Evaluation{
		StudentID: student.ID,
		CoachID:   coachID,
		SportType: sport,
		Level:     level,
		CreatedAt: time.Now(),
	}
	overall := []struct {
		raw string
		dst *float64
	}{
		{req.SkillsScore, &eval.SkillsScore},
		{req.AttitudeScore, &eval.AttitudeScore},
		{req.PerformanceScore, &eval.PerformanceScore},
	}
	for _, o := range overall {
		v, err := parseScore(o.raw)
		if err != nil {
			return nil, err
		}
		*o.dst = v
	}

	scores := make(map[string]float64, 4)
	for _, col := range constants.SportCategories[sport] {
		v, err := parseScore(req.Categories[col])
		if err != nil {
			return nil, err
		}
		scores[col] = v
	}
	eval.SetCategoryScores(scores)

	if req.Comments != "" {
		c := req.Comments
		eval.Comments = &c
	}

	if err := db.WithContext(ctx).Omit(clause.Associations).Create(eval).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return nil, &DuplicateLevelError{Level: level}
		}
		return nil, err
	}
	log.Printf("[INFO] evaluation %d: student=%d sport=%s level=%d by coach=%d", eval.ID, student.ID, sport, level, coachID)
	return eval, nil
}

func parseScore(raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrInvalidScore
	}
	return v, nil
}

// Viewable loads an evaluation the viewer is allowed to read: students their
// own, coaches the ones they wrote, everybody else all of them.
func Viewable(ctx context.Context, db *gorm.DB, viewer *models.User, id uint) (*models.Evaluation, error) {
	var eval models.Evaluation
	if err := db.WithContext(ctx).Preload("Student").First(&eval, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEvaluationNotFound
		}
		return nil, err
	}
	switch {
	case viewer.IsStudent() && eval.StudentID != viewer.ID:
		return nil, ErrAccessDenied
	case viewer.IsCoach() && eval.CoachID != viewer.ID:
		return nil, ErrAccessDenied
	}
	return &eval, nil
}

// ForStudent lists the evaluations of a student ordered by level.
func ForStudent(ctx context.Context, db *gorm.DB, studentID uint) ([]models.Evaluation, error) {
	var list []models.Evaluation
	err := db.WithContext(ctx).Where("student_id = ?", studentID).Order("level ASC, id ASC").Find(&list).Error
	return list, err
}

// HistoryForStudent lists the evaluations of a student newest first.
func HistoryForStudent(ctx context.Context, db *gorm.DB, studentID uint) ([]models.Evaluation, error) {
	var list []models.Evaluation
	err := db.WithContext(ctx).Where("student_id = ?", studentID).Order("created_at DESC, id DESC").Find(&list).Error
	return list, err
}

// RecentByCoach returns the last limit evaluations written by a coach.
func RecentByCoach(ctx context.Context, db *gorm.DB, coachID uint, limit int) ([]models.Evaluation, error) {
	var list []models.Evaluation
	err := db.WithContext(ctx).Preload("Student").
		Where("coach_id = ?", coachID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&list).Error
	return list, err
}

// CoachName resolves the author of an evaluation for display.
func CoachName(ctx context.Context, db *gorm.DB, coachID uint) string {
	var coach models.User
	if err := db.WithContext(ctx).Select("id", "full_name").First(&coach, coachID).Error; err != nil {
		return ""
	}
	return coach.FullName
}
