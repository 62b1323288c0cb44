package controller

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"snowschool_backend/internals/features/training/attendance/service"
	helper "snowschool_backend/internals/helpers"
	authHelper "snowschool_backend/internals/helpers/auth"
	middleware "snowschool_backend/internals/middlewares/features"
)

type AttendanceController struct {
	DB *gorm.DB
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db}
}

func teamPath(teamID uint) string {
	return fmt.Sprintf("/attendance/%d", teamID)
}

// GET /attendance/:team_id
func (ac *AttendanceController) Manage(c *fiber.Ctx) error {
	team := middleware.CurrentTeam(c)
	ctx := c.UserContext()

	students, err := service.Roster(ctx, ac.DB, team.ID)
	if err != nil {
		return helper.FailWithFlash(c, "/dashboard", "attendance roster", err)
	}
	records, err := service.Recent(ctx, ac.DB, team.ID, service.RecentLimit)
	if err != nil {
		return helper.FailWithFlash(c, "/dashboard", "attendance records", err)
	}

	return helper.Render(c, "attendance", fiber.Map{
		"Title":             "Attendance - " + team.Name,
		"Team":              team,
		"Students":          students,
		"AttendanceRecords": records,
	})
}

// POST /attendance/:team_id/record
func (ac *AttendanceController) Record(c *fiber.Ctx) error {
	team := middleware.CurrentTeam(c)
	user := authHelper.CurrentUser(c)
	back := teamPath(team.ID)

	day, err := helper.ParseDate(c.FormValue("session_date"))
	if err != nil {
		return helper.RedirectWithFlash(c, back, helper.FlashError, "Please enter a valid session date")
	}

	marks := func(studentID uint) service.Mark {
		id := strconv.FormatUint(uint64(studentID), 10)
		return service.Mark{
			Attended: helper.FormChecked(c, "attended_"+id),
			Notes:    helper.FormString(c, "notes_"+id),
		}
	}
	if _, err := service.Record(c.UserContext(), ac.DB, team.ID, user.ID, day, marks); err != nil {
		return helper.FailWithFlash(c, back, "record attendance", err)
	}
	return helper.RedirectWithFlash(c, back, helper.FlashSuccess, "Attendance recorded successfully")
}
