// Package migration replaces the legacy recreational programs with the racing
// age groups.
package migration

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"snowschool_backend/internals/constants"
	programService "snowschool_backend/internals/features/organizations/programs/service"
	"snowschool_backend/internals/models"
)

var (
	ErrCancelled        = errors.New("migration cancelled")
	ErrTeamsStillLinked = errors.New("teams are still linked to legacy programs")
)

// LegacyPrograms are removed by the migration.
var LegacyPrograms = []string{
	"Snowflakes",
	"High Flyers",
	"Trail Blazers",
	"LIT",
	"Adult",
	"Terrain Park",
}

type ProgramDef struct {
	Name           string
	Description    string
	FrequencyType  string
	FrequencyValue int
	FrequencyDays  models.WeekDays
}

func (d ProgramDef) Model() models.Program {
	desc := d.Description
	return models.Program{
		Name:           d.Name,
		Description:    &desc,
		FrequencyType:  d.FrequencyType,
		FrequencyValue: d.FrequencyValue,
		FrequencyDays:  d.FrequencyDays,
	}
}

// RacingPrograms are created by the migration when missing.
var RacingPrograms = []ProgramDef{
	{"U12", "Under 12 racing program", constants.FrequencyWeekly, 8, models.WeekDays{"saturday"}},
	{"U14", "Under 14 racing program", constants.FrequencyWeekly, 8, models.WeekDays{"saturday"}},
	{"U16", "Under 16 racing program", constants.FrequencyDaily, 8, nil},
	{"U18/U21", "Under 18/21 racing program", constants.FrequencyDaily, 10, nil},
}

const confirmPrompt = "Do you want to continue? This will fail if teams still exist. (yes/no): "

// Confirmer asks the operator a yes/no question.
type Confirmer func(prompt string) (bool, error)

// StdinConfirmer reads one answer line from r; only "yes" confirms.
func StdinConfirmer(r io.Reader, w io.Writer) Confirmer {
	br := bufio.NewReader(r)
	return func(prompt string) (bool, error) {
		fmt.Fprint(w, prompt)
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return false, err
		}
		return strings.ToLower(strings.TrimSpace(line)) == "yes", nil
	}
}

// Migrator needs exclusive access to the database while it runs.
type Migrator struct {
	DB      *gorm.DB
	Out     io.Writer
	Confirm Confirmer
}

type ProgramSummary struct {
	Name  string
	Teams int64
}

type Result struct {
	Removed  int
	Created  int
	Programs []ProgramSummary
}

type linkedTeam struct {
	models.Team
	ProgramName string
}

func (m *Migrator) printf(format string, args ...interface{}) {
	fmt.Fprintf(m.Out, format, args...)
}

func (m *Migrator) println(args ...interface{}) {
	fmt.Fprintln(m.Out, args...)
}

// Run executes the migration. Persistence errors carry a stack trace.
func (m *Migrator) Run(ctx context.Context) (*Result, error) {
	db := m.DB.WithContext(ctx)
	rule := strings.Repeat("=", 60)

	m.println(rule)
	m.println("Program Migration Script")
	m.println(rule)
	m.println()

	// Teams still attached to legacy programs block the run.
	m.println("Step 1: Checking for teams associated with old programs...")
	linked, err := m.linkedTeams(db)
	if err != nil {
		return nil, err
	}
	byProgram := map[string][]linkedTeam{}
	for _, t := range linked {
		byProgram[t.ProgramName] = append(byProgram[t.ProgramName], t)
	}
	for _, name := range LegacyPrograms {
		teams := byProgram[name]
		if len(teams) == 0 {
			continue
		}
		m.printf("  ⚠️  Found %d team(s) associated with '%s':\n", len(teams), name)
		for _, t := range teams {
			m.printf("     - %s (ID: %d)\n", t.Name, t.ID)
		}
	}

	if len(linked) > 0 {
		m.println()
		m.println("⚠️  WARNING: There are teams associated with old programs!")
		m.println("   These teams need to be reassigned to new programs before migration.")
		m.println("   You can either:")
		m.println("   1. Reassign teams manually in the admin interface, or")
		m.println("   2. Delete these teams if they're no longer needed")
		m.println()

		ok, err := m.confirm()
		if err != nil {
			return nil, errors.Wrap(err, "read confirmation")
		}
		if !ok {
			m.println("Migration cancelled.")
			return nil, ErrCancelled
		}

		remaining, err := m.linkedTeams(db)
		if err != nil {
			return nil, err
		}
		if len(remaining) > 0 {
			m.printf("❌ ERROR: Still %d team(s) associated with old programs!\n", len(remaining))
			m.println("   Please reassign or delete these teams first:")
			for _, t := range remaining {
				m.printf("   - %s (ID: %d)\n", t.Name, t.ID)
			}
			return nil, ErrTeamsStillLinked
		}
	}
	m.println("✓ No teams blocking migration")
	m.println()

	res := &Result{}

	// Deletion and creation commit in separate transactions.
	m.println("Step 2: Removing old programs...")
	if err := m.removeLegacy(db, res); err != nil {
		return nil, err
	}
	if res.Removed > 0 {
		m.printf("✓ Removed %d old program(s)\n", res.Removed)
	} else {
		m.println("✓ No old programs to remove (or they're still in use)")
	}
	m.println()

	m.println("Step 3: Creating new programs...")
	if err := m.createRacing(db, res); err != nil {
		return nil, err
	}
	if res.Created > 0 {
		m.printf("✓ Created %d new program(s)\n", res.Created)
	} else {
		m.println("✓ All new programs already exist")
	}
	m.println()

	if err := m.summarize(ctx, res); err != nil {
		return nil, err
	}
	m.println(rule)
	m.println("Migration Summary")
	m.println(rule)
	m.printf("Total programs in database: %d\n", len(res.Programs))
	m.println("\nCurrent programs:")
	for _, p := range res.Programs {
		m.printf("  - %s: %d team(s)\n", p.Name, p.Teams)
	}
	m.println()
	m.println("✅ Migration completed successfully!")
	m.println()
	return res, nil
}

func (m *Migrator) confirm() (bool, error) {
	if m.Confirm == nil {
		return false, nil
	}
	return m.Confirm(confirmPrompt)
}

// linkedTeams lists teams of every program carrying a legacy name.
func (m *Migrator) linkedTeams(db *gorm.DB) ([]linkedTeam, error) {
	var rows []linkedTeam
	err := db.Model(&models.Team{}).
		Select(`team.*, program.name AS program_name`).
		Joins(`JOIN program ON program.id = team.program_id`).
		Where("program.name IN ?", LegacyPrograms).
		Order("team.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "load teams of legacy programs")
	}
	return rows, nil
}

func (m *Migrator) removeLegacy(db *gorm.DB, res *Result) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		for _, name := range LegacyPrograms {
			var programs []models.Program
			if err := tx.Where("name = ?", name).Order("id ASC").Find(&programs).Error; err != nil {
				return err
			}
			for _, p := range programs {
				var teams int64
				if err := tx.Model(&models.Team{}).Where("program_id = ?", p.ID).Count(&teams).Error; err != nil {
					return err
				}
				if teams > 0 {
					m.printf("  ⚠️  Skipping '%s' - still has %d team(s)\n", name, teams)
					continue
				}
				m.printf("  🗑️  Removing '%s'...\n", name)
				if err := tx.Model(&models.User{}).Where("program_id = ?", p.ID).Update("program_id", nil).Error; err != nil {
					return err
				}
				if err := tx.Delete(&models.Program{}, p.ID).Error; err != nil {
					return err
				}
				res.Removed++
			}
		}
		return nil
	})
	if err != nil {
		res.Removed = 0
		return errors.Wrap(err, "remove legacy programs")
	}
	return nil
}

func (m *Migrator) createRacing(db *gorm.DB, res *Result) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		for _, def := range RacingPrograms {
			var n int64
			if err := tx.Model(&models.Program{}).Where("name = ?", def.Name).Count(&n).Error; err != nil {
				return err
			}
			if n > 0 {
				m.printf("  ✓ '%s' already exists\n", def.Name)
				continue
			}
			m.printf("  ➕ Creating '%s'...\n", def.Name)
			p := def.Model()
			if err := tx.Create(&p).Error; err != nil {
				return err
			}
			res.Created++
		}
		return nil
	})
	if err != nil {
		res.Created = 0
		return errors.Wrap(err, "create racing programs")
	}
	return nil
}

func (m *Migrator) summarize(ctx context.Context, res *Result) error {
	var programs []models.Program
	if err := m.DB.WithContext(ctx).Find(&programs).Error; err != nil {
		return errors.Wrap(err, "list programs")
	}
	counts, err := programService.TeamCounts(ctx, m.DB)
	if err != nil {
		return errors.Wrap(err, "count teams")
	}
	sort.SliceStable(programs, func(i, j int) bool { return programs[i].Name < programs[j].Name })
	for _, p := range programs {
		res.Programs = append(res.Programs, ProgramSummary{Name: p.Name, Teams: counts[p.ID]})
	}
	return nil
}
