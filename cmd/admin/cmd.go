package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"
	"gorm.io/gorm"

	"snowschool_backend/internals/constants"
	"snowschool_backend/internals/features/organizations/programs/migration"
	userRepo "snowschool_backend/internals/features/users/users/repository"
	userService "snowschool_backend/internals/features/users/users/service"
	authHelper "snowschool_backend/internals/helpers/auth"
	"snowschool_backend/internals/seeds"
)

const defaultCheckPassword = "password123"

var (
	readPasswordFunc = term.ReadPassword // mockable
	isTerminalFunc   = term.IsTerminal   // mockable

	errHelp         = errors.New("help provided")
	errAdminMissing = errors.New("admin user not found")
)

type commandLine struct {
	db  *gorm.DB
	in  io.Reader
	out io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  migrate-programs [-yes]          - replace the legacy programs with the racing programs")
	fmt.Fprintln(cli.out, "  seed -profile demo|neon          - load seed data")
	fmt.Fprintln(cli.out, "  resetpassword -username USERNAME - reset a user's password")
	fmt.Fprintln(cli.out, "  check [-password PASSWORD]       - verify database connectivity and the seeded users")
}

func (cli *commandLine) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(cli.out)
	return fs
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}
	ctx := context.Background()

	switch args[1] {
	case "migrate-programs":
		cmd := cli.flagSet("migrate-programs")
		yes := cmd.Bool("yes", false, "Answer yes to the confirmation prompt.")
		if err := cmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		return cli.migratePrograms(ctx, *yes)

	case "seed":
		cmd := cli.flagSet("seed")
		profile := cmd.String("profile", seeds.ProfileDemo, "Seed profile: demo or neon.")
		if err := cmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		if err := seeds.RunAllSeeds(cli.db.WithContext(ctx), *profile); err != nil {
			return err
		}
		fmt.Fprintf(cli.out, "✅ Seed profile %q applied\n", *profile)
		return nil

	case "resetpassword":
		cmd := cli.flagSet("resetpassword")
		username := cmd.String("username", "", "The user's username. The password will be prompted next.")
		if err := cmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		if *username == "" {
			cmd.Usage()
			return errHelp
		}
		fmt.Fprint(cli.out, "Enter password:")
		pwd, err := readPasswordFunc(int(syscall.Stdin))
		fmt.Fprintln(cli.out)
		if err != nil {
			return err
		}
		if len(pwd) == 0 {
			cmd.Usage()
			return errHelp
		}
		if err := userService.ResetPassword(ctx, cli.db, *username, string(pwd)); err != nil {
			return err
		}
		fmt.Fprintf(cli.out, "✅ Password updated for %s\n", *username)
		return nil

	case "check":
		cmd := cli.flagSet("check")
		password := cmd.String("password", defaultCheckPassword, "Password verified against every user.")
		if err := cmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		return cli.check(ctx, *password)

	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) migratePrograms(ctx context.Context, yes bool) error {
	confirm := migration.StdinConfirmer(cli.in, cli.out)
	if !yes && !isTerminalFunc(int(os.Stdin.Fd())) {
		fmt.Fprintln(cli.out, "⚠️  stdin is not a terminal, the answer is read from the piped input")
	}
	if yes {
		confirm = func(prompt string) (bool, error) {
			fmt.Fprintln(cli.out, prompt+"yes")
			return true, nil
		}
	}
	m := &migration.Migrator{DB: cli.db, Out: cli.out, Confirm: confirm}
	_, err := m.Run(ctx)
	return err
}

// check mirrors the deployment smoke test: connectivity, tables, users and
// whether the admin account can log in with password.
func (cli *commandLine) check(ctx context.Context, password string) error {
	db := cli.db.WithContext(ctx)

	fmt.Fprintln(cli.out, "🔍 Testing database connection...")
	if err := db.Exec("SELECT 1").Error; err != nil {
		fmt.Fprintf(cli.out, "❌ Database error: %v\n", err)
		return err
	}
	fmt.Fprintf(cli.out, "✅ Database connection successful (%s)\n", db.Dialector.Name())

	tables, err := db.Migrator().GetTables()
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "📋 Tables: %s\n", strings.Join(tables, ", "))

	users, err := userRepo.ListAll(ctx, cli.db)
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "📊 Found %d users in database:\n", len(users))
	for _, u := range users {
		fmt.Fprintf(cli.out, "   - %s (%s) - %s\n", u.Username, u.UserType, u.Email)
		fmt.Fprintf(cli.out, "     Password check: %s\n", mark(authHelper.CheckPasswordHash(u.PasswordHash, password) == nil))
	}

	admin, err := userRepo.FindUserByUsername(ctx, cli.db, "admin")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fmt.Fprintln(cli.out, "❌ Admin user not found!")
			return errAdminMissing
		}
		return err
	}
	fmt.Fprintln(cli.out, "\n🔑 Admin user test:")
	fmt.Fprintf(cli.out, "   Username: %s\n", admin.Username)
	fmt.Fprintf(cli.out, "   Email: %s\n", admin.Email)
	fmt.Fprintf(cli.out, "   User type: %s\n", admin.UserType)
	if admin.UserType != constants.RoleAdmin {
		fmt.Fprintln(cli.out, "   ⚠️  user is not an administrator")
	}
	fmt.Fprintf(cli.out, "   Password verification: %s\n", mark(authHelper.CheckPasswordHash(admin.PasswordHash, password) == nil))
	return nil
}

// failureMessage is what gets logged for a failed command. Outcomes the
// command already reported to the operator log nothing; other failures keep
// their stack trace.
func failureMessage(err error) string {
	switch {
	case err == nil, errors.Is(err, errHelp),
		errors.Is(err, migration.ErrCancelled),
		errors.Is(err, migration.ErrTeamsStillLinked):
		return ""
	}
	return fmt.Sprintf("%+v", err)
}

func mark(ok bool) string {
	if ok {
		return "✅"
	}
	return "❌"
}
