package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	appMigrations "github.com/yigit/workload/internal/app/migrations"
	"github.com/yigit/workload/internal/app/models"
	"github.com/yigit/workload/internal/app/models/dto"
	appRepos "github.com/yigit/workload/internal/app/repositories"
	appServices "github.com/yigit/workload/internal/app/services"
	"github.com/yigit/workload/internal/app/workload"
	"github.com/yigit/workload/internal/bootstrap"
	"github.com/yigit/workload/internal/config"
	"github.com/yigit/workload/internal/pkg/apperrors"
	"github.com/yigit/workload/internal/pkg/helpers"
	"github.com/yigit/workload/internal/pkg/logger"
	"github.com/yigit/workload/internal/pkg/report"
)

const commandTimeout = 2 * time.Minute

func newApp() *cli.App {
	return &cli.App{
		Name:  "workloadctl",
		Usage: "calculate, validate and report teaching workloads",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   filepath.Join("configs", "config.yaml"),
				Usage:   "path to the YAML configuration file",
				EnvVars: []string{"WORKLOAD_CONFIG"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "calc",
				Usage: "compute the hours of one pedagogical atom for an audience",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "type", Usage: "atom type (cours, td, tp, stage)", Required: true},
					&cli.Float64Flag{Name: "hours", Usage: "contact hours over the term", Required: true},
					&cli.IntFlag{Name: "weeks", Usage: "term length in weeks", Value: 14},
					&cli.IntFlag{Name: "group-size", Usage: "maximum students per group"},
					&cli.IntFlag{Name: "capacity", Usage: "number of students taught", Required: true},
				},
				Action: calcAction,
			},
			{
				Name:      "validate",
				Usage:     "check an assignment described in a JSON file against the allocation rules",
				ArgsUsage: "<request.json>",
				Action:    validateAction,
			},
			{
				Name:  "migrate",
				Usage: "apply the database migrations",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "dir", Usage: "apply the .sql files of this directory instead of the embedded set"},
				},
				Action: migrateAction,
			},
			{
				Name:   "seed",
				Usage:  "load the demo catalogue for the current academic year",
				Action: seedAction,
			},
			{
				Name:  "report",
				Usage: "print the workload of every teacher for a term",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "year", Usage: "academic year, e.g. 2024-2025 (defaults to the current one)"},
					&cli.StringFlag{Name: "semester", Usage: "S1 or S2", Value: string(models.SemesterOne)},
					&cli.StringFlag{Name: "status", Usage: "only show normal, overload or underload"},
				},
				Action: reportAction,
			},
		},
	}
}

// setup loads the configuration and sends human-readable logs to the error stream
func setup(c *cli.Context) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return nil, zerolog.Logger{}, err
	}
	settings := logger.FromSettings(cfg.Logging.Level, "text")
	settings.Output = c.App.ErrWriter
	return cfg, logger.Configure(settings), nil
}

func calcAction(c *cli.Context) error {
	atom := models.PedagogicalAtom{
		Type:       models.AtomType(c.String("type")),
		Hours:      c.Float64("hours"),
		TotalWeeks: c.Int("weeks"),
		GroupSize:  c.Int("group-size"),
	}
	capacity := c.Int("capacity")

	breakdown, err := workload.CalculateAtomHours(atom, capacity)
	if err != nil && !errors.Is(err, apperrors.ErrDataIntegrity) {
		return err
	}
	report.Hours(c.App.Writer, atom, capacity, breakdown)
	return err
}

func validateAction(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return errors.New("validate expects the path of a JSON request file")
	}
	cfg, _, err := setup(c)
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read request file: %w", err)
	}
	var req dto.ValidateAssignmentRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return fmt.Errorf("failed to parse request file: %w", err)
	}
	if err := binding.Validator.ValidateStruct(&req); err != nil {
		detail := dto.HandleValidationError(err)
		return fmt.Errorf("invalid request file: %s", detail.Message)
	}

	atom := req.Atom.ToModel()
	verdict, err := cfg.Workload.ValidateAssignment(
		req.Module.ToModel(), &atom, req.Section.ToModel(), models.TargetType(req.TargetType), req.TargetID,
	)
	if err != nil {
		return err
	}
	report.Verdict(c.App.Writer, verdict)
	if !verdict.Valid {
		return verdict.Err()
	}
	return nil
}

func migrateAction(c *cli.Context) error {
	cfg, lgr, err := setup(c)
	if err != nil {
		return err
	}
	pool, err := bootstrap.ConnectDatabase(cfg, lgr)
	if err != nil {
		return err
	}
	defer pool.Close()

	ctx, cancel := context.WithTimeout(c.Context, commandTimeout)
	defer cancel()
	if dir := c.String("dir"); dir != "" {
		return appMigrations.NewMigrator(pool, lgr).MigrateFromDirectory(ctx, dir)
	}
	return bootstrap.RunMigrations(ctx, pool, lgr)
}

func seedAction(c *cli.Context) error {
	cfg, lgr, err := setup(c)
	if err != nil {
		return err
	}
	pool, err := bootstrap.ConnectDatabase(cfg, lgr)
	if err != nil {
		return err
	}
	defer pool.Close()

	ctx, cancel := context.WithTimeout(c.Context, commandTimeout)
	defer cancel()
	if err := bootstrap.RunMigrations(ctx, pool, lgr); err != nil {
		return err
	}
	return bootstrap.SeedDemoData(ctx, appRepos.NewRepositories(pool), lgr)
}

func reportAction(c *cli.Context) error {
	year := c.String("year")
	if year == "" {
		year = helpers.AcademicYearOf(time.Now())
	}
	semester := models.Semester(c.String("semester"))
	status := models.WorkloadStatus(c.String("status"))

	cfg, lgr, err := setup(c)
	if err != nil {
		return err
	}
	pool, err := bootstrap.ConnectDatabase(cfg, lgr)
	if err != nil {
		return err
	}
	defer pool.Close()

	ctx, cancel := context.WithTimeout(c.Context, commandTimeout)
	defer cancel()

	svc := appServices.NewServices(appRepos.NewRepositories(pool), cfg.Workload).WorkloadService
	var all []*models.TeacherWorkload
	for page := 1; ; page++ {
		batch, total, err := svc.ListWorkloads(ctx, year, semester, status, page, helpers.MaxPageSize)
		if err != nil {
			return err
		}
		all = append(all, batch...)
		if len(batch) == 0 || int64(len(all)) >= total {
			break
		}
	}

	report.Workloads(c.App.Writer, year, semester, all)
	return nil
}
