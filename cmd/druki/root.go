package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/tbourn/sejm-prints-backend/internal/config"
	"github.com/tbourn/sejm-prints-backend/internal/events"
	"github.com/tbourn/sejm-prints-backend/internal/repo"
	"github.com/tbourn/sejm-prints-backend/internal/sejm"
	"github.com/tbourn/sejm-prints-backend/internal/services"
	"github.com/tbourn/sejm-prints-backend/internal/sysutil"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// app is the state shared by all subcommands once the config is loaded.
type app struct {
	cfg        config.Config
	configPath string
	envFile    string

	// source replaces the Sejm API client when set.
	source services.PrintSource
}

func newRootCmd() *cobra.Command { return newRootCmdFor(&app{}) }

func newRootCmdFor(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:          "druki",
		Short:        "Sejm legislative prints API and tools",
		Long:         "druki serves classified Sejm prints with citizen voting over HTTP and answers the same queries from the terminal.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load()
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML config file (default $CONFIG_FILE)")
	root.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "dotenv file read before the config; missing files are ignored")

	root.AddCommand(
		newServeCmd(a),
		newClassifyCmd(),
		newPrintsCmd(a),
		newVoteCmd(a),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "druki %s (commit: %s, built: %s)\n", version, commit, date)
		},
	}
}

func (a *app) load() error {
	if a.envFile != "" {
		if err := godotenv.Load(a.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading %s: %w", a.envFile, err)
		}
	}
	path := a.configPath
	if path == "" {
		path = os.Getenv("CONFIG_FILE")
	}
	cfg, err := config.LoadFile(path)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	a.cfg = cfg
	sysutil.ConfigureLogger(os.Stderr, cfg.LogLevel, cfg.LogPretty)
	return nil
}

func (a *app) printService() *services.PrintService {
	src := a.source
	if src == nil {
		src = sejm.New(sejm.Config{
			BaseURL:   a.cfg.Sejm.BaseURL,
			SiteURL:   a.cfg.Sejm.SiteURL,
			Term:      a.cfg.Sejm.Term,
			Timeout:   a.cfg.Sejm.Timeout,
			UserAgent: a.cfg.Sejm.UserAgent,
		}, nil)
	}
	return services.NewPrintService(src, a.cfg.PrintsCacheTTL, sysutil.SystemClock)
}

// openDB opens and migrates the vote database. The returned func closes it.
func (a *app) openDB() (*gorm.DB, func(), error) {
	db, err := repo.OpenSQLite(a.cfg.DBPath)
	if err != nil {
		return nil, func() {}, fmt.Errorf("opening database: %w", err)
	}
	closeDB := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	if err := repo.AutoMigrate(db); err != nil {
		closeDB()
		return nil, func() {}, fmt.Errorf("migrating database: %w", err)
	}
	return db, closeDB, nil
}

// publisher returns the RabbitMQ publisher when messaging is enabled.
func (a *app) publisher() (events.Publisher, error) {
	if !a.cfg.AMQP.Enabled {
		return events.Noop{}, nil
	}
	mq, err := events.NewRabbitMQ(events.Config{
		URL:        a.cfg.AMQP.URL,
		Exchange:   a.cfg.AMQP.Exchange,
		RoutingKey: a.cfg.AMQP.RoutingKey,
		QueueName:  a.cfg.AMQP.Queue,
	})
	if err != nil {
		return nil, err
	}
	return mq, nil
}
