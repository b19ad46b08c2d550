/*
 * Copyright 2025 tomoncle.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/tomoncle/librarian"
	"github.com/tomoncle/librarian/configs"
	"github.com/tomoncle/librarian/console"
	"github.com/tomoncle/librarian/database"
	"github.com/tomoncle/librarian/utils"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		configPath string
		debugSQL   bool
	)

	cmd := &cobra.Command{
		Use:          "librarian",
		Short:        "Record students, books and borrows in a relational store",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), configPath, cmd.Flags().Changed("config"), debugSQL)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c",
		utils.EnvDefaultString("LIBRARIAN_CONFIG", "configs/librarian.yaml"), "path of the YAML configuration file")
	cmd.Flags().BoolVar(&debugSQL, "debug-sql", false, "log data layer events at debug level")
	return cmd
}

func run(ctx context.Context, configPath string, explicit, debugSQL bool) error {
	cfg, err := loadConfig(configPath, explicit)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	logger := setupLogging(cfg.Log, debugSQL)

	factory, err := database.NewSessionFactory(ctx, cfg)
	if err != nil {
		logger.WithError(err).Error("Failed to initialize database")
		return err
	}
	defer func() { _ = factory.Close() }()

	return console.New(os.Stdin, os.Stdout, librarian.NewLibrary(factory), logger).Run(ctx)
}

// setupLogging applies the configured level and format, installs the data
// layer logger and returns the console logger.
func setupLogging(cfg database.LogConfig, debugSQL bool) *logrus.Logger {
	utils.ConfigureLogLevel(cfg.Level)
	utils.ConfigureConsoleLogFormat(cfg.Format)
	database.InitLogger(database.NewDefaultLogger(utils.NewLogger("DATABASE")))
	if debugSQL {
		database.GetLogger().SetLevel(database.LogLevelDebug)
	}
	return utils.NewLogger("LIBRARIAN")
}

// loadConfig falls back to the bundled configuration when the default path
// does not exist. A path given with --config must exist.
func loadConfig(path string, explicit bool) (*database.Config, error) {
	if _, err := os.Stat(path); explicit || err == nil || !errors.Is(err, fs.ErrNotExist) {
		return database.LoadConfig(path)
	}
	data, err := configs.DefaultConfig()
	if err != nil {
		return nil, err
	}
	return database.ParseConfig(data)
}
