package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/rohits-web03/resumehub/internal/api/services"
	"github.com/rohits-web03/resumehub/internal/config"
	"github.com/rohits-web03/resumehub/internal/logging"
	"github.com/rohits-web03/resumehub/internal/repositories"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const sampleResume = `Bane Smith

Bane.smith@example.com

Experience:
- Sof at Tech Corp
- Full Developer at Web Solutions

Education:
- BSC in Computer Science`

var (
	resumePath string
	fileName   string
)

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the profile indexes and store a resume",
	Long: `Connects to the configured database, makes sure the unique email
index on profiles exists and stores one profile. Without --resume a built-in
sample resume is used.`,
	Args: cobra.NoArgs,
	RunE: runSeed,
}

func init() {
	rootCmd.Flags().StringVarP(&resumePath, "resume", "r", "", "path to a plain-text resume")
	rootCmd.Flags().StringVarP(&fileName, "file-name", "n", "test_resume.pdf", "file name recorded on the profile")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runSeed(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.Environment)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	content := sampleResume
	if resumePath != "" {
		data, err := os.ReadFile(resumePath)
		if err != nil {
			return fmt.Errorf("read resume: %w", err)
		}
		content = string(data)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	store, err := repositories.Open(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(context.Background()); err != nil {
			log.Println("close store:", err)
		}
	}()

	profiles := services.NewProfileService(store)
	if err := profiles.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("create profile indexes: %w", err)
	}
	logger.Info("Created index on email field")

	profileID, err := profiles.StoreProfile(ctx, fileName, content)
	if err != nil {
		return err
	}
	logger.Info("Test profile stored", zap.String("profileId", profileID))
	fmt.Fprintln(cmd.OutOrStdout(), profileID)
	return nil
}
