package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kamik423/quadrant/internal/cache"
	"github.com/kamik423/quadrant/internal/llm"
	"github.com/kamik423/quadrant/internal/model"
	"github.com/kamik423/quadrant/internal/pipeline"
	"github.com/kamik423/quadrant/internal/reddit"
	"github.com/kamik423/quadrant/internal/render"
)

// runSurvey is the no-argument entry point: authenticate, survey every
// configured community, render the image. Exit status is non-zero on
// any fatal error; per-community fetch failures only log a skip.
func runSurvey(cmd *cobra.Command, args []string) error {
	if verbose {
		log.SetLevel(log.DebugLevel)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	ctx := context.Background()

	var opts []reddit.Option
	if cfg.Cache.Enabled {
		store := cache.NewLayeredCache(cfg.Cache.TTL, cfg.Cache.Dir, cfg.Cache.TTL)
		opts = append(opts, reddit.WithCache(store, cfg.Cache.TTL))
	}
	client := reddit.NewClient(cfg, opts...)

	// Credential rejection aborts here, before any community is touched.
	if err := client.Authenticate(ctx); err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"communities": len(cfg.Communities),
		"mode":        cfg.Mode,
		"limit":       cfg.Limit,
	}).Info("starting survey")

	summaries, err := pipeline.New(cfg, client).Run(ctx)
	if err != nil {
		return err
	}

	if err := render.NewRenderer(cfg.Mode).Render(summaries, cfg.Output); err != nil {
		return err
	}
	log.WithField("path", cfg.Output).Info("image written")

	if cfg.LLM.Enabled {
		writeCommentary(ctx, cfg, summaries)
	}
	return nil
}

// writeCommentary generates the optional LLM commentary. It runs after
// the image is on disk and can only warn, never fail the run.
func writeCommentary(ctx context.Context, cfg *model.Config, summaries []model.CommunitySummary) {
	commentator, err := llm.NewCommentator(cfg.LLM)
	if err != nil {
		log.WithError(err).Warn("commentary disabled")
		return
	}

	text, err := commentator.Generate(ctx, summaries)
	if err != nil {
		log.WithError(err).Warn("commentary generation failed")
		return
	}

	path := strings.TrimSuffix(cfg.Output, filepath.Ext(cfg.Output)) + ".md"
	if err := os.WriteFile(path, []byte(text+"\n"), 0o644); err != nil {
		log.WithError(err).Warn("commentary write failed")
		return
	}
	log.WithField("path", path).Info("commentary written")
}
