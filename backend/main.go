package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"giftbox/backend/config"
	"giftbox/backend/models"
	"giftbox/backend/render"
	"giftbox/backend/routes"
	"giftbox/backend/services"
	"giftbox/backend/session"
	"giftbox/backend/utils"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "giftbox",
		Short:         "GiftBox personal tracker: habits, gratitude journal, goals and the annual summary",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCmd())
	root.AddCommand(newRenderCmd())
	return root
}

func newServeCmd() *cobra.Command {
	var colors bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web app",
		RunE: func(_ *cobra.Command, _ []string) error {
			// Load configuration
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			// Initialize logger
			logger := utils.InitLogger(utils.LoggerConfig{EnableColors: colors})

			font, ok := render.ProbeFont(cfg.FontPath)
			if !ok {
				logger.Printf("font %q not available, summary images use the built-in face", cfg.FontPath)
			}

			registry := session.NewRegistry(cfg.SessionTTL, logger)
			sweeper, err := registry.StartSweeper(cfg.SweepSchedule)
			if err != nil {
				return fmt.Errorf("schedule session sweep %q: %w", cfg.SweepSchedule, err)
			}
			defer sweeper.Stop()

			app := routes.NewApp(cfg, registry, font, time.Now, logger, colors)

			errCh := make(chan error, 1)
			go func() {
				errCh <- app.Listen(":" + cfg.ServerPort)
			}()
			logger.Printf("variant %s listening on :%s", cfg.Variant, cfg.ServerPort)

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			select {
			case err := <-errCh:
				return err
			case <-sigCh:
			}

			logger.Println("shutting down")
			return app.ShutdownWithTimeout(5 * time.Second)
		},
	}
	cmd.Flags().BoolVar(&colors, "colors", false, "Colorize log output")
	return cmd
}

func newRenderCmd() *cobra.Command {
	var input, output, variantName, fontPath string
	var width int

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a summary image from a YAML record file",
		RunE: func(_ *cobra.Command, _ []string) error {
			variant, err := models.ParseVariant(variantName)
			if err != nil {
				return err
			}
			if !variant.ExportEnabled() {
				return fmt.Errorf("variant %s has no image export", variant)
			}

			records, err := loadRecords(input)
			if err != nil {
				return err
			}

			store := session.NewStore()
			store.Load(records)
			snapshot := services.ComputeSummary(store.Snapshot())
			doc := services.BuildDocument(variant, snapshot, store.Goals(), time.Now())

			font, _ := render.ProbeFont(fontPath)
			img, err := render.RenderDocument(doc, width, font)
			if err != nil {
				return err
			}

			if output == "" {
				output = variant.ExportFilename()
			}
			return writeOutput(output, img)
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "records.yaml", "YAML file with habits, journal and goals")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output PNG path, - for stdout (default: variant filename)")
	cmd.Flags().StringVar(&variantName, "variant", string(models.VariantAnnual), "Summary variant: annual or goals")
	cmd.Flags().StringVar(&fontPath, "font", "assets/fonts/DejaVuSans.ttf", "Preferred TrueType font")
	cmd.Flags().IntVar(&width, "width", render.DefaultWrapWidth, "Wrap width in characters")
	return cmd
}

func loadRecords(path string) (models.Records, error) {
	var records models.Records

	f, err := os.Open(path)
	if err != nil {
		return records, fmt.Errorf("open records: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&records); err != nil && err != io.EOF {
		return records, fmt.Errorf("parse records %s: %w", path, err)
	}

	for i, g := range records.Goals {
		if g.Progress < 0 || g.Progress > 100 {
			return records, fmt.Errorf("goal %d (%q): progress %d outside 0-100", i+1, g.Label, g.Progress)
		}
	}
	return records, nil
}

func writeOutput(path string, r io.Reader) error {
	if path == "-" {
		_, err := io.Copy(os.Stdout, r)
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
