package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/clinsafe/hazlog"
	"github.com/clinsafe/hazlog/internal/config"
	"github.com/clinsafe/hazlog/pkg/generator"
	"github.com/clinsafe/hazlog/pkg/model"
	"github.com/clinsafe/hazlog/pkg/pipeline"
	"github.com/clinsafe/hazlog/pkg/prompt"
	"github.com/clinsafe/hazlog/pkg/renderers/htmlpreview"
)

type cliOptions struct {
	configPath string
	template   string
	taxonomy   string
	outputDir  string
	verbose    bool
}

func main() {
	opts := &cliOptions{}

	rootCmd := &cobra.Command{
		Use:   "hazlog",
		Short: "Clinical hazard-log document generator",
		Long: "hazlog parses a markdown hazard-log template and a hazard-type\n" +
			"taxonomy, and generates filled hazard documents from supplied values.",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to YAML config file")
	rootCmd.PersistentFlags().StringVar(&opts.template, "template", "", "hazard log template path (default: embedded)")
	rootCmd.PersistentFlags().StringVar(&opts.taxonomy, "taxonomy", "", "hazard types taxonomy path (default: embedded)")
	rootCmd.PersistentFlags().StringVar(&opts.outputDir, "output-dir", "", "directory for generated drafts")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(fieldsCmd(opts))
	rootCmd.AddCommand(generateCmd(opts))
	rootCmd.AddCommand(renderCmd(opts))
	rootCmd.AddCommand(newCmd(opts))
	rootCmd.AddCommand(previewCmd(opts))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func fieldsCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "fields",
		Short: "List the template's fields and their options",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, gen, err := setup(cmd, opts)
			if err != nil {
				return err
			}

			for _, name := range gen.FieldNames() {
				field, _ := gen.Field(name)
				line := fmt.Sprintf("%s (%s)", name, field.Kind)
				if len(field.Labels) > 0 {
					line += " [" + strings.Join(field.Labels, " ") + "]"
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)

				for i, opt := range field.Options {
					if i == 3 {
						fmt.Fprintf(cmd.OutOrStdout(), "    ... and %d more\n", len(field.Options)-i)
						break
					}
					fmt.Fprintf(cmd.OutOrStdout(), "    %s - %s\n", opt.Key, opt.Label)
				}
			}
			return nil
		},
	}
}

func generateCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "generate <records.json>",
		Short: "Generate one draft per record from a structured JSON array",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, gen, err := setup(cmd, opts)
			if err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			records, err := pipeline.DecodeRecords(f)
			if err != nil {
				return err
			}

			runner, err := pipeline.NewRunner(gen, cfg.OutputDir, pipeline.WithRunnerLogger(logger))
			if err != nil {
				return err
			}
			paths, err := runner.Run(cmd.Context(), records)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Generated %d hazard log drafts in %s\n", len(paths), cfg.OutputDir)
			return nil
		},
	}
}

func renderCmd(opts *cliOptions) *cobra.Command {
	var (
		valuesPath string
		hazardID   string
		outPath    string
		renderer   string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a single document from a values JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, gen, err := setup(cmd, opts)
			if err != nil {
				return err
			}

			values, err := readValues(valuesPath)
			if err != nil {
				return err
			}
			if outPath == "" {
				outPath = filepath.Join(cfg.OutputDir, hazardID+".md")
			}

			path, err := gen.Generate(cmd.Context(), generator.Request{
				Values:     values,
				HazardID:   hazardID,
				Renderer:   renderer,
				OutputPath: outPath,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Generated: %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&valuesPath, "values", "", "JSON file mapping field names to values")
	cmd.Flags().StringVar(&hazardID, "id", "HAZ-001", "hazard identifier for the document header")
	cmd.Flags().StringVar(&outPath, "out", "", "output path (default: <output-dir>/<id>.md)")
	cmd.Flags().StringVar(&renderer, "renderer", "", "renderer to use (default: configured)")
	_ = cmd.MarkFlagRequired("values")
	return cmd
}

func newCmd(opts *cliOptions) *cobra.Command {
	var hazardID string

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a draft interactively, prompting per field",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, gen, err := setup(cmd, opts)
			if err != nil {
				return err
			}

			driver := prompt.NewSurveyDriver()
			collector, err := prompt.NewCollector(driver)
			if err != nil {
				return err
			}

			outputPath := filepath.Join(cfg.OutputDir, hazardID+".md")
			ok, err := prompt.ConfirmOverwrite(cmd.Context(), driver, outputPath)
			if err != nil {
				return err
			}
			if !ok {
				return driver.Info(cmd.Context(), "Aborted, existing draft kept.")
			}

			values, err := collector.Collect(cmd.Context(), gen.Fields())
			if err != nil {
				return err
			}

			path, err := gen.Generate(cmd.Context(), generator.Request{
				Values:     values,
				HazardID:   hazardID,
				OutputPath: outputPath,
			})
			if err != nil {
				return err
			}
			return driver.Info(cmd.Context(), fmt.Sprintf("Generated: %s", path))
		},
	}

	cmd.Flags().StringVar(&hazardID, "id", "HAZ-001", "hazard identifier for the new draft")
	return cmd
}

func previewCmd(opts *cliOptions) *cobra.Command {
	var (
		valuesPath string
		hazardID   string
		outPath    string
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render a sanitized HTML preview of one document",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, gen, err := setup(cmd, opts)
			if err != nil {
				return err
			}

			values, err := readValues(valuesPath)
			if err != nil {
				return err
			}
			if outPath == "" {
				outPath = filepath.Join(cfg.OutputDir, hazardID+".html")
			}

			path, err := gen.Generate(cmd.Context(), generator.Request{
				Values:     values,
				HazardID:   hazardID,
				Renderer:   htmlpreview.Name,
				OutputPath: outPath,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Preview: %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&valuesPath, "values", "", "JSON file mapping field names to values")
	cmd.Flags().StringVar(&hazardID, "id", "HAZ-001", "hazard identifier for the document header")
	cmd.Flags().StringVar(&outPath, "out", "", "output path (default: <output-dir>/<id>.html)")
	_ = cmd.MarkFlagRequired("values")
	return cmd
}

// setup resolves config, logger, and generator shared by every subcommand.
func setup(cmd *cobra.Command, opts *cliOptions) (config.Config, zerolog.Logger, *generator.Generator, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return config.Config{}, zerolog.Nop(), nil, err
	}
	if opts.template != "" {
		cfg.Template = opts.template
	}
	if opts.taxonomy != "" {
		cfg.Taxonomy = opts.taxonomy
	}
	if opts.outputDir != "" {
		cfg.OutputDir = opts.outputDir
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	if opts.verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	gen, err := hazlog.NewGenerator(cmd.Context(), cfg.Template, cfg.Taxonomy,
		generator.WithLogger(logger),
		generator.WithDefaultRenderer(cfg.Renderer),
	)
	if err != nil {
		return config.Config{}, zerolog.Nop(), nil, err
	}
	return cfg, logger, gen, nil
}

func readValues(path string) (model.Values, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var values model.Values
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, fmt.Errorf("parse values %s: %w", path, err)
	}
	return values, nil
}
