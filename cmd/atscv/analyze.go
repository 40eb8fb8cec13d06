package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"atscv/internal/config"
	"atscv/internal/parser"
	"atscv/internal/service"
	"atscv/internal/storage"
)

//nolint:gochecknoglobals // Cobra boilerplate
var (
	analyzeRole       string
	analyzeSamplesDir string
	analyzeSave       bool
	analyzeOutputDir  string
	analyzeJSON       bool
)

//nolint:gochecknoglobals // Cobra boilerplate
var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Analyze a résumé and print its ATS report",
	Long: `Analyzes a PDF or DOCX résumé.

Without a file argument the résumé is looked up in the samples directory:
cv.pdf first, then the only PDF/DOCX whose name contains "cv", "resume"
or "curriculum".

Examples:
  atscv analyze ~/Documentos/Ana_Perez_CV.pdf --role BACKEND_DEVELOPER
  atscv analyze --samples-dir ./data/samples --save
  atscv analyze cv.docx --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	cfg := config.Load()
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringVar(&analyzeRole, "role", cfg.Analysis.DefaultRole, "Target role id, see \"atscv roles\"")
	analyzeCmd.Flags().StringVar(&analyzeSamplesDir, "samples-dir", cfg.Analysis.SamplesDir, "Directory searched when no file is given")
	analyzeCmd.Flags().BoolVar(&analyzeSave, "save", false, "Save the analysis as JSON in the output directory")
	analyzeCmd.Flags().StringVar(&analyzeOutputDir, "output-dir", cfg.Reports.Dir, "Directory for saved analyses")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the analysis as JSON instead of the report")
}

func runAnalyze(cmd *cobra.Command, args []string) (err error) {
	ctx := context.Background()
	out := cmd.OutOrStdout()
	cfg := config.Load()
	log := cliLogger(cfg.Log)

	var explicit string
	if len(args) == 1 {
		explicit = args[0]
	}

	// Lookup and parse failures are diagnostics, not command errors.
	path, err := parser.Locate(explicit, analyzeSamplesDir)
	if err != nil {
		printLocateDiagnostic(out, err, analyzeSamplesDir)
		return nil
	}
	if !analyzeJSON {
		fmt.Fprintln(out, "🔍 Analizando el CV...")
		fmt.Fprintln(out, "📄 Archivo:", path)
	}

	p := parser.New()
	doc, err := p.ParseFile(ctx, path)
	if err != nil {
		printProcessingDiagnostic(out, err)
		return nil
	}

	opts := []service.Option{
		service.WithLogger(log),
		service.WithDefaultRole(cfg.Analysis.DefaultRole),
	}
	if analyzeSave {
		var store storage.Storage
		store, err = storage.NewFilesystem(analyzeOutputDir)
		if err != nil {
			err = fmt.Errorf("failed to open output directory: %w", err)
			return err
		}
		var archive *service.ReportArchive
		archive, err = service.NewReportArchive(store, nil)
		if err != nil {
			return err
		}
		opts = append(opts, service.WithArchive(archive))
	}

	svc := service.NewAnalysisService(p, opts...)
	a, err := svc.AnalyzeDocument(ctx, doc, path, analyzeRole)
	if err != nil {
		printProcessingDiagnostic(out, err)
		return nil
	}

	if analyzeJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(a)
	}

	printReport(out, a)
	return nil
}
