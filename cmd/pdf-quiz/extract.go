package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/a3tai/pdf-quiz/internal/config"
	"github.com/a3tai/pdf-quiz/internal/extract"
	"github.com/a3tai/pdf-quiz/internal/pdf"
	"github.com/a3tai/pdf-quiz/internal/question"
)

func newExtractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract questions from a PDF into a JSON question list",
		Example: "  pdf-quiz extract -p exam.pdf -o exam.json\n" +
			"  pdf-quiz extract -p exam.pdf -s 3 -e 10 --marker '**'",
		Args: cobra.NoArgs,
		RunE: runExtract,
	}
	config.DefineExtractFlags(cmd.Flags())
	return cmd
}

func runExtract(cmd *cobra.Command, _ []string) error {
	cfg, log, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	info, err := pdf.NewValidator(cfg.MaxFileSize).ValidateFile(cfg.PDFPath)
	if err != nil {
		return err
	}
	log.Debug("pdf validated", "path", info.Path, "pages", info.Pages, "size", info.Size)

	doc, err := pdf.Open(cfg.PDFPath, cfg.XTolerance)
	if err != nil {
		return err
	}
	defer doc.Close()

	log.Debug("scanning pdf", "path", doc.Path(), "pages", doc.NumPages(), "marker", cfg.Marker)
	session := extract.NewSession(doc, nil, extract.NewBuilder(cfg.Marker), log)
	report, err := session.Run(cmd.Context(), extract.PageRange{Start: cfg.StartPage, End: cfg.EndPage})
	if err != nil {
		return err
	}

	entries := report.Entries()
	if err := question.Save(cfg.OutputPath, entries); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Successfully extracted %d questions from %s\n", len(entries), cfg.PDFPath)
	fmt.Fprintf(out, "Output saved to %s\n", cfg.OutputPath)
	if report.Rejected > 0 {
		fmt.Fprintf(out, "%d malformed block(s) were saved as null entries\n", report.Rejected)
	}
	return nil
}
