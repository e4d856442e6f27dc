package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/resrank/internal/domain/document"
	"github.com/kailas-cloud/resrank/internal/extract"
	logpkg "github.com/kailas-cloud/resrank/internal/logger"
	"github.com/kailas-cloud/resrank/internal/report"
	"github.com/kailas-cloud/resrank/internal/textproc"
	rankinguc "github.com/kailas-cloud/resrank/internal/usecase/ranking"
)

type rankOptions struct {
	jobFile      string
	jobText      string
	csvOut       string
	keywords     int
	maxDocuments int
	logLevel     string
}

func rankCmd() *cobra.Command {
	var opts rankOptions
	cmd := &cobra.Command{
		Use:   "rank [flags] RESUME...",
		Short: "Rank resume files against a job description and print the table",
		Example: "  resrank rank --job job.txt cv/*.pdf\n" +
			"  resrank rank --job-text \"Senior Go developer\" --csv ranking_results.csv a.pdf b.pdf",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRank(cmd, &opts, args)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.jobFile, "job", "", "job description file (PDF or text)")
	f.StringVar(&opts.jobText, "job-text", "", "job description text")
	f.StringVar(&opts.csvOut, "csv", "", "write results as CSV to this file")
	f.IntVar(&opts.keywords, "keywords", 10, "number of top keywords to print (0 = none)")
	f.IntVar(&opts.maxDocuments, "max-documents", rankinguc.DefaultMaxDocuments, "maximum number of resumes")
	f.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error (default warn)")
	cmd.MarkFlagsMutuallyExclusive("job", "job-text")
	cmd.MarkFlagsOneRequired("job", "job-text")
	return cmd
}

func runRank(cmd *cobra.Command, opts *rankOptions, paths []string) error {
	logger, err := logpkg.NewLogger("cli", opts.logLevel)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()
	ctx := logpkg.ContextWithLogger(cmd.Context(), logger)

	resources, err := textproc.LoadResources()
	if err != nil {
		return fmt.Errorf("load language resources: %w", err)
	}
	extractor := extract.NewAuto()

	job, err := jobDescription(extractor, opts)
	if err != nil {
		return err
	}

	uploads := make([]document.Upload, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(filepath.Clean(p))
		if err != nil {
			return fmt.Errorf("read resume: %w", err)
		}
		u, err := document.NewUpload(filepath.Base(p), data)
		if err != nil {
			return fmt.Errorf("resume %s: %w", p, err)
		}
		uploads = append(uploads, u)
	}

	svc := rankinguc.New(extractor, textproc.NewNormalizer(resources)).
		WithLimits(opts.maxDocuments, 0).
		WithKeywordLimit(max(opts.keywords, 0))

	rep, err := svc.Rank(ctx, job, uploads)
	out := cmd.OutOrStdout()
	for _, w := range rep.Warnings {
		fmt.Fprintln(cmd.ErrOrStderr(), w.Message())
	}
	if err != nil {
		return fmt.Errorf("rank: %w", err)
	}

	if err := printReport(out, &rep, opts.keywords > 0); err != nil {
		return err
	}

	if opts.csvOut != "" {
		data, err := report.CSV(rep.Results)
		if err != nil {
			return fmt.Errorf("encode csv: %w", err)
		}
		if err := os.WriteFile(opts.csvOut, data, 0o600); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
		fmt.Fprintf(out, "\nResults written to %s\n", opts.csvOut)
	}
	return nil
}

func jobDescription(extractor *extract.Auto, opts *rankOptions) (string, error) {
	if opts.jobFile == "" {
		return opts.jobText, nil
	}
	data, err := os.ReadFile(filepath.Clean(opts.jobFile))
	if err != nil {
		return "", fmt.Errorf("read job description: %w", err)
	}
	ext := extractor.Extract(data)
	if !ext.Readable() {
		return "", fmt.Errorf("job description %s: %w", opts.jobFile, ext.Err())
	}
	return ext.Text(), nil
}

func printReport(w io.Writer, rep *rankinguc.Report, withKeywords bool) error {
	if err := report.WriteTable(w, rep.Results); err != nil {
		return fmt.Errorf("print table: %w", err)
	}
	top, ok := rep.Top()
	if !ok {
		return errors.New("no ranked resumes")
	}
	fmt.Fprintf(w, "\nTop candidate: %s with score: %s\n", top.Name(), top.DisplayScore())

	if withKeywords && len(rep.Keywords) > 0 {
		fmt.Fprintln(w)
		if err := report.WriteKeywords(w, rep.Keywords); err != nil {
			return fmt.Errorf("print keywords: %w", err)
		}
	}
	return nil
}
