package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-formbs"
	"github.com/goliatone/go-formbs/pkg/bootstrap"
	"github.com/goliatone/go-formbs/pkg/config"
	pkgopenapi "github.com/goliatone/go-formbs/pkg/openapi"
	"github.com/goliatone/go-formbs/pkg/prompt"
)

type cli struct {
	source      string
	configPath  string
	operation   string
	renderer    string
	output      string
	inline      bool
	interactive bool
	verbose     bool

	cfg    *config.Config
	logger *zap.Logger
	driver prompt.Driver
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	return c.command()
}

func (c *cli) command() *cobra.Command {
	root := &cobra.Command{
		Use:   "formbs-cli",
		Short: "Render Bootstrap 4 forms from OpenAPI operations",
		Long: `formbs-cli builds a form from the request body of an OpenAPI operation
and renders it with Bootstrap 4 markup.`,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
		RunE: c.runRender,
	}

	root.PersistentFlags().StringVarP(&c.source, "source", "s", "", "OpenAPI document path or URL")
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "YAML config file (FORMBS_* env vars override it)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "debug logging")

	root.Flags().StringVarP(&c.operation, "operation", "o", "", "operation id to render")
	root.Flags().StringVar(&c.renderer, "renderer", bootstrap.RendererName, "renderer name")
	root.Flags().BoolVar(&c.inline, "inline", false, "use the inline form renderer")
	root.Flags().StringVar(&c.output, "output", "", "output file (stdout if empty)")
	root.Flags().BoolVarP(&c.interactive, "interactive", "i", false, "choose the operation and prefill values with prompts")

	root.AddCommand(c.operationsCmd(), c.lintCmd())
	return root
}

func (c *cli) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	if c.verbose {
		cfg.LogLevel = "debug"
	}
	logger, err := cfg.Logger()
	if err != nil {
		return err
	}
	c.cfg = cfg
	c.logger = logger
	if c.driver == nil {
		c.driver = prompt.NewSurveyDriver()
	}
	return nil
}

func (c *cli) loadDocument(ctx context.Context) (pkgopenapi.Document, error) {
	if strings.TrimSpace(c.source) == "" {
		return pkgopenapi.Document{}, errors.New("--source is required")
	}
	src, err := pkgopenapi.SourceFromString(c.source)
	if err != nil {
		return pkgopenapi.Document{}, err
	}
	c.logger.Debug("loading document", zap.String("source", src.Location()))
	return formbs.NewLoader().Load(ctx, src)
}

func (c *cli) runRender(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	doc, err := c.loadDocument(ctx)
	if err != nil {
		return err
	}

	operationID := strings.TrimSpace(c.operation)
	if operationID == "" {
		if !c.interactive {
			return errors.New("--operation is required (or use --interactive)")
		}
		operations, err := formbs.Operations(ctx, doc)
		if err != nil {
			return err
		}
		ids := make([]string, 0, len(operations))
		for _, op := range operations {
			ids = append(ids, op.ID)
		}
		if operationID, err = prompt.ChooseOperation(ctx, c.driver, ids); err != nil {
			return err
		}
	}

	form, err := formbs.LoadForm(ctx, doc, operationID)
	if err != nil {
		return err
	}

	var opts formbs.RenderOptions
	if c.interactive {
		values, err := prompt.New(c.driver, prompt.WithLogger(c.logger)).Collect(ctx, form)
		if err != nil {
			return err
		}
		opts.Values = values
	}

	rendererName := c.renderer
	if c.inline {
		rendererName = bootstrap.InlineRendererName
	}
	c.logger.Debug("rendering form",
		zap.String("operation", operationID),
		zap.String("renderer", rendererName),
		zap.Int("elements", len(form.Elements)),
	)

	html, err := formbs.RenderForm(ctx, form, rendererName, opts,
		formbs.WithConfig(c.cfg),
		formbs.WithLogger(c.logger),
	)
	if err != nil {
		return err
	}

	if c.output == "" {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(html))
		return err
	}
	if err := os.WriteFile(c.output, html, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Form written to %s\n", c.output)
	return nil
}

func (c *cli) operationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "operations",
		Short: "List the operations of a document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			doc, err := c.loadDocument(ctx)
			if err != nil {
				return err
			}
			operations, err := formbs.Operations(ctx, doc)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, op := range operations {
				fmt.Fprintf(out, "%s\t%s\t%s\t%s\n", op.ID, op.Method, op.Path, op.Summary)
			}
			return nil
		},
	}
}

func (c *cli) lintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lint",
		Short: "Report x-formbs extensions the form builder cannot use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			doc, err := c.loadDocument(ctx)
			if err != nil {
				return err
			}
			operations, err := formbs.Operations(ctx, doc, pkgopenapi.WithReferenceResolution(false))
			if err != nil {
				return err
			}
			violations := pkgopenapi.LintOperations(operations)
			out := cmd.OutOrStdout()
			for _, v := range violations {
				fmt.Fprintf(out, "%s: %s\n", doc.Location(), v)
			}
			if len(violations) > 0 {
				return fmt.Errorf("lint: %d violation(s)", len(violations))
			}
			return nil
		},
	}
}
