// SPDX-FileCopyrightText: Copyright 2026 The huawei-mcp-catalog Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/charr-Chen/huawei-mcp-catalog/catalog/export"
	"github.com/charr-Chen/huawei-mcp-catalog/catalog/parser"
	"github.com/charr-Chen/huawei-mcp-catalog/catalog/source"
	catalog "github.com/charr-Chen/huawei-mcp-catalog/catalog/types"
	"github.com/charr-Chen/huawei-mcp-catalog/collector"
	"github.com/charr-Chen/huawei-mcp-catalog/logger"
	"github.com/charr-Chen/huawei-mcp-catalog/logging"
	"github.com/charr-Chen/huawei-mcp-catalog/validation/query"
)

var (
	flagListGroups bool
	flagGroup      string
	flagProduct    string
	flagCollectAPI bool
	flagOutput     string
	flagJSON       bool
	flagExport     string
	flagSource     string
	flagCommand    string
	flagTimeout    time.Duration
	flagDebug      bool
)

var rootCmd = &cobra.Command{
	Use:   "hwmcp",
	Short: "Query the Huawei Cloud MCP product catalog and collect API schemas",
	Long: `hwmcp performs a layered lookup over the Huawei Cloud MCP Server catalog:
group, then product, then the product's MCP API schemas.

The catalog is parsed from the registry README (a local file or URL); schema
collection launches the product's MCP server over stdio and records every
tool's input schema.`,
	RunE:          runRoot,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().BoolVar(&flagListGroups, "list-groups", false, "List all product groups")
	rootCmd.Flags().StringVar(&flagGroup, "group", "", "Group name to query")
	rootCmd.Flags().StringVar(&flagProduct, "product", "", "Product name or short identifier to resolve")
	rootCmd.Flags().BoolVar(&flagCollectAPI, "collect-api", false, "Collect the resolved product's API schemas")
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "mcp_schemas.json", "Output file for collected API schemas")
	rootCmd.Flags().BoolVar(&flagJSON, "json", false, "Print query results as JSON")
	rootCmd.Flags().StringVar(&flagExport, "export", "", "Export the catalog as an upstream MCP registry server list")
	rootCmd.Flags().StringVar(&flagSource, "source", "", "Catalog source: file path or URL (default: $HWMCP_CATALOG_SOURCE, then the XDG cache)")
	rootCmd.Flags().StringVar(&flagCommand, "command", "", "Launch command override for schema collection")
	rootCmd.Flags().DurationVar(&flagTimeout, "timeout", 60*time.Second, "Timeout for schema collection")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
}

// debugFlag adapts the --debug flag to the logger's DebugProvider.
type debugFlag struct{}

func (debugFlag) IsDebug() bool {
	return flagDebug
}

func runRoot(cmd *cobra.Command, _ []string) error {
	logger.InitializeWithDebug(debugFlag{})

	if flagCollectAPI && (flagGroup == "" || flagProduct == "") {
		return errors.New("--collect-api requires both --group and --product")
	}

	cat, err := loadCatalog(cmd.Context())
	if err != nil {
		return err
	}

	if flagExport != "" {
		if err := export.WriteFile(flagExport, cat); err != nil {
			return err
		}
		logger.Infow("exported upstream registry", "output", flagExport, "products", cat.ProductCount())
		return nil
	}

	out := cmd.OutOrStdout()
	switch {
	case flagListGroups:
		return renderGroups(out, cat, flagJSON)

	case flagGroup != "" && flagProduct == "":
		if err := query.ValidateGroupName(flagGroup); err != nil {
			return err
		}
		g, ok := cat.GroupByName(flagGroup)
		if !ok {
			return fmt.Errorf("%w: %s", catalog.ErrGroupNotFound, flagGroup)
		}
		return renderProducts(out, g, flagJSON)

	case flagGroup != "" && flagProduct != "":
		if err := query.ValidateGroupName(flagGroup); err != nil {
			return err
		}
		if err := query.ValidateProductName(flagProduct); err != nil {
			return err
		}
		p, err := cat.FindProduct(flagGroup, flagProduct)
		if err != nil {
			return err
		}
		if err := renderProduct(out, p, flagJSON); err != nil {
			return err
		}
		if flagCollectAPI {
			return collectAPI(cmd, p)
		}
		return nil

	default:
		return errors.New("specify --list-groups, or --group with an optional --product")
	}
}

// loadCatalog resolves the catalog source and parses it.
func loadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	loader := source.NewLoader()
	src := loader.Resolve(flagSource)

	logger.Debugw("loading catalog", "source", src)
	rc, err := loader.Load(ctx, src)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	cat, err := parser.Parse(rc)
	if err != nil {
		return nil, err
	}
	cat.Source = src
	logger.Debugw("catalog loaded", "groups", len(cat.Groups), "products", cat.ProductCount())
	return cat, nil
}

// collectAPI launches the product's MCP server and writes its schema report.
func collectAPI(cmd *cobra.Command, p *catalog.Product) error {
	command, args, err := resolveServerCommand(cmd.InOrStdin(), cmd.ErrOrStderr(), p)
	if err != nil {
		return err
	}

	logger.Infow("collecting API schemas", "product", p.Name, "command", command)
	cl, err := collector.NewStdioClient(command, nil, args...)
	if err != nil {
		return err
	}
	defer cl.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), flagTimeout)
	defer cancel()

	report, err := collector.New(collectionLogger(cmd.ErrOrStderr())).Collect(ctx, cl, command)
	if err != nil {
		return err
	}
	if err := report.WriteFile(flagOutput); err != nil {
		return err
	}

	logger.Infow("wrote API schema report",
		"output", flagOutput,
		"tools", report.ToolCount(),
		"with_schema", report.WithSchema(),
		"without_schema", report.WithoutSchema())
	return nil
}

// resolveServerCommand picks the launch command for a product: the --command
// override wins, then the command inferred from the repository path, then a
// prompt on stdin. A command line may carry arguments after the executable.
func resolveServerCommand(in io.Reader, out io.Writer, p *catalog.Product) (string, []string, error) {
	cmdline := flagCommand
	if cmdline == "" {
		cmdline = p.ServerCommand()
	}
	if cmdline == "" {
		fmt.Fprintf(out, "No launch command could be inferred for %s. Enter one: ", p.Name)
		scanner := bufio.NewScanner(in)
		if scanner.Scan() {
			cmdline = strings.TrimSpace(scanner.Text())
		}
		if cmdline == "" {
			return "", nil, fmt.Errorf("%w for product %s: pass --command", catalog.ErrNoServerCommand, p.Name)
		}
	}

	fields := strings.Fields(cmdline)
	return fields[0], fields[1:], nil
}

// collectionLogger builds the slog logger handed to the collector library.
func collectionLogger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if flagDebug {
		level = slog.LevelDebug
	}
	return logging.New(
		logging.WithFormat(logging.FormatText),
		logging.WithLevel(level),
		logging.WithOutput(w),
	)
}
