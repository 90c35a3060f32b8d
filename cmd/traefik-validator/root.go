// Package main provides the traefik-validator CLI application.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/traefik-tools/go-traefik-validator/pkg/cprint"
	"github.com/traefik-tools/go-traefik-validator/pkg/schema"
	"github.com/traefik-tools/go-traefik-validator/pkg/validate"
	"github.com/traefik-tools/go-traefik-validator/pkg/version"
)

// errValidationFailed signals a non-zero exit after failures have already
// been rendered.
var errValidationFailed = errors.New("configuration validation failed")

var (
	staticConfigPath  string
	dynamicConfigPath string
	traefikVersion    string
	offline           bool
	jsonOutput        bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "traefik-validator",
	Short: "Validate Traefik configuration files",
	Long: `Validate Traefik static and dynamic configuration files against the
published Traefik v3 JSON schemas.

Schemas are cached under ~/.traefik-validator/cache so validation keeps
working without network access; pass --offline to skip downloading entirely.`,
	Version:       version.FullString(),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runValidate,
}

// Execute runs the root command. It is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().StringVarP(&staticConfigPath, "static-config", "s", "",
		"path to the static configuration file")
	rootCmd.Flags().StringVarP(&dynamicConfigPath, "dynamic-config", "d", "",
		"path to the dynamic configuration file")
	rootCmd.Flags().BoolVar(&offline, "offline", false,
		"use cached schemas without downloading")
	rootCmd.Flags().BoolVar(&jsonOutput, "json", false,
		"output results in JSON format")
	rootCmd.Flags().StringVar(&traefikVersion, "traefik-version", "",
		"Traefik release the files target, warns when it is outside the supported series")
}

func runValidate(cmd *cobra.Command, _ []string) error {
	if staticConfigPath == "" && dynamicConfigPath == "" {
		cmd.Help() //nolint:errcheck
		fmt.Fprintln(cmd.ErrOrStderr(),
			"\nError: you must provide at least one configuration file to validate")
		return errValidationFailed
	}

	if traefikVersion != "" {
		supported, err := version.SupportsTraefik(traefikVersion)
		if err != nil {
			return unexpectedError(cmd, err)
		}
		if !supported {
			cprint.WarnFprintln(cmd.ErrOrStderr(), fmt.Sprintf(
				"Warning: Traefik %s is outside the supported v%s series, results may be inaccurate",
				traefikVersion, version.SupportedTraefik))
		}
	}

	opts := validate.Opts{Offline: offline}
	if staticConfigPath != "" {
		f, err := os.Open(staticConfigPath)
		if err != nil {
			return unexpectedError(cmd, err)
		}
		defer f.Close()
		opts.StaticConfig = f
	}
	if dynamicConfigPath != "" {
		f, err := os.Open(dynamicConfigPath)
		if err != nil {
			return unexpectedError(cmd, err)
		}
		defer f.Close()
		opts.DynamicConfig = f
	}

	cacheDir, err := schema.DefaultCacheDir()
	if err != nil {
		return unexpectedError(cmd, err)
	}
	opts.Provider = schema.NewProvider(
		schema.DefaultConfig(), schema.NewStore(cacheDir), schema.NewHTTPFetcher())

	validator, err := validate.NewValidator(opts)
	if err != nil {
		return unexpectedError(cmd, err)
	}

	report := validator.Validate(cmd.Context())
	if jsonOutput {
		out, err := report.JSON()
		if err != nil {
			return unexpectedError(cmd, err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
	} else {
		report.Render(cmd.OutOrStdout())
	}

	if !report.Ok() {
		return errValidationFailed
	}
	return nil
}

// unexpectedError reports errors outside the validation flow (unreadable
// input files, no resolvable home directory) with distinct framing, in the
// active output format.
func unexpectedError(cmd *cobra.Command, err error) error {
	if jsonOutput {
		out, merr := json.Marshal(struct {
			Success bool   `json:"success"`
			Message string `json:"message"`
		}{Message: fmt.Sprintf("Unexpected error: %v", err)})
		if merr == nil {
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
		}
	} else {
		cprint.ErrorFprintln(cmd.OutOrStdout(), fmt.Sprintf("✗ Unexpected error: %v", err))
	}
	return err
}
