package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pgadvise/internal/dtemplates"
)

func newTemplatesCommand(cmdCtx *commandContext) *cobra.Command {
	templatesCmd := &cobra.Command{
		Use:   "templates",
		Short: "Inspect the debconf templates backing the advisories",
	}

	templatesCmd.AddCommand(newTemplatesShowCommand(cmdCtx))
	templatesCmd.AddCommand(newTemplatesVerifyCommand(cmdCtx))
	return templatesCmd
}

func newTemplatesShowCommand(cmdCtx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <question>",
		Short: "Print a question's text, localized for the current locale",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cmdCtx.ensureConfig()
			if err != nil {
				return err
			}

			catalog, err := dtemplates.LoadFile(cfg.Paths.TemplatesFile)
			if err != nil {
				return fmt.Errorf("load templates: %w", err)
			}
			tmpl, ok := catalog.Find(args[0])
			if !ok {
				return fmt.Errorf("question %q not found in %s", args[0], cfg.Paths.TemplatesFile)
			}

			desc := tmpl.Describe(envLocales()...)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Template: %s\n", tmpl.Name)
			fmt.Fprintf(out, "Type: %s\n", tmpl.Type)
			if tmpl.Default != "" {
				fmt.Fprintf(out, "Default: %s\n", tmpl.Default)
			}
			fmt.Fprintf(out, "\n%s\n", desc.Short)
			if desc.Extended != "" {
				fmt.Fprintf(out, "\n%s\n", desc.Extended)
			}
			if locales := tmpl.Locales(); len(locales) > 0 {
				fmt.Fprintf(out, "\nTranslations: %v\n", locales)
			}
			return nil
		},
	}
}

func newTemplatesVerifyCommand(cmdCtx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check that every configured probe has a template",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cmdCtx.ensureConfig()
			if err != nil {
				return err
			}

			catalog, err := dtemplates.LoadFile(cfg.Paths.TemplatesFile)
			if err != nil {
				return fmt.Errorf("load templates: %w", err)
			}

			var missing []string
			for _, probe := range cfg.Probes {
				if _, ok := catalog.Find(probe.Question); !ok {
					missing = append(missing, probe.Question)
				}
			}
			if len(missing) > 0 {
				return fmt.Errorf("templates file %s is missing questions: %v", cfg.Paths.TemplatesFile, missing)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "All %d probe questions defined in %s\n",
				len(cfg.Probes), cfg.Paths.TemplatesFile)
			return nil
		},
	}
}

// envLocales returns the display locales in debconf's preference order.
func envLocales() []string {
	var locales []string
	for _, key := range []string{"LANGUAGE", "LC_ALL", "LC_MESSAGES", "LANG"} {
		if value := os.Getenv(key); value != "" {
			locales = append(locales, value)
		}
	}
	return locales
}
