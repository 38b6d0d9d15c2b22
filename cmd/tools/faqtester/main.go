// faqtester exercises the chat matcher and the contact validator from a
// terminal, against the built-in FAQ table or a YAML file.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/softsell/site/backend/internal/analysis/reply"
	"github.com/softsell/site/backend/internal/model/contact"
	"github.com/softsell/site/backend/internal/model/faq"
)

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var rulesPath string

	root := &cobra.Command{
		Use:           "faqtester",
		Short:         "Try SoftSell chat replies and contact validation offline",
		SilenceUsage:  true,
	}
	root.PersistentFlags().StringVar(&rulesPath, "rules", os.Getenv("FAQ_RULES_PATH"), "YAML rule table (defaults to the built-in table)")

	loadMatcher := func() (*reply.Matcher, error) {
		if rulesPath == "" {
			return reply.NewDefaultMatcher(), nil
		}
		rules, err := faq.LoadRulesFile(rulesPath)
		if err != nil {
			return nil, err
		}
		return reply.NewMatcher(rules), nil
	}

	root.AddCommand(newAskCmd(loadMatcher), newRulesCmd(loadMatcher), newValidateCmd())
	return root
}

func newAskCmd(loadMatcher func() (*reply.Matcher, error)) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "ask [question...]",
		Short: "Print the bot reply for a question",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadMatcher()
			if err != nil {
				return err
			}
			res := m.Resolve(strings.Join(args, " "))
			if verbose {
				fmt.Fprintf(cmd.OutOrStdout(), "[%s", res.Category)
				if res.Pattern != "" {
					fmt.Fprintf(cmd.OutOrStdout(), " %q", res.Pattern)
				}
				fmt.Fprint(cmd.OutOrStdout(), "] ")
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Reply)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show which branch produced the reply")
	return cmd
}

func newRulesCmd(loadMatcher func() (*reply.Matcher, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the rule table in match order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := loadMatcher()
			if err != nil {
				return err
			}
			for i, rule := range m.Rules() {
				fmt.Fprintf(cmd.OutOrStdout(), "%d. %q -> %s\n", i+1, rule.Pattern, rule.Reply)
			}
			return nil
		},
	}
}

func newValidateCmd() *cobra.Command {
	var form contact.Form

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a contact form and print the field errors as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			errs := contact.Validate(form)

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(map[string]any{"valid": errs.Valid(), "errors": errs, "messages": errs.Messages()}); err != nil {
				return err
			}
			if !errs.Valid() {
				return fmt.Errorf("form has errors")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&form.Name, "name", "", "full name")
	cmd.Flags().StringVar(&form.Email, "email", "", "email address")
	cmd.Flags().StringVar(&form.Company, "company", "", "company")
	cmd.Flags().StringVar(&form.LicenseType, "license-type", "", "one of: "+strings.Join(contact.LicenseTypes(), ", "))
	cmd.Flags().StringVar(&form.Message, "message", "", "message, at least 10 characters")
	return cmd
}
