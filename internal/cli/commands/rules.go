package commands

import (
	"fmt"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/spacelint/internal/cli/output"
	"github.com/leapstack-labs/spacelint/pkg/lint"
	_ "github.com/leapstack-labs/spacelint/pkg/lint/rules" // register rules
)

// RulesOptions holds options for the rules command.
type RulesOptions struct {
	Group  string // Filter by group
	Format string // Output format
}

// NewRulesCommand creates the rules command.
func NewRulesCommand() *cobra.Command {
	opts := &RulesOptions{}
	cmd := &cobra.Command{
		Use:   "rules [rule-id]",
		Short: "List available lint rules",
		Long: `List all available lint rules with their documentation.

Pass a rule ID to see its full documentation including examples and fix
guidance.`,
		Example: `  # List all rules
  spacelint rules

  # Show details for a specific rule
  spacelint rules SP010

  # List rules in the spacing group
  spacelint rules --group spacing

  # Output as JSON
  spacelint rules --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return showRule(cmd, args[0], opts)
			}
			return listRules(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Group, "group", "g", "", "Filter by group")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, json")

	return cmd
}

func listRules(cmd *cobra.Command, opts *RulesOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	// Override renderer if format flag is set
	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	var rules []lint.RuleDef
	if opts.Group != "" {
		rules = lint.GetByGroup(opts.Group)
	} else {
		rules = lint.GetAll()
	}
	sort.Slice(rules, func(i, j int) bool { return rules[i].ID < rules[j].ID })

	if r.EffectiveMode() == output.ModeJSON {
		infos := make([]output.RuleInfo, 0, len(rules))
		for _, rule := range rules {
			infos = append(infos, ruleInfo(rule))
		}
		return r.JSON(infos)
	}

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Name", "Group", "Severity", "Description"})
	for _, rule := range rules {
		t.AppendRow(table.Row{rule.ID, rule.Name, rule.Group, rule.Severity.String(), rule.Description})
	}
	t.Render()
	r.Printf("(%d rules)\n", len(rules))

	return nil
}

func showRule(cmd *cobra.Command, id string, opts *RulesOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	rule, ok := lint.GetByID(id)
	if !ok {
		return fmt.Errorf("unknown rule: %s", id)
	}

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(ruleInfo(rule))
	}

	r.Println(r.Styles().Bold.Render(fmt.Sprintf("%s - %s", rule.ID, rule.Name)))
	r.Println("")
	r.Printf("Group:    %s\n", rule.Group)
	r.Printf("Severity: %s\n", rule.Severity)
	r.Println("")
	r.Println(rule.Description)
	if rule.Rationale != "" {
		r.Println("")
		r.Println(r.Styles().Bold.Render("Rationale"))
		r.Println(rule.Rationale)
	}
	if rule.BadExample != "" {
		r.Println("")
		r.Println(r.Styles().Bold.Render("Bad"))
		r.Println(rule.BadExample)
	}
	if rule.GoodExample != "" {
		r.Println("")
		r.Println(r.Styles().Bold.Render("Good"))
		r.Println(rule.GoodExample)
	}
	if rule.Fix != "" {
		r.Println("")
		r.Println(r.Styles().Bold.Render("Fix"))
		r.Println(rule.Fix)
	}

	return nil
}

func ruleInfo(rule lint.RuleDef) output.RuleInfo {
	return output.RuleInfo{
		ID:          rule.ID,
		Name:        rule.Name,
		Group:       rule.Group,
		Description: rule.Description,
		Severity:    rule.Severity.String(),
		ConfigKeys:  rule.ConfigKeys,
		Rationale:   rule.Rationale,
		BadExample:  rule.BadExample,
		GoodExample: rule.GoodExample,
		Fix:         rule.Fix,
	}
}
