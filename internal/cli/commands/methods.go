package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/conduit-lang/lspcontract/internal/cli/ui"
	"github.com/conduit-lang/lspcontract/internal/methods"
	"github.com/conduit-lang/lspcontract/internal/schema"
	"github.com/spf13/cobra"
)

// absent is how an empty type slot is displayed
const absent = "-"

// NewMethodsCommand creates the methods command
func NewMethodsCommand() *cobra.Command {
	var category, format string

	cmd := &cobra.Command{
		Use:   "methods",
		Short: "List every registered method",
		Long: `List every LSP method with its category and the declared types of its
registration options, params and result. A dash marks an absent slot.`,
		Example: `  # All methods
  lspcontract methods

  # Only what the server sends to the client
  lspcontract methods --category server-request

  # Machine readable
  lspcontract methods --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMethods(cmd, category, format)
		},
	}

	categories := methods.Categories()
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = c.String()
	}
	cmd.Flags().StringVar(&category, "category", "", "Only list one category: "+strings.Join(names, ", "))
	cmd.Flags().StringVar(&format, "format", "table", "Output format: table or json")

	return cmd
}

type methodJSON struct {
	Method              string `json:"method"`
	Category            string `json:"category"`
	RegistrationOptions string `json:"registrationOptions,omitempty"`
	Params              string `json:"params,omitempty"`
	Result              string `json:"result,omitempty"`
}

func runMethods(cmd *cobra.Command, category, format string) error {
	descriptors := methods.LSP().Descriptors()

	if category != "" {
		c, err := methods.ParseCategory(category)
		if err != nil {
			return err
		}
		filtered := descriptors[:0]
		for _, d := range descriptors {
			if d.Category == c {
				filtered = append(filtered, d)
			}
		}
		descriptors = filtered
	}

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		rows := make([]methodJSON, 0, len(descriptors))
		for _, d := range descriptors {
			rows = append(rows, methodJSON{
				Method:              d.Method,
				Category:            d.Category.String(),
				RegistrationOptions: typeString(d.RegistrationOptions, ""),
				Params:              typeString(d.Params, ""),
				Result:              typeString(d.Result, ""),
			})
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case "table":
		table := ui.NewTable(out, []string{"METHOD", "CATEGORY", "OPTIONS", "PARAMS", "RESULT"}, &ui.TableOptions{NoColor: noColor})
		for _, d := range descriptors {
			table.AddRow(
				d.Method,
				d.Category.String(),
				typeString(d.RegistrationOptions, absent),
				typeString(d.Params, absent),
				typeString(d.Result, absent),
			)
		}
		if table.Len() == 0 {
			fmt.Fprint(cmd.ErrOrStderr(), ui.Warning("No methods match the filter", noColor))
			return nil
		}
		table.Render()
		return nil
	default:
		return fmt.Errorf("unsupported format %q: use table or json", format)
	}
}

func typeString(t schema.Type, none string) string {
	if t == nil {
		return none
	}
	return t.String()
}

// NewDescribeCommand creates the describe command
func NewDescribeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "describe <method|schema>",
		Short: "Show a method's declared types or a schema's fields",
		Example: `  lspcontract describe textDocument/hover
  lspcontract describe Hover`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDescribe(cmd, args[0])
		},
	}
}

func runDescribe(cmd *cobra.Command, name string) error {
	registry := methods.LSP()
	out := cmd.OutOrStdout()

	if d, err := registry.Lookup(name); err == nil {
		kv := ui.NewKeyValueTable(out, noColor)
		kv.AddRow("Method", d.Method)
		kv.AddRow("Category", d.Category.String())
		kv.AddRow("Registration options", typeString(d.RegistrationOptions, absent))
		kv.AddRow("Params", typeString(d.Params, absent))
		kv.AddRow("Result", typeString(d.Result, absent))
		kv.Render()
		return nil
	}

	catalog := registry.Catalog()
	if s, ok := catalog.Lookup(name); ok {
		ui.Header(out, s.Name(), noColor)
		table := ui.NewTable(out, []string{"FIELD", "TYPE", "REQUIRED", "DEFAULT"}, &ui.TableOptions{NoColor: noColor})
		for _, f := range s.Fields() {
			table.AddRow(f.WireName, f.Type.String(), yesNo(f.Required), defaultString(f))
		}
		table.Render()
		return nil
	}

	candidates := append(registry.Methods(), catalog.Names()...)
	fmt.Fprint(cmd.ErrOrStderr(), ui.NameNotFoundError(name, ui.FindSimilar(name, candidates, nil), noColor))
	return reported("%q is neither a method nor a schema", name)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func defaultString(f schema.FieldSpec) string {
	if !f.HasDefault {
		return ""
	}
	data, err := json.Marshal(f.Default)
	if err != nil {
		return fmt.Sprintf("%v", f.Default)
	}
	return string(data)
}
