package main

import (
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/spf13/cobra"

	"github.com/satyamsoni2211/lazy-env-configurator/pkg/container"
	"github.com/satyamsoni2211/lazy-env-configurator/pkg/schema"
)

var resolveFormat string

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve every field and print the values",
	Long: `Resolve loads the schema file, resolves every declared field against
the merged environment, and prints the validated values in declaration
order. Failures across fields are aggregated into one report.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := schema.LoadFile(schemaFile)
		if err != nil {
			return err
		}

		c, err := container.New(s, container.WithName(schemaFile))
		if err != nil {
			return err
		}

		values, err := c.ResolveAll()
		if err != nil {
			return err
		}

		switch resolveFormat {
		case "json":
			out := make(map[string]any, len(values))
			for name, v := range values {
				out[name] = displayValue(v)
			}
			data, err := json.MarshalIndent(out, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
		case "text":
			for _, name := range c.FieldNames() {
				fmt.Printf("%s=%v\n", name, displayValue(values[name]))
			}
		default:
			return fmt.Errorf("unknown format %q (want text or json)", resolveFormat)
		}
		return nil
	},
}

// displayValue renders resolved values in their canonical textual form.
func displayValue(v any) any {
	switch t := v.(type) {
	case *url.URL:
		return t.String()
	case time.Duration:
		return t.String()
	case nil:
		return ""
	}
	return v
}

func init() {
	resolveCmd.Flags().StringVar(&resolveFormat, "format", "text", "output format: text or json")
	rootCmd.AddCommand(resolveCmd)
}
