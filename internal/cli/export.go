package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sandeepkv93/todod/internal/model"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// ExportFormats defines the allowed export formats.
var ExportFormats = []string{"json", "yaml"}

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the task list to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(format) {
				return fmt.Errorf("invalid format %q: must be one of %v", format, ExportFormats)
			}
			return rootOpts.withSession(cmd, func(ctx context.Context, sess *session) error {
				data, err := encodeExport(sess.service.List(ctx), format)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			})
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format (json|yaml)")
	return cmd
}

func encodeExport(tasks []model.Task, format string) ([]byte, error) {
	if tasks == nil {
		tasks = []model.Task{}
	}
	switch format {
	case "yaml":
		data, err := yaml.Marshal(tasks)
		if err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}
		return data, nil
	default:
		data, err := json.MarshalIndent(tasks, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode json: %w", err)
		}
		return append(data, '\n'), nil
	}
}

func isValidFormat(format string) bool {
	for _, f := range ExportFormats {
		if f == format {
			return true
		}
	}
	return false
}
