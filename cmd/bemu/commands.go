package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	bemu "github.com/reoring/bemu"
	"github.com/reoring/bemu/codec"
	"github.com/reoring/bemu/market"
	"github.com/reoring/bemu/refdata"
)

type outputFlags struct {
	spaces int
	level  int
	json   bool
}

func (o *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&o.spaces, "spaces", 4, "Spaces per nesting level (negative prints one line)")
	cmd.Flags().IntVar(&o.level, "level", 0, "Starting indentation level")
	cmd.Flags().BoolVar(&o.json, "json", false, "Write JSON instead of the element text format")
}

func (o *outputFlags) write(w io.Writer, e bemu.Element) error {
	if o.json {
		if err := codec.EncodeJSON(w, e); err != nil {
			return err
		}
		_, err := io.WriteString(w, "\n")
		return err
	}
	return e.Print(w, o.level, o.spaces)
}

func newPrintCmd(a *app) *cobra.Command {
	var out outputFlags
	cmd := &cobra.Command{
		Use:   "print FILE",
		Short: "Decode a JSON or YAML fixture and print it",
		Long: `Decodes FILE (.json, .yaml or .yml) into an element named after the
file and prints it.

Example:
  bemu print securityData.yaml --spaces 2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.load(args[0])
			if err != nil {
				return err
			}
			return out.write(cmd.OutOrStdout(), e)
		},
	}
	out.register(cmd)
	return cmd
}

func newGetCmd(a *app) *cobra.Command {
	var out outputFlags
	cmd := &cobra.Command{
		Use:   "get FILE POINTER",
		Short: "Print the element at a JSON Pointer",
		Long: `Decodes FILE and prints the element POINTER refers to. Pointers are
relative to the document root; array items are addressed by index.

Example:
  bemu get securityData.json /fieldExceptions/0/fieldId`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := a.load(args[0])
			if err != nil {
				return err
			}
			e, err := bemu.Find(root, args[1])
			if err != nil {
				return err
			}
			return out.write(cmd.OutOrStdout(), e)
		},
	}
	out.register(cmd)
	return cmd
}

func newExceptionsCmd(a *app) *cobra.Command {
	var (
		out     outputFlags
		service string
	)
	cmd := &cobra.Command{
		Use:   "exceptions FIELD...",
		Short: "Synthesize the exceptions a service returns for unknown fields",
		Long: `Builds the exception collection for each FIELD.

Services:
  - mktdata: exceptions[] with fieldId and reason (subscription start)
  - refdata: fieldExceptions[] with fieldId and errorInfo (reference data)`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var e bemu.Element
			switch service {
			case "mktdata":
				e = market.NewExceptionsArray(args, market.WithCatalog(a.cat))
			case "refdata":
				e = refdata.NewFieldExceptionsArray(args, refdata.WithCatalog(a.cat))
			default:
				return fmt.Errorf("unknown service %q (want mktdata or refdata)", service)
			}
			a.logger.Debug("Synthesized exceptions",
				zap.String("service", service),
				zap.Int("fields", len(args)),
			)
			return out.write(cmd.OutOrStdout(), e)
		},
	}
	cmd.Flags().StringVar(&service, "service", "refdata", "Service whose exception layout to use (mktdata or refdata)")
	out.register(cmd)
	return cmd
}

// load decodes a fixture into an element named after the file.
func (a *app) load(path string) (bemu.Element, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	ext := strings.ToLower(filepath.Ext(path))
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	a.logger.Debug("Decoding fixture", zap.String("path", path), zap.Int("bytes", len(data)))

	switch ext {
	case ".json":
		return codec.DecodeJSON(name, data, codec.DecodeOpt{
			MaxDepth:       64,
			ParseDatetimes: true,
			OnDuplicate:    codec.DuplicateWarn,
			OnWarning: func(is bemu.Issue) {
				a.logger.Warn("Duplicate key", zap.String("path", is.Path))
			},
		})
	case ".yaml", ".yml":
		return codec.DecodeYAML(name, data)
	}
	return nil, fmt.Errorf("unsupported fixture extension %q", filepath.Ext(path))
}
