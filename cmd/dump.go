package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"firestige.xyz/rcg/internal/sink"
	"firestige.xyz/rcg/pkg/log"
	"firestige.xyz/rcg/pkg/rcg"
)

var dumpCmd = &cobra.Command{
	Use:   "dump [file]",
	Short: "Decode a game log to an output sink",
	Long: `Decode a game log and write every record to an output sink.

Without --type the sink follows the output: text on a terminal, jsonl otherwise.
Sink options come from the config file (rcg.output.options) and --set.

Examples:
  rcg dump game.rcg
  rcg dump game.rcg -t jsonl --set kinds=show,team > game.jsonl
  rcg dump game.rcg -t sqlite -o game.db --set batch=5000
  zcat game.rcg.gz | rcg dump -t text --set players=true`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if dumpList {
			listSinks(cmd.OutOrStdout())
			return nil
		}
		return runDumpCommand(cmd, args)
	},
}

var (
	dumpType    string
	dumpOutput  string
	dumpSet     []string
	dumpList    bool
	dumpDecoder decoderFlags
)

func init() {
	dumpCmd.Flags().StringVarP(&dumpType, "type", "t", "", "sink type (see --list)")
	dumpCmd.Flags().StringVarP(&dumpOutput, "output", "o", "", "output path (default: stdout)")
	dumpCmd.Flags().StringArrayVar(&dumpSet, "set", nil, "sink option key=value, repeatable")
	dumpCmd.Flags().BoolVar(&dumpList, "list", false, "list sink types and exit")
	dumpDecoder.register(dumpCmd)
}

// dumpOptions is everything runDump needs besides the streams.
type dumpOptions struct {
	Type    string
	Path    string // handed to sinks that open their own output
	Options map[string]interface{}
	Parser  []rcg.Option
}

func runDumpCommand(cmd *cobra.Command, args []string) error {
	cfg := globalConfig
	if err := dumpDecoder.apply(cmd, cfg); err != nil {
		return err
	}
	popts, err := parserOptions(cfg)
	if err != nil {
		return err
	}
	sets, err := parseSets(dumpSet)
	if err != nil {
		return err
	}

	o := dumpOptions{
		Type:    firstNonEmpty(dumpType, cfg.Output.Type),
		Path:    firstNonEmpty(dumpOutput, cfg.Output.Path),
		Options: mergeOptions(cfg.Output.Options, sets),
		Parser:  popts,
	}

	in, err := openInput(inputArg(args))
	if err != nil {
		return err
	}
	defer in.Close()

	if o.Type == "" && o.Path != "" {
		o.Type = sinkTypeForPath(o.Path)
	}

	var out io.Writer = cmd.OutOrStdout()
	if o.Path != "" {
		def, err := sink.Lookup(o.Type)
		if err != nil {
			return err
		}
		if !def.OwnsPath {
			f, err := os.Create(o.Path)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", o.Path, err)
			}
			defer f.Close()
			out = f
		}
	}

	stats, err := runDump(in, out, o)
	if err != nil {
		return err
	}
	log.GetLogger().WithFields(map[string]interface{}{
		"records":       stats.Records(),
		"decode_errors": stats.DecodeErrors,
	}).Info("dump finished")
	return nil
}

// runDump decodes in into the sink selected by o.
func runDump(in io.Reader, out io.Writer, o dumpOptions) (rcg.StatsSnapshot, error) {
	typ := o.Type
	if typ == "" {
		typ = defaultSinkType(out)
	}
	def, err := sink.Lookup(typ)
	if err != nil {
		return rcg.StatsSnapshot{}, err
	}
	if def.Binary && !def.OwnsPath && isTerminal(out) {
		return rcg.StatsSnapshot{}, fmt.Errorf("refusing to write %s output to a terminal", typ)
	}

	s, err := sink.New(typ, sink.Target{Writer: out, Path: o.Path}, o.Options)
	if err != nil {
		return rcg.StatsSnapshot{}, err
	}
	p := rcg.NewParser(in, o.Parser...)
	runErr := p.Run(s)
	closeErr := s.Close()
	stats := p.Stats().Snapshot()
	if runErr != nil {
		return stats, fmt.Errorf("decode failed: %w", runErr)
	}
	if closeErr != nil {
		return stats, fmt.Errorf("failed to close %s sink: %w", typ, closeErr)
	}
	return stats, nil
}

// defaultSinkType picks text for terminals and jsonl for pipes and files.
func defaultSinkType(out io.Writer) string {
	if isTerminal(out) {
		return sink.TextName
	}
	return sink.JSONLName
}

// sinkTypeForPath maps an output file extension to a sink type.
func sinkTypeForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return sink.SQLiteName
	case ".json", ".jsonl", ".ndjson":
		return sink.JSONLName
	case ".yaml", ".yml":
		return sink.YAMLName
	case ".rcg":
		return sink.RCGName
	}
	return sink.TextName
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func listSinks(out io.Writer) {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TYPE\tOUTPUT\tDESCRIPTION")
	for _, d := range sink.List() {
		target := "stream"
		if d.OwnsPath {
			target = "path"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", d.Name, target, d.Description)
	}
	tw.Flush()
}

// parseSets turns key=value pairs into sink options. A value with commas
// becomes a list.
func parseSets(sets []string) (map[string]interface{}, error) {
	out := make(map[string]interface{}, len(sets))
	for _, kv := range sets {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid --set %q, expected key=value", kv)
		}
		if strings.Contains(v, ",") {
			parts := strings.Split(v, ",")
			list := make([]interface{}, len(parts))
			for i, p := range parts {
				list[i] = strings.TrimSpace(p)
			}
			out[k] = list
			continue
		}
		out[k] = v
	}
	return out, nil
}

func mergeOptions(base, over map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(base)+len(over))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range over {
		out[k] = v
	}
	return out
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
