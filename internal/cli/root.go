// Package cli contains the mapsrpc command definitions.
package cli

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Alfex4936/mapsrpc/internal/app"
	"github.com/Alfex4936/mapsrpc/internal/config"
	"github.com/Alfex4936/mapsrpc/internal/model"
	"github.com/Alfex4936/mapsrpc/mapsrpc"
)

// options are the flags shared by every subcommand.
type options struct {
	configPath string
	output     string
	lang       string
	region     string
	url        string
	limit      int
}

// env is built once per invocation by the root PersistentPreRunE.
type env struct {
	cfg  *config.Config
	log  *slog.Logger
	proc *mapsrpc.Processor
}

// NewRootCmd creates the root command with all subcommands registered.
func NewRootCmd() *cobra.Command {
	opts := &options{}
	e := &env{}

	root := &cobra.Command{
		Use:   "mapsrpc",
		Short: "Decode maps RPC responses into place and review records",
		Long: `mapsrpc reads raw responses of the maps internal RPC channel
(JSON behind the )]}' prefix) and prints the place and review records
they contain. Bodies come from files, stdin or a single --url fetch.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch opts.output {
			case "json", "yaml", "table":
			default:
				return errors.New("--output must be one of: json, yaml, table")
			}
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			e.cfg = cfg
			e.log = app.NewLogger(cfg.Log, cmd.ErrOrStderr())
			e.proc, err = app.NewProcessor(cfg, e.log)
			return err
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "config file (default $CONFIG_PATH or ./config.yaml)")
	pf.StringVarP(&opts.output, "output", "o", "json", "output format: json, yaml or table")

	registerDecodeCmds(root, opts, e)
	registerTextCmds(root, opts)

	return root
}

// query builds the Query for the language and region flags.
func (o *options) query() model.Query {
	q := model.Query{Region: o.region}
	if o.lang != "" {
		q.Language = model.ParseLanguageTag(o.lang)
	}
	return q
}

func addInputFlags(cmd *cobra.Command, opts *options) {
	f := cmd.Flags()
	f.StringVar(&opts.url, "url", "", "fetch one response from this URL instead of reading files")
	f.StringVar(&opts.lang, "lang", "", "target language (en, th, ja, zh); reviews are filtered for it")
	f.StringVar(&opts.region, "region", "", "region code attached to the query, e.g. th")
	f.IntVar(&opts.limit, "concurrency", 0, "bodies decoded in parallel (default GOMAXPROCS)")
}
