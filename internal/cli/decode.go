package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Alfex4936/mapsrpc/internal/model"
	"github.com/Alfex4936/mapsrpc/internal/net"
)

func registerDecodeCmds(parent *cobra.Command, opts *options, e *env) {
	place := &cobra.Command{
		Use:   "place [FILE...]",
		Short: "Print the place record of each response",
		Example: `  # Decode a saved response
  mapsrpc place response.txt -o table`,
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := decodeAll(cmd, args, opts, e)
			if err != nil {
				return err
			}
			places := make([]model.Place, 0, len(results))
			for i, r := range results {
				if r.Place == nil {
					e.log.Warn("no place record", "input", i)
					continue
				}
				places = append(places, *r.Place)
			}
			return render(cmd.OutOrStdout(), opts.output, places, placeTable)
		},
	}

	reviews := &cobra.Command{
		Use:   "reviews [FILE...]",
		Short: "Print the reviews of each response",
		Example: `  # Thai reviews only
  mapsrpc reviews page1.txt page2.txt --lang th`,
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := decodeAll(cmd, args, opts, e)
			if err != nil {
				return err
			}
			all := []model.Review{}
			dropped := 0
			for _, r := range results {
				all = append(all, r.Reviews...)
				dropped += r.Dropped
			}
			if dropped > 0 {
				e.log.Info("reviews dropped by language", "lang", opts.lang, "dropped", dropped)
			}
			return render(cmd.OutOrStdout(), opts.output, all, reviewTable)
		},
	}

	process := &cobra.Command{
		Use:   "process [FILE...]",
		Short: "Print the full decode result of each response",
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := decodeAll(cmd, args, opts, e)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts.output, results, resultTable)
		},
	}

	for _, c := range []*cobra.Command{place, reviews, process} {
		addInputFlags(c, opts)
		parent.AddCommand(c)
	}
}

func decodeAll(cmd *cobra.Command, args []string, opts *options, e *env) ([]*model.Result, error) {
	bodies, err := readBodies(cmd, args, opts, e)
	if err != nil {
		return nil, err
	}
	return e.proc.ProcessAll(cmd.Context(), bodies, opts.query(), opts.limit)
}

// readBodies returns the --url body, the named files, or stdin when no
// file (or "-") is given.
func readBodies(cmd *cobra.Command, args []string, opts *options, e *env) ([][]byte, error) {
	if opts.url != "" {
		if len(args) > 0 {
			return nil, errors.New("--url cannot be combined with files")
		}
		b, err := fetch(cmd, opts, e)
		if err != nil {
			return nil, err
		}
		return [][]byte{b}, nil
	}

	if len(args) == 0 {
		args = []string{"-"}
	}
	bodies := make([][]byte, 0, len(args))
	for _, name := range args {
		var (
			b   []byte
			err error
		)
		if name == "-" {
			b, err = io.ReadAll(cmd.InOrStdin())
		} else {
			b, err = os.ReadFile(name)
		}
		if err != nil {
			return nil, err
		}
		bodies = append(bodies, b)
	}
	return bodies, nil
}

func fetch(cmd *cobra.Command, opts *options, e *env) ([]byte, error) {
	hl, gl := e.cfg.Fetch.Language, e.cfg.Fetch.Region
	if opts.lang != "" {
		hl = opts.lang
	}
	if opts.region != "" {
		gl = opts.region
	}
	u, err := net.WithLocale(opts.url, hl, gl)
	if err != nil {
		return nil, fmt.Errorf("--url: %w", err)
	}

	c, err := net.New(e.cfg.Fetch.Timeout, e.cfg.Fetch.Profile)
	if err != nil {
		return nil, err
	}
	e.log.Debug("fetching", "url", u, "profile", e.cfg.Fetch.Profile)
	return c.Fetch(cmd.Context(), u)
}
