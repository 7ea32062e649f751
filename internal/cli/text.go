package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Alfex4936/mapsrpc/internal/model"
	"github.com/Alfex4936/mapsrpc/mapsrpc"
)

// textResult is the structured output of classify and filter.
type textResult struct {
	Text     string            `json:"text" yaml:"text"`
	Language model.LanguageTag `json:"language" yaml:"language"`
	Include  *bool             `json:"include,omitempty" yaml:"include,omitempty"`
}

func registerTextCmds(parent *cobra.Command, opts *options) {
	classify := &cobra.Command{
		Use:   "classify TEXT...",
		Short: "Print the script-level language of a text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			res := textResult{Text: text, Language: mapsrpc.Classify(text)}
			if opts.output == "table" {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), res.Language)
				return err
			}
			return render(cmd.OutOrStdout(), opts.output, res, nil)
		},
	}

	var target string
	filter := &cobra.Command{
		Use:   "filter --lang L TEXT...",
		Short: "Strip characters outside the script set of a language",
		Example: `  mapsrpc filter --lang en "Great food, try the ข้าวซอย!!"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tag := model.ParseLanguageTag(target)
			if tag == model.Unknown {
				return errors.New("--lang must be one of: en, th, ja, zh")
			}
			text := strings.Join(args, " ")
			include := mapsrpc.ShouldInclude(text, tag)
			res := textResult{Text: mapsrpc.FilterText(text, tag), Language: tag, Include: &include}
			if opts.output == "table" {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), res.Text)
				return err
			}
			return render(cmd.OutOrStdout(), opts.output, res, nil)
		},
	}
	filter.Flags().StringVar(&target, "lang", "", "target language (en, th, ja, zh)")
	_ = filter.MarkFlagRequired("lang")

	parent.AddCommand(classify, filter)
}
