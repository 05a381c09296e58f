package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/hunterjsb/xn-mc/pkg/wiki"
)

// PublishOptions holds command-line options for the publish command.
type PublishOptions struct {
	CommonOptions

	Summary string
}

// NewPublishCommand creates the publish command.
func NewPublishCommand() *cobra.Command {
	opts := &PublishOptions{}

	cmd := &cobra.Command{
		Use:   "publish <title>",
		Short: "Publish stdin as a wiki page",
		Long: `Write standard input as the named wiki page, then purge the page
cache. Requires a wiki token in the config or environment.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPublish(cmd, args, opts)
		},
	}
	addCommonFlags(cmd, &opts.CommonOptions)
	cmd.Flags().StringVarP(&opts.Summary, "summary", "m", "Automated update", "Edit summary")

	return cmd
}

func runPublish(cmd *cobra.Command, args []string, opts *PublishOptions) error {
	cfg, _, log, err := setup(&opts.CommonOptions)
	if err != nil {
		return err
	}
	if cfg.Wiki.Token == "" {
		return fmt.Errorf("publishing requires a wiki token")
	}

	title := args[0]
	ctx := commandContext(cmd)

	content, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("reading page content: %w", err)
	}
	if len(content) == 0 {
		return fmt.Errorf("refusing to publish an empty page")
	}

	client := wiki.New(cfg.Wiki.BaseURL, cfg.Wiki.Token)
	if err := client.Edit(ctx, title, string(content), opts.Summary); err != nil {
		return fmt.Errorf("publishing %q: %w", title, err)
	}
	if err := client.Purge(ctx, title); err != nil {
		log.Warn().Err(err).Str("title", title).Msg("purge failed")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Published: %s\n", title)
	return nil
}
