package main

import (
	"fmt"
	"os"

	"github.com/ad/startlink-bot/internal/config"
	"github.com/ad/startlink-bot/internal/domain"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// newRootCmd builds the command tree. Flag defaults come from the environment.
func newRootCmd() *cobra.Command {
	var env config.Config

	root := &cobra.Command{
		Use:           "startlink",
		Short:         "Generate and inspect start links for the bot",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var (
		botUsername string
		referral    string
		query       string
	)

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Print a t.me start link carrying a referral and/or query",
		RunE: func(cmd *cobra.Command, args []string) error {
			if botUsername == "" {
				return fmt.Errorf("bot username is required (--bot or BOT_USERNAME)")
			}

			link, err := domain.NewDeepLinkService(botUsername).GenerateStartLink(referral, query)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), link)
			return nil
		},
	}
	generateCmd.Flags().StringVar(&botUsername, "bot", env.LookupEnvOrString("BOT_USERNAME", ""), "bot username")
	generateCmd.Flags().StringVar(&referral, "ref", "", "referral identifier")
	generateCmd.Flags().StringVar(&query, "query", "", "query identifier")

	var (
		baseURL string
		premium bool
	)

	decodeCmd := &cobra.Command{
		Use:   "decode <link-or-start-parameter>",
		Short: "Show the parameters and web app URL the bot would produce",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := domain.NewDeepLinkService("").ParseStartLink(args[0])
			if err != nil {
				return err
			}

			for _, p := range params {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%q\n", p.Key, p.Value)
			}

			link, err := domain.ComposeLink(params, premium, baseURL)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), link.URL)
			return nil
		},
	}
	decodeCmd.Flags().StringVar(&baseURL, "base", env.LookupEnvOrString("WEB_APP_URL", config.DefaultWebAppURL), "web app base URL")
	decodeCmd.Flags().BoolVar(&premium, "premium", false, "compose the URL as for a premium user")

	root.AddCommand(generateCmd, decodeCmd)

	return root
}

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
