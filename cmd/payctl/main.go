/**
 * @description
 * This is the entry point for payctl, a small CLI over the payment service
 * SDK. It loads configuration, wires a payment client and exposes the
 * merchant, charge, dispute and country endpoints as subcommands.
 *
 * @dependencies
 * - github.com/spf13/cobra: Command line interface.
 * - godotenv for local config, viper (via internal/config) for settings.
 */
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/shorepay/payment-go/internal/config"
	"github.com/shorepay/payment-go/pkg/payment"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type app struct {
	client *payment.Client
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "payctl",
		Short:         "payctl: inspect and manage payment service resources",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	application, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newMerchantsCmd(application),
		newDisputesCmd(application),
		newCountriesCmd(application),
	)

	return rootCmd
}

func wireApp() (*app, error) {
	// Load .env file for local development.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("cannot load config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	client := payment.NewClient(payment.Config{
		BaseURL:  cfg.PaymentBaseURL,
		Secret:   cfg.PaymentSecret,
		Password: cfg.PaymentPassword,
		Locale:   cfg.PaymentLocale,
	}, payment.WithLogger(logger))

	return &app{client: client}, nil
}

func newMerchantsCmd(application *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merchants",
		Short: "Manage merchants",
	}

	var query []string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List merchants",
		RunE: func(cmd *cobra.Command, _ []string) error {
			connector := payment.NewConnector(application.client)
			merchants, err := connector.GetMerchants(cmd.Context(), parseQueryFlags(query))
			if err != nil {
				return err
			}
			return printJSON(cmd, merchants)
		},
	}
	listCmd.Flags().StringArrayVar(&query, "query", nil, "filter/cursor parameter, k=v")

	getCmd := &cobra.Command{
		Use:   "get <merchant-id>",
		Short: "Fetch one merchant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			connector := payment.NewMerchantConnector(application.client, args[0])
			merchant, err := connector.GetMerchant(cmd.Context())
			if err != nil {
				return err
			}
			if merchant == nil {
				return fmt.Errorf("merchant %s not found", args[0])
			}
			return printJSON(cmd, merchant)
		},
	}

	var currentUser string
	createCmd := &cobra.Command{
		Use:   "create <merchant-id>",
		Short: "Create a merchant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			connector := payment.NewMerchantConnector(application.client, args[0])
			merchant, err := connector.CreateMerchant(cmd.Context(), currentUser, nil)
			if err != nil {
				return err
			}
			return printJSON(cmd, merchant)
		},
	}
	createCmd.Flags().StringVar(&currentUser, "current-user", "", "acting user ID")

	var chargeQuery []string
	chargesCmd := &cobra.Command{
		Use:   "charges <merchant-id>",
		Short: "List a merchant's charges",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			connector := payment.NewMerchantConnector(application.client, args[0])
			charges, err := connector.GetCharges(cmd.Context(), parseQueryFlags(chargeQuery))
			if err != nil {
				return err
			}
			return printJSON(cmd, charges)
		},
	}
	chargesCmd.Flags().StringArrayVar(&chargeQuery, "query", nil, "filter/cursor parameter, k=v")

	cmd.AddCommand(listCmd, getCmd, createCmd, chargesCmd)
	return cmd
}

func newDisputesCmd(application *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "disputes",
		Short: "Inspect disputes",
	}

	var query []string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List disputes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			connector := payment.NewConnector(application.client)
			disputes, err := connector.GetDisputes(cmd.Context(), parseQueryFlags(query))
			if err != nil {
				return err
			}
			return printJSON(cmd, disputes)
		},
	}
	listCmd.Flags().StringArrayVar(&query, "query", nil, "filter/cursor parameter, k=v")

	getCmd := &cobra.Command{
		Use:   "get <dispute-id>",
		Short: "Fetch one dispute",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			connector := payment.NewConnector(application.client)
			dispute, err := connector.GetDispute(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if dispute == nil {
				return fmt.Errorf("dispute %s not found", args[0])
			}
			return printJSON(cmd, dispute)
		},
	}

	cmd.AddCommand(listCmd, getCmd)
	return cmd
}

func newCountriesCmd(application *app) *cobra.Command {
	return &cobra.Command{
		Use:   "countries",
		Short: "List supported countries",
		RunE: func(cmd *cobra.Command, _ []string) error {
			connector := payment.NewConnector(application.client)
			countries, err := connector.GetCountries(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, countries)
		},
	}
}

func parseQueryFlags(pairs []string) payment.Params {
	if len(pairs) == 0 {
		return nil
	}
	params := payment.Params{}
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found {
			continue
		}
		params[key] = value
	}
	return params
}

func printJSON(cmd *cobra.Command, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}
