package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"longshort/cmd"
	"longshort/internal"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "longshort",
		Short: "market-neutral long/short equity portfolio construction",
	}

	var dateStr string
	var force bool
	rebalanceCmd := &cobra.Command{
		Use:   "rebalance",
		Short: "run one rebalance cycle and print the target weights",
		RunE: func(c *cobra.Command, args []string) error {
			date, err := time.Parse("2006-01-02", dateStr)
			if err != nil {
				return fmt.Errorf("invalid date %q: %w", dateStr, err)
			}

			apiHandler, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}

			if !force && !apiHandler.Rebalancer.Config.RebalanceDue(date) {
				fmt.Printf("%s is not a rebalance day for cadence %q, use --force to run anyway\n", dateStr, apiHandler.Rebalancer.Config.Cadence)
				return nil
			}

			result, err := apiHandler.Rebalancer.Rebalance(context.Background(), date)
			if err != nil {
				return err
			}

			internal.Pprint(result.Weights)
			return nil
		},
	}
	rebalanceCmd.Flags().StringVar(&dateStr, "date", time.Now().UTC().Format("2006-01-02"), "rebalance date (YYYY-MM-DD)")
	rebalanceCmd.Flags().BoolVar(&force, "force", false, "run even if the cadence does not call for a rebalance on this date")

	var port int
	apiCmd := &cobra.Command{
		Use:   "api",
		Short: "start the http api",
		RunE: func(c *cobra.Command, args []string) error {
			apiHandler, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			return apiHandler.StartApi(port)
		},
	}
	apiCmd.Flags().IntVar(&port, "port", 3009, "port to listen on")

	rootCmd.AddCommand(rebalanceCmd, apiCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
