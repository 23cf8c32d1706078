package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "fluxocaixa-cli",
		Short: "Fluxocaixa CLI tool",
		Long:  `A command line interface for the fluxocaixa cash-flow report API.`,
	}

	root.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the fluxocaixa API")
	root.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Report operations",
	}
	reportCmd.AddCommand(cashflowCmd())

	root.AddCommand(reportCmd)
	root.AddCommand(healthCmd())

	return root
}

type cashflowRequest struct {
	LedgerKind     string `json:"ledger_kind"`
	PeriodStart    string `json:"period_start"`
	PeriodEnd      string `json:"period_end"`
	OpeningBalance string `json:"opening_balance,omitempty"`
}

func cashflowCmd() *cobra.Command {
	var req cashflowRequest

	cmd := &cobra.Command{
		Use:   "cashflow",
		Short: "Generate a cash-flow report",
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := json.Marshal(req)
			if err != nil {
				return err
			}

			client := &http.Client{Timeout: timeout}
			resp, err := client.Post(baseURL+"/api/v1/reports/cashflow", "application/json", bytes.NewReader(body))
			if err != nil {
				return fmt.Errorf("request failed: %w", err)
			}
			defer resp.Body.Close()

			raw, _ := io.ReadAll(resp.Body)
			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("report request failed (status %d): %s", resp.StatusCode, string(raw))
			}

			var report map[string]any
			if err := json.Unmarshal(raw, &report); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}

			printJSON(report)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.LedgerKind, "kind", "ACCOUNTS", "Ledger kind (ACCOUNTS or INVOICES)")
	cmd.Flags().StringVar(&req.PeriodStart, "start", "", "Period start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&req.PeriodEnd, "end", "", "Period end (YYYY-MM-DD)")
	cmd.Flags().StringVar(&req.OpeningBalance, "opening-balance", "", "Balance carried into the period")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check API readiness",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := &http.Client{Timeout: timeout}
			resp, err := client.Get(baseURL + "/ready")
			if err != nil {
				return fmt.Errorf("request failed: %w", err)
			}
			defer resp.Body.Close()

			raw, _ := io.ReadAll(resp.Body)
			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("service not ready (status %d): %s", resp.StatusCode, string(raw))
			}

			var status map[string]any
			if err := json.Unmarshal(raw, &status); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}

			printJSON(status)
			return nil
		},
	}
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("failed to render output: %v\n", err)
		return
	}
	fmt.Println(string(out))
}
