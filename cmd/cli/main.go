package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
	token   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "backoffice-cli",
		Short: "Backoffice CLI tool",
		Long:  `A command line interface for interacting with the backoffice API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the backoffice API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")
	rootCmd.PersistentFlags().StringVar(&token, "token", os.Getenv("BACKOFFICE_TOKEN"), "Bearer token for authenticated APIs")

	rootCmd.AddCommand(requestsCmd())
	rootCmd.AddCommand(balanceCmd())
	rootCmd.AddCommand(totalsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func requestsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "requests",
		Short: "Change request operations",
	}

	var targetType string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List pending change requests",
		Run: func(cmd *cobra.Command, args []string) {
			path := "/api/v1/requests/"
			if targetType != "" {
				path += "?targetType=" + targetType
			}
			var result struct {
				Requests []map[string]any `json:"requests"`
				Total    int64            `json:"total"`
			}
			apiGet(path, &result)

			fmt.Printf("Pending requests: %d\n", result.Total)
			for _, req := range result.Requests {
				fmt.Printf("  %s  %-11s %-6s %s\n",
					req["id"],
					req["targetType"],
					req["operation"],
					truncate(fmt.Sprint(req["message"]), 60),
				)
			}
		},
	}
	listCmd.Flags().StringVar(&targetType, "target-type", "", "Filter by target type (Bank, Website, Transaction, Introducer)")

	approveCmd := &cobra.Command{
		Use:   "approve <request-id>",
		Short: "Approve a pending change request",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			var result map[string]any
			apiPost("/api/v1/requests/"+args[0]+"/approve", &result)
			printJSON(result)
		},
	}

	rejectCmd := &cobra.Command{
		Use:   "reject <request-id>",
		Short: "Reject a pending change request",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			var result map[string]any
			apiPost("/api/v1/requests/"+args[0]+"/reject", &result)
			printJSON(result)
		},
	}

	cmd.AddCommand(listCmd, approveCmd, rejectCmd)
	return cmd
}

func balanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance <kind> <account-id>",
		Short: "Show a reconciled account balance",
		Long:  `Show the reconciled balance of a bank, website or introducer account.`,
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			var collection string
			switch strings.ToLower(args[0]) {
			case "bank":
				collection = "banks"
			case "website":
				collection = "websites"
			case "introducer":
				collection = "introducers"
			default:
				fmt.Printf("unknown account kind %q (want bank, website or introducer)\n", args[0])
				os.Exit(1)
			}

			var result map[string]any
			apiGet("/api/v1/"+collection+"/"+args[1]+"/balance", &result)
			printJSON(result)
		},
	}
	return cmd
}

func totalsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "totals",
		Short: "Show platform-wide deposit and withdrawal totals",
		Run: func(cmd *cobra.Command, args []string) {
			var result map[string]any
			apiGet("/api/v1/entries/totals", &result)
			printJSON(result)
		},
	}
}

func apiGet(path string, out any) {
	doRequest(http.MethodGet, path, out)
}

func apiPost(path string, out any) {
	doRequest(http.MethodPost, path, out)
}

func doRequest(method, path string, out any) {
	client := &http.Client{Timeout: timeout}

	req, err := http.NewRequest(method, baseURL+path, nil)
	if err != nil {
		fmt.Printf("Error building request: %v\n", err)
		os.Exit(1)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		fmt.Printf("Request FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	if err := json.Unmarshal(body, out); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}
}

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("Failed to render output: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(data))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
