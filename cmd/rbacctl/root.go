package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func newRootCmd(out io.Writer) *cobra.Command {
	cl := &client{HTTP: &http.Client{Timeout: 30 * time.Second}, out: out}

	root := &cobra.Command{
		Use:           "rbacctl",
		Short:         "Manage console users and roles",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cl.OutFormat != "json" && cl.OutFormat != "text" {
				return fmt.Errorf("--out must be json or text, got %q", cl.OutFormat)
			}
			return nil
		},
	}
	root.SetOut(out)

	pf := root.PersistentFlags()
	pf.StringVar(&cl.BaseURL, "api-url", envOr("RBAC_API_URL", "http://localhost:8080"), "admin API base URL (env RBAC_API_URL)")
	pf.StringVar(&cl.APIKey, "api-key", envOr("RBAC_API_KEY", ""), "admin API key (env RBAC_API_KEY)")
	pf.StringVar(&cl.OutFormat, "out", envOr("RBAC_OUT", "text"), "output format: json|text")

	root.AddCommand(newUsersCmd(cl), newRolesCmd(cl))
	return root
}
