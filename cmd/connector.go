package cmd

import (
	"fmt"
	"strings"

	"github.com/Mohsinsiddi/w3account/internal/chain"
	"github.com/Mohsinsiddi/w3account/internal/connector"
	"github.com/Mohsinsiddi/w3account/internal/ui"
	"github.com/spf13/cobra"
)

var connectorNamespace string

var connectorCmd = &cobra.Command{
	Use:   "connector",
	Short: "Manage wallet connectors",
}

var connectorListCmd = &cobra.Command{
	Use:   "list",
	Short: "List connectors and where they are active",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := connector.NewRegistry(connector.WithActive(cfg.ActiveConnectors))
		active := reg.Active()

		t := ui.NewTable([]ui.Column{
			{Title: "ID", Width: 14},
			{Title: "Name", Width: 16},
			{Title: "Kind", Width: 14},
			{Title: "Namespaces", Width: 26},
			{Title: "Active on", Width: 16},
		})
		for _, c := range reg.List() {
			var ns, on []string
			for _, n := range c.Namespaces {
				ns = append(ns, string(n))
				if active[n] == c.ID {
					on = append(on, string(n))
				}
			}
			t.AddRow(ui.Row{c.ID, c.Name, string(c.Kind), strings.Join(ns, ","), strings.Join(on, ",")}, len(on) > 0)
		}
		fmt.Println(t.Render())
		return nil
	},
}

var connectorUseCmd = &cobra.Command{
	Use:   "use <id>",
	Short: "Connect with a connector on a namespace",
	Long: `Make a connector the active one for a namespace and persist it.

Examples:
  w3account connector use ID_AUTH
  w3account connector use walletConnect --namespace solana`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ns, err := chain.ParseNamespace(connectorNamespace)
		if err != nil {
			return err
		}
		reg := connector.NewRegistry(connector.WithActive(cfg.ActiveConnectors))
		if err := reg.Use(ns, args[0]); err != nil {
			return err
		}
		cfg.ActiveConnectors = reg.Active()
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Println(ui.Success(fmt.Sprintf("Connected with %s on %s", args[0], ui.ChainName(string(ns)))))
		return nil
	},
}

var connectorDisconnectCmd = &cobra.Command{
	Use:   "disconnect",
	Short: "Disconnect the active connector on a namespace",
	RunE: func(cmd *cobra.Command, args []string) error {
		ns, err := chain.ParseNamespace(connectorNamespace)
		if err != nil {
			return err
		}
		if _, ok := cfg.ActiveConnectors[ns]; !ok {
			fmt.Println(ui.Warn(fmt.Sprintf("Nothing connected on %s", ns)))
			return nil
		}
		delete(cfg.ActiveConnectors, ns)
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Println(ui.Success(fmt.Sprintf("Disconnected from %s", ns)))
		return nil
	},
}

var connectorLoginCmd = &cobra.Command{
	Use:   "login <email>",
	Short: "Store the embedded wallet login in the OS keychain",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := connector.DefaultSessionStore(cfg.Dir()).SaveEmail(args[0]); err != nil {
			return err
		}
		fmt.Println(ui.Success("Embedded wallet session saved"))
		return nil
	},
}

var connectorLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the embedded wallet login from the OS keychain",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := connector.DefaultSessionStore(cfg.Dir()).Clear(); err != nil {
			return fmt.Errorf("clearing session: %w", err)
		}
		fmt.Println(ui.Success("Embedded wallet session cleared"))
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{connectorUseCmd, connectorDisconnectCmd} {
		c.Flags().StringVar(&connectorNamespace, "namespace", string(chain.NamespaceEVM), "chain namespace")
	}
	connectorCmd.AddCommand(connectorListCmd, connectorUseCmd, connectorDisconnectCmd, connectorLoginCmd, connectorLogoutCmd)
}
