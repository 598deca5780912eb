package cmd

import (
	"fmt"
	"slices"

	"github.com/Mohsinsiddi/w3account/internal/chain"
	"github.com/Mohsinsiddi/w3account/internal/ui"
	"github.com/spf13/cobra"
)

var networkCmd = &cobra.Command{
	Use:   "network",
	Short: "Manage the active network",
}

var networkListCmd = &cobra.Command{
	Use:   "list",
	Short: "List supported networks",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := chain.NewRegistry()
		active, _ := reg.Lookup(cfg.ActiveNetwork)

		t := ui.NewTable([]ui.Column{
			{Title: "Name", Width: 14},
			{Title: "Display", Width: 14},
			{Title: "CAIP-2", Width: 20},
			{Title: "Currency", Width: 8},
			{Title: "Smart acct", Width: 10},
		})
		for _, n := range reg.All() {
			sa := "—"
			if slices.Contains(cfg.SmartAccountNetworks, n.CAIPID()) {
				sa = "yes"
			}
			t.AddRow(ui.Row{
				n.Name,
				n.DisplayName,
				n.CAIPID(),
				n.NativeCurrency.Symbol,
				sa,
			}, active != nil && active.Name == n.Name)
		}

		fmt.Println(t.Render())
		fmt.Println(ui.Meta(fmt.Sprintf("%d networks total · active: %s", len(reg.All()), cfg.ActiveNetwork)))
		return nil
	},
}

var networkUseCmd = &cobra.Command{
	Use:   "use <network>",
	Short: "Set the active network",
	Long: `Set the active network (slug or CAIP-2 id) and persist it to config.
The active namespace follows the network.

Examples:
  w3account network use base
  w3account network use solana
  w3account network use eip155:137`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := chain.NewRegistry().Lookup(args[0])
		if err != nil {
			return fmt.Errorf("unknown network %q — run `w3account network list` to see all networks", args[0])
		}

		cfg.ActiveNetwork = n.Name
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Println(ui.Success(fmt.Sprintf("Active network set to %s (%s)", ui.ChainName(n.DisplayName), n.CAIPID())))
		return nil
	},
}

func init() {
	networkCmd.AddCommand(networkListCmd, networkUseCmd)
}
