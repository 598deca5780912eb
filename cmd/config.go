package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/Mohsinsiddi/w3account/internal/account"
	"github.com/Mohsinsiddi/w3account/internal/chain"
	"github.com/Mohsinsiddi/w3account/internal/ui"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return err
		}
		fmt.Printf("%s\n\n", ui.StyleTitle.Render("Current Configuration"))
		fmt.Println(string(data))
		fmt.Println(ui.Meta("Config directory: " + cfg.Dir()))
		return nil
	},
}

var configSetAccountTypeCmd = &cobra.Command{
	Use:   "set-account-type <namespace> <smartAccount|eoa>",
	Short: "Set the default account type for a namespace",
	Long: `Set the default account type new embedded wallet accounts use on a
namespace. "eoa" also hides the account type toggle on that namespace.

Examples:
  w3account config set-account-type eip155 smartAccount
  w3account config set-account-type solana eoa`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.SetAccountType(args[0], args[1]); err != nil {
			return err
		}
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Println(ui.Success(fmt.Sprintf("Default account type for %s set to %s", args[0], args[1])))
		return nil
	},
}

var configUnsetAccountTypeCmd = &cobra.Command{
	Use:   "unset-account-type <namespace>",
	Short: "Remove the account type restriction for a namespace",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.UnsetAccountType(args[0]); err != nil {
			fmt.Println(ui.Warn(err.Error()))
			return nil
		}
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Println(ui.Success(fmt.Sprintf("Account type restriction removed for %s", args[0])))
		return nil
	},
}

var configSetProjectIDCmd = &cobra.Command{
	Use:   "set-project-id <id>",
	Short: "Set the project id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg.ProjectID = args[0]
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Println(ui.Success(fmt.Sprintf("Project id set to %q", args[0])))
		return nil
	},
}

var configEnableSmartAccountCmd = &cobra.Command{
	Use:   "enable-smart-account <network>",
	Short: "Mark a network as smart-account capable",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := chain.NewRegistry().Lookup(args[0])
		if err != nil {
			return fmt.Errorf("unknown network %q", args[0])
		}
		if err := cfg.AddSmartAccountNetwork(n.CAIPID()); err != nil {
			// Already enabled — not fatal.
			fmt.Println(ui.Warn(err.Error()))
			return nil
		}
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Println(ui.Success(fmt.Sprintf("Smart accounts enabled on %s", n.CAIPID())))
		return nil
	},
}

var configDisableSmartAccountCmd = &cobra.Command{
	Use:   "disable-smart-account <network>",
	Short: "Remove a network from the smart-account list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := chain.NewRegistry().Lookup(args[0])
		if err != nil {
			return fmt.Errorf("unknown network %q", args[0])
		}
		if err := cfg.RemoveSmartAccountNetwork(n.CAIPID()); err != nil {
			fmt.Println(ui.Warn(err.Error()))
			return nil
		}
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Println(ui.Success(fmt.Sprintf("Smart accounts disabled on %s", n.CAIPID())))
		return nil
	},
}

var configSetAddressCmd = &cobra.Command{
	Use:   "set-address <namespace> <address>",
	Short: "Set the connected address shown for a namespace",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ns, err := chain.ParseNamespace(args[0])
		if err != nil {
			return err
		}
		// Validate (and checksum) through the account state.
		acc := account.NewState()
		if err := acc.SetAddress(ns, args[1]); err != nil {
			return err
		}
		cfg.Addresses[ns] = acc.Address(ns)
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Println(ui.Success(fmt.Sprintf("Address for %s set to %s", ns, ui.Addr(acc.Address(ns)))))
		return nil
	},
}

func init() {
	configCmd.AddCommand(
		configListCmd,
		configSetAccountTypeCmd,
		configUnsetAccountTypeCmd,
		configSetProjectIDCmd,
		configEnableSmartAccountCmd,
		configDisableSmartAccountCmd,
		configSetAddressCmd,
	)
}
