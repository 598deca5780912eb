package cmd

import (
	"fmt"

	"github.com/Mohsinsiddi/w3account/internal/connector"
	"github.com/Mohsinsiddi/w3account/internal/toggle"
	"github.com/Mohsinsiddi/w3account/internal/ui"
	"github.com/spf13/cobra"
)

var toggleNetwork string

var toggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Explain whether the account type toggle is shown",
	Long: `Evaluate the account type toggle against the current configuration and
print each condition of the gate.

Examples:
  w3account toggle
  w3account toggle --network solana
  w3account toggle --network eip155:137 -v`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := newSession(cfg, connector.DefaultSessionStore(cfg.Dir()), log)
		if err != nil {
			return err
		}
		if toggleNetwork != "" {
			if err := sess.chains.SetActiveNetwork(toggleNetwork); err != nil {
				return fmt.Errorf("%w — run `w3account network list` to see all networks", err)
			}
		}

		in, err := sess.resolver.Inputs()
		if err != nil {
			return err
		}
		d := toggle.Evaluate(in)

		t := ui.NewTable([]ui.Column{
			{Title: "#", Width: 3},
			{Title: "Condition", Width: 24},
			{Title: "Result", Width: 8},
		})
		for i, step := range toggle.Trace(in) {
			result := "fail"
			if step.Passed {
				result = "pass"
			}
			t.AddRow(ui.Row{fmt.Sprintf("%d", i+1), step.Name, result}, step.Passed)
		}

		network := "—"
		if in.Network != nil {
			network = in.Network.CAIPID()
		}
		fmt.Printf("%s  %s\n\n", ui.ChainName(string(in.Namespace)), ui.Meta(network))
		fmt.Println(t.Render())
		if d.Show {
			fmt.Println(ui.Success(fmt.Sprintf("Toggle shown (%s)", ui.ToggleTestID)))
		} else {
			fmt.Println(ui.Warn(fmt.Sprintf("Toggle hidden: %s", d.Reason)))
		}
		return nil
	},
}

func init() {
	toggleCmd.Flags().StringVar(&toggleNetwork, "network", "", "evaluate on this network instead of the active one")
}
