package cmd

import (
	"fmt"

	"github.com/Mohsinsiddi/w3account/internal/connector"
	"github.com/Mohsinsiddi/w3account/internal/toggle"
	"github.com/Mohsinsiddi/w3account/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var settingsOnce bool

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Open the account settings panel",
	Long: `Open the interactive account settings panel.

The panel re-renders whenever the network, connector, options or account
state changes. Selecting the account type toggle switches between smart
account and EOA for this session; it is not persisted.

Use --once to print the panel and exit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := newSession(cfg, connector.DefaultSessionStore(cfg.Dir()), log)
		if err != nil {
			return err
		}

		if settingsOnce {
			fmt.Println(ui.RenderSettings(sess.settingsView(sess.resolver.Resolve())))
			return nil
		}

		w := toggle.NewWatcher(sess.resolver, sess.chains, sess.connectors, sess.options, sess.accounts)
		defer w.Close()

		m := ui.NewSettingsModel(sess.settingsView(w.Current()), func(rowID string) tea.Cmd {
			switch rowID {
			case ui.ToggleTestID:
				return func() tea.Msg {
					sess.switchAccountType()
					return nil
				}
			case ui.DisconnectRowID:
				return func() tea.Msg {
					ns, _ := sess.chains.ActiveNamespaceAndNetwork()
					sess.connectors.Disconnect(ns)
					return nil
				}
			}
			return nil
		})

		p := tea.NewProgram(m, tea.WithAltScreen())
		remove := w.OnChange(func(d toggle.Decision) {
			p.Send(ui.SettingsMsg(sess.settingsView(d)))
		})
		defer remove()

		if _, err := p.Run(); err != nil {
			return fmt.Errorf("settings panel: %w", err)
		}
		return nil
	},
}

func init() {
	settingsCmd.Flags().BoolVar(&settingsOnce, "once", false, "print the panel once and exit")
}
