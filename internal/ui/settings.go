package ui

import (
	"fmt"
	"strings"

	"github.com/Mohsinsiddi/w3account/internal/accounttype"
	"github.com/Mohsinsiddi/w3account/internal/toggle"
	tea "github.com/charmbracelet/bubbletea"
)

// Row identifiers, stable for scripts and tests.
const (
	AddressRowID    = "account-settings-address"
	NetworkRowID    = "account-settings-network"
	ConnectorRowID  = "account-settings-connector"
	EmailRowID      = "account-settings-email"
	ChooseNameRowID = "account-choose-name-button"
	ToggleTestID    = "account-toggle-preferred-account-type"
	DisconnectRowID = "disconnect-button"
)

// SettingsView is everything the account settings panel renders.
type SettingsView struct {
	Address        string
	ProfileName    string
	Namespace      string
	NetworkName    string
	ConnectorName  string
	EmbeddedWallet bool
	Email          string
	NamesSupported bool
	Preferred      accounttype.Type
	Decision       toggle.Decision
}

// SettingsRow is one selectable line of the panel.
type SettingsRow struct {
	ID    string
	Label string
	Value string
}

// ToggleLabel is the toggle row text for the account type currently in effect.
func ToggleLabel(preferred accounttype.Type) string {
	if preferred == accounttype.SmartAccount {
		return "Switch to your EOA"
	}
	return "Switch to your smart account"
}

// Rows returns the panel rows. The toggle row is present only when the
// decision says to show it.
func (v SettingsView) Rows() []SettingsRow {
	addr := v.Address
	if addr == "" {
		addr = "not connected"
	}
	if v.ProfileName != "" {
		addr = v.ProfileName + "  " + TruncateAddr(v.Address)
	}

	rows := []SettingsRow{
		{ID: AddressRowID, Label: "Account", Value: addr},
		{ID: NetworkRowID, Label: "Network", Value: orDash(v.NetworkName)},
		{ID: ConnectorRowID, Label: "Connected with", Value: orDash(v.ConnectorName)},
	}
	if v.EmbeddedWallet && v.Email != "" {
		rows = append(rows, SettingsRow{ID: EmailRowID, Label: "Email", Value: v.Email})
	}
	if v.EmbeddedWallet && v.NamesSupported && v.ProfileName == "" {
		rows = append(rows, SettingsRow{ID: ChooseNameRowID, Label: "Choose account name"})
	}
	if v.Decision.Show {
		rows = append(rows, SettingsRow{ID: ToggleTestID, Label: ToggleLabel(v.Preferred), Value: v.Preferred.Label()})
	}
	rows = append(rows, SettingsRow{ID: DisconnectRowID, Label: "Disconnect"})
	return rows
}

// HasRow reports whether a row with id is rendered.
func (v SettingsView) HasRow(id string) bool {
	for _, r := range v.Rows() {
		if r.ID == id {
			return true
		}
	}
	return false
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

// RenderSettings renders a static snapshot of the panel.
func RenderSettings(v SettingsView) string {
	var pairs [][2]string
	for _, r := range v.Rows() {
		if r.Value == "" {
			continue
		}
		pairs = append(pairs, [2]string{r.Label, r.Value})
	}
	out := KeyValueBlock("Account Settings", pairs)
	if v.Decision.Show {
		out += "\n" + Meta("  ["+ToggleTestID+"] "+ToggleLabel(v.Preferred))
	}
	return out
}

// SettingsMsg replaces the panel contents.
type SettingsMsg SettingsView

// SettingsModel is the Bubble Tea model for the account settings panel.
type SettingsModel struct {
	view     SettingsView
	cursor   int
	flash    string
	onSelect func(rowID string) tea.Cmd
	Quitting bool
}

// NewSettingsModel creates the panel. onSelect runs when a row is chosen and
// may return a command; it may be nil.
func NewSettingsModel(v SettingsView, onSelect func(rowID string) tea.Cmd) SettingsModel {
	return SettingsModel{view: v, onSelect: onSelect}
}

// Contents returns what the panel currently shows.
func (m SettingsModel) Contents() SettingsView { return m.view }

func (m SettingsModel) Init() tea.Cmd { return nil }

func (m SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.flash = ""
		rows := m.view.Rows()
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.Quitting = true
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(rows)-1 {
				m.cursor++
			}
		case "enter", " ":
			row := rows[m.cursor]
			if m.onSelect == nil {
				return m, nil
			}
			m.flash = row.Label + "…"
			return m, m.onSelect(row.ID)
		}

	case SettingsMsg:
		m.view = SettingsView(msg)
		if n := len(m.view.Rows()); m.cursor >= n {
			m.cursor = n - 1
		}
	}
	return m, nil
}

func (m SettingsModel) View() string {
	if m.Quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(StyleTitle.Render("  Account Settings") + "\n")

	for i, r := range m.view.Rows() {
		prefix := "    "
		if i == m.cursor {
			prefix = "  ▸ "
		}
		line := prefix + padR(StyleValue.Render(r.Label), 30)
		if r.Value != "" {
			if r.ID == AddressRowID {
				line += Addr(r.Value)
			} else {
				line += Meta(r.Value)
			}
		}
		if i == m.cursor {
			sb.WriteString(StyleSelected.Render(line) + "\n")
		} else {
			sb.WriteString(line + "\n")
		}
	}

	sb.WriteString("\n")
	if m.flash != "" {
		sb.WriteString(StyleSuccess.Render("  ✓ "+m.flash) + "\n")
	}
	sb.WriteString(Meta(fmt.Sprintf("  %s · toggle: %s", orDash(m.view.Namespace), m.view.Decision.Reason)) + "\n")
	sb.WriteString(Meta("  [ ↑↓ / jk ] navigate   [ Enter ] select   [ q ] quit") + "\n")
	return sb.String()
}
