// Package toggle decides whether the account settings panel offers the
// "switch preferred account type" control.
//
// The decision is a conjunction of independent, named predicates evaluated
// in order against an Inputs snapshot. Evaluate is pure; Resolver gathers
// Inputs from the state providers and Watcher re-runs it when any of them
// changes.
package toggle

import (
	"github.com/Mohsinsiddi/w3account/internal/accounttype"
	"github.com/Mohsinsiddi/w3account/internal/chain"
	"github.com/Mohsinsiddi/w3account/internal/connector"
	"github.com/Mohsinsiddi/w3account/internal/options"
)

// Reason tags why a decision came out the way it did.
type Reason string

const (
	ReasonShown                Reason = "shown"
	ReasonNoNamespace          Reason = "no-active-namespace"
	ReasonNoConnector          Reason = "no-connector"
	ReasonNotEmbeddedWallet    Reason = "not-embedded-wallet"
	ReasonSmartAccountDisabled Reason = "smart-account-disabled"
	ReasonEOAOnly              Reason = "eoa-only"
	ReasonProviderFault        Reason = "provider-fault"
)

// Inputs is the snapshot a decision is computed from.
type Inputs struct {
	Namespace           chain.Namespace
	Network             *chain.Network
	Connector           *connector.Identity
	SmartAccountEnabled bool
	AccountTypes        options.AccountTypes
}

// Decision is the resolver output.
type Decision struct {
	Show   bool
	Reason Reason
}

// Predicate is one condition of the gate. Reason is reported when Check
// returns false.
type Predicate struct {
	Name   string
	Reason Reason
	Check  func(Inputs) bool
}

// Predicates is the gate, in evaluation order.
var Predicates = []Predicate{
	{Name: "namespace-active", Reason: ReasonNoNamespace, Check: namespaceActive},
	{Name: "connector-registered", Reason: ReasonNoConnector, Check: connectorRegistered},
	{Name: "embedded-wallet", Reason: ReasonNotEmbeddedWallet, Check: embeddedWallet},
	{Name: "smart-account-enabled", Reason: ReasonSmartAccountDisabled, Check: smartAccountEnabled},
	{Name: "account-type-allowed", Reason: ReasonEOAOnly, Check: accountTypeAllowed},
}

func namespaceActive(in Inputs) bool {
	return in.Namespace != "" && in.Network != nil
}

func connectorRegistered(in Inputs) bool {
	return in.Connector != nil
}

func embeddedWallet(in Inputs) bool {
	return in.Connector.IsEmbeddedWallet()
}

func smartAccountEnabled(in Inputs) bool {
	return in.SmartAccountEnabled
}

// Only an explicit "eoa" entry for the active namespace restricts. Missing
// entries and unrecognized values are permissive.
func accountTypeAllowed(in Inputs) bool {
	return in.AccountTypes[in.Namespace] != accounttype.EOA
}

// Evaluate runs the gate and stops at the first failing predicate.
func Evaluate(in Inputs) Decision {
	for _, p := range Predicates {
		if !p.Check(in) {
			return Decision{Show: false, Reason: p.Reason}
		}
	}
	return Decision{Show: true, Reason: ReasonShown}
}

// Step is the outcome of a single predicate.
type Step struct {
	Name   string
	Passed bool
}

// Trace evaluates every predicate without short-circuiting.
func Trace(in Inputs) []Step {
	steps := make([]Step, len(Predicates))
	for i, p := range Predicates {
		steps[i] = Step{Name: p.Name, Passed: p.Check(in)}
	}
	return steps
}
