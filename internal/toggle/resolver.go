package toggle

import (
	"fmt"

	"github.com/Mohsinsiddi/w3account/internal/chain"
	"github.com/Mohsinsiddi/w3account/internal/connector"
	"github.com/Mohsinsiddi/w3account/internal/options"
	"go.uber.org/zap"
)

// ChainReader exposes the active chain state.
type ChainReader interface {
	ActiveNamespaceAndNetwork() (chain.Namespace, *chain.Network)
	CheckIfSmartAccountEnabled(ns chain.Namespace) bool
}

// ConnectorReader exposes the active connector per namespace.
type ConnectorReader interface {
	ConnectorIdentity(ns chain.Namespace) *connector.Identity
}

// OptionsReader exposes the per-namespace account type configuration.
type OptionsReader interface {
	AccountTypeConfiguration() options.AccountTypes
}

// Resolver computes decisions from live providers.
type Resolver struct {
	chains     ChainReader
	connectors ConnectorReader
	options    OptionsReader
	log        *zap.Logger
}

// NewResolver creates a resolver. A nil logger disables logging.
func NewResolver(chains ChainReader, connectors ConnectorReader, opts OptionsReader, log *zap.Logger) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{
		chains:     chains,
		connectors: connectors,
		options:    opts,
		log:        log.Named("toggle"),
	}
}

// Inputs reads a snapshot from the providers. A provider that panics is
// reported as an error.
func (r *Resolver) Inputs() (in Inputs, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("state provider fault: %v", p)
		}
	}()

	in.Namespace, in.Network = r.chains.ActiveNamespaceAndNetwork()
	if in.Namespace == "" {
		return in, nil
	}
	in.Connector = r.connectors.ConnectorIdentity(in.Namespace)
	in.SmartAccountEnabled = r.chains.CheckIfSmartAccountEnabled(in.Namespace)
	in.AccountTypes = r.options.AccountTypeConfiguration()
	return in, nil
}

// Resolve gathers inputs and evaluates them. Provider faults hide the toggle.
func (r *Resolver) Resolve() Decision {
	in, err := r.Inputs()
	if err != nil {
		r.log.Warn("hiding account type toggle", zap.Error(err))
		return Decision{Show: false, Reason: ReasonProviderFault}
	}
	d := Evaluate(in)
	r.log.Debug("account type toggle evaluated",
		zap.String("namespace", string(in.Namespace)),
		zap.Bool("show", d.Show),
		zap.String("reason", string(d.Reason)),
	)
	return d
}
