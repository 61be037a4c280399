package types

import "strings"

// ProviderType identifies a cluster backend as written in config or on the command line.
type ProviderType string

const (
	// ProviderLocal represents clusters run locally with k3d.
	ProviderLocal ProviderType = "local"
	// ProviderK3d is an alias of ProviderLocal.
	ProviderK3d ProviderType = "k3d"
	// ProviderAWS represents AWS EKS clusters.
	ProviderAWS ProviderType = "aws"
	// ProviderEKS is an alias of ProviderAWS.
	ProviderEKS ProviderType = "eks"
	// ProviderAzure represents Azure AKS clusters.
	ProviderAzure ProviderType = "azure"
	// ProviderAKS is an alias of ProviderAzure.
	ProviderAKS ProviderType = "aks"
)

// AllProviderTypes lists every accepted provider type, aliases included, in display order.
func AllProviderTypes() []ProviderType {
	return []ProviderType{
		ProviderLocal, ProviderK3d,
		ProviderAWS, ProviderEKS,
		ProviderAzure, ProviderAKS,
	}
}

// Normalize lower-cases and trims a provider type.
func (p ProviderType) Normalize() ProviderType {
	return ProviderType(strings.ToLower(strings.TrimSpace(string(p))))
}

// CreateOptions modifies cluster creation.
type CreateOptions struct {
	// Ports is a comma-separated list of ports exposed through the load balancer.
	Ports string
	// UseRegistry provisions a "<name>-registry" image registry alongside the cluster.
	UseRegistry bool
}

// PortList splits Ports into trimmed entries, in input order, skipping empty ones.
func (o CreateOptions) PortList() []string {
	var ports []string

	for _, port := range strings.Split(o.Ports, ",") {
		port = strings.TrimSpace(port)
		if port != "" {
			ports = append(ports, port)
		}
	}

	return ports
}

// ClusterInfo describes a cluster. The zero value means the cluster was not found.
type ClusterInfo struct {
	Name     string `json:"name" yaml:"name"`
	Type     string `json:"type" yaml:"type"`
	Provider string `json:"provider" yaml:"provider"`
	Status   string `json:"status" yaml:"status"`
}

// IsZero reports whether i carries no information.
func (i ClusterInfo) IsZero() bool {
	return i == ClusterInfo{}
}

// Field is one key/value pair of a ClusterInfo.
type Field struct {
	Key   string
	Value string
}

// Fields returns the properties of i in display order.
func (i ClusterInfo) Fields() []Field {
	return []Field{
		{Key: "name", Value: i.Name},
		{Key: "type", Value: i.Type},
		{Key: "provider", Value: i.Provider},
		{Key: "status", Value: i.Status},
	}
}
