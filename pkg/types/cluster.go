package types

// Cluster represents a local kind cluster as reported by the kind CLI.
type Cluster struct {
	Name    string `json:"name"`
	Context string `json:"context"` // kubeconfig context name (kind-<name>)
	Nodes   []Node `json:"nodes,omitempty"`
}

// ReadyNodes returns how many of the cluster's nodes report Ready.
func (c *Cluster) ReadyNodes() int {
	ready := 0
	for i := range c.Nodes {
		if c.Nodes[i].IsReady() {
			ready++
		}
	}
	return ready
}
