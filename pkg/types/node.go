package types

// Node represents a single cluster node as reported by kubectl.
type Node struct {
	Name    string `json:"name"`
	Status  string `json:"status"` // Ready, NotReady, ...
	Roles   string `json:"roles"`  // control-plane, worker
	Age     string `json:"age"`
	Version string `json:"version"`
}

// IsReady returns true if the node reports the Ready condition.
func (n *Node) IsReady() bool {
	return n.Status == "Ready"
}
