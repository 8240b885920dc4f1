package config

type K8sConfig struct {
	Enabled bool // Must be explicitly enabled to read lakes from the cluster
	Order   int

	Kubeconfig       string // Path to kubeconfig file (empty = in-cluster auth)
	DefaultNamespace string // Default namespace when not specified in a placeholder

	ConfigMapName string // ConfigMap holding lake-name -> UUID entries, defaults to "lake-uuids"

	CacheTTLSeconds int // Secret/ConfigMap cache TTL (0 = no caching)
}
