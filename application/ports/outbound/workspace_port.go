package outbound

// WorkspacePort owns the per-run scratch directory holding downloaded frames.
type WorkspacePort interface {
	Create() (string, error)
	Remove(dir string)
}
