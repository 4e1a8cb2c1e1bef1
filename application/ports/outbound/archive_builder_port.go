package outbound

// ArchiveBuilderPort packages the contents of srcDir into an archive at
// outPath, overwriting any pre-existing file there. Entry names are paths
// relative to srcDir.
type ArchiveBuilderPort interface {
	Build(srcDir string, outPath string) (string, error)
}
