package index

var (
	bSource   = []byte("source")   // slug -> SourceRecord
	bArtifact = []byte("artifact") // relpath -> ArtifactRecord
	bState    = []byte("state")    // "render" -> fingerprint hash
)

var kRenderHash = []byte("render")
