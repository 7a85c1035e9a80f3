package contracts

// Artifact describes one staging file exchanged between two stages.
type Artifact struct {
	Name     string // file name inside the stage directory
	Producer string // CLI command that writes it
	Content  string
}

// Staging artifacts, in pipeline order
var (
	ArtifactVariates = Artifact{Name: "RNG.txt", Producer: "generate", Content: "VariateSeries"}
	ArtifactWiener   = Artifact{Name: "RNG2.txt", Producer: "scan", Content: "WienerSeries"}
	ArtifactPrices   = Artifact{Name: "StockPrice.txt", Producer: "evaluate", Content: "PricePath"}
)

// Artifacts lists every staging artifact in pipeline order
func Artifacts() []Artifact {
	return []Artifact{ArtifactVariates, ArtifactWiener, ArtifactPrices}
}

// LookupArtifact finds an artifact by file name
func LookupArtifact(name string) (Artifact, bool) {
	for _, a := range Artifacts() {
		if a.Name == name {
			return a, true
		}
	}
	return Artifact{}, false
}
