package domain

import (
	"fmt"
	"time"
)

// ArtifactPrefix is the filename prefix of exported results.
const ArtifactPrefix = "solar-analysis-"

// Artifact is a serialised analysis result ready to be saved.
type Artifact struct {
	// Filename is derived from CreatedAt.
	Filename string

	// Content is the 2-space indented JSON document.
	Content []byte

	// CreatedAt is the generation timestamp.
	CreatedAt time.Time
}

// ArtifactFilename returns solar-analysis-<unix-millis>.json for t.
func ArtifactFilename(t time.Time) string {
	return fmt.Sprintf("%s%d.json", ArtifactPrefix, t.UnixMilli())
}

// NewArtifact builds the export artifact for a result.
func NewArtifact(result AnalysisResult, createdAt time.Time) (Artifact, error) {
	if result.IsZero() {
		return Artifact{}, ErrNoActiveResult
	}
	return Artifact{
		Filename:  ArtifactFilename(createdAt),
		Content:   result.Indented(),
		CreatedAt: createdAt,
	}, nil
}
