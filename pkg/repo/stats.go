package repo

import "github.com/odvcencio/commitgraph/pkg/object"

// Statistics is a read-only summary of the store and ref table.
type Statistics struct {
	TotalObjects int    `json:"totalObjects" yaml:"totalObjects"`
	TotalCommits int    `json:"totalCommits" yaml:"totalCommits"`
	TotalTrees   int    `json:"totalTrees" yaml:"totalTrees"`
	TotalBlobs   int    `json:"totalBlobs" yaml:"totalBlobs"`
	BranchCount  int    `json:"branchCount" yaml:"branchCount"`
	CurrentRef   string `json:"currentRef" yaml:"currentRef"`
}

// Statistics counts stored objects per kind and the branches.
func (r *Repository) Statistics() Statistics {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := r.store.CountByType()
	return Statistics{
		TotalObjects: r.store.Len(),
		TotalCommits: counts[object.TypeCommit],
		TotalTrees:   counts[object.TypeTree],
		TotalBlobs:   counts[object.TypeBlob],
		BranchCount:  len(r.refs),
		CurrentRef:   r.head,
	}
}
