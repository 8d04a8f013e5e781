package handler

import (
	"context"

	"bridges/internal/citexplore"
	"bridges/internal/imex"
	"bridges/internal/model"
	"bridges/internal/ols"
	"bridges/internal/picr"
	"bridges/internal/taxonomy"
	"bridges/internal/uniprot"
)

// PublicationFinder looks up literature records in Europe PMC.
type PublicationFinder interface {
	Publication(ctx context.Context, pmid string) (*model.Publication, error)
	Search(ctx context.Context, query string, pageSize int) ([]model.Publication, int, error)
}

// ImexRegistry reads and updates publication records in the IMEx central registry.
type ImexRegistry interface {
	Publication(ctx context.Context, pmid string) (*model.ImexPublication, error)
	Create(ctx context.Context, pmid string) (*model.ImexPublication, error)
	UpdateStatus(ctx context.Context, pmid string, status model.ImexStatus, message string) (*model.ImexPublication, error)
	AssignImexAccession(ctx context.Context, pmid string, create bool) (*model.ImexPublication, error)
}

// TermLookup resolves ontology terms and their neighbours through OLS.
type TermLookup interface {
	Term(ctx context.Context, ontology, oboID string) (*model.OntologyTerm, error)
	Children(ctx context.Context, ontology, oboID string) ([]model.OntologyTerm, error)
	Parents(ctx context.Context, ontology, oboID string) ([]model.OntologyTerm, error)
	Search(ctx context.Context, query string, opts ols.SearchOptions) ([]model.OntologyTerm, int, error)
}

// TaxonomyLookup resolves NCBI taxids through the UniProt taxonomy service.
type TaxonomyLookup interface {
	Term(ctx context.Context, taxID int) (*model.TaxonomyTerm, error)
	Children(ctx context.Context, taxID int) ([]model.TaxonomyTerm, error)
}

// UniprotLookup fetches UniProtKB entries and their UniSave history.
type UniprotLookup interface {
	Entry(ctx context.Context, accession string) (*model.UniprotEntry, error)
	Search(ctx context.Context, query string, limit int) ([]model.UniprotEntry, error)
	Versions(ctx context.Context, accession string) ([]model.SequenceVersion, error)
	SequenceVersion(ctx context.Context, accession string, sequenceVersion int) (*model.SequenceVersion, error)
	LatestSequence(ctx context.Context, accession string) (*model.SequenceVersion, error)
}

// CrossReferenceMapper maps accessions and sequences onto UniParc cross references.
type CrossReferenceMapper interface {
	MapAccession(ctx context.Context, accession string, opts picr.Options) ([]model.UPEntry, error)
}

var (
	_ PublicationFinder    = (*citexplore.Client)(nil)
	_ ImexRegistry         = (*imex.Client)(nil)
	_ TermLookup           = (*ols.Client)(nil)
	_ TaxonomyLookup       = (*taxonomy.Client)(nil)
	_ UniprotLookup        = (*uniprot.Client)(nil)
	_ CrossReferenceMapper = (*picr.Client)(nil)
)
