package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"bridges/internal/service"
)

// Deps are the collaborators the routes are built from. A nil bridge leaves
// its routes unregistered.
type Deps struct {
	DB           *sql.DB
	Blast        service.BlastService
	Ontologies   service.OntologyService
	Publications PublicationFinder
	Imex         ImexRegistry
	OLS          TermLookup
	Taxonomy     TaxonomyLookup
	Uniprot      UniprotLookup
	PICR         CrossReferenceMapper
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Handlers only translate HTTP to bridge and service calls.
func RegisterRoutes(app *fiber.App, d Deps) {
	if d.DB != nil {
		app.Get("/health", HealthCheck(d.DB))
	}
	app.Get("/healthz", LivenessProbe())

	if d.Blast != nil {
		app.Post("/blast/jobs", SubmitBlastJob(d.Blast))
		app.Get("/blast/jobs/:id", GetBlastJob(d.Blast))
		app.Get("/blast/jobs/:id/hits", ListBlastHits(d.Blast))
	}

	if d.Publications != nil {
		app.Get("/publications", SearchPublications(d.Publications))
		app.Get("/publications/:pmid", GetPublication(d.Publications))
	}

	if d.Imex != nil {
		app.Get("/imex/publications/:pmid", GetImexPublication(d.Imex))
		app.Post("/imex/publications/:pmid", CreateImexPublication(d.Imex))
		app.Put("/imex/publications/:pmid/status", UpdateImexStatus(d.Imex))
		app.Post("/imex/publications/:pmid/accession", AssignImexAccession(d.Imex))
	}

	if d.OLS != nil {
		app.Get("/ols/search", SearchOLS(d.OLS))
		app.Get("/ols/:ontology/terms/:id", GetOLSTerm(d.OLS))
		app.Get("/ols/:ontology/terms/:id/children", OLSChildren(d.OLS))
		app.Get("/ols/:ontology/terms/:id/parents", OLSParents(d.OLS))
	}

	if d.Taxonomy != nil {
		app.Get("/taxonomy/:taxid", GetTaxon(d.Taxonomy))
		app.Get("/taxonomy/:taxid/children", TaxonChildren(d.Taxonomy))
	}

	if d.Uniprot != nil {
		app.Get("/uniprot", SearchUniprot(d.Uniprot))
		app.Get("/uniprot/:acc", GetUniprotEntry(d.Uniprot))
		app.Get("/unisave/:acc/versions", ListSequenceVersions(d.Uniprot))
		app.Get("/unisave/:acc/sequence", GetSequence(d.Uniprot))
	}

	if d.PICR != nil {
		app.Get("/picr/:acc", MapCrossReferences(d.PICR))
	}

	if d.Ontologies != nil {
		app.Post("/ontologies/:ontology/import", ImportOntology(d.Ontologies))
		app.Delete("/ontologies/:ontology", DeleteOntology(d.Ontologies))
		app.Get("/ontologies/:ontology/terms", ListOntologyTerms(d.Ontologies))
		app.Get("/ontologies/:ontology/terms/:id", GetOntologyTerm(d.Ontologies))
		app.Get("/ontologies/:ontology/terms/:id/children", OntologyTermChildren(d.Ontologies))
	}
}
