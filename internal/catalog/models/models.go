// Package models defines the catalog entities as stored, the closed
// enumerations their string-typed fields draw from, and the response
// aggregates assembled by the service layer.
package models

import "time"

// -----------------------------------------------------------------------------
// Enumerations
//
// Values are stored as plain strings (French, as published by the API); the
// boundary validates filters against these sets instead of letting unknown
// values silently match nothing.
// -----------------------------------------------------------------------------

// WhistleblowerStatus is the current situation of a person.
type WhistleblowerStatus string

const (
	StatusLibre      WhistleblowerStatus = "libre"
	StatusExile      WhistleblowerStatus = "exilé"
	StatusEmprisonne WhistleblowerStatus = "emprisonné"
	StatusEnProces   WhistleblowerStatus = "en procès"
	StatusRehabilite WhistleblowerStatus = "réhabilité"
	StatusDecede     WhistleblowerStatus = "décédé"
	StatusAnonyme    WhistleblowerStatus = "anonyme"
	StatusInconnu    WhistleblowerStatus = "inconnu"
)

var whistleblowerStatuses = map[WhistleblowerStatus]struct{}{
	StatusLibre: {}, StatusExile: {}, StatusEmprisonne: {}, StatusEnProces: {},
	StatusRehabilite: {}, StatusDecede: {}, StatusAnonyme: {}, StatusInconnu: {},
}

func (s WhistleblowerStatus) Valid() bool {
	_, ok := whistleblowerStatuses[s]
	return ok
}

// CaseStatus is the resolution state of a disclosed affair.
type CaseStatus string

const (
	CaseEnCours             CaseStatus = "en cours"
	CaseResolu              CaseStatus = "résolu"
	CaseImpuni              CaseStatus = "impuni"
	CasePartiellementResolu CaseStatus = "partiellement résolu"
)

var caseStatuses = map[CaseStatus]struct{}{
	CaseEnCours: {}, CaseResolu: {}, CaseImpuni: {}, CasePartiellementResolu: {},
}

func (s CaseStatus) Valid() bool {
	_, ok := caseStatuses[s]
	return ok
}

// Domain is a subject-matter category. Cases carry exactly one; whistleblowers
// carry zero or more through domain tags.
type Domain string

const (
	DomainFinance         Domain = "finance"
	DomainEnvironnement   Domain = "environnement"
	DomainSante           Domain = "santé"
	DomainSurveillance    Domain = "surveillance"
	DomainDefense         Domain = "défense"
	DomainCorruption      Domain = "corruption"
	DomainDroitsHumains   Domain = "droits humains"
	DomainFiscalite       Domain = "fiscalité"
	DomainNucleaire       Domain = "nucléaire"
	DomainAgroalimentaire Domain = "agroalimentaire"
	DomainPharmaceutique  Domain = "pharmaceutique"
	DomainTechnologie     Domain = "technologie"
	DomainPolitique       Domain = "politique"
	DomainAutre           Domain = "autre"
)

var domains = map[Domain]struct{}{
	DomainFinance: {}, DomainEnvironnement: {}, DomainSante: {}, DomainSurveillance: {},
	DomainDefense: {}, DomainCorruption: {}, DomainDroitsHumains: {}, DomainFiscalite: {},
	DomainNucleaire: {}, DomainAgroalimentaire: {}, DomainPharmaceutique: {},
	DomainTechnologie: {}, DomainPolitique: {}, DomainAutre: {},
}

func (d Domain) Valid() bool {
	_, ok := domains[d]
	return ok
}

// ResourceType classifies a citable reference.
type ResourceType string

const (
	ResourceArticle      ResourceType = "article"
	ResourceLivre        ResourceType = "livre"
	ResourceDocumentaire ResourceType = "documentaire"
	ResourceFilm         ResourceType = "film"
	ResourceSerie        ResourceType = "série"
	ResourcePodcast      ResourceType = "podcast"
	ResourceSiteOfficiel ResourceType = "site officiel"
	ResourceWikipedia    ResourceType = "wikipedia"
	ResourceInterview    ResourceType = "interview"
	ResourceJugement     ResourceType = "jugement"
)

// RevealerType classifies who brought a case to light.
type RevealerType string

const (
	RevealerLanceurAlerte        RevealerType = "lanceur d'alerte"
	RevealerJournaliste          RevealerType = "journaliste"
	RevealerMedia                RevealerType = "média"
	RevealerONG                  RevealerType = "ONG"
	RevealerEnqueteCollaborative RevealerType = "enquête collaborative"
	RevealerFuiteAnonyme         RevealerType = "fuite anonyme"
	RevealerChercheur            RevealerType = "chercheur"
	RevealerAutorite             RevealerType = "autorité"
)

// -----------------------------------------------------------------------------
// Ownership
// -----------------------------------------------------------------------------

// OwnerKind discriminates which parent a resource or domain tag belongs to.
type OwnerKind string

const (
	OwnerWhistleblower OwnerKind = "whistleblower"
	OwnerCase          OwnerKind = "case"
)

// Owner is the tagged union replacing the dual nullable foreign keys: a
// resource or tag belongs to exactly one parent, never zero, never two.
type Owner struct {
	Kind OwnerKind
	ID   int64
}

// -----------------------------------------------------------------------------
// Stored entities
// -----------------------------------------------------------------------------

// Whistleblower is a person who disclosed wrongdoing.
type Whistleblower struct {
	ID                   int64
	Slug                 string
	Name                 string
	PhotoURL             *string
	Nationality          *string
	BirthYear            *int
	Profession           *string
	MainRevelation       *string
	RevelationYear       *int
	Summary              string
	Context              *string
	Stakes               *string
	Impact               *string
	Status               WhistleblowerStatus
	RefugeCountry        *string
	PersonalConsequences *string
	IsProtected          bool
	Awards               *string
	Quote                *string
	QuoteSource          *string
	IsFeatured           bool
	IsVerified           bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// Case is a disclosed scandal or event.
type Case struct {
	ID                 int64
	Slug               string
	Name               string
	ShortName          *string
	ImageURL           *string
	Domain             Domain
	RevelationDate     *time.Time
	RevelationYear     int
	PeriodStart        *int
	PeriodEnd          *int
	Summary            string
	Context            *string
	Revelations        *string
	Scope              *string
	CountriesInvolved  *string
	RevealedBy         *string
	RevealerType       *RevealerType
	KeyJournalists     *string
	KeyOrganizations   *string
	LegalConsequences  *string
	LegislativeChanges *string
	PublicImpact       *string
	Status             CaseStatus
	StatusDetails      *string
	IsFeatured         bool
	IsVerified         bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Entity is an implicated organization. Entities have no verification or
// lifecycle fields.
type Entity struct {
	ID          int64
	Slug        string
	Name        string
	EntityType  *string
	Country     *string
	Description *string
	LogoURL     *string
}

// Resource is a citable reference owned by one whistleblower or one case.
type Resource struct {
	ID           int64        `json:"id"`
	Owner        Owner        `json:"-"`
	ResourceType ResourceType `json:"resource_type"`
	Title        string       `json:"title"`
	URL          *string      `json:"url"`
	Author       *string      `json:"author"`
	Publisher    *string      `json:"publisher"`
	Year         *int         `json:"year"`
	Description  *string      `json:"description"`
	IsPrimary    bool         `json:"is_primary"`
	IsFree       bool         `json:"is_free"`
	Language     string       `json:"language"`
}

// DomainTag attaches one categorical domain label to its owner.
type DomainTag struct {
	ID     int64
	Owner  Owner
	Domain Domain
}

// TimelineEvent is a dated milestone belonging to one case.
type TimelineEvent struct {
	ID          int64   `json:"id"`
	CaseID      int64   `json:"-"`
	EventDate   *string `json:"event_date"`
	EventYear   int     `json:"event_year"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	SourceURL   *string `json:"source_url"`
}
