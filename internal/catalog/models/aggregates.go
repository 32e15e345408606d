package models

// Response aggregates: the shapes the API serves, assembled from a primary row
// plus its related rows. Cross-references stay minimal (id, slug, name plus a
// salient field or two) so detail views never expand recursively.

// CaseRef is the minimal cross-reference to a case.
type CaseRef struct {
	ID             int64  `json:"id"`
	Slug           string `json:"slug"`
	Name           string `json:"name"`
	RevelationYear int    `json:"revelation_year"`
}

// WhistleblowerRef is the minimal cross-reference to a whistleblower.
type WhistleblowerRef struct {
	ID       int64               `json:"id"`
	Slug     string              `json:"slug"`
	Name     string              `json:"name"`
	PhotoURL *string             `json:"photo_url"`
	Status   WhistleblowerStatus `json:"status"`
}

// EntityRef is the minimal cross-reference to an organization.
type EntityRef struct {
	ID         int64   `json:"id"`
	Slug       string  `json:"slug"`
	Name       string  `json:"name"`
	EntityType *string `json:"entity_type"`
	Country    *string `json:"country"`
	LogoURL    *string `json:"logo_url"`
}

// WhistleblowerListItem is the list-view projection: shortened summary, tag
// domains, no long-form narrative fields.
type WhistleblowerListItem struct {
	ID             int64               `json:"id"`
	Slug           string              `json:"slug"`
	Name           string              `json:"name"`
	PhotoURL       *string             `json:"photo_url"`
	Nationality    *string             `json:"nationality"`
	MainRevelation *string             `json:"main_revelation"`
	RevelationYear *int                `json:"revelation_year"`
	Status         WhistleblowerStatus `json:"status"`
	Domains        []string            `json:"domains"`
	Summary        string              `json:"summary"`
	IsFeatured     bool                `json:"is_featured"`
}

// WhistleblowerDetail is the full projection with owned resources and related
// cases attached.
type WhistleblowerDetail struct {
	ID                   int64               `json:"id"`
	Slug                 string              `json:"slug"`
	Name                 string              `json:"name"`
	PhotoURL             *string             `json:"photo_url"`
	Nationality          *string             `json:"nationality"`
	BirthYear            *int                `json:"birth_year"`
	Profession           *string             `json:"profession"`
	MainRevelation       *string             `json:"main_revelation"`
	RevelationYear       *int                `json:"revelation_year"`
	Summary              string              `json:"summary"`
	Context              *string             `json:"context"`
	Stakes               *string             `json:"stakes"`
	Impact               *string             `json:"impact"`
	Status               WhistleblowerStatus `json:"status"`
	RefugeCountry        *string             `json:"refuge_country"`
	PersonalConsequences *string             `json:"personal_consequences"`
	IsProtected          bool                `json:"is_protected"`
	Awards               *string             `json:"awards"`
	Quote                *string             `json:"quote"`
	QuoteSource          *string             `json:"quote_source"`
	Domains              []string            `json:"domains"`
	Resources            []Resource          `json:"resources"`
	RelatedCases         []CaseRef           `json:"related_cases"`
	IsFeatured           bool                `json:"is_featured"`
	IsVerified           bool                `json:"is_verified"`
}

// CaseListItem is the list-view projection of a case.
type CaseListItem struct {
	ID             int64         `json:"id"`
	Slug           string        `json:"slug"`
	Name           string        `json:"name"`
	ShortName      *string       `json:"short_name"`
	ImageURL       *string       `json:"image_url"`
	Domain         Domain        `json:"domain"`
	RevelationYear int           `json:"revelation_year"`
	Summary        string        `json:"summary"`
	RevealerType   *RevealerType `json:"revealer_type"`
	Status         CaseStatus    `json:"status"`
	Domains        []string      `json:"domains"`
	IsFeatured     bool          `json:"is_featured"`
}

// CaseDetail is the full projection with resources, whistleblowers, implicated
// entities and the case timeline attached.
type CaseDetail struct {
	ID                 int64              `json:"id"`
	Slug               string             `json:"slug"`
	Name               string             `json:"name"`
	ShortName          *string            `json:"short_name"`
	ImageURL           *string            `json:"image_url"`
	Domain             Domain             `json:"domain"`
	RevelationDate     *string            `json:"revelation_date"`
	RevelationYear     int                `json:"revelation_year"`
	PeriodStart        *int               `json:"period_start"`
	PeriodEnd          *int               `json:"period_end"`
	Summary            string             `json:"summary"`
	Context            *string            `json:"context"`
	Revelations        *string            `json:"revelations"`
	Scope              *string            `json:"scope"`
	CountriesInvolved  *string            `json:"countries_involved"`
	RevealedBy         *string            `json:"revealed_by"`
	RevealerType       *RevealerType      `json:"revealer_type"`
	KeyJournalists     *string            `json:"key_journalists"`
	KeyOrganizations   *string            `json:"key_organizations"`
	LegalConsequences  *string            `json:"legal_consequences"`
	LegislativeChanges *string            `json:"legislative_changes"`
	PublicImpact       *string            `json:"public_impact"`
	Status             CaseStatus         `json:"status"`
	StatusDetails      *string            `json:"status_details"`
	Domains            []string           `json:"domains"`
	Resources          []Resource         `json:"resources"`
	Whistleblowers     []WhistleblowerRef `json:"whistleblowers"`
	Entities           []EntityRef        `json:"entities"`
	Timeline           []TimelineEvent    `json:"timeline"`
	IsFeatured         bool               `json:"is_featured"`
	IsVerified         bool               `json:"is_verified"`
}

// EntityListItem carries each organization's verified case count.
type EntityListItem struct {
	ID         int64   `json:"id"`
	Slug       string  `json:"slug"`
	Name       string  `json:"name"`
	EntityType *string `json:"entity_type"`
	Country    *string `json:"country"`
	CasesCount int     `json:"cases_count"`
}

// EntityDetail is the full organization plus its verified cases.
type EntityDetail struct {
	ID          int64     `json:"id"`
	Slug        string    `json:"slug"`
	Name        string    `json:"name"`
	EntityType  *string   `json:"entity_type"`
	Country     *string   `json:"country"`
	Description *string   `json:"description"`
	LogoURL     *string   `json:"logo_url"`
	Cases       []CaseRef `json:"cases"`
}

// SearchHit tags a matching record with its entity kind; the three result
// lists are returned separately, never merged or re-ranked.
type SearchHit struct {
	ID   int64  `json:"id"`
	Slug string `json:"slug"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// SearchResult is the three-way global search response.
type SearchResult struct {
	Query          string      `json:"query"`
	Whistleblowers []SearchHit `json:"whistleblowers"`
	Cases          []SearchHit `json:"cases"`
	Entities       []SearchHit `json:"entities"`
}

// Stats is the dashboard summary over verified records.
type Stats struct {
	TotalWhistleblowers    int            `json:"total_whistleblowers"`
	TotalCases             int            `json:"total_cases"`
	WhistleblowersByStatus map[string]int `json:"whistleblowers_by_status"`
	CasesByDomain          map[string]int `json:"cases_by_domain"`
	FeaturedWhistleblowers int            `json:"featured_whistleblowers"`
	FeaturedCases          int            `json:"featured_cases"`
}

// DomainFacet merges whistleblower tag counts and case domain counts for one
// domain value; a side defaults to zero when the domain only appears on the
// other.
type DomainFacet struct {
	Domain         string `json:"domain"`
	Whistleblowers int    `json:"whistleblowers"`
	Cases          int    `json:"cases"`
}
