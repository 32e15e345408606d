package seed

import "sentinelles/internal/catalog/models"

// Reference data: the emblematic whistleblowers and affairs the public
// catalog launches with. All records are featured and verified.

type seedEntity struct {
	slug       string
	name       string
	entityType string
	country    string
}

type seedCase struct {
	slug           string // derived from name when empty
	name           string
	shortName      string
	domain         models.Domain
	revelationYear int
	periodStart    *int
	periodEnd      *int
	summary        string
	revealedBy     string
	revealerType   models.RevealerType
	status         models.CaseStatus
	entitySlugs    []string
	tagDomains     []models.Domain
}

type seedResource struct {
	resourceType models.ResourceType
	title        string
	author       string
	year         int
	isPrimary    bool
}

type seedWhistleblower struct {
	name           string
	nationality    string
	birthYear      int
	profession     string
	mainRevelation string
	revelationYear int
	summary        string
	status         models.WhistleblowerStatus
	refugeCountry  *string
	quote          *string
	caseSlugs      []string
	tagDomains     []models.Domain
	resources      []seedResource
}

type seedTimelineEvent struct {
	caseSlug    string
	year        int
	title       string
	description string
}

func intPtr(n int) *int       { return &n }
func strPtr(s string) *string { return &s }

var entities = []seedEntity{
	{"nsa", "NSA (National Security Agency)", "agence", "États-Unis"},
	{"nso-group", "NSO Group", "entreprise", "Israël"},
	{"pwc", "PwC (PricewaterhouseCoopers)", "entreprise", "International"},
	{"hsbc", "HSBC", "entreprise", "Royaume-Uni"},
	{"ubs", "UBS", "entreprise", "Suisse"},
	{"servier", "Laboratoires Servier", "entreprise", "France"},
	{"facebook-meta", "Facebook/Meta", "entreprise", "États-Unis"},
	{"cambridge-analytica", "Cambridge Analytica", "entreprise", "Royaume-Uni"},
	{"palantir", "Palantir Technologies", "entreprise", "États-Unis"},
}

var cases = []seedCase{
	{
		name:           "Projet Pegasus",
		shortName:      "Pegasus",
		domain:         models.DomainSurveillance,
		revelationYear: 2021,
		periodStart:    intPtr(2016),
		summary:        "Révélation de l'utilisation massive du logiciel espion Pegasus par des gouvernements pour surveiller journalistes et militants.",
		revealedBy:     "Forbidden Stories, Amnesty International et 17 médias internationaux",
		revealerType:   models.RevealerEnqueteCollaborative,
		status:         models.CaseEnCours,
		entitySlugs:    []string{"nso-group"},
		tagDomains:     []models.Domain{models.DomainSurveillance, models.DomainDroitsHumains},
	},
	{
		slug:           "cambridge-analytica",
		name:           "Scandale Cambridge Analytica",
		shortName:      "Cambridge Analytica",
		domain:         models.DomainTechnologie,
		revelationYear: 2018,
		periodStart:    intPtr(2014),
		periodEnd:      intPtr(2018),
		summary:        "Exploitation illégale des données de 87 millions d'utilisateurs Facebook pour influencer des élections.",
		revealedBy:     "Christopher Wylie",
		revealerType:   models.RevealerLanceurAlerte,
		status:         models.CasePartiellementResolu,
		entitySlugs:    []string{"facebook-meta", "cambridge-analytica", "palantir"},
		tagDomains:     []models.Domain{models.DomainTechnologie, models.DomainPolitique},
	},
	{
		slug:           "nsa-prism",
		name:           "Révélations sur la surveillance de masse de la NSA",
		shortName:      "NSA/PRISM",
		domain:         models.DomainSurveillance,
		revelationYear: 2013,
		periodStart:    intPtr(2007),
		summary:        "Révélation des programmes de surveillance de masse de la NSA collectant les données de millions de citoyens.",
		revealedBy:     "Edward Snowden",
		revealerType:   models.RevealerLanceurAlerte,
		status:         models.CasePartiellementResolu,
		entitySlugs:    []string{"nsa"},
		tagDomains:     []models.Domain{models.DomainSurveillance},
	},
	{
		name:           "LuxLeaks",
		shortName:      "LuxLeaks",
		domain:         models.DomainFiscalite,
		revelationYear: 2014,
		periodStart:    intPtr(2002),
		periodEnd:      intPtr(2010),
		summary:        "Révélation d'accords fiscaux secrets entre le Luxembourg et des multinationales.",
		revealedBy:     "Antoine Deltour et Raphaël Halet",
		revealerType:   models.RevealerLanceurAlerte,
		status:         models.CasePartiellementResolu,
		entitySlugs:    []string{"pwc"},
		tagDomains:     []models.Domain{models.DomainFiscalite},
	},
}

var whistleblowers = []seedWhistleblower{
	{
		name:           "Edward Snowden",
		nationality:    "Américaine",
		birthYear:      1983,
		profession:     "Analyste NSA / Consultant CIA",
		mainRevelation: "Surveillance de masse de la NSA",
		revelationYear: 2013,
		summary:        "A révélé l'ampleur de la surveillance de masse pratiquée par la NSA.",
		status:         models.StatusExile,
		refugeCountry:  strPtr("Russie"),
		quote:          strPtr("Affirmer que vous ne vous souciez pas du droit à la vie privée parce que vous n'avez rien à cacher revient à dire que vous ne vous souciez pas de la liberté d'expression parce que vous n'avez rien à dire."),
		caseSlugs:      []string{"nsa-prism"},
		tagDomains:     []models.Domain{models.DomainSurveillance, models.DomainDefense},
		resources: []seedResource{
			{models.ResourceLivre, "Mémoires vives", "Edward Snowden", 2019, true},
			{models.ResourceDocumentaire, "Citizenfour", "Laura Poitras", 2014, false},
		},
	},
	{
		name:           "Antoine Deltour",
		nationality:    "Française",
		birthYear:      1985,
		profession:     "Auditeur chez PwC Luxembourg",
		mainRevelation: "LuxLeaks - Évasion fiscale",
		revelationYear: 2014,
		summary:        "A révélé 28 000 pages de documents exposant les accords fiscaux secrets du Luxembourg.",
		status:         models.StatusRehabilite,
		caseSlugs:      []string{"luxleaks"},
		tagDomains:     []models.Domain{models.DomainFiscalite, models.DomainFinance},
	},
	{
		name:           "Christopher Wylie",
		nationality:    "Canadienne",
		birthYear:      1989,
		profession:     "Directeur de recherche chez Cambridge Analytica",
		mainRevelation: "Cambridge Analytica",
		revelationYear: 2018,
		summary:        "A révélé comment Cambridge Analytica a exploité les données de 87 millions d'utilisateurs Facebook.",
		status:         models.StatusLibre,
		caseSlugs:      []string{"cambridge-analytica"},
		tagDomains:     []models.Domain{models.DomainTechnologie, models.DomainPolitique},
	},
	{
		name:           "Frances Haugen",
		nationality:    "Américaine",
		birthYear:      1983,
		profession:     "Ingénieure chez Facebook",
		mainRevelation: "Facebook Papers",
		revelationYear: 2021,
		summary:        "A révélé que Facebook savait que ses algorithmes causaient des dommages psychologiques.",
		status:         models.StatusLibre,
		tagDomains:     []models.Domain{models.DomainTechnologie},
	},
	{
		name:           "Irène Frachon",
		nationality:    "Française",
		birthYear:      1963,
		profession:     "Pneumologue au CHU de Brest",
		mainRevelation: "Scandale du Mediator",
		revelationYear: 2010,
		summary:        "A révélé que le Mediator était responsable de centaines de morts.",
		status:         models.StatusLibre,
		tagDomains:     []models.Domain{models.DomainSante, models.DomainPharmaceutique},
	},
	{
		name:           "Hervé Falciani",
		nationality:    "Franco-italienne",
		birthYear:      1972,
		profession:     "Informaticien chez HSBC Genève",
		mainRevelation: "SwissLeaks - Évasion fiscale HSBC",
		revelationYear: 2008,
		summary:        "A fourni aux autorités une liste de 130 000 évadés fiscaux chez HSBC Suisse.",
		status:         models.StatusEnProces,
		tagDomains:     []models.Domain{models.DomainFiscalite, models.DomainFinance},
	},
	{
		name:           "Stéphanie Gibaud",
		nationality:    "Française",
		birthYear:      1966,
		profession:     "Responsable marketing chez UBS France",
		mainRevelation: "Fraude fiscale UBS",
		revelationYear: 2008,
		summary:        "A révélé le système de démarchage illégal de clients français par UBS.",
		status:         models.StatusLibre,
		tagDomains:     []models.Domain{models.DomainFiscalite, models.DomainFinance},
	},
	{
		name:           "Julian Assange",
		nationality:    "Australienne",
		birthYear:      1971,
		profession:     "Fondateur de WikiLeaks",
		mainRevelation: "WikiLeaks - Documents militaires",
		revelationYear: 2010,
		summary:        "A publié via WikiLeaks des documents secrets révélant des crimes de guerre.",
		status:         models.StatusLibre,
		tagDomains:     []models.Domain{models.DomainDefense, models.DomainPolitique},
	},
	{
		name:           "Chelsea Manning",
		nationality:    "Américaine",
		birthYear:      1987,
		profession:     "Analyste du renseignement militaire US",
		mainRevelation: "Documents militaires US",
		revelationYear: 2010,
		summary:        "A transmis à WikiLeaks 750 000 documents révélant des crimes de guerre.",
		status:         models.StatusLibre,
		tagDomains:     []models.Domain{models.DomainDefense},
	},
}

var timelineEvents = []seedTimelineEvent{
	{"nsa-prism", 2013, "Premières publications", "The Guardian et le Washington Post publient les premiers documents."},
	{"nsa-prism", 2013, "Asile en Russie", "Edward Snowden obtient l'asile temporaire en Russie."},
	{"nsa-prism", 2015, "USA Freedom Act", "Le Congrès américain encadre la collecte massive de métadonnées."},
	{"luxleaks", 2016, "Procès en première instance", "Antoine Deltour et Raphaël Halet sont condamnés puis font appel."},
	{"luxleaks", 2018, "Cassation", "La Cour de cassation reconnaît à Antoine Deltour le statut de lanceur d'alerte."},
}
