package funnel

import "github.com/Gabriel-Jesus3761/zops-funnel/internal/model"

// DefaultStageMapping returns the business mapping table: every raw stage code
// the nine source pipelines expose, mapped to its canonical funnel category.
//
// The CRM's default sales pipeline uses symbolic stage codes; pipelines created
// later use opaque numeric stage ids. The legacy 2022 pipeline additionally
// kept slug codes from the pre-migration CRM. Not every pipeline feeds every
// category (the default pipeline has no lead stage, the SDR pipeline stops at
// discovery).
func DefaultStageMapping() StageMapping {
	return StageMapping{
		// Comercial (default pipeline, symbolic codes)
		"appointmentscheduled":  model.CategoryConnect,
		"qualifiedtobuy":        model.CategoryDiscovery,
		"presentationscheduled": model.CategoryProposal,
		"decisionmakerboughtin": model.CategoryNegotiation,
		"contractsent":          model.CategoryCommit,
		"closedwon":             model.CategoryWon,
		"closedlost":            model.CategoryLost,

		// Eventos Corporativos
		"166220716": model.CategoryLeads,
		"166220717": model.CategoryConnect,
		"166220718": model.CategoryDiscovery,
		"166220719": model.CategoryProposal,
		"166220720": model.CategoryNegotiation,
		"166220721": model.CategoryCommit,
		"166220723": model.CategoryWon,
		"166220724": model.CategoryLost,

		// Casamentos
		"171882190": model.CategoryLeads,
		"171882191": model.CategoryConnect,
		"171882192": model.CategoryDiscovery,
		"171882193": model.CategoryProposal,
		"171882194": model.CategoryNegotiation,
		"171882195": model.CategoryCommit,
		"171882196": model.CategoryWon,
		"171882197": model.CategoryLost,

		// Formaturas
		"175004310": model.CategoryLeads,
		"175004311": model.CategoryConnect,
		"175004312": model.CategoryDiscovery,
		"175004313": model.CategoryProposal,
		"175004314": model.CategoryNegotiation,
		"175004315": model.CategoryCommit,
		"175004316": model.CategoryWon,
		"175004317": model.CategoryLost,

		// Agências & Parcerias
		"180337551": model.CategoryLeads,
		"180337552": model.CategoryConnect,
		"180337553": model.CategoryDiscovery,
		"180337554": model.CategoryProposal,
		"180337555": model.CategoryNegotiation,
		"180337556": model.CategoryCommit,
		"180337557": model.CategoryWon,
		"180337558": model.CategoryLost,

		// Inside Sales
		"184672005": model.CategoryLeads,
		"184672006": model.CategoryConnect,
		"184672007": model.CategoryDiscovery,
		"184672008": model.CategoryProposal,
		"184672009": model.CategoryNegotiation,
		"184672010": model.CategoryCommit,
		"184672011": model.CategoryWon,
		"184672012": model.CategoryLost,

		// SDR (prospecting only: hands off after discovery)
		"189220401": model.CategoryLeads,
		"189220402": model.CategoryConnect,
		"189220403": model.CategoryDiscovery,
		"189220409": model.CategoryLost,

		// Licitações
		"193540870": model.CategoryLeads,
		"193540871": model.CategoryConnect,
		"193540872": model.CategoryDiscovery,
		"193540873": model.CategoryProposal,
		"193540874": model.CategoryNegotiation,
		"193540875": model.CategoryCommit,
		"193540876": model.CategoryWon,
		"193540877": model.CategoryLost,

		// Legado 2022 (numeric ids plus pre-migration slugs)
		"122003155":         model.CategoryLeads,
		"122003157":         model.CategoryDiscovery,
		"122003158":         model.CategoryProposal,
		"122003161":         model.CategoryWon,
		"122003162":         model.CategoryLost,
		"novo-lead":         model.CategoryLeads,
		"contato-realizado": model.CategoryConnect,
		"reuniao-agendada":  model.CategoryDiscovery,
		"proposta-enviada":  model.CategoryProposal,
		"em-negociacao":     model.CategoryNegotiation,
		"fechamento":        model.CategoryCommit,
		"ganho":             model.CategoryWon,
		"perdido":           model.CategoryLost,
	}
}

// DefaultPipelineTable returns the presentation table for the nine source
// pipelines: raw pipeline id → display name, icon and color. The display name
// is also registered as a key so payloads that carry the resolved name instead
// of the id normalize to the same descriptor.
func DefaultPipelineTable() PipelineTable {
	descriptors := []PipelineDescriptor{
		{ID: "default", Name: "Comercial", Icon: "💼", Color: "#7c3aed"},
		{ID: "75634529", Name: "Eventos Corporativos", Icon: "🏢", Color: "#3b82f6"},
		{ID: "82114031", Name: "Casamentos", Icon: "💍", Color: "#ec4899"},
		{ID: "84562210", Name: "Formaturas", Icon: "🎓", Color: "#f59e0b"},
		{ID: "88430125", Name: "Agências & Parcerias", Icon: "🤝", Color: "#10b981"},
		{ID: "91207465", Name: "Inside Sales", Icon: "📞", Color: "#06b6d4"},
		{ID: "95118302", Name: "SDR", Icon: "🧭", Color: "#8b5cf6"},
		{ID: "98660154", Name: "Licitações", Icon: "📜", Color: "#64748b"},
		{ID: "102445879", Name: "Legado 2022", Icon: "🗄️", Color: "#737373"},
	}

	table := make(PipelineTable, len(descriptors)*2)
	for _, d := range descriptors {
		table[d.ID] = d
		table[d.Name] = d
	}
	return table
}
