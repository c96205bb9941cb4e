// Package mapping provides functionality to map candidate achievements to employer pain points.
package mapping

// technicalVocabulary maps domain terms to canonical term families. Two texts
// that hit the same family count as overlapping even when their surface tokens
// differ (e.g. "deployment" and "release" both land in the delivery family).
// Read-only after initialization.
var technicalVocabulary = map[string]string{
	// Delivery / release engineering
	"deployment": "delivery", "deployments": "delivery", "deploy": "delivery",
	"deployed": "delivery", "release": "delivery", "releases": "delivery",
	"shipping": "delivery", "shipped": "delivery", "accelerate": "delivery",
	"accelerated": "delivery", "velocity": "delivery", "cycle": "delivery",
	"cycles": "delivery", "iteration": "delivery", "delivery": "delivery",

	// Scale and performance
	"scale": "scalability", "scaled": "scalability", "scaling": "scalability",
	"scalability": "scalability", "throughput": "scalability", "capacity": "scalability",
	"latency": "performance", "performance": "performance", "performant": "performance",
	"optimization": "performance", "optimized": "performance", "optimize": "performance",
	"reduced": "performance", "reduce": "performance", "efficiency": "performance",

	// Reliability and operations
	"reliability": "reliability", "availability": "reliability", "uptime": "reliability",
	"resilience": "reliability", "incident": "reliability", "incidents": "reliability",
	"monitoring": "observability", "observability": "observability", "alerting": "observability",

	// Security and compliance
	"security": "security", "secure": "security", "compliance": "security",
	"audit": "security", "vulnerability": "security",

	// Migration and modernization
	"migration": "migration", "migrated": "migration", "migrate": "migration",
	"modernization": "migration", "modernized": "migration", "refactoring": "migration",
	"refactored": "migration", "consolidation": "migration",

	// Cloud and infrastructure
	"cloud": "cloud", "infrastructure": "cloud", "kubernetes": "cloud",
	"containers": "cloud", "containerization": "cloud", "provisioning": "cloud",
	"platform": "cloud", "terraform": "cloud",

	// Automation and tooling
	"automation": "automation", "automated": "automation", "automate": "automation",
	"pipeline": "automation", "pipelines": "automation", "tooling": "automation",
	"workflow": "automation", "workflows": "automation",

	// Data
	"database": "data", "databases": "data", "analytics": "data",
	"reporting": "data", "warehouse": "data", "streaming": "data",

	// People and leadership
	"team": "leadership", "teams": "leadership", "leadership": "leadership",
	"mentoring": "leadership", "mentored": "leadership", "hiring": "leadership",
	"hired": "leadership", "onboarding": "leadership", "managed": "leadership",
	"management": "leadership", "stakeholder": "leadership", "stakeholders": "leadership",

	// Business outcomes
	"cost": "business", "costs": "business", "budget": "business",
	"revenue": "business", "growth": "business", "roadmap": "business",
	"strategy": "business", "strategic": "business",

	// Quality and process
	"quality": "quality", "testing": "quality", "tested": "quality",
	"coverage": "quality", "agile": "process", "process": "process",
	"processes": "process", "standardization": "process", "governance": "process",
}

// stopwords are generic CV/JD filler terms excluded from overlap scoring.
// Time units are included so "2 hours to 15 minutes" does not inflate unions.
var stopwords = map[string]bool{
	"with": true, "that": true, "this": true, "from": true, "into": true,
	"need": true, "needs": true, "using": true, "used": true, "able": true,
	"ability": true, "experience": true, "experienced": true, "work": true,
	"working": true, "worked": true, "strong": true, "proven": true,
	"across": true, "over": true, "more": true, "than": true, "their": true,
	"through": true, "while": true, "within": true, "where": true, "when": true,
	"time": true, "times": true, "hours": true, "hour": true, "minutes": true,
	"minute": true, "days": true, "weeks": true, "months": true, "years": true,
}

// familyNames is the set of canonical family labels, for classifying overlap
// terms as technical. Built once at init from technicalVocabulary.
var familyNames = func() map[string]bool {
	names := make(map[string]bool)
	for _, family := range technicalVocabulary {
		names[family] = true
	}
	return names
}()
