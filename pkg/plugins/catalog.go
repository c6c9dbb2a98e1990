package plugins

import "slices"

// catalog is the fixed set of Serverless Framework plugins slsforge knows how
// to wire into a generated project. Order is presentation order.
var catalog = []string{
	"serverless-offline",
	"serverless-python-requirements",
	"serverless-dotenv-plugin",
	"serverless-prune-plugin",
	"serverless-iam-roles-per-function",
	"serverless-plugin-warmup",
	"serverless-domain-manager",
	"serverless-step-functions",
}

// DefaultCatalog returns the plugin catalog. Callers get their own copy.
func DefaultCatalog() []string {
	return slices.Clone(catalog)
}

// Known reports whether name is a catalog entry.
func Known(name string) bool {
	return slices.Contains(catalog, name)
}
