// Package tables registers the campaign output tables with the core registry.
// Import this package to ensure all tables are registered.
package tables

// Group is the registry group shared by all campaign outputs.
const Group = "campaign"
