// Package services implements the driving ports: the query engine over
// both collections, the relationship deriver and the refresh
// orchestrator. Services hold read access to the indexes; only the
// refresh orchestrator rebuilds them.
package services
