// Package domain contains the core types of the documentation index:
// extracted records, query results, derived views and the error taxonomy.
// Types here are pure data with no dependency on storage or transport.
package domain
