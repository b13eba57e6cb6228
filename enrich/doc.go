// Package enrich reshapes appointment data coming from sibling services or
// from the built-in mock dataset into the dashboard view of the doctors
// service: heterogeneous keys are reconciled, doctor ids become display names
// and missing patient ids are backfilled by name.
package enrich
