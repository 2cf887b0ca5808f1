// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package writer implements a destination that prints the type definitions it
// would create or update to the given io.Writer instance.
// Lookups always report missing definitions and searches return no results, so
// it can be used without access to a tenant to review the payloads before
// sending them to the real catalog.
package writer
