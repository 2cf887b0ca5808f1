// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package typedef models the catalog type definitions exchanged with the Atlan
// typedef REST API: tags (classifications), custom metadata (business metadata)
// with their attributes, and enumerations.
//
// The structs follow the wire contract of the platform, including its habit of
// transporting sets of identifiers as JSON arrays encoded inside a string.
package typedef
