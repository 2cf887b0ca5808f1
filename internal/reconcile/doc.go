// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package reconcile merges the attributes of a custom metadata definition read
// from configuration with the attributes already stored in the catalog.
package reconcile
