// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package destination defines the contract used to read and persist catalog type definitions.
// Implementations live in the sub packages: the remote Atlan catalog, a writer used
// for dry runs and an in-memory fake for tests.
package destination
