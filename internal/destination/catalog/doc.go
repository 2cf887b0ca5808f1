// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package catalog implements the Atlan catalog destination.
// It talks to the typedef and search REST APIs of a tenant, authenticating with
// an API key read from the environment.
package catalog
