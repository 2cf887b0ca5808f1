// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package pipeline provisions the items read from a configuration file into a
// destination, one item at a time.
// A failing item is logged and recorded in the returned Summary, and the
// processing continues with the next one.
package pipeline
