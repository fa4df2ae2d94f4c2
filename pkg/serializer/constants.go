/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package serializer

const (
	// StdoutURI is the special output path indicating stdout.
	StdoutURI = "-"

	// emptyTable is printed by the table format when there is nothing to show.
	emptyTable = "<empty>"
)
