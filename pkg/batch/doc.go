/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package batch validates every dataset in a directory.
//
// Files are validated one after another in the order the directory read
// returns them. Per-file outcomes are folded into a Summary, whose ExitCode
// is the process exit status: 0 when every dataset passed, 1 otherwise.
//
// A document that cannot be decoded fails only its own file unless the
// runner is created with WithFailFast, in which case the run stops and the
// error is returned.
//
//	r := batch.NewRunner(validator.New(), batch.WithPrinter(report.NewPrinter(os.Stdout)))
//	sum, err := r.Run(ctx, "data")
//	if err != nil {
//	    return err
//	}
//	os.Exit(sum.ExitCode())
package batch
