/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ValidateFeatures validates every feature independently. Results keep the
// input order regardless of the configured parallelism. The only error
// returned is the context's.
func (v *Validator) ValidateFeatures(ctx context.Context, features []any) (FeaturesResult, error) {
	results := make([]FeatureResult, len(features))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(v.parallelism)

	for i, raw := range features {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = v.ValidateFeature(i, raw)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return FeaturesResult{}, err
	}
	return FeaturesResult{Features: results}, nil
}
