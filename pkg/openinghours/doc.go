/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package openinghours parses OpenStreetMap style opening_hours expressions.
//
// # Overview
//
// The parser understands the subset of the opening_hours syntax that market
// datasets use in practice and reports two kinds of findings:
//
//   - a *SyntaxError when the expression cannot be parsed, with the byte
//     position of the offending token
//   - advisory warnings for expressions that parse but are written in a
//     non-canonical or suspicious way
//
// # Supported Syntax
//
//	24/7                                   always open
//	Mo-Fr 08:00-18:00; Sa 09:00-14:00      rules separated by ';'
//	Mo-Fr 08:00-12:00,13:00-17:00          time lists
//	Mo 10:00-12:00, We 14:00-16:00         additional rules separated by ','
//	Mo-Fr 08:00-18:00 || "by appointment"  fallback rules separated by '||'
//	Sa[1,3] 08:00-13:00                    nth weekday of the month
//	PH off; SH 10:00-12:00                 public and school holidays
//	Dec 24-26 off; Jan-Mar Sa 09:00-12:00  month and date selectors
//	2025 Nov 28-Dec 23 11:00-21:00         year prefixes
//	week 01-53/2 Fr 14:00-18:00            week selectors
//	Fr 18:00+                              open end
//	sunrise-sunset, (sunset-01:00)-22:00   variable times with offsets
//	Mo-Fr 10:00-18:00 open "comment"       rule modifiers and comments
//
// # Usage
//
//	expr, err := openinghours.Parse("Mo-Fr 8:00-18:00")
//	if err != nil {
//	    return err
//	}
//	for _, w := range expr.Warnings {
//	    fmt.Println(w) // Time '8:00' should use two-digit hours: '08:00'.
//	}
//
// Checker adapts Parse to the validator's hours-checking interface.
package openinghours
