package gotabular

// Package gotabular provides:
//
// - Majority-vote type inference over loosely-typed tabular records (InferTypes)
// - Tolerant dataset parsing that isolates failures per cell (ParseDataset)
// - A stable cell-error model via FieldError/ErrorList (row index, column, code, message)
// - A JSON wire form for column type maps, plus JSON/YAML/CSV dataset sources under source/
//
// Design policy:
// - Keep only public APIs in the root package; put coercion details under internal/.
// - Place the date pattern codec under datefmt/, transport adapters under source/, and the CLI under cmd/gotabular.
// - Failures are data: a parse always yields the full dataset with nil cells plus an ErrorList, never an error.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//  types := gotabular.InferTypes(data, false)
//  res := gotabular.ParseDataset(data, types)
//  for _, re := range res.Errors { ... }
//
//  res = gotabular.ParseDataset(data, nil) // infer and parse in one call
