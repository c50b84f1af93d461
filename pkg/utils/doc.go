// Package utils provides small helpers shared by the parser, the syntax tree, and the
// formatter.
//
// # Identifier Utilities (identifier.go)
//
// Identifiers may be written bare or backtick-quoted. The same rules are needed when
// reading them (strip the quotes) and when writing them back (add quotes only where
// required, or always when the formatter is configured to):
//
//	utils.StripBackticks("`order`")   // order
//	utils.BacktickIfNeeded("order")   // `order`
//	utils.BacktickIfNeeded("users")   // users
//	utils.Backtick("users")           // `users`
//
// # Pointer Utilities (ptr.go)
//
//	limit := utils.Ptr(uint64(10))
package utils
