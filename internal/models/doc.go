// Package models defines the core domain models for Dividi.
//
// # Models
//
//   - User: a group member with registered payment handles
//   - Group: a set of users sharing expenses in a single currency
//   - Expense: an amount fronted by one or more payers and owed by one or
//     more splitters; settlements are a special kind of expense
//   - Debt: a derived "who pays whom" instruction, never persisted
//
// # Design Principles
//
//  1. **Plain data**: models carry no behavior beyond formatting helpers;
//     all computation lives in the calculator, rails and payload packages.
//  2. **Exact money**: amounts are decimal.Decimal, never float64, so that
//     cent-sum invariants hold without epsilon comparisons leaking out of
//     the calculator.
//  3. **Avoid circular references**: relationships use ID strings, not
//     pointers.
//  4. **Soft deletion is external**: the persistence layer owns DeletedAt;
//     models only expose it so the calculator can skip dead expenses.
package models
