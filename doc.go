// Package stockroom provides the types and operations for a small
// inventory bookkeeping system. It is designed to be local-first and
// auditable: all state lives in plain JSONL files that can be inspected,
// diffed, and version-controlled.
//
// The core functionalities include:
//   - Product Catalog: Three product categories (electronics, clothing,
//     groceries) sharing a common capability set (details, valuation,
//     restock, sell) behind the Product interface.
//   - Inventory Management: An insertion-ordered, keyed collection of
//     products with add/remove/restock/sell operations, search, total
//     valuation and an expired-grocery sweep.
//   - Sales Ledger: An immutable, chronological record of completed sales,
//     each capturing the unit price at the time of sale.
//   - Data Persistence: Encoding and decoding of inventory and sales data
//     to and from human-readable JSONL snapshots.
//
// This package serves as the foundational logic for the `stk` command-line
// tool and the bundled web front end, ensuring that all operations are
// consistent and based on a single source of truth.
package stockroom
