// Command/library root of flowengine: a trust-network payment-path
// engine that finds the maximum flow of value transferable between two
// participants across chains of mutual trust, grounded in the Circles
// UBI pathfinder's max-flow algorithm.
//
// Packages:
//
//	types/    — Address, Token, Amount, Edge/Transfer value types
//	node/     — the three-variant vertex of the layered capacity graph
//	layered/  — builds and queries that graph's residual view
//	engine/   — augmenting-path search, pruning, extraction, scheduling
//	edgedb/   — the read-only edge index a computation consumes
//	dotviz/   — Graphviz DOT rendering for transfers and raw graphs
//	httpapi/  — JSON API over engine.ComputeFlow
//	config/   — layered configuration (defaults/file/env)
//	logging/  — structured logging setup
//	cmd/flowctl — CLI front end
package flowengine
