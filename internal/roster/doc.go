package roster

// Package roster implements the in-memory champion roster: validated
// insertion against the Data Dragon champion list, per-champion ability haste,
// and per-ability level bookkeeping. The store is independent of the UI, which
// observes changes through an update callback.
